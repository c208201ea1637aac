package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"farmaya/internal/core/application/usecases/queries"
	"farmaya/internal/core/domain/model/order"
	"farmaya/internal/pkg/errs"
)

func detail(message string) map[string]string {
	return map[string]string{"detail": message}
}

// writeError maps domain failures to HTTP status codes. Validation problems
// are 400, authorization problems 403, missing objects 404 and write races
// 409. Anything unrecognized is a 500 with a generic body so internals never
// leak to clients.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, detail(err.Error()))
	case errors.Is(err, errs.ErrActionNotAllowed):
		return ctx.JSON(http.StatusForbidden, detail(err.Error()))
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, detail(err.Error()))
	case errors.Is(err, errs.ErrConflict):
		return ctx.JSON(http.StatusConflict, detail(err.Error()))
	default:
		ctx.Logger().Error(err)
		return ctx.JSON(http.StatusInternalServerError, detail("Error interno del servidor."))
	}
}

// fieldErrors flattens a joined validation error into a field-to-messages
// map for registration responses.
func fieldErrors(err error) map[string][]string {
	fields := make(map[string][]string)
	collectFieldErrors(err, fields)
	return fields
}

func collectFieldErrors(err error, fields map[string][]string) {
	if err == nil {
		return
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, sub := range joined.Unwrap() {
			collectFieldErrors(sub, fields)
		}
		return
	}

	name := "detail"
	var invalidErr *errs.ValueIsInvalidError
	var requiredErr *errs.ValueIsRequiredError
	var rangeErr *errs.ValueIsOutOfRangeError
	switch {
	case errors.As(err, &invalidErr):
		name = invalidErr.ParamName
	case errors.As(err, &requiredErr):
		name = requiredErr.ParamName
	case errors.As(err, &rangeErr):
		name = rangeErr.ParamName
	}
	fields[name] = append(fields[name], err.Error())
}

type orderItemResponse struct {
	ID                     string `json:"id"`
	ProductoID             string `json:"producto_id"`
	ProductoNombre         string `json:"producto_nombre"`
	Cantidad               int    `json:"cantidad"`
	PrecioUnitarioCentavos int64  `json:"precio_unitario_centavos"`
	RequiereReceta         bool   `json:"requiere_receta"`
	EstadoReceta           string `json:"estado_receta"`
	Receta                 string `json:"receta,omitempty"`
	NotasRevision          string `json:"notas_revision,omitempty"`
	RechazoConfirmado      bool   `json:"rechazo_confirmado"`
}

type orderResponse struct {
	ID               string              `json:"id"`
	ClienteID        string              `json:"cliente_id"`
	ClienteNombre    string              `json:"cliente_nombre,omitempty"`
	FarmaciaID       string              `json:"farmacia_id"`
	FarmaciaNombre   string              `json:"farmacia_nombre,omitempty"`
	RepartidorID     *string             `json:"repartidor_id"`
	DireccionEntrega string              `json:"direccion_entrega"`
	MetodoPago       string              `json:"metodo_pago"`
	Estado           string              `json:"estado"`
	MotivoNoEntrega  string              `json:"motivo_no_entrega,omitempty"`
	CreadoEn         time.Time           `json:"creado_en"`
	TotalCentavos    int64               `json:"total_centavos"`
	PuedeAceptar     bool                `json:"puede_aceptar"`
	Detalles         []orderItemResponse `json:"detalles"`
}

func orderResponseFromDomain(o *order.Order) orderResponse {
	var courierID *string
	if courier := o.Courier(); courier != nil {
		raw := courier.String()
		courierID = &raw
	}

	items := make([]orderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, orderItemResponse{
			ID:                     item.ID().String(),
			ProductoID:             item.ProductID().String(),
			ProductoNombre:         item.ProductName(),
			Cantidad:               item.Quantity(),
			PrecioUnitarioCentavos: item.UnitPriceCents(),
			RequiereReceta:         item.RequiresPrescription(),
			EstadoReceta:           item.PrescriptionStatus().String(),
			Receta:                 item.PrescriptionFile(),
			NotasRevision:          item.ReviewNotes(),
			RechazoConfirmado:      item.RejectionAcknowledged(),
		})
	}

	return orderResponse{
		ID:               o.ID().String(),
		ClienteID:        o.CustomerID().String(),
		FarmaciaID:       o.PharmacyID().String(),
		RepartidorID:     courierID,
		DireccionEntrega: o.DeliveryAddress(),
		MetodoPago:       o.PaymentMethod(),
		Estado:           o.Status().String(),
		MotivoNoEntrega:  o.NonDeliveryReason(),
		CreadoEn:         o.CreatedAt(),
		TotalCentavos:    o.TotalCents(),
		PuedeAceptar:     o.Status() == order.Pendiente && o.CanAccept(),
		Detalles:         items,
	}
}

func orderResponseFromView(view queries.OrderView) orderResponse {
	var courierID *string
	if view.CourierID != nil {
		raw := view.CourierID.String()
		courierID = &raw
	}

	items := make([]orderItemResponse, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, orderItemResponse{
			ID:                     item.ID.String(),
			ProductoID:             item.ProductID.String(),
			ProductoNombre:         item.ProductName,
			Cantidad:               item.Quantity,
			PrecioUnitarioCentavos: item.UnitPriceCents,
			RequiereReceta:         item.RequiresPrescription,
			EstadoReceta:           item.PrescriptionStatus.String(),
			Receta:                 item.PrescriptionFile,
			NotasRevision:          item.ReviewNotes,
			RechazoConfirmado:      item.RejectionAcknowledged,
		})
	}

	return orderResponse{
		ID:               view.ID.String(),
		ClienteID:        view.CustomerID.String(),
		ClienteNombre:    view.CustomerName,
		FarmaciaID:       view.PharmacyID.String(),
		FarmaciaNombre:   view.PharmacyName,
		RepartidorID:     courierID,
		DireccionEntrega: view.DeliveryAddress,
		MetodoPago:       view.PaymentMethod,
		Estado:           view.Status.String(),
		MotivoNoEntrega:  view.NonDeliveryReason,
		CreadoEn:         view.CreatedAt,
		TotalCentavos:    view.TotalCents,
		PuedeAceptar:     view.CanAccept,
		Detalles:         items,
	}
}

func orderListResponse(views []queries.OrderView) []orderResponse {
	responses := make([]orderResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, orderResponseFromView(view))
	}
	return responses
}

package http

import (
	"encoding/json"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"farmaya/internal/core/application/usecases/commands"
	"farmaya/internal/core/application/usecases/queries"
	"farmaya/internal/core/domain/model/account"
	"farmaya/internal/core/domain/model/kernel"
	"farmaya/internal/core/domain/model/order"
)

type orderItemRequest struct {
	Producto   string `json:"producto"`
	ProductoID string `json:"producto_id"`
	Cantidad   int    `json:"cantidad"`
	RecetaKey  string `json:"receta_key"`
}

// productID resolves the product reference, accepting both the producto and
// producto_id spellings clients use.
func (r orderItemRequest) productID() (kernel.UUID, error) {
	raw := r.Producto
	if raw == "" {
		raw = r.ProductoID
	}
	return kernel.UUIDFromString(raw)
}

type changeStatusRequest struct {
	Estado          string `json:"estado"`
	MotivoNoEntrega string `json:"motivo_no_entrega"`
}

// firstFormValue returns the first non-empty form value among the given
// aliases of a field.
func firstFormValue(ctx echo.Context, names ...string) string {
	for _, name := range names {
		if value := ctx.FormValue(name); value != "" {
			return value
		}
	}
	return ""
}

// CreateOrder handles POST /api/pedidos/. The body is multipart: regular
// fields carry the pharmacy (farmacia or farmacia_id), address, payment
// method and a detalles JSON array; prescription uploads travel as extra
// file parts referenced from each item by its receta_key.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := currentActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	if actor.Role() != account.Cliente {
		return ctx.JSON(http.StatusForbidden, detail("Solo los clientes pueden crear pedidos."))
	}

	pharmacyID, err := kernel.UUIDFromString(firstFormValue(ctx, "farmacia", "farmacia_id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var itemRequests []orderItemRequest
	if err = json.Unmarshal([]byte(ctx.FormValue("detalles")), &itemRequests); err != nil {
		return ctx.JSON(http.StatusBadRequest, detail("El campo detalles debe ser un arreglo JSON válido."))
	}

	requestCtx := ctx.Request().Context()
	savedRefs := make([]string, 0, len(itemRequests))
	cleanup := func() {
		for _, ref := range savedRefs {
			_ = s.fileStore.Delete(requestCtx, ref)
		}
	}

	items := make([]commands.CreateOrderItem, 0, len(itemRequests))
	for _, req := range itemRequests {
		productID, idErr := req.productID()
		if idErr != nil {
			cleanup()
			return writeError(ctx, idErr)
		}

		var fileRef string
		if req.RecetaKey != "" {
			header, fileErr := ctx.FormFile(req.RecetaKey)
			if fileErr != nil {
				cleanup()
				return ctx.JSON(http.StatusBadRequest,
					detail("Falta el archivo de receta "+req.RecetaKey+"."))
			}
			fileRef, fileErr = s.saveUpload(ctx, header)
			if fileErr != nil {
				cleanup()
				return writeError(ctx, fileErr)
			}
			savedRefs = append(savedRefs, fileRef)
		}

		items = append(items, commands.CreateOrderItem{
			ProductID:        productID,
			Quantity:         req.Cantidad,
			PrescriptionFile: fileRef,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		actor.ID(), pharmacyID,
		ctx.FormValue("direccion_entrega"),
		ctx.FormValue("metodo_pago"),
		items,
	)
	if err != nil {
		cleanup()
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(requestCtx, cmd)
	if err != nil {
		cleanup()
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromDomain(created))
}

// GetMyOrders handles GET /api/pedidos/mis/. Customers see their purchase
// history; couriers see their assigned deliveries.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	user := currentUser(ctx)
	requestCtx := ctx.Request().Context()

	switch user.Role() {
	case account.Cliente:
		query, err := queries.NewGetCustomerOrdersQuery(user.ID())
		if err != nil {
			return writeError(ctx, err)
		}
		views, err := s.getCustomerOrdersHandler.Handle(requestCtx, query)
		if err != nil {
			return writeError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, orderListResponse(views))

	case account.Repartidor:
		query, err := queries.NewGetCourierOrdersQuery(user.ID())
		if err != nil {
			return writeError(ctx, err)
		}
		views, err := s.getCourierOrdersHandler.Handle(requestCtx, query)
		if err != nil {
			return writeError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, orderListResponse(views))

	default:
		return ctx.JSON(http.StatusForbidden,
			detail("Las farmacias consultan sus pedidos por farmacia."))
	}
}

// GetPharmacyOrders handles GET /api/pedidos/farmacia/:farmacia_id/ with an
// optional estado filter. A pharmacy can only read its own queue.
func (s *Server) GetPharmacyOrders(ctx echo.Context) error {
	user := currentUser(ctx)

	pharmacyID, err := kernel.UUIDFromString(ctx.Param("farmacia_id"))
	if err != nil {
		return writeError(ctx, err)
	}
	if user.Role() != account.Farmacia || !user.ID().IsEqual(pharmacyID) {
		return ctx.JSON(http.StatusForbidden, detail("No puede consultar pedidos de otra farmacia."))
	}

	var statusFilter *order.Status
	if raw := ctx.QueryParam("estado"); raw != "" {
		status, statusErr := order.StatusFromString(raw)
		if statusErr != nil {
			return writeError(ctx, statusErr)
		}
		statusFilter = &status
	}

	query, err := queries.NewGetPharmacyOrdersQuery(pharmacyID, statusFilter)
	if err != nil {
		return writeError(ctx, err)
	}

	views, err := s.getPharmacyOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderListResponse(views))
}

// ChangeOrderStatus handles PATCH /api/pedidos/:id/estado/.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	actor, err := currentActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req changeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, detail("Cuerpo de la petición inválido."))
	}

	target, err := order.StatusFromString(req.Estado)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, actor, target, req.MotivoNoEntrega)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromDomain(updated))
}

func (s *Server) saveUpload(ctx echo.Context, header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	return s.fileStore.Save(ctx.Request().Context(), header.Filename, file)
}

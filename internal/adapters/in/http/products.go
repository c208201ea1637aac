package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmaya/internal/core/application/usecases/commands"
	"farmaya/internal/core/application/usecases/queries"
	"farmaya/internal/core/domain/model/kernel"
	"farmaya/internal/core/domain/model/product"
)

type productRequest struct {
	Nombre         string `json:"nombre"`
	Presentacion   string `json:"presentacion"`
	Descripcion    string `json:"descripcion"`
	PrecioCentavos int64  `json:"precio_centavos"`
	Stock          int    `json:"stock"`
	RequiereReceta bool   `json:"requiere_receta"`
}

type productResponse struct {
	ID             string `json:"id"`
	FarmaciaID     string `json:"farmacia_id"`
	FarmaciaNombre string `json:"farmacia_nombre,omitempty"`
	Nombre         string `json:"nombre"`
	Presentacion   string `json:"presentacion,omitempty"`
	Descripcion    string `json:"descripcion,omitempty"`
	PrecioCentavos int64  `json:"precio_centavos"`
	Stock          int    `json:"stock"`
	RequiereReceta bool   `json:"requiere_receta"`
}

// GetProducts handles GET /api/productos/. An optional farmacia query
// parameter narrows the catalog to one pharmacy.
func (s *Server) GetProducts(ctx echo.Context) error {
	var pharmacyID *kernel.UUID
	if raw := ctx.QueryParam("farmacia"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		pharmacyID = &id
	}

	query, err := queries.NewGetProductsQuery(pharmacyID)
	if err != nil {
		return writeError(ctx, err)
	}

	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]productResponse, 0, len(products))
	for _, p := range products {
		response = append(response, productResponse{
			ID:             p.ID.String(),
			FarmaciaID:     p.PharmacyID.String(),
			FarmaciaNombre: p.PharmacyName,
			Nombre:         p.Name,
			Presentacion:   p.Presentation,
			Descripcion:    p.Description,
			PrecioCentavos: p.PriceCents,
			Stock:          p.Stock,
			RequiereReceta: p.RequiresPrescription,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/productos/. Only pharmacies may publish.
func (s *Server) CreateProduct(ctx echo.Context) error {
	actor, err := currentActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req productRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, detail("Cuerpo de la petición inválido."))
	}

	cmd, err := commands.NewCreateProductCommand(
		actor,
		req.Nombre, req.Presentacion, req.Descripcion,
		req.PrecioCentavos, req.Stock, req.RequiereReceta,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, productResponseFromDomain(created))
}

func productResponseFromDomain(p *product.Product) productResponse {
	return productResponse{
		ID:             p.ID().String(),
		FarmaciaID:     p.PharmacyID().String(),
		Nombre:         p.Name(),
		Presentacion:   p.Presentation(),
		Descripcion:    p.Description(),
		PrecioCentavos: p.PriceCents(),
		Stock:          p.Stock(),
		RequiereReceta: p.RequiresPrescription(),
	}
}

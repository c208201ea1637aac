package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmaya/internal/core/application/usecases/commands"
	"farmaya/internal/core/application/usecases/queries"
	"farmaya/internal/core/domain/model/account"
	"farmaya/internal/core/domain/model/kernel"
)

// GetAvailableOrders handles GET /api/pedidos/disponibles/, the courier
// feed.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	user := currentUser(ctx)
	if user.Role() != account.Repartidor {
		return ctx.JSON(http.StatusForbidden, detail("Solo los repartidores ven pedidos disponibles."))
	}

	query, err := queries.NewGetAvailableOrdersQuery(user.ID())
	if err != nil {
		return writeError(ctx, err)
	}

	views, err := s.getAvailableOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderListResponse(views))
}

// ClaimOrder handles POST /api/pedidos/:id/aceptar/.
func (s *Server) ClaimOrder(ctx echo.Context) error {
	actor, err := currentActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	claimed, err := s.claimOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromDomain(claimed))
}

// RejectOrder handles POST /api/pedidos/:id/rechazar/.
func (s *Server) RejectOrder(ctx echo.Context) error {
	actor, err := currentActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

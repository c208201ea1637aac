package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmaya/internal/core/application/usecases/commands"
	"farmaya/internal/core/domain/model/kernel"
	"farmaya/internal/core/domain/model/order"
)

type reviewPrescriptionRequest struct {
	EstadoReceta        string `json:"estado_receta"`
	ObservacionesReceta string `json:"observaciones_receta"`
}

// ReviewPrescription handles PATCH /api/pedidos/detalles/:id/receta/. The
// pharmacy moves a prescription between pendiente, aprobada and rechazada.
func (s *Server) ReviewPrescription(ctx echo.Context) error {
	actor, err := currentActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req reviewPrescriptionRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, detail("Cuerpo de la petición inválido."))
	}

	status, err := order.PrescriptionStatusFromString(req.EstadoReceta)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewReviewPrescriptionCommand(itemID, actor, status, req.ObservacionesReceta)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.reviewPrescriptionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromDomain(updated))
}

// ResubmitPrescription handles POST /api/pedidos/detalles/:id/receta/reenviar/.
// The customer attaches a replacement document as the receta file part.
func (s *Server) ResubmitPrescription(ctx echo.Context) error {
	actor, err := currentActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	header, err := ctx.FormFile("receta")
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, detail("Falta el archivo de receta."))
	}

	fileRef, err := s.saveUpload(ctx, header)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewResubmitPrescriptionCommand(itemID, actor, fileRef)
	if err != nil {
		_ = s.fileStore.Delete(ctx.Request().Context(), fileRef)
		return writeError(ctx, err)
	}

	updated, err := s.resubmitPrescriptionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		_ = s.fileStore.Delete(ctx.Request().Context(), fileRef)
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromDomain(updated))
}

// AcknowledgeRejection handles POST /api/pedidos/detalles/:id/receta/omitir/.
// The customer accepts the rejection as final, keeping the rest of the order.
func (s *Server) AcknowledgeRejection(ctx echo.Context) error {
	actor, err := currentActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAcknowledgeRejectionCommand(itemID, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.acknowledgeRejectionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromDomain(updated))
}

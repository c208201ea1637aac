package commands

import (
	"context"

	"farmaya/internal/core/domain/model/kernel"
	"farmaya/internal/core/domain/model/product"
)

// CreateProductCommandHandler publishes a catalog item owned by the
// requesting pharmacy.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for catalog publications.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle publishes the product and returns it.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	p, err := product.NewProduct(
		kernel.NewUUID(),
		cmd.Actor().ID(),
		cmd.Name(),
		cmd.Presentation(),
		cmd.Description(),
		cmd.PriceCents(),
		cmd.Stock(),
		cmd.RequiresPrescription(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}

package commands

import (
	"context"
	"fmt"

	"farmaya/internal/core/domain/model/account"
	"farmaya/internal/core/domain/model/kernel"
	"farmaya/internal/core/domain/model/order"
	"farmaya/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the checkout transaction: pharmacy
// lookup, per-line product validation, prescription file requirements,
// conditional stock decrements and order persistence, all in one transaction.
//
// Any validation failure part-way through rolls back every line item and
// stock decrement made for the request; failures surface synchronously and
// nothing is retried.
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for checkout operations.
func NewCreateOrderCommandHandler(uowFactory CheckoutUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the checkout command and returns the created order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	productRepo := uow.ProductRepository()
	orderRepo := uow.OrderRepository()

	pharmacy, err := userRepo.Get(ctx, cmd.PharmacyID())
	if err != nil {
		return nil, err
	}
	if pharmacy.Role() != account.Farmacia {
		return nil, errs.NewObjectNotFoundError("farmacia", cmd.PharmacyID().String())
	}

	items := make([]*order.LineItem, 0, len(cmd.Items()))
	for _, requested := range cmd.Items() {
		p, productErr := productRepo.Get(ctx, requested.ProductID)
		if productErr != nil {
			return nil, productErr
		}
		if !p.PharmacyID().IsEqual(pharmacy.ID()) {
			return nil, errs.NewValueIsInvalidErrorWithCause("producto",
				fmt.Errorf("product %q does not belong to the selected pharmacy", p.Name()))
		}
		if !p.HasStock(requested.Quantity) {
			return nil, errs.NewValueIsInvalidErrorWithCause("stock",
				fmt.Errorf("not enough stock of %q: available %d, requested %d",
					p.Name(), p.Stock(), requested.Quantity))
		}

		item, itemErr := order.NewLineItem(
			kernel.NewUUID(),
			p.ID(),
			p.Name(),
			requested.Quantity,
			p.PriceCents(),
			p.RequiresPrescription(),
			requested.PrescriptionFile,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)

		if stockErr := productRepo.DecrementStock(ctx, p.ID(), requested.Quantity); stockErr != nil {
			return nil, stockErr
		}
	}

	created, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.CustomerID(),
		cmd.PharmacyID(),
		cmd.DeliveryAddress(),
		cmd.PaymentMethod(),
		items,
	)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

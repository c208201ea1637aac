package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"farmaya/internal/core/application/usecases/commands"
	"farmaya/internal/core/domain/model/account"
	"farmaya/internal/core/domain/model/kernel"
	"farmaya/internal/core/domain/model/product"
	"farmaya/internal/pkg/errs"
)

type checkoutFixture struct {
	customerID kernel.UUID
	pharmacy   *account.User
	product    *product.Product
}

func newCheckoutFixture(t *testing.T) checkoutFixture {
	t.Helper()

	pharmacy, err := account.NewUser(
		kernel.NewUUID(), "farmacia@example.com", "Farmacia Central", "", "",
		account.Farmacia, "hashed-password",
	)
	require.NoError(t, err)

	p, err := product.NewProduct(
		kernel.NewUUID(), pharmacy.ID(),
		"Paracetamol 500mg", "Caja x 20", "",
		1500, 10, false,
	)
	require.NoError(t, err)

	return checkoutFixture{
		customerID: kernel.NewUUID(),
		pharmacy:   pharmacy,
		product:    p,
	}
}

func (f checkoutFixture) command(t *testing.T, quantity int) commands.CreateOrderCommand {
	t.Helper()

	cmd, err := commands.NewCreateOrderCommand(
		f.customerID, f.pharmacy.ID(),
		"Av. Siempre Viva 742", "",
		[]commands.CreateOrderItem{{ProductID: f.product.ID(), Quantity: quantity}},
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newCheckoutFixture(t)
	cmd := f.command(t, 2)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		userRepo.On("Get", mock.Anything, f.pharmacy.ID()).Return(f.pharmacy, nil).Once(),
		productRepo.On("Get", mock.Anything, f.product.ID()).Return(f.product, nil).Once(),
		productRepo.On("DecrementStock", mock.Anything, f.product.ID(), 2).Return(nil).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, created.CustomerID().IsEqual(f.customerID))
	assert.True(t, created.PharmacyID().IsEqual(f.pharmacy.ID()))
	assert.Equal(t, int64(3000), created.TotalCents())
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockCheckoutUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)

	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_NotAPharmacy(t *testing.T) {
	ctx := t.Context()
	f := newCheckoutFixture(t)
	cmd := f.command(t, 1)

	customer, err := account.NewUser(
		f.pharmacy.ID(), "ana@example.com", "Ana", "", "",
		account.Cliente, "hashed-password",
	)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		uow.On("ProductRepository").Return(new(MockProductRepository)).Once(),
		uow.On("OrderRepository").Return(new(MockOrderRepository)).Once(),
		userRepo.On("Get", mock.Anything, f.pharmacy.ID()).Return(customer, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	f := newCheckoutFixture(t)
	cmd := f.command(t, 11)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		userRepo.On("Get", mock.Anything, f.pharmacy.ID()).Return(f.pharmacy, nil).Once(),
		productRepo.On("Get", mock.Anything, f.product.ID()).Return(f.product, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "stock")
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	f := newCheckoutFixture(t)
	cmd := f.command(t, 1)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		userRepo.On("Get", mock.Anything, f.pharmacy.ID()).Return(f.pharmacy, nil).Once(),
		productRepo.On("Get", mock.Anything, f.product.ID()).Return(f.product, nil).Once(),
		productRepo.On("DecrementStock", mock.Anything, f.product.ID(), 1).Return(nil).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
}

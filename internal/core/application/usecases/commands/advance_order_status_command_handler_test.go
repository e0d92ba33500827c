package commands_test

import (
	"context"
	"errors"
	"testing"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/domain/model/batch"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBatchRepository struct{ mock.Mock }

func (m *MockBatchRepository) Add(ctx context.Context, b *batch.Batch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBatchRepository) Get(_ context.Context, _ kernel.UUID) (*batch.Batch, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockBatchRepository) NextSequence(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) BatchRepository() ports.BatchRepository {
	args := m.Called()
	return args.Get(0).(ports.BatchRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func pendingOrderWithItems(t *testing.T, itemCount int) *order.Order {
	t.Helper()

	stored := storedOrder(t)
	price, err := kernel.NewMoney(1000)
	require.NoError(t, err)
	for i := 0; i < itemCount; i++ {
		_, err = stored.AddItem(kernel.NewUUID(), "Phoenix logo", "XL", 1, price)
		require.NoError(t, err)
	}
	require.NoError(t, stored.Advance(order.PendingConfirmation))
	return stored
}

func TestAdvanceOrderStatusCommandHandler_Handle_ConfirmAllocatesBatch(t *testing.T) {
	ctx := t.Context()
	stored := pendingOrderWithItems(t, 2)
	cmd, err := commands.NewAdvanceOrderStatusCommand(stored.ID(), order.Confirmed)
	require.NoError(t, err)

	var created *batch.Batch
	orderRepo := new(MockOrderRepository)
	batchRepo := new(MockBatchRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("BatchRepository").Return(batchRepo).Once(),
		batchRepo.On("NextSequence", mock.Anything).Return(int64(3), nil).Once(),
		batchRepo.On("Add", mock.Anything, mock.AnythingOfType("*batch.Batch")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*batch.Batch)
			}).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	batchRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)

	require.NotNil(t, created)
	require.Equal(t, "BATCH-0003", created.Code().String())
	require.Equal(t, order.InProduction, stored.Status())
	for _, item := range stored.Items() {
		require.NotNil(t, item.Batch())
		require.True(t, item.Batch().IsEqual(created.ID()))
		require.Equal(t, order.ToProduce, item.Status())
	}
}

func TestAdvanceOrderStatusCommandHandler_Handle_ConfirmWithoutUnbatchedItems(t *testing.T) {
	ctx := t.Context()
	stored := pendingOrderWithItems(t, 1)
	_, err := stored.AssignItemsToBatch(kernel.NewUUID())
	require.NoError(t, err)
	cmd, err := commands.NewAdvanceOrderStatusCommand(stored.ID(), order.Confirmed)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	batchRepo := new(MockBatchRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("BatchRepository").Return(batchRepo).Once(),
		orderRepo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	batchRepo.AssertExpectations(t)
	uow.AssertExpectations(t)

	require.Equal(t, order.InProduction, stored.Status())
}

func TestAdvanceOrderStatusCommandHandler_Handle_PlainTransition(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder(t)
	cmd, err := commands.NewAdvanceOrderStatusCommand(stored.ID(), order.PendingConfirmation)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		orderRepo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)

	require.Equal(t, order.PendingConfirmation, stored.Status())
}

func TestAdvanceOrderStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder(t)
	cmd, err := commands.NewAdvanceOrderStatusCommand(stored.ID(), order.Done)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrIllegalTransition)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)

	require.Equal(t, order.New, stored.Status())
}

func TestNewAdvanceOrderStatusCommand_InvalidTarget(t *testing.T) {
	_, err := commands.NewAdvanceOrderStatusCommand(kernel.NewUUID(), order.Unknown)
	require.Error(t, err)
}

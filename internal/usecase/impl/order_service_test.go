package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"electric/internal/domain/entity"
	domainerrors "electric/internal/domain/errors"
	"electric/internal/domain/repository"
	mockRepo "electric/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestOrderService(t *testing.T) (*orderService, *mockRepo.MockOrderRepository) {
	orders := new(mockRepo.MockOrderRepository)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewOrderService(orders, logger).(*orderService), orders
}

func TestOrderService_ListOrders_AllWhenEmailEmpty(t *testing.T) {
	service, orders := createTestOrderService(t)
	ctx := context.Background()

	expected := []entity.Document{{"email": "a@x.com"}, {"email": "b@x.com"}}
	orders.On("List", ctx).Return(expected, nil)

	docs, err := service.ListOrders(ctx, "")

	require.NoError(t, err)
	assert.Equal(t, expected, docs)
	orders.AssertNotCalled(t, "ListByEmail")
}

func TestOrderService_ListOrders_FilteredByEmail(t *testing.T) {
	service, orders := createTestOrderService(t)
	ctx := context.Background()

	expected := []entity.Document{{"email": "a@x.com", "status": "pending"}}
	orders.On("ListByEmail", ctx, "a@x.com").Return(expected, nil)

	docs, err := service.ListOrders(ctx, "a@x.com")

	require.NoError(t, err)
	assert.Equal(t, expected, docs)
	orders.AssertNotCalled(t, "List")
}

func TestOrderService_GetOrder_MissIsNotAnError(t *testing.T) {
	service, orders := createTestOrderService(t)
	ctx := context.Background()

	orders.On("FindByID", ctx, "64a1f0c2e8b4a5d6c7f8a9b0").Return(nil, repository.ErrNotFound)

	doc, err := service.GetOrder(ctx, "64a1f0c2e8b4a5d6c7f8a9b0")

	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestOrderService_GetOrder_InvalidID(t *testing.T) {
	service, orders := createTestOrderService(t)
	ctx := context.Background()

	orders.On("FindByID", ctx, "not-an-id").Return(nil, repository.ErrInvalidID)

	_, err := service.GetOrder(ctx, "not-an-id")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidID)
}

func TestOrderService_MergeOrder_PassesFieldsThrough(t *testing.T) {
	service, orders := createTestOrderService(t)
	ctx := context.Background()

	fields := entity.Document{"status": "paid"}
	ack := &repository.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}
	orders.On("MergeByID", ctx, "64a1f0c2e8b4a5d6c7f8a9b0", fields).Return(ack, nil)

	result, err := service.MergeOrder(ctx, "64a1f0c2e8b4a5d6c7f8a9b0", fields)

	require.NoError(t, err)
	assert.Equal(t, ack, result)
	orders.AssertExpectations(t)
}

func TestOrderService_DeleteOrder_ReturnsAck(t *testing.T) {
	service, orders := createTestOrderService(t)
	ctx := context.Background()

	ack := &repository.DeleteResult{Acknowledged: true, DeletedCount: 1}
	orders.On("DeleteByID", ctx, "64a1f0c2e8b4a5d6c7f8a9b0").Return(ack, nil)

	result, err := service.DeleteOrder(ctx, "64a1f0c2e8b4a5d6c7f8a9b0")

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.DeletedCount)
}

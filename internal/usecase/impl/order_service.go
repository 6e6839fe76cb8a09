package impl

import (
	"context"
	"log/slog"

	"electric/internal/domain/entity"
	"electric/internal/domain/repository"
	"electric/internal/errors"
	"electric/internal/usecase"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orders repository.OrderRepository
	logger *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(orders repository.OrderRepository, logger *slog.Logger) usecase.OrderUsecase {
	return &orderService{
		orders: orders,
		logger: logger,
	}
}

// ListOrders returns the orders owned by email, or every order when email
// is empty.
func (srv *orderService) ListOrders(ctx context.Context, email string) ([]entity.Document, error) {
	var docs []entity.Document
	var err error

	if email == "" {
		docs, err = srv.orders.List(ctx)
	} else {
		docs, err = srv.orders.ListByEmail(ctx, email)
	}
	if err != nil {
		return nil, classify(err, "failed to list orders")
	}

	return docs, nil
}

// GetOrder returns the order with the given identity, or nil when none
// matches. A deleted order reads back as nil, not as an error.
func (srv *orderService) GetOrder(ctx context.Context, id string) (entity.Document, error) {
	doc, err := srv.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}

		return nil, classify(err, "failed to find order")
	}

	return doc, nil
}

// CreateOrder stores the document verbatim.
func (srv *orderService) CreateOrder(ctx context.Context, doc entity.Document) (*repository.InsertResult, error) {
	result, err := srv.orders.Insert(ctx, doc)
	if err != nil {
		return nil, classify(err, "failed to insert order")
	}

	srv.logger.Info("Order created",
		slog.String("id", result.InsertedID),
		slog.String("email", doc.Email()),
	)

	return result, nil
}

// MergeOrder shallow-merges fields into the order with the given identity.
func (srv *orderService) MergeOrder(ctx context.Context, id string, fields entity.Document) (*repository.UpdateResult, error) {
	result, err := srv.orders.MergeByID(ctx, id, fields)
	if err != nil {
		return nil, classify(err, "failed to upsert order")
	}

	return result, nil
}

// DeleteOrder removes the order with the given identity.
func (srv *orderService) DeleteOrder(ctx context.Context, id string) (*repository.DeleteResult, error) {
	result, err := srv.orders.DeleteByID(ctx, id)
	if err != nil {
		return nil, classify(err, "failed to delete order")
	}

	srv.logger.Info("Order deleted", slog.String("id", id), slog.Int64("count", result.DeletedCount))

	return result, nil
}

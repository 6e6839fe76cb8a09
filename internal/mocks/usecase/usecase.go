// Package usecase contains testify doubles for the application interfaces,
// used by the handler tests.
package usecase

import (
	"context"

	"electric/internal/domain/entity"
	"electric/internal/domain/repository"
	"electric/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockCatalogUsecase mocks usecase.CatalogUsecase.
type MockCatalogUsecase struct {
	mock.Mock
}

func (m *MockCatalogUsecase) ListProducts(ctx context.Context) ([]entity.Document, error) {
	args := m.Called(ctx)

	return docsArg(args.Get(0)), args.Error(1)
}

func (m *MockCatalogUsecase) GetProduct(ctx context.Context, id string) (entity.Document, error) {
	args := m.Called(ctx, id)

	return docArg(args.Get(0)), args.Error(1)
}

func (m *MockCatalogUsecase) CreateProduct(ctx context.Context, doc entity.Document) (*repository.InsertResult, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*repository.InsertResult), args.Error(1)
}

func (m *MockCatalogUsecase) DeleteProduct(ctx context.Context, id string) (*repository.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*repository.DeleteResult), args.Error(1)
}

// MockOrderUsecase mocks usecase.OrderUsecase.
type MockOrderUsecase struct {
	mock.Mock
}

func (m *MockOrderUsecase) ListOrders(ctx context.Context, email string) ([]entity.Document, error) {
	args := m.Called(ctx, email)

	return docsArg(args.Get(0)), args.Error(1)
}

func (m *MockOrderUsecase) GetOrder(ctx context.Context, id string) (entity.Document, error) {
	args := m.Called(ctx, id)

	return docArg(args.Get(0)), args.Error(1)
}

func (m *MockOrderUsecase) CreateOrder(ctx context.Context, doc entity.Document) (*repository.InsertResult, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*repository.InsertResult), args.Error(1)
}

func (m *MockOrderUsecase) MergeOrder(ctx context.Context, id string, fields entity.Document) (*repository.UpdateResult, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*repository.UpdateResult), args.Error(1)
}

func (m *MockOrderUsecase) DeleteOrder(ctx context.Context, id string) (*repository.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*repository.DeleteResult), args.Error(1)
}

// MockAccountUsecase mocks usecase.AccountUsecase.
type MockAccountUsecase struct {
	mock.Mock
}

func (m *MockAccountUsecase) IsAdmin(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)

	return args.Bool(0), args.Error(1)
}

func (m *MockAccountUsecase) ListAccounts(ctx context.Context) ([]entity.Document, error) {
	args := m.Called(ctx)

	return docsArg(args.Get(0)), args.Error(1)
}

func (m *MockAccountUsecase) UpsertAccount(ctx context.Context, email string, claims entity.Document) (*usecase.UpsertAccountOutput, error) {
	args := m.Called(ctx, email, claims)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.UpsertAccountOutput), args.Error(1)
}

func (m *MockAccountUsecase) SetRole(ctx context.Context, email string, fields entity.Document) (*repository.UpdateResult, error) {
	args := m.Called(ctx, email, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*repository.UpdateResult), args.Error(1)
}

// MockPaymentUsecase mocks usecase.PaymentUsecase.
type MockPaymentUsecase struct {
	mock.Mock
}

func (m *MockPaymentUsecase) CreateIntent(ctx context.Context, price float64) (string, error) {
	args := m.Called(ctx, price)

	return args.String(0), args.Error(1)
}

func docArg(v any) entity.Document {
	if v == nil {
		return nil
	}

	return v.(entity.Document)
}

func docsArg(v any) []entity.Document {
	if v == nil {
		return nil
	}

	return v.([]entity.Document)
}

// Package repository contains testify doubles for the persistence
// interfaces.
package repository

import (
	"context"

	"electric/internal/domain/entity"
	"electric/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockProductRepository mocks repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context) ([]entity.Document, error) {
	args := m.Called(ctx)

	return docsArg(args.Get(0)), args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id string) (entity.Document, error) {
	args := m.Called(ctx, id)

	return docArg(args.Get(0)), args.Error(1)
}

func (m *MockProductRepository) Insert(ctx context.Context, doc entity.Document) (*repository.InsertResult, error) {
	args := m.Called(ctx, doc)

	return insertArg(args.Get(0)), args.Error(1)
}

func (m *MockProductRepository) DeleteByID(ctx context.Context, id string) (*repository.DeleteResult, error) {
	args := m.Called(ctx, id)

	return deleteArg(args.Get(0)), args.Error(1)
}

// MockOrderRepository mocks repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) List(ctx context.Context) ([]entity.Document, error) {
	args := m.Called(ctx)

	return docsArg(args.Get(0)), args.Error(1)
}

func (m *MockOrderRepository) ListByEmail(ctx context.Context, email string) ([]entity.Document, error) {
	args := m.Called(ctx, email)

	return docsArg(args.Get(0)), args.Error(1)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id string) (entity.Document, error) {
	args := m.Called(ctx, id)

	return docArg(args.Get(0)), args.Error(1)
}

func (m *MockOrderRepository) Insert(ctx context.Context, doc entity.Document) (*repository.InsertResult, error) {
	args := m.Called(ctx, doc)

	return insertArg(args.Get(0)), args.Error(1)
}

func (m *MockOrderRepository) MergeByID(ctx context.Context, id string, fields entity.Document) (*repository.UpdateResult, error) {
	args := m.Called(ctx, id, fields)

	return updateArg(args.Get(0)), args.Error(1)
}

func (m *MockOrderRepository) DeleteByID(ctx context.Context, id string) (*repository.DeleteResult, error) {
	args := m.Called(ctx, id)

	return deleteArg(args.Get(0)), args.Error(1)
}

// MockReviewRepository mocks repository.ReviewRepository.
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) List(ctx context.Context) ([]entity.Document, error) {
	args := m.Called(ctx)

	return docsArg(args.Get(0)), args.Error(1)
}

func (m *MockReviewRepository) Insert(ctx context.Context, doc entity.Document) (*repository.InsertResult, error) {
	args := m.Called(ctx, doc)

	return insertArg(args.Get(0)), args.Error(1)
}

// MockProfileRepository mocks repository.ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindByEmail(ctx context.Context, email string) (entity.Document, error) {
	args := m.Called(ctx, email)

	return docArg(args.Get(0)), args.Error(1)
}

func (m *MockProfileRepository) UpsertByEmail(ctx context.Context, email string, fields entity.Document) (*repository.UpdateResult, error) {
	args := m.Called(ctx, email, fields)

	return updateArg(args.Get(0)), args.Error(1)
}

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (entity.Document, error) {
	args := m.Called(ctx, email)

	return docArg(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]entity.Document, error) {
	args := m.Called(ctx)

	return docsArg(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) UpsertByEmail(ctx context.Context, email string, fields entity.Document) (*repository.UpdateResult, error) {
	args := m.Called(ctx, email, fields)

	return updateArg(args.Get(0)), args.Error(1)
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

func insertArg(v any) *repository.InsertResult {
	if v == nil {
		return nil
	}

	return v.(*repository.InsertResult)
}

func updateArg(v any) *repository.UpdateResult {
	if v == nil {
		return nil
	}

	return v.(*repository.UpdateResult)
}

func deleteArg(v any) *repository.DeleteResult {
	if v == nil {
		return nil
	}

	return v.(*repository.DeleteResult)
}

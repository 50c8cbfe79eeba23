package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hrdocs/internal/model"
	"hrdocs/internal/repository"
)

type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) Create(ctx context.Context, row *model.DocumentRow) (*model.DocumentRow, error) {
	args := m.Called(ctx, row)
	if f, ok := args.Get(0).(func(context.Context, *model.DocumentRow) *model.DocumentRow); ok {
		return f(ctx, row), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DocumentRow), args.Error(1)
}

func (m *MockDocumentRepository) FindByID(ctx context.Context, id string) (*model.DocumentRow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DocumentRow), args.Error(1)
}

func (m *MockDocumentRepository) ListPage(ctx context.Context, f repository.RowFilter, limit, offset int) ([]model.DocumentRow, error) {
	args := m.Called(ctx, f, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DocumentRow), args.Error(1)
}

func (m *MockDocumentRepository) Count(ctx context.Context, f repository.RowFilter) (int, error) {
	args := m.Called(ctx, f)
	return args.Int(0), args.Error(1)
}

func (m *MockDocumentRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

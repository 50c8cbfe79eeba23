package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hrdocs/internal/model"
	"hrdocs/internal/service"
)

type MockFolderService struct {
	mock.Mock
}

func (m *MockFolderService) ListCompanyFolders(ctx context.Context) (*service.FolderListResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FolderListResult), args.Error(1)
}

func (m *MockFolderService) ListEmployeeFolders(ctx context.Context, companyName string) (*service.FolderListResult, error) {
	args := m.Called(ctx, companyName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FolderListResult), args.Error(1)
}

func (m *MockFolderService) ListCompanyDocuments(ctx context.Context, companyName string) ([]model.DocumentRow, error) {
	args := m.Called(ctx, companyName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DocumentRow), args.Error(1)
}

func (m *MockFolderService) ListEmployeeDocuments(ctx context.Context, employeeID string) ([]model.DocumentRow, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DocumentRow), args.Error(1)
}

func (m *MockFolderService) GetPresignedURL(ctx context.Context, documentID string) (string, error) {
	args := m.Called(ctx, documentID)
	return args.String(0), args.Error(1)
}

func (m *MockFolderService) Invalidate(scope, key string) {
	m.Called(scope, key)
}

func (m *MockFolderService) ForceRefresh(ctx context.Context) (*service.FolderListResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FolderListResult), args.Error(1)
}

package mocks

import (
	"context"

	"studioapi/internal/model"
	"studioapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockWorkService struct {
	mock.Mock
}

func (m *MockWorkService) Create(ctx context.Context, in service.CreateWorkInput) (*model.Work, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Work), args.Error(1)
}

func (m *MockWorkService) Get(ctx context.Context, id int64) (*model.Work, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Work), args.Error(1)
}

func (m *MockWorkService) List(ctx context.Context) ([]model.WorkSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WorkSummary), args.Error(1)
}

func (m *MockWorkService) Related(ctx context.Context, id int64) ([]model.WorkSummary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WorkSummary), args.Error(1)
}

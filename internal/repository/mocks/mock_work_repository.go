package mocks

import (
	"context"

	"studioapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockWorkRepository struct {
	mock.Mock
}

func (m *MockWorkRepository) Create(ctx context.Context, w *model.Work) (*model.Work, error) {
	args := m.Called(ctx, w)
	if f, ok := args.Get(0).(func(context.Context, *model.Work) *model.Work); ok {
		return f(ctx, w), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Work), args.Error(1)
}

func (m *MockWorkRepository) FindByID(ctx context.Context, id int64) (*model.Work, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Work), args.Error(1)
}

func (m *MockWorkRepository) List(ctx context.Context) ([]model.WorkSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WorkSummary), args.Error(1)
}

func (m *MockWorkRepository) ListRelated(ctx context.Context, category string, excludeID int64, limit int) ([]model.WorkSummary, error) {
	args := m.Called(ctx, category, excludeID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WorkSummary), args.Error(1)
}

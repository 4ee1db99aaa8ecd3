package mocks

import (
	"context"

	"medimate/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockHistoryService struct {
	mock.Mock
}

var _ service.HistoryService = (*MockHistoryService)(nil)

func (m *MockHistoryService) History(ctx context.Context, day string) (*service.HistoryResult, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.HistoryResult), args.Error(1)
}

func (m *MockHistoryService) Export(ctx context.Context, day string) (*service.ExportResult, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportResult), args.Error(1)
}

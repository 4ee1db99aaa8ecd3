package mocks

import (
	"context"

	"medimate/internal/model"
	"medimate/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockDoseLogRepository struct {
	mock.Mock
}

var _ repository.DoseLogRepository = (*MockDoseLogRepository)(nil)

func (m *MockDoseLogRepository) Create(ctx context.Context, log *model.DoseLog) (*model.DoseLog, error) {
	args := m.Called(ctx, log)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DoseLog), args.Error(1)
}

func (m *MockDoseLogRepository) History(ctx context.Context, hq repository.HistoryQuery) ([]model.HistoryEntry, error) {
	args := m.Called(ctx, hq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.HistoryEntry), args.Error(1)
}

package mocks

import (
	"context"

	"medimate/internal/model"
	"medimate/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockMedicationService struct {
	mock.Mock
}

var _ service.MedicationService = (*MockMedicationService)(nil)

func (m *MockMedicationService) List(ctx context.Context) (*service.MedicationListResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MedicationListResult), args.Error(1)
}

func (m *MockMedicationService) Get(ctx context.Context, id string) (*model.Medication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Medication), args.Error(1)
}

func (m *MockMedicationService) Create(ctx context.Context, in model.MedicationInput) (*model.Medication, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Medication), args.Error(1)
}

func (m *MockMedicationService) Update(ctx context.Context, id string, in model.MedicationInput) (*model.Medication, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Medication), args.Error(1)
}

func (m *MockMedicationService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMedicationService) MarkTaken(ctx context.Context, id string) (*model.DoseLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DoseLog), args.Error(1)
}

package mocks

import (
	"context"

	"medimate/internal/model"
	"medimate/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockMedicationRepository struct {
	mock.Mock
}

var _ repository.MedicationRepository = (*MockMedicationRepository)(nil)

func (m *MockMedicationRepository) Create(ctx context.Context, med *model.Medication) (*model.Medication, error) {
	args := m.Called(ctx, med)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Medication), args.Error(1)
}

func (m *MockMedicationRepository) FindByID(ctx context.Context, id string) (*model.Medication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Medication), args.Error(1)
}

func (m *MockMedicationRepository) List(ctx context.Context) ([]model.Medication, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Medication), args.Error(1)
}

func (m *MockMedicationRepository) Update(ctx context.Context, med *model.Medication) (*model.Medication, error) {
	args := m.Called(ctx, med)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Medication), args.Error(1)
}

func (m *MockMedicationRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

package repository

import (
	"context"

	"medimate/internal/model"
)

// MedicationRepository defines data access for medications using SQL queries only.
// Persistence only; validation lives in the service layer.
type MedicationRepository interface {
	// Create inserts a new medication. The caller assigns ID and CreatedAt.
	Create(ctx context.Context, med *model.Medication) (*model.Medication, error)

	// FindByID returns a medication by its ID, or sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.Medication, error)

	// List returns every medication ordered by schedule then name, each with its last taken time.
	List(ctx context.Context) ([]model.Medication, error)

	// Update overwrites name, dose, schedule and notes. Returns sql.ErrNoRows if the row is gone.
	Update(ctx context.Context, med *model.Medication) (*model.Medication, error)

	// Delete removes a medication and its dose logs. Missing rows are not an error.
	Delete(ctx context.Context, id string) error
}

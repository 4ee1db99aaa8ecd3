package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"medimate/internal/model"
	"medimate/internal/repository"
)

var (
	ErrIDRequired     = errors.New("id is required")
	ErrNotFound       = errors.New("medication not found")
	ErrValidation     = errors.New("invalid medication")
	ErrExportDisabled = errors.New("export storage is not configured")
)

// MedicationListResult is the service-level DTO for the medication list.
type MedicationListResult struct {
	Items []model.Medication `json:"data"`
	Total int                `json:"total"`
}

// MedicationService defines the use cases for managing medications and recording doses.
type MedicationService interface {
	// List returns every medication ordered by schedule label, then name.
	List(ctx context.Context) (*MedicationListResult, error)

	// Get returns a single medication by its ID.
	Get(ctx context.Context, id string) (*model.Medication, error)

	// Create validates the input and stores a new medication.
	Create(ctx context.Context, in model.MedicationInput) (*model.Medication, error)

	// Update replaces the editable fields of an existing medication.
	Update(ctx context.Context, id string, in model.MedicationInput) (*model.Medication, error)

	// Delete removes a medication together with its dose history. Deleting an unknown ID succeeds.
	Delete(ctx context.Context, id string) error

	// MarkTaken appends a dose log stamped with the current time.
	MarkTaken(ctx context.Context, id string) (*model.DoseLog, error)
}

type medicationService struct {
	meds  repository.MedicationRepository
	doses repository.DoseLogRepository
	loc   *time.Location
	now   func() time.Time
}

// NewMedicationService constructs a new MedicationService. Timestamps are recorded in loc.
func NewMedicationService(meds repository.MedicationRepository, doses repository.DoseLogRepository, loc *time.Location) MedicationService {
	if loc == nil {
		loc = time.UTC
	}
	return &medicationService{meds: meds, doses: doses, loc: loc, now: time.Now}
}

func (s *medicationService) timestamp() time.Time {
	return s.now().In(s.loc).Truncate(time.Second)
}

// localize renders stored timestamps in the configured zone; drivers scan into time.Local or UTC.
func (s *medicationService) localize(m *model.Medication) *model.Medication {
	m.CreatedAt = m.CreatedAt.In(s.loc)
	if m.LastTaken != nil {
		t := m.LastTaken.In(s.loc)
		m.LastTaken = &t
	}
	return m
}

func (s *medicationService) List(ctx context.Context) (*MedicationListResult, error) {
	items, err := s.meds.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		s.localize(&items[i])
	}
	return &MedicationListResult{Items: items, Total: len(items)}, nil
}

func (s *medicationService) Get(ctx context.Context, id string) (*model.Medication, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	med, err := s.meds.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.localize(med), nil
}

func (s *medicationService) Create(ctx context.Context, in model.MedicationInput) (*model.Medication, error) {
	in = normalizeInput(in)
	if err := validateInput(in); err != nil {
		return nil, err
	}

	med := &model.Medication{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Dose:      in.Dose,
		Schedule:  in.Schedule,
		Notes:     in.Notes,
		CreatedAt: s.timestamp(),
	}
	stored, err := s.meds.Create(ctx, med)
	if err != nil {
		return nil, fmt.Errorf("create medication: %w", err)
	}
	return s.localize(stored), nil
}

func (s *medicationService) Update(ctx context.Context, id string, in model.MedicationInput) (*model.Medication, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	in = normalizeInput(in)
	if err := validateInput(in); err != nil {
		return nil, err
	}

	existing.Name = in.Name
	existing.Dose = in.Dose
	existing.Schedule = in.Schedule
	existing.Notes = in.Notes

	updated, err := s.meds.Update(ctx, existing)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update medication: %w", err)
	}
	return s.localize(updated), nil
}

func (s *medicationService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.meds.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete medication: %w", err)
	}
	return nil
}

func (s *medicationService) MarkTaken(ctx context.Context, id string) (*model.DoseLog, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	log, err := s.doses.Create(ctx, &model.DoseLog{
		ID:           uuid.New().String(),
		MedicationID: id,
		TakenAt:      s.timestamp(),
	})
	if err != nil {
		// The medication can be deleted between the lookup and the insert.
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("record dose: %w", err)
	}
	log.TakenAt = log.TakenAt.In(s.loc)
	return log, nil
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"medimate/internal/model"
	"medimate/internal/repository"
)

// MedicationPostgres is a PostgreSQL implementation of repository.MedicationRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type MedicationPostgres struct {
	db *sql.DB
}

// NewMedicationPostgres creates a new MedicationPostgres repository.
func NewMedicationPostgres(db *sql.DB) *MedicationPostgres {
	return &MedicationPostgres{db: db}
}

var _ repository.MedicationRepository = (*MedicationPostgres)(nil)

// Create inserts a new medication row and returns the stored record.
func (r *MedicationPostgres) Create(ctx context.Context, med *model.Medication) (*model.Medication, error) {
	const q = `
		INSERT INTO medications (id, name, dose, time_of_day, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, dose, time_of_day, notes, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		med.ID,
		med.Name,
		med.Dose,
		med.Schedule,
		med.Notes,
		med.CreatedAt,
	)
	var out model.Medication
	if err := row.Scan(
		&out.ID,
		&out.Name,
		&out.Dose,
		&out.Schedule,
		&out.Notes,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single medication, including its last taken time.
func (r *MedicationPostgres) FindByID(ctx context.Context, id string) (*model.Medication, error) {
	const q = `
		SELECT m.id, m.name, m.dose, m.time_of_day, m.notes, m.created_at,
			(SELECT MAX(t.taken_at) FROM dose_logs t WHERE t.medication_id = m.id) AS last_taken
		FROM medications m
		WHERE m.id = $1
	`
	m, err := scanMedication(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, err
	}
	return m, nil
}

// List returns all medications ordered by schedule label, then name.
func (r *MedicationPostgres) List(ctx context.Context) ([]model.Medication, error) {
	const q = `
		SELECT m.id, m.name, m.dose, m.time_of_day, m.notes, m.created_at,
			(SELECT MAX(t.taken_at) FROM dose_logs t WHERE t.medication_id = m.id) AS last_taken
		FROM medications m
		ORDER BY m.time_of_day ASC, m.name ASC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Medication, 0)
	for rows.Next() {
		m, err := scanMedication(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update overwrites the editable fields of a medication.
func (r *MedicationPostgres) Update(ctx context.Context, med *model.Medication) (*model.Medication, error) {
	const q = `
		UPDATE medications
		SET name = $1, dose = $2, time_of_day = $3, notes = $4
		WHERE id = $5
		RETURNING id, name, dose, time_of_day, notes, created_at,
			(SELECT MAX(t.taken_at) FROM dose_logs t WHERE t.medication_id = medications.id)
	`
	m, err := scanMedication(r.db.QueryRowContext(ctx, q,
		med.Name,
		med.Dose,
		med.Schedule,
		med.Notes,
		med.ID,
	))
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Delete removes the dose logs and then the medication in a single transaction.
// It does not return an error if the row does not exist.
func (r *MedicationPostgres) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM dose_logs WHERE medication_id = $1`, id); err != nil {
		return fmt.Errorf("delete dose logs: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM medications WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete medication: %w", err)
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMedication(row rowScanner) (*model.Medication, error) {
	var (
		m         model.Medication
		lastTaken sql.NullTime
	)
	if err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Dose,
		&m.Schedule,
		&m.Notes,
		&m.CreatedAt,
		&lastTaken,
	); err != nil {
		return nil, err
	}
	if lastTaken.Valid {
		t := lastTaken.Time
		m.LastTaken = &t
	}
	return &m, nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"medimate/internal/model"
	"medimate/internal/repository"
)

// foreignKeyViolation is SQLSTATE 23503.
const foreignKeyViolation = "23503"

// DoseLogPostgres is a PostgreSQL implementation of repository.DoseLogRepository.
type DoseLogPostgres struct {
	db *sql.DB
}

// NewDoseLogPostgres creates a new DoseLogPostgres repository.
func NewDoseLogPostgres(db *sql.DB) *DoseLogPostgres {
	return &DoseLogPostgres{db: db}
}

var _ repository.DoseLogRepository = (*DoseLogPostgres)(nil)

// Create inserts a dose log row.
func (r *DoseLogPostgres) Create(ctx context.Context, log *model.DoseLog) (*model.DoseLog, error) {
	const q = `
		INSERT INTO dose_logs (id, medication_id, taken_at)
		VALUES ($1, $2, $3)
		RETURNING id, medication_id, taken_at
	`
	var out model.DoseLog
	if err := r.db.QueryRowContext(ctx, q, log.ID, log.MedicationID, log.TakenAt).
		Scan(&out.ID, &out.MedicationID, &out.TakenAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return nil, fmt.Errorf("medication %s: %w", log.MedicationID, sql.ErrNoRows)
		}
		return nil, err
	}
	return &out, nil
}

// History returns joined dose log rows, newest first.
func (r *DoseLogPostgres) History(ctx context.Context, hq repository.HistoryQuery) ([]model.HistoryEntry, error) {
	const (
		qAll = `
		SELECT t.taken_at, m.name, m.dose, m.time_of_day
		FROM dose_logs t
		JOIN medications m ON m.id = t.medication_id
		ORDER BY t.taken_at DESC
		LIMIT $1
	`
		qWindow = `
		SELECT t.taken_at, m.name, m.dose, m.time_of_day
		FROM dose_logs t
		JOIN medications m ON m.id = t.medication_id
		WHERE t.taken_at >= $1 AND t.taken_at < $2
		ORDER BY t.taken_at DESC
		LIMIT $3
	`
	)

	var (
		rows *sql.Rows
		err  error
	)
	if hq.From != nil && hq.To != nil {
		rows, err = r.db.QueryContext(ctx, qWindow, *hq.From, *hq.To, hq.Limit)
	} else {
		rows, err = r.db.QueryContext(ctx, qAll, hq.Limit)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.HistoryEntry, 0)
	for rows.Next() {
		var e model.HistoryEntry
		if err := rows.Scan(&e.TakenAt, &e.Name, &e.Dose, &e.Schedule); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

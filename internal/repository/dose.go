package repository

import (
	"context"
	"time"

	"medimate/internal/model"
)

// DoseLogRepository stores "taken" events and reads them back as history.
type DoseLogRepository interface {
	// Create inserts a dose log. Returns sql.ErrNoRows if the medication no longer exists.
	Create(ctx context.Context, log *model.DoseLog) (*model.DoseLog, error)

	// History returns dose logs joined with their medication, newest first.
	History(ctx context.Context, hq HistoryQuery) ([]model.HistoryEntry, error)
}

// HistoryQuery restricts history to the half-open window [From, To) when both are set.
type HistoryQuery struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

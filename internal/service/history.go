package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"medimate/internal/model"
	"medimate/internal/repository"
	"medimate/internal/storage"
)

const (
	// HistoryLimit caps every history listing and export.
	HistoryLimit = 250
	// DayToday selects dose logs recorded since local midnight.
	DayToday = "today"

	exportURLExpiry = 15 * time.Minute
)

// HistoryResult is the service-level DTO for dose history.
type HistoryResult struct {
	Day   string               `json:"day"`
	Items []model.HistoryEntry `json:"data"`
}

// ExportResult describes an uploaded history export.
type ExportResult struct {
	Key  string `json:"key"`
	URL  string `json:"url"`
	Rows int    `json:"rows"`
}

// HistoryService reads the dose log and exports it.
type HistoryService interface {
	// History lists dose logs, newest first. day == "today" (case-insensitive) limits
	// the result to the current local day; any other value returns all history.
	History(ctx context.Context, day string) (*HistoryResult, error)

	// Export renders the same rows as History as CSV and uploads them to object storage.
	Export(ctx context.Context, day string) (*ExportResult, error)
}

type historyService struct {
	doses repository.DoseLogRepository
	store storage.Storage
	loc   *time.Location
	now   func() time.Time
	newID func() string
}

// NewHistoryService constructs a new HistoryService. store may be nil, in which case
// Export returns ErrExportDisabled.
func NewHistoryService(doses repository.DoseLogRepository, store storage.Storage, loc *time.Location) HistoryService {
	if loc == nil {
		loc = time.UTC
	}
	return &historyService{doses: doses, store: store, loc: loc, now: time.Now, newID: uuid.NewString}
}

func normalizeDay(day string) string {
	return strings.ToLower(strings.TrimSpace(day))
}

// dayBounds returns [midnight, next midnight) for the local day containing t.
func dayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	y, m, d := t.In(loc).Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

func (s *historyService) History(ctx context.Context, day string) (*HistoryResult, error) {
	day = normalizeDay(day)

	hq := repository.HistoryQuery{Limit: HistoryLimit}
	if day == DayToday {
		from, to := dayBounds(s.now(), s.loc)
		hq.From, hq.To = &from, &to
	}

	items, err := s.doses.History(ctx, hq)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].TakenAt = items[i].TakenAt.In(s.loc)
	}
	return &HistoryResult{Day: day, Items: items}, nil
}

func (s *historyService) Export(ctx context.Context, day string) (*ExportResult, error) {
	if s.store == nil {
		return nil, ErrExportDisabled
	}

	res, err := s.History(ctx, day)
	if err != nil {
		return nil, err
	}

	body, err := renderCSV(res.Items)
	if err != nil {
		return nil, fmt.Errorf("render csv: %w", err)
	}

	label := "all"
	if res.Day == DayToday {
		label = DayToday
	}
	// Exports started within the same second must not overwrite each other.
	key := fmt.Sprintf("exports/history-%s-%s-%s.csv", label, s.now().In(s.loc).Format("20060102T150405"), s.newID())

	info, err := s.store.Put(ctx, key, bytes.NewReader(body), storage.PutObjectOptions{
		Size:        int64(len(body)),
		ContentType: "text/csv",
		Metadata: map[string]string{
			"rows": strconv.Itoa(len(res.Items)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload export: %w", err)
	}

	url, err := s.store.PresignGet(ctx, info.Key, exportURLExpiry)
	if err != nil {
		if delErr := s.store.Delete(ctx, info.Key); delErr != nil {
			return nil, fmt.Errorf("presign failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("presign failed: %w", err)
	}

	return &ExportResult{Key: info.Key, URL: url, Rows: len(res.Items)}, nil
}

func renderCSV(items []model.HistoryEntry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"taken_at", "name", "dose", "schedule"}); err != nil {
		return nil, err
	}
	for _, e := range items {
		if err := w.Write([]string{e.TakenAt.Format(time.RFC3339), e.Name, e.Dose, e.Schedule}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"medimate/internal/model"
	"medimate/internal/repository"
	repoMocks "medimate/internal/repository/mocks"
	"medimate/internal/storage"
	storeMocks "medimate/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestHistoryService(doses *repoMocks.MockDoseLogRepository, store storage.Storage, loc *time.Location, now time.Time) *historyService {
	svc := NewHistoryService(doses, store, loc).(*historyService)
	svc.now = func() time.Time { return now }
	svc.newID = func() string { return "0001" }
	return svc
}

func TestDayBounds(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	// 23:30 UTC on the 28th is already the 29th in Berlin.
	from, to := dayBounds(time.Date(2026, 3, 28, 23, 30, 0, 0, time.UTC), berlin)
	assert.Equal(t, time.Date(2026, 3, 29, 0, 0, 0, 0, berlin), from)
	assert.Equal(t, time.Date(2026, 3, 30, 0, 0, 0, 0, berlin), to)

	// DST starts on 2026-03-29 in Berlin, so that day is 23 hours long.
	assert.Equal(t, 23*time.Hour, to.Sub(from))
}

func TestHistoryService_History(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)
	entries := []model.HistoryEntry{{TakenAt: now, Name: "Aspirin", Dose: "81 mg", Schedule: "08:00"}}

	tests := []struct {
		name     string
		day      string
		wantDay  string
		matchHQ  func(hq repository.HistoryQuery) bool
		repoErr  error
		wantErr  bool
		wantRows int
	}{
		{
			name:    "all history",
			day:     "",
			wantDay: "",
			matchHQ: func(hq repository.HistoryQuery) bool {
				return hq.From == nil && hq.To == nil && hq.Limit == HistoryLimit
			},
			wantRows: 1,
		},
		{
			name:    "today is case-insensitive and trimmed",
			day:     "  TODAY ",
			wantDay: "today",
			matchHQ: func(hq repository.HistoryQuery) bool {
				return hq.From != nil && hq.To != nil &&
					hq.From.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) &&
					hq.To.Equal(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)) &&
					hq.Limit == HistoryLimit
			},
			wantRows: 1,
		},
		{
			name:    "unknown day falls back to all",
			day:     "yesterday",
			wantDay: "yesterday",
			matchHQ: func(hq repository.HistoryQuery) bool {
				return hq.From == nil && hq.To == nil
			},
			wantRows: 1,
		},
		{
			name:    "repository error",
			day:     "today",
			matchHQ: func(hq repository.HistoryQuery) bool { return true },
			repoErr: errors.New("db fail"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mDoses := new(repoMocks.MockDoseLogRepository)
			svc := newTestHistoryService(mDoses, nil, time.UTC, now)

			if tt.repoErr != nil {
				mDoses.On("History", ctx, mock.MatchedBy(tt.matchHQ)).Return(nil, tt.repoErr)
			} else {
				mDoses.On("History", ctx, mock.MatchedBy(tt.matchHQ)).Return(entries, nil)
			}

			res, err := svc.History(ctx, tt.day)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, res)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantDay, res.Day)
				assert.Len(t, res.Items, tt.wantRows)
			}
			mDoses.AssertExpectations(t)
		})
	}
}

func TestHistoryService_Export(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 15, 4, 5, 0, time.UTC)
	entries := []model.HistoryEntry{
		{TakenAt: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC), Name: "Aspirin", Dose: "81 mg", Schedule: "08:00"},
		{TakenAt: time.Date(2026, 3, 1, 7, 0, 0, 0, time.UTC), Name: "Fish oil, omega-3", Dose: "1 cap", Schedule: "morning"},
	}

	t.Run("disabled without storage", func(t *testing.T) {
		svc := newTestHistoryService(new(repoMocks.MockDoseLogRepository), nil, time.UTC, now)

		res, err := svc.Export(ctx, "today")

		assert.ErrorIs(t, err, ErrExportDisabled)
		assert.Nil(t, res)
	})

	t.Run("happy path", func(t *testing.T) {
		mDoses := new(repoMocks.MockDoseLogRepository)
		mStore := new(storeMocks.MockStorage)
		svc := newTestHistoryService(mDoses, mStore, time.UTC, now)

		mDoses.On("History", ctx, mock.Anything).Return(entries, nil)

		var uploaded string
		mStore.On("Put", ctx, "exports/history-today-20260301T150405-0001.csv", mock.Anything, mock.MatchedBy(func(opt storage.PutObjectOptions) bool {
			return opt.ContentType == "text/csv" && opt.Metadata["rows"] == "2"
		})).Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
			b, _ := io.ReadAll(r)
			uploaded = string(b)
			return storage.ObjectInfo{Key: key, Size: int64(len(b))}
		}, nil)
		mStore.On("PresignGet", ctx, "exports/history-today-20260301T150405-0001.csv", exportURLExpiry).
			Return("https://minio.local/exports/history.csv?sig=1", nil)

		res, err := svc.Export(ctx, "Today")

		require.NoError(t, err)
		assert.Equal(t, 2, res.Rows)
		assert.Equal(t, "https://minio.local/exports/history.csv?sig=1", res.URL)
		assert.Equal(t, "exports/history-today-20260301T150405-0001.csv", res.Key)

		lines := strings.Split(strings.TrimSpace(uploaded), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "taken_at,name,dose,schedule", lines[0])
		assert.Equal(t, "2026-03-01T08:00:00Z,Aspirin,81 mg,08:00", lines[1])
		assert.Equal(t, `2026-03-01T07:00:00Z,"Fish oil, omega-3",1 cap,morning`, lines[2])
		mStore.AssertExpectations(t)
	})

	t.Run("all history key", func(t *testing.T) {
		mDoses := new(repoMocks.MockDoseLogRepository)
		mStore := new(storeMocks.MockStorage)
		svc := newTestHistoryService(mDoses, mStore, time.UTC, now)

		mDoses.On("History", ctx, mock.Anything).Return([]model.HistoryEntry{}, nil)
		mStore.On("Put", ctx, "exports/history-all-20260301T150405-0001.csv", mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{Key: "exports/history-all-20260301T150405-0001.csv"}, nil)
		mStore.On("PresignGet", ctx, mock.Anything, mock.Anything).Return("https://u", nil)

		res, err := svc.Export(ctx, "")

		require.NoError(t, err)
		assert.Equal(t, 0, res.Rows)
	})

	t.Run("upload error", func(t *testing.T) {
		mDoses := new(repoMocks.MockDoseLogRepository)
		mStore := new(storeMocks.MockStorage)
		svc := newTestHistoryService(mDoses, mStore, time.UTC, now)

		mDoses.On("History", ctx, mock.Anything).Return(entries, nil)
		mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{}, errors.New("bucket gone"))

		res, err := svc.Export(ctx, "today")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "upload export: bucket gone")
		assert.Nil(t, res)
	})

	t.Run("presign failure removes object", func(t *testing.T) {
		mDoses := new(repoMocks.MockDoseLogRepository)
		mStore := new(storeMocks.MockStorage)
		svc := newTestHistoryService(mDoses, mStore, time.UTC, now)

		mDoses.On("History", ctx, mock.Anything).Return(entries, nil)
		mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{Key: "k"}, nil)
		mStore.On("PresignGet", ctx, "k", exportURLExpiry).Return("", errors.New("sign fail"))
		mStore.On("Delete", ctx, "k").Return(nil)

		res, err := svc.Export(ctx, "today")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "presign failed: sign fail")
		assert.Nil(t, res)
		mStore.AssertExpectations(t)
	})

	t.Run("presign and rollback failure", func(t *testing.T) {
		mDoses := new(repoMocks.MockDoseLogRepository)
		mStore := new(storeMocks.MockStorage)
		svc := newTestHistoryService(mDoses, mStore, time.UTC, now)

		mDoses.On("History", ctx, mock.Anything).Return(entries, nil)
		mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{Key: "k"}, nil)
		mStore.On("PresignGet", ctx, "k", exportURLExpiry).Return("", errors.New("sign fail"))
		mStore.On("Delete", ctx, "k").Return(errors.New("delete fail"))

		_, err := svc.Export(ctx, "today")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "rollback delete failed: delete fail")
	})
}

func TestHistoryService_Export_SameSecondKeysDiffer(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 15, 4, 5, 0, time.UTC)

	mDoses := new(repoMocks.MockDoseLogRepository)
	mStore := new(storeMocks.MockStorage)
	svc := NewHistoryService(mDoses, mStore, time.UTC).(*historyService)
	svc.now = func() time.Time { return now }

	mDoses.On("History", ctx, mock.Anything).Return([]model.HistoryEntry{}, nil)
	mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
			return storage.ObjectInfo{Key: key}
		}, nil)
	mStore.On("PresignGet", ctx, mock.Anything, exportURLExpiry).Return("https://u", nil)

	first, err := svc.Export(ctx, "today")
	require.NoError(t, err)
	second, err := svc.Export(ctx, "today")
	require.NoError(t, err)

	assert.NotEqual(t, first.Key, second.Key)
	assert.True(t, strings.HasPrefix(first.Key, "exports/history-today-20260301T150405-"))
	assert.True(t, strings.HasSuffix(first.Key, ".csv"))
}

func TestRenderCSV_Empty(t *testing.T) {
	b, err := renderCSV(nil)
	require.NoError(t, err)
	assert.True(t, bytes.Equal([]byte("taken_at,name,dose,schedule\n"), b))
}

package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelRelation is the last relation the steps create. A run that stopped part-way
// leaves it missing, so the next start re-applies the IF NOT EXISTS steps.
const sentinelRelation = "public.idx_dose_logs_taken_at"

var steps = []migrationStep{
	{
		Name: "create_table_medications",
		SQL: `CREATE TABLE IF NOT EXISTS medications (
  id          UUID        PRIMARY KEY,
  name        TEXT        NOT NULL,
  dose        TEXT        NOT NULL,
  time_of_day TEXT        NOT NULL,
  notes       TEXT        NOT NULL DEFAULT '',
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_dose_logs",
		SQL: `CREATE TABLE IF NOT EXISTS dose_logs (
  id            UUID        PRIMARY KEY,
  medication_id UUID        NOT NULL REFERENCES medications (id) ON DELETE CASCADE,
  taken_at      TIMESTAMPTZ NOT NULL
);`,
	},
	{
		Name: "create_index_medications_time_of_day_name",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_medications_time_of_day_name ON medications (time_of_day, name);`,
	},
	{
		Name: "create_index_dose_logs_medication_id_taken_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_dose_logs_medication_id_taken_at ON dose_logs (medication_id, taken_at DESC);`,
	},
	{
		Name: "create_index_dose_logs_taken_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_dose_logs_taken_at ON dose_logs (taken_at DESC);`,
	},
}

// EnsureMigrated applies the schema unless the sentinel relation already exists.
func EnsureMigrated(ctx context.Context, db *sql.DB, log logrus.FieldLogger, dbHost string) error {
	start := time.Now()
	log = log.WithFields(logrus.Fields{
		"component": "database",
		"db_host":   dbHost,
	})

	log.WithFields(logrus.Fields{"event": "db_migration_check", "status": "starting"}).Info("checking schema")

	var exists bool
	if err := db.QueryRowContext(ctx, "SELECT to_regclass($1) IS NOT NULL", sentinelRelation).Scan(&exists); err != nil {
		log.WithFields(logrus.Fields{
			"event":       "db_migration_failed",
			"status":      "error",
			"duration_ms": time.Since(start).Milliseconds(),
		}).WithError(err).Error("failed to check sentinel table")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.WithFields(logrus.Fields{
			"event":       "db_migration_skip",
			"status":      "success",
			"duration_ms": time.Since(start).Milliseconds(),
		}).Info("schema already exists, skipping migration")
		return nil
	}

	log.WithFields(logrus.Fields{"event": "db_migration_start", "status": "in_progress"}).Info("applying schema")

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.WithFields(logrus.Fields{
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			}).WithError(err).Error("migration step failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.WithFields(logrus.Fields{
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		}).Info("migration step applied")
	}

	log.WithFields(logrus.Fields{
		"event":       "db_migration_success",
		"status":      "success",
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("schema migrated")

	return nil
}

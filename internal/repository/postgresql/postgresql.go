// Package postgresql implements the repositories on PostgreSQL with pgx.
package postgresql

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/database"
	"github.com/google/uuid"
)

//go:embed schema.sql
var schema string

// Migrate applies the embedded schema. Every statement is idempotent.
func Migrate(ctx context.Context, db *database.DB) error {
	return WithTransaction(ctx, db, func(ctx context.Context) error {
		if _, err := GetQuerier(ctx, db).Exec(ctx, schema); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
		return nil
	})
}

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

func now() time.Time {
	return time.Now().UTC()
}

// dateOnly drops the time of t so DATE columns compare on calendar days.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

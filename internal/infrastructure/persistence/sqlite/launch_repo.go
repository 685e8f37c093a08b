package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bnema/edgedock/internal/domain/entity"
	"github.com/bnema/edgedock/internal/domain/repository"
	"github.com/bnema/edgedock/internal/infrastructure/persistence/sqlite/sqlc"
	"github.com/bnema/edgedock/internal/logging"
)

type launchRepo struct {
	queries *sqlc.Queries
}

// NewLaunchRepository creates a new SQLite-backed launch history repository.
func NewLaunchRepository(db *sql.DB) repository.LaunchRepository {
	return &launchRepo{queries: sqlc.New(db)}
}

func (r *launchRepo) Record(ctx context.Context, record *entity.LaunchRecord) error {
	if record == nil {
		return fmt.Errorf("launch record is nil")
	}
	if record.LaunchedAt.IsZero() {
		record.LaunchedAt = time.Now()
	}

	var success int64
	if record.Success {
		success = 1
	}

	id, err := r.queries.InsertLaunch(ctx, sqlc.InsertLaunchParams{
		ItemID:     string(record.ItemID),
		Name:       record.Name,
		Target:     record.Target,
		LaunchedAt: record.LaunchedAt.UnixMilli(),
		Success:    success,
		Error:      sql.NullString{String: record.Error, Valid: record.Error != ""},
	})
	if err != nil {
		return fmt.Errorf("failed to record launch of %s: %w", record.ItemID, err)
	}
	record.ID = id

	logging.FromContext(ctx).Debug().
		Int64("id", id).
		Str("item", string(record.ItemID)).
		Bool("success", record.Success).
		Msg("launch recorded")
	return nil
}

func (r *launchRepo) Recent(ctx context.Context, limit int) ([]*entity.LaunchRecord, error) {
	if limit <= 0 {
		return []*entity.LaunchRecord{}, nil
	}

	rows, err := r.queries.ListRecentLaunches(ctx, int64(limit))
	if err != nil {
		return nil, err
	}

	records := make([]*entity.LaunchRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, launchFromRow(row))
	}
	return records, nil
}

func (r *launchRepo) Counts(ctx context.Context) ([]*entity.LaunchCount, error) {
	rows, err := r.queries.CountLaunchesByItem(ctx)
	if err != nil {
		return nil, err
	}

	counts := make([]*entity.LaunchCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, &entity.LaunchCount{
			ItemID:       entity.DockItemID(row.ItemID),
			Name:         row.Name,
			Count:        row.LaunchCount,
			LastLaunched: millisToTime(row.LastLaunched),
		})
	}
	return counts, nil
}

func (r *launchRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return r.queries.DeleteLaunchesBefore(ctx, cutoff.UnixMilli())
}

func launchFromRow(row sqlc.Launch) *entity.LaunchRecord {
	return &entity.LaunchRecord{
		ID:         row.ID,
		ItemID:     entity.DockItemID(row.ItemID),
		Name:       row.Name,
		Target:     row.Target,
		LaunchedAt: time.UnixMilli(row.LaunchedAt),
		Success:    row.Success != 0,
		Error:      row.Error.String,
	}
}

// millisToTime converts an aggregate column. SQLite reports MAX() of an
// INTEGER column as int64, but the driver may hand back other numeric types.
func millisToTime(v interface{}) time.Time {
	switch n := v.(type) {
	case int64:
		return time.UnixMilli(n)
	case float64:
		return time.UnixMilli(int64(n))
	default:
		return time.Time{}
	}
}

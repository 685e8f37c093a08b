package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/bnema/edgedock/internal/domain/entity"
	"github.com/bnema/edgedock/internal/domain/repository"
	"github.com/bnema/edgedock/internal/logging"
)

const defaultRecentLimit = 20

// LaunchHistoryUseCase reads and prunes the launch history.
type LaunchHistoryUseCase struct {
	repo repository.LaunchRepository
	now  func() time.Time
}

// NewLaunchHistoryUseCase creates a new LaunchHistoryUseCase.
func NewLaunchHistoryUseCase(repo repository.LaunchRepository) *LaunchHistoryUseCase {
	return &LaunchHistoryUseCase{repo: repo, now: time.Now}
}

// Recent returns the latest launches, newest first. A non-positive limit
// uses the default of 20.
func (uc *LaunchHistoryUseCase) Recent(ctx context.Context, limit int) ([]*entity.LaunchRecord, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return uc.repo.Recent(ctx, limit)
}

// Counts returns successful launches per item, most launched first.
func (uc *LaunchHistoryUseCase) Counts(ctx context.Context) ([]*entity.LaunchCount, error) {
	return uc.repo.Counts(ctx)
}

// Prune deletes launches older than retentionDays. Zero keeps everything.
func (uc *LaunchHistoryUseCase) Prune(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays < 0 {
		return 0, errors.New("retention must be non-negative")
	}
	if retentionDays == 0 {
		return 0, nil
	}

	cutoff := uc.now().AddDate(0, 0, -retentionDays)
	deleted, err := uc.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		logging.FromContext(ctx).Info().
			Int64("deleted", deleted).
			Time("cutoff", cutoff).
			Msg("pruned launch history")
	}
	return deleted, nil
}

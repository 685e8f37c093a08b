package sqlite

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/edgedock/internal/application/port"
	"github.com/bnema/edgedock/internal/domain/entity"
	"github.com/bnema/edgedock/internal/domain/repository"
)

// LazyLaunchRepository opens the database on its first call.
type LazyLaunchRepository struct {
	provider port.DatabaseProvider
	repo     repository.LaunchRepository
	once     sync.Once
	initErr  error
}

// NewLazyLaunchRepository creates a lazy-loading launch repository.
func NewLazyLaunchRepository(provider port.DatabaseProvider) repository.LaunchRepository {
	return &LazyLaunchRepository{provider: provider}
}

func (r *LazyLaunchRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewLaunchRepository(db)
	})
	return r.initErr
}

func (r *LazyLaunchRepository) Record(ctx context.Context, record *entity.LaunchRecord) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Record(ctx, record)
}

func (r *LazyLaunchRepository) Recent(ctx context.Context, limit int) ([]*entity.LaunchRecord, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Recent(ctx, limit)
}

func (r *LazyLaunchRepository) Counts(ctx context.Context) ([]*entity.LaunchCount, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Counts(ctx)
}

func (r *LazyLaunchRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	if err := r.init(ctx); err != nil {
		return 0, err
	}
	return r.repo.DeleteOlderThan(ctx, cutoff)
}

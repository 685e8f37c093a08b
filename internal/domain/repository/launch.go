// Package repository defines persistence interfaces for domain entities.
package repository

//go:generate mockgen -source=launch.go -destination=mocks/mock_launch.go -package=mocks

import (
	"context"
	"time"

	"github.com/bnema/edgedock/internal/domain/entity"
)

// LaunchRepository defines operations for dock item launch history.
type LaunchRepository interface {
	// Record stores a launch attempt and fills in its ID.
	Record(ctx context.Context, record *entity.LaunchRecord) error

	// Recent returns the latest launches, newest first.
	Recent(ctx context.Context, limit int) ([]*entity.LaunchRecord, error)

	// Counts returns successful launch totals per item, most launched first.
	Counts(ctx context.Context) ([]*entity.LaunchCount, error)

	// DeleteOlderThan removes launches recorded before cutoff.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

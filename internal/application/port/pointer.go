// Package port defines interfaces for infrastructure adapters.
package port

import (
	"context"
	"time"

	"github.com/bnema/edgedock/internal/domain/entity"
)

// PointerSample is one pointer position reading in top-left screen coordinates.
type PointerSample struct {
	Position entity.Point
	Time     time.Time
}

// PointerSink receives pointer samples and availability changes, in order.
type PointerSink interface {
	OnPointerSample(sample PointerSample)
	// OnAvailabilityChanged is pushed when sampling starts or stops working,
	// e.g. when accessibility access is granted or revoked.
	OnAvailabilityChanged(available bool)
}

// PointerSource delivers a continuous stream of pointer samples to a sink.
// Start blocks until ctx is cancelled or the source is exhausted.
type PointerSource interface {
	Start(ctx context.Context, sink PointerSink) error
}

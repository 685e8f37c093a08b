package pointer

import (
	"context"
	"errors"
	"time"

	"github.com/bnema/edgedock/internal/application/port"
	"github.com/bnema/edgedock/internal/domain/entity"
	"github.com/bnema/edgedock/internal/logging"
)

const (
	DefaultPollInterval       = 16 * time.Millisecond
	DefaultPermissionInterval = 2 * time.Second
)

// Sampler reads the current global pointer position. It returns an error
// wrapping entity.ErrPermissionUnavailable when the OS refuses access.
type Sampler interface {
	Sample() (entity.Point, error)
	Origin() Origin
}

// PollingConfig tunes a PollingSource.
type PollingConfig struct {
	// Interval between samples while sampling works.
	Interval time.Duration
	// PermissionInterval between retries while sampling is unavailable.
	PermissionInterval time.Duration
	// Frame returns the screen frame used to flip bottom-left samples.
	Frame func() entity.Rect
	// Now stamps samples. Defaults to time.Now.
	Now func() time.Time
}

// PollingSource samples a Sampler at a fixed interval. Only positions that
// differ from the previous one are delivered, so a resting pointer does not
// keep restarting the hide debounce.
type PollingSource struct {
	sampler Sampler
	cfg     PollingConfig
}

var _ port.PointerSource = (*PollingSource)(nil)

// NewPollingSource creates a source around sampler.
func NewPollingSource(sampler Sampler, cfg PollingConfig) *PollingSource {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultPollInterval
	}
	if cfg.PermissionInterval <= 0 {
		cfg.PermissionInterval = DefaultPermissionInterval
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &PollingSource{sampler: sampler, cfg: cfg}
}

// Start polls until ctx is cancelled. Availability changes are pushed to sink
// before the first sample after the change.
func (s *PollingSource) Start(ctx context.Context, sink port.PointerSink) error {
	log := logging.FromContext(ctx).With().Str("component", "pointer-poll").Logger()

	var (
		available *bool
		last      *entity.Point
	)
	setAvailable := func(v bool) {
		if available != nil && *available == v {
			return
		}
		available = &v
		last = nil
		sink.OnAvailabilityChanged(v)
	}

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}

		wait := s.cfg.Interval
		pos, err := s.sampler.Sample()
		switch {
		case errors.Is(err, entity.ErrPermissionUnavailable):
			if available == nil || *available {
				log.Warn().Err(err).Msg("pointer sampling unavailable")
			}
			setAvailable(false)
			wait = s.cfg.PermissionInterval
		case err != nil:
			log.Debug().Err(err).Msg("pointer sample failed")
		default:
			setAvailable(true)
			if s.sampler.Origin() == OriginBottomLeft && s.cfg.Frame != nil {
				pos = ToTopLeft(pos, OriginBottomLeft, s.cfg.Frame())
			}
			if last == nil || *last != pos {
				p := pos
				last = &p
				sink.OnPointerSample(port.PointerSample{Position: pos, Time: s.cfg.Now()})
			}
		}

		timer.Reset(wait)
	}
}

//go:build !darwin

package pointer

import (
	"fmt"
	"runtime"

	"github.com/bnema/edgedock/internal/domain/entity"
)

// SystemSampler reports sampling as unavailable on platforms without a
// global pointer API binding.
type SystemSampler struct{}

// NewSystemSampler returns a sampler that always reports
// ErrPermissionUnavailable, so the controller stays suspended.
func NewSystemSampler(bool) (*SystemSampler, error) {
	return &SystemSampler{}, nil
}

func (s *SystemSampler) Sample() (entity.Point, error) {
	return entity.Point{}, fmt.Errorf("%w: global pointer sampling is not supported on %s",
		entity.ErrPermissionUnavailable, runtime.GOOS)
}

func (s *SystemSampler) Origin() Origin { return OriginTopLeft }

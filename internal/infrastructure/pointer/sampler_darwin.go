//go:build darwin

package pointer

import (
	"fmt"
	"sync"

	"github.com/bnema/edgedock/internal/domain/entity"
	"github.com/ebitengine/purego"
)

const (
	applicationServicesPath = "/System/Library/Frameworks/ApplicationServices.framework/ApplicationServices"
	coreFoundationPath      = "/System/Library/Frameworks/CoreFoundation.framework/CoreFoundation"
)

type cgPoint struct {
	X, Y float64
}

var (
	loadOnce sync.Once
	loadErr  error

	cgEventCreate      func(source uintptr) uintptr
	cgEventGetLocation func(event uintptr) cgPoint
	cfRelease          func(ref uintptr)
	axIsProcessTrusted func() bool
)

func loadFrameworks() error {
	loadOnce.Do(func() {
		appServices, err := purego.Dlopen(applicationServicesPath, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
		if err != nil {
			loadErr = fmt.Errorf("load ApplicationServices: %w", err)
			return
		}
		cf, err := purego.Dlopen(coreFoundationPath, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
		if err != nil {
			loadErr = fmt.Errorf("load CoreFoundation: %w", err)
			return
		}
		purego.RegisterLibFunc(&cgEventCreate, appServices, "CGEventCreate")
		purego.RegisterLibFunc(&cgEventGetLocation, appServices, "CGEventGetLocation")
		purego.RegisterLibFunc(&axIsProcessTrusted, appServices, "AXIsProcessTrusted")
		purego.RegisterLibFunc(&cfRelease, cf, "CFRelease")
	})
	return loadErr
}

// SystemSampler reads the global cursor through Quartz event services.
// Quartz reports global display coordinates with a top-left origin.
type SystemSampler struct {
	requireTrust bool
}

// NewSystemSampler returns the macOS sampler. With requireTrust set, samples
// fail with ErrPermissionUnavailable until the process is trusted for
// accessibility.
func NewSystemSampler(requireTrust bool) (*SystemSampler, error) {
	if err := loadFrameworks(); err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrPermissionUnavailable, err)
	}
	return &SystemSampler{requireTrust: requireTrust}, nil
}

func (s *SystemSampler) Sample() (entity.Point, error) {
	if s.requireTrust && !axIsProcessTrusted() {
		return entity.Point{}, fmt.Errorf("%w: process is not trusted for accessibility", entity.ErrPermissionUnavailable)
	}

	event := cgEventCreate(0)
	if event == 0 {
		return entity.Point{}, fmt.Errorf("%w: CGEventCreate returned NULL", entity.ErrPermissionUnavailable)
	}
	defer cfRelease(event)

	loc := cgEventGetLocation(event)
	return entity.Point{X: loc.X, Y: loc.Y}, nil
}

func (s *SystemSampler) Origin() Origin { return OriginTopLeft }

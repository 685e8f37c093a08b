//go:build darwin

package screen

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/edgedock/internal/domain/entity"
	"github.com/ebitengine/purego"
	"github.com/ebitengine/purego/objc"
)

type cgPoint struct{ X, Y float64 }
type cgSize struct{ W, H float64 }
type cgRect struct {
	Origin cgPoint
	Size   cgSize
}

var (
	loadOnce sync.Once
	loadErr  error

	cgMainDisplayID func() uint32
	cgDisplayBounds func(display uint32) cgRect
	selMainScreen   objc.SEL
	selVisibleFrame objc.SEL
	selFrame        objc.SEL
	classNSScreen   objc.Class
)

func load() error {
	loadOnce.Do(func() {
		cg, err := purego.Dlopen("/System/Library/Frameworks/CoreGraphics.framework/CoreGraphics", purego.RTLD_LAZY|purego.RTLD_GLOBAL)
		if err != nil {
			loadErr = fmt.Errorf("load CoreGraphics: %w", err)
			return
		}
		if _, err := purego.Dlopen("/System/Library/Frameworks/AppKit.framework/AppKit", purego.RTLD_LAZY|purego.RTLD_GLOBAL); err != nil {
			loadErr = fmt.Errorf("load AppKit: %w", err)
			return
		}
		purego.RegisterLibFunc(&cgMainDisplayID, cg, "CGMainDisplayID")
		purego.RegisterLibFunc(&cgDisplayBounds, cg, "CGDisplayBounds")

		classNSScreen = objc.GetClass("NSScreen")
		selMainScreen = objc.RegisterName("mainScreen")
		selVisibleFrame = objc.RegisterName("visibleFrame")
		selFrame = objc.RegisterName("frame")
	})
	return loadErr
}

// SystemProvider reads the main display through CoreGraphics and AppKit.
type SystemProvider struct{}

// NewSystemProvider returns the provider for this platform.
func NewSystemProvider() SystemProvider {
	return SystemProvider{}
}

// Screen returns the main display frame in global top-left coordinates. The
// usable area comes from NSScreen.visibleFrame, which Cocoa reports with a
// bottom-left origin and is flipped here.
func (SystemProvider) Screen(context.Context) (entity.Screen, error) {
	if err := load(); err != nil {
		return entity.Screen{}, fmt.Errorf("%w: %w", ErrNoScreen, err)
	}

	b := cgDisplayBounds(cgMainDisplayID())
	frame := entity.Rect{
		Min: entity.Point{X: b.Origin.X, Y: b.Origin.Y},
		Max: entity.Point{X: b.Origin.X + b.Size.W, Y: b.Origin.Y + b.Size.H},
	}
	if frame.Empty() {
		return entity.Screen{}, ErrNoScreen
	}
	s := entity.Screen{Frame: frame}

	if classNSScreen == 0 {
		return s, nil
	}
	main := objc.ID(classNSScreen).Send(selMainScreen)
	if main == 0 {
		return s, nil
	}
	full := objc.Send[cgRect](main, selFrame)
	visible := objc.Send[cgRect](main, selVisibleFrame)
	if visible.Size.W <= 0 || visible.Size.H <= 0 {
		return s, nil
	}

	top := full.Origin.Y + full.Size.H - (visible.Origin.Y + visible.Size.H)
	usable := entity.Rect{
		Min: entity.Point{X: frame.Min.X + visible.Origin.X - full.Origin.X, Y: frame.Min.Y + top},
	}
	usable.Max = entity.Point{X: usable.Min.X + visible.Size.W, Y: usable.Min.Y + visible.Size.H}
	s.Usable = &usable
	return s, nil
}

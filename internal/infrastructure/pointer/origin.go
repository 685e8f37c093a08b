// Package pointer supplies pointer samples to the visibility controller from
// the OS, from recordings, or from any other Sampler.
//
// Every source emits top-left coordinates. Samplers that report a bottom-left
// origin are flipped here, never in the geometry code.
package pointer

import (
	"fmt"
	"strings"

	"github.com/bnema/edgedock/internal/domain/entity"
)

// Origin names the corner a coordinate system starts from.
type Origin string

const (
	OriginTopLeft    Origin = "top-left"
	OriginBottomLeft Origin = "bottom-left"
)

// ParseOrigin accepts "top-left" and "bottom-left" (case-insensitive).
// An empty string means top-left.
func ParseOrigin(s string) (Origin, error) {
	switch Origin(strings.ToLower(strings.TrimSpace(s))) {
	case "", OriginTopLeft:
		return OriginTopLeft, nil
	case OriginBottomLeft:
		return OriginBottomLeft, nil
	default:
		return "", fmt.Errorf("unknown pointer origin %q", s)
	}
}

// ToTopLeft converts p from origin to top-left coordinates within frame.
func ToTopLeft(p entity.Point, origin Origin, frame entity.Rect) entity.Point {
	if origin != OriginBottomLeft {
		return p
	}
	return entity.Point{X: p.X, Y: frame.Min.Y + frame.Max.Y - p.Y}
}

package cmd

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/bnema/edgedock/internal/domain/entity"
)

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parseScreenSize parses "WIDTHxHEIGHT", e.g. "1920x1080".
func parseScreenSize(s string) (entity.Screen, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return entity.Screen{}, fmt.Errorf("screen size %q: want WIDTHxHEIGHT", s)
	}
	width, err := strconv.ParseFloat(w, 64)
	if err != nil {
		return entity.Screen{}, fmt.Errorf("screen width %q: %w", w, err)
	}
	height, err := strconv.ParseFloat(h, 64)
	if err != nil {
		return entity.Screen{}, fmt.Errorf("screen height %q: %w", h, err)
	}
	if !finitePositive(width) || !finitePositive(height) {
		return entity.Screen{}, fmt.Errorf("screen size %q: must be positive and finite", s)
	}
	return entity.NewScreen(width, height), nil
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// jsonRect is the wire form of entity.Rect.
type jsonRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func toJSONRect(r entity.Rect) jsonRect {
	return jsonRect{X: r.Min.X, Y: r.Min.Y, Width: r.Width(), Height: r.Height()}
}

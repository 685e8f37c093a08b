// Package entity defines domain entities for the dock.
package entity

import (
	"fmt"
	"strings"
)

// Edge is the screen boundary the panel is anchored to.
type Edge string

const (
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
	EdgeLeft   Edge = "left"
	EdgeRight  Edge = "right"
)

// AllEdges returns the edges in cycling order.
func AllEdges() []Edge {
	return []Edge{EdgeTop, EdgeRight, EdgeBottom, EdgeLeft}
}

// ParseEdge converts a config or flag value into an Edge.
func ParseEdge(s string) (Edge, error) {
	switch Edge(strings.ToLower(strings.TrimSpace(s))) {
	case EdgeTop:
		return EdgeTop, nil
	case EdgeBottom:
		return EdgeBottom, nil
	case EdgeLeft:
		return EdgeLeft, nil
	case EdgeRight:
		return EdgeRight, nil
	default:
		return "", fmt.Errorf("%w: %q (expected top, bottom, left or right)", ErrInvalidEdge, s)
	}
}

// IsHorizontal reports whether the panel lays its items out in a row.
// Top and bottom panels are horizontal, left and right panels are vertical.
func (e Edge) IsHorizontal() bool {
	return e == EdgeTop || e == EdgeBottom
}

// Valid reports whether e is one of the four known edges.
func (e Edge) Valid() bool {
	switch e {
	case EdgeTop, EdgeBottom, EdgeLeft, EdgeRight:
		return true
	default:
		return false
	}
}

// Next returns the following edge in AllEdges order.
func (e Edge) Next() Edge {
	edges := AllEdges()
	for i, candidate := range edges {
		if candidate == e {
			return edges[(i+1)%len(edges)]
		}
	}
	return EdgeRight
}

func (e Edge) String() string {
	return string(e)
}

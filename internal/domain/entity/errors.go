package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrPermissionUnavailable means global pointer sampling cannot run,
	// usually because accessibility access has not been granted.
	ErrPermissionUnavailable = errors.New("pointer sampling unavailable")

	// ErrInvalidEdge is returned for unknown edge names.
	ErrInvalidEdge = errors.New("invalid edge")

	// ErrInvalidGeometry marks a geometry configuration the panel cannot
	// fully honour. It is reported, never fatal.
	ErrInvalidGeometry = errors.New("invalid geometry configuration")

	// ErrItemNotFound is returned when a dock item lookup fails.
	ErrItemNotFound = errors.New("dock item not found")
)

// GeometryConfigError describes one offending geometry value.
type GeometryConfigError struct {
	Field string
	Value float64
	Limit float64
	Msg   string
}

func (e *GeometryConfigError) Error() string {
	return fmt.Sprintf("%s=%g: %s (limit %g)", e.Field, e.Value, e.Msg, e.Limit)
}

func (e *GeometryConfigError) Unwrap() error {
	return ErrInvalidGeometry
}

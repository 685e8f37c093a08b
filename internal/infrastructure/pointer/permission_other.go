//go:build !darwin

package pointer

import "github.com/bnema/edgedock/internal/application/port"

// unsupportedChecker never grants access.
type unsupportedChecker struct{}

// NewPermissionChecker returns the checker for this platform.
func NewPermissionChecker() port.PermissionChecker {
	return unsupportedChecker{}
}

func (unsupportedChecker) Trusted() bool { return false }
func (unsupportedChecker) Request() bool { return false }

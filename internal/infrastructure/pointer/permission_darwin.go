//go:build darwin

package pointer

import (
	"github.com/bnema/edgedock/internal/application/port"
	"github.com/ebitengine/purego"
)

var axIsProcessTrustedWithOptions func(options uintptr) bool

// AccessibilityChecker reports the macOS accessibility trust flag.
type AccessibilityChecker struct{}

var _ port.PermissionChecker = AccessibilityChecker{}

// NewPermissionChecker returns the checker for this platform.
func NewPermissionChecker() port.PermissionChecker {
	return AccessibilityChecker{}
}

func (AccessibilityChecker) Trusted() bool {
	if loadFrameworks() != nil {
		return false
	}
	return axIsProcessTrusted()
}

// Request asks macOS to show its accessibility prompt. The prompt appears at
// most once per launch; the returned flag is the state at the time of the
// call.
func (AccessibilityChecker) Request() bool {
	if loadFrameworks() != nil {
		return false
	}
	if axIsProcessTrustedWithOptions == nil {
		lib, err := purego.Dlopen(applicationServicesPath, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
		if err != nil {
			return axIsProcessTrusted()
		}
		purego.RegisterLibFunc(&axIsProcessTrustedWithOptions, lib, "AXIsProcessTrustedWithOptions")
	}
	prompt, release := promptOptions()
	if prompt == 0 {
		return axIsProcessTrusted()
	}
	defer release()
	return axIsProcessTrustedWithOptions(prompt)
}

package usecase

import (
	"context"

	"github.com/bnema/edgedock/internal/application/port"
	"github.com/bnema/edgedock/internal/logging"
)

// CheckPermissionUseCase reports, and optionally requests, the access needed
// to observe the global pointer.
type CheckPermissionUseCase struct {
	checker port.PermissionChecker
}

// NewCheckPermissionUseCase creates a new CheckPermissionUseCase.
func NewCheckPermissionUseCase(checker port.PermissionChecker) *CheckPermissionUseCase {
	return &CheckPermissionUseCase{checker: checker}
}

// CheckPermissionInput controls whether the system prompt is shown.
type CheckPermissionInput struct {
	Prompt bool
}

// CheckPermissionOutput reports the trust state.
type CheckPermissionOutput struct {
	Trusted bool
	// Prompted is true when the system prompt was requested.
	Prompted bool
}

// Execute checks trust. The prompt is only requested when not yet trusted.
func (uc *CheckPermissionUseCase) Execute(ctx context.Context, input CheckPermissionInput) (*CheckPermissionOutput, error) {
	out := &CheckPermissionOutput{Trusted: uc.checker.Trusted()}
	if out.Trusted || !input.Prompt {
		return out, nil
	}

	logging.FromContext(ctx).Info().Msg("requesting accessibility access")
	out.Trusted = uc.checker.Request()
	out.Prompted = true
	return out, nil
}

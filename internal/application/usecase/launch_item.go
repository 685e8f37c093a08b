// Package usecase implements the operations the CLI and the running dock
// expose, on top of ports and repositories.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/edgedock/internal/application/port"
	"github.com/bnema/edgedock/internal/domain/entity"
	"github.com/bnema/edgedock/internal/domain/repository"
	"github.com/bnema/edgedock/internal/logging"
)

// ItemCatalog lists the configured dock items.
type ItemCatalog interface {
	Items() []entity.DockItem
}

// LaunchItemUseCase activates a dock item and records the attempt.
type LaunchItemUseCase struct {
	catalog  ItemCatalog
	launcher port.AppLauncher
	history  repository.LaunchRepository
	now      func() time.Time
}

// NewLaunchItemUseCase creates a new LaunchItemUseCase. history may be nil
// to launch without recording.
func NewLaunchItemUseCase(
	catalog ItemCatalog,
	launcher port.AppLauncher,
	history repository.LaunchRepository,
) *LaunchItemUseCase {
	return &LaunchItemUseCase{
		catalog:  catalog,
		launcher: launcher,
		history:  history,
		now:      time.Now,
	}
}

// LaunchItemInput selects an item by ID, or by name ignoring case.
type LaunchItemInput struct {
	Ref string
}

// LaunchItemOutput reports what was launched.
type LaunchItemOutput struct {
	Item   entity.DockItem
	Record *entity.LaunchRecord
}

// Execute launches the referenced item. A failure to record history is
// logged and does not fail the launch.
func (uc *LaunchItemUseCase) Execute(ctx context.Context, input LaunchItemInput) (*LaunchItemOutput, error) {
	item, err := FindItem(uc.catalog.Items(), input.Ref)
	if err != nil {
		return nil, err
	}
	ctx = logging.WithItemID(ctx, string(item.ID))
	log := logging.FromContext(ctx)

	launchErr := uc.launcher.Launch(ctx, item)

	record := &entity.LaunchRecord{
		ItemID:     item.ID,
		Name:       item.Name,
		Target:     item.Target,
		LaunchedAt: uc.now(),
		Success:    launchErr == nil,
	}
	if launchErr != nil {
		record.Error = launchErr.Error()
	}

	if uc.history != nil {
		if err := uc.history.Record(ctx, record); err != nil {
			log.Warn().Err(err).Msg("failed to record launch")
		}
	}

	if launchErr != nil {
		return nil, fmt.Errorf("launch %s: %w", item.ID, launchErr)
	}

	log.Info().Str("target", item.Target).Msg("item launched")
	return &LaunchItemOutput{Item: item, Record: record}, nil
}

// FindItem resolves ref against items: exact ID first, then name ignoring
// case.
func FindItem(items []entity.DockItem, ref string) (entity.DockItem, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return entity.DockItem{}, errors.New("item reference is empty")
	}
	for _, it := range items {
		if string(it.ID) == ref {
			return it, nil
		}
	}
	for _, it := range items {
		if strings.EqualFold(it.Name, ref) {
			return it, nil
		}
	}
	return entity.DockItem{}, fmt.Errorf("%w: %q", entity.ErrItemNotFound, ref)
}

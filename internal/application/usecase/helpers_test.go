package usecase_test

import (
	"context"

	"github.com/bnema/edgedock/internal/domain/entity"
	"github.com/bnema/edgedock/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type staticCatalog []entity.DockItem

func (c staticCatalog) Items() []entity.DockItem { return c }

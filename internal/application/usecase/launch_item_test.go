package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	portmocks "github.com/bnema/edgedock/internal/application/port/mocks"
	"github.com/bnema/edgedock/internal/application/usecase"
	"github.com/bnema/edgedock/internal/domain/entity"
	repomocks "github.com/bnema/edgedock/internal/domain/repository/mocks"
	"github.com/bnema/edgedock/internal/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLaunchItemUseCase_LaunchesByIDAndRecords(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)

	launcher := portmocks.NewMockAppLauncher(t)
	history := repomocks.NewMockLaunchRepository(ctrl)

	items := staticCatalog(entity.SampleDockItems())
	launcher.EXPECT().Launch(mock.Anything, items[1]).Return(nil).Once()

	var recorded *entity.LaunchRecord
	history.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, r *entity.LaunchRecord) error {
			recorded = r
			r.ID = 7
			return nil
		})

	uc := usecase.NewLaunchItemUseCase(items, launcher, history)
	out, err := uc.Execute(ctx, usecase.LaunchItemInput{Ref: "safari"})
	require.NoError(t, err)

	assert.Equal(t, entity.DockItemID("safari"), out.Item.ID)
	require.NotNil(t, recorded)
	assert.True(t, recorded.Success)
	assert.Equal(t, "Safari", recorded.Target)
	assert.False(t, recorded.LaunchedAt.IsZero())
	assert.Equal(t, int64(7), out.Record.ID)
}

func TestLaunchItemUseCase_FindsByNameIgnoringCase(t *testing.T) {
	launcher := portmocks.NewMockAppLauncher(t)
	launcher.EXPECT().Launch(mock.Anything, mock.MatchedBy(func(it entity.DockItem) bool {
		return it.ID == "terminal"
	})).Return(nil).Once()

	uc := usecase.NewLaunchItemUseCase(staticCatalog(entity.SampleDockItems()), launcher, nil)
	out, err := uc.Execute(testContext(), usecase.LaunchItemInput{Ref: "TERMINAL"})
	require.NoError(t, err)
	assert.Equal(t, "Terminal", out.Item.Name)
}

func TestLaunchItemUseCase_UnknownItem(t *testing.T) {
	launcher := portmocks.NewMockAppLauncher(t)

	uc := usecase.NewLaunchItemUseCase(staticCatalog(entity.SampleDockItems()), launcher, nil)
	_, err := uc.Execute(testContext(), usecase.LaunchItemInput{Ref: "photoshop"})
	require.ErrorIs(t, err, entity.ErrItemNotFound)

	_, err = uc.Execute(testContext(), usecase.LaunchItemInput{Ref: "  "})
	require.Error(t, err)
}

func TestLaunchItemUseCase_RecordsFailedLaunch(t *testing.T) {
	ctrl := gomock.NewController(t)
	launcher := portmocks.NewMockAppLauncher(t)
	history := repomocks.NewMockLaunchRepository(ctrl)

	boom := errors.New("application not found")
	launcher.EXPECT().Launch(mock.Anything, mock.Anything).Return(boom).Once()
	history.EXPECT().Record(gomock.Any(), gomock.Cond(func(r *entity.LaunchRecord) bool {
		return !r.Success && r.Error == boom.Error()
	})).Return(nil)

	uc := usecase.NewLaunchItemUseCase(staticCatalog(entity.SampleDockItems()), launcher, history)
	_, err := uc.Execute(testContext(), usecase.LaunchItemInput{Ref: "mail"})
	require.ErrorIs(t, err, boom)
}

func TestLaunchItemUseCase_HistoryFailureDoesNotFailLaunch(t *testing.T) {
	ctrl := gomock.NewController(t)
	launcher := portmocks.NewMockAppLauncher(t)
	history := repomocks.NewMockLaunchRepository(ctrl)

	launcher.EXPECT().Launch(mock.Anything, mock.Anything).Return(nil).Once()
	history.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	uc := usecase.NewLaunchItemUseCase(staticCatalog(entity.SampleDockItems()), launcher, history)
	_, err := uc.Execute(testContext(), usecase.LaunchItemInput{Ref: "music"})
	assert.NoError(t, err)
}

func TestFindItem_PrefersIDOverName(t *testing.T) {
	items := []entity.DockItem{
		{ID: "code", Name: "Editor", Target: "code"},
		{ID: "editor", Name: "Code", Target: "zed"},
	}

	got, err := usecase.FindItem(items, "code")
	require.NoError(t, err)
	assert.Equal(t, "code", got.Target)
}

func TestLaunchItemUseCase_LogsCarryItemID(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.WithContext(context.Background(), zerolog.New(&buf))

	launcher := portmocks.NewMockAppLauncher(t)
	launcher.EXPECT().Launch(mock.Anything, mock.Anything).Return(nil).Once()

	uc := usecase.NewLaunchItemUseCase(staticCatalog(entity.SampleDockItems()), launcher, nil)
	_, err := uc.Execute(ctx, usecase.LaunchItemInput{Ref: "terminal"})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"item_id":"terminal"`)
	assert.Contains(t, buf.String(), `"message":"item launched"`)
}

package usecase_test

import (
	"testing"
	"time"

	"github.com/bnema/edgedock/internal/application/usecase"
	"github.com/bnema/edgedock/internal/domain/entity"
	repomocks "github.com/bnema/edgedock/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLaunchHistoryUseCase_RecentDefaultsLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockLaunchRepository(ctrl)

	records := []*entity.LaunchRecord{{ID: 1, ItemID: "finder"}}
	repo.EXPECT().Recent(gomock.Any(), 20).Return(records, nil)
	repo.EXPECT().Recent(gomock.Any(), 3).Return(records, nil)

	uc := usecase.NewLaunchHistoryUseCase(repo)

	got, err := uc.Recent(testContext(), 0)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = uc.Recent(testContext(), 3)
	require.NoError(t, err)
}

func TestLaunchHistoryUseCase_PruneComputesCutoff(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockLaunchRepository(ctrl)

	before := time.Now()
	repo.EXPECT().DeleteOlderThan(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, cutoff time.Time) (int64, error) {
			expected := before.AddDate(0, 0, -30)
			assert.WithinDuration(t, expected, cutoff, time.Minute)
			return 4, nil
		})

	uc := usecase.NewLaunchHistoryUseCase(repo)
	deleted, err := uc.Prune(testContext(), 30)
	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)
}

func TestLaunchHistoryUseCase_PruneZeroKeepsEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockLaunchRepository(ctrl)

	uc := usecase.NewLaunchHistoryUseCase(repo)

	deleted, err := uc.Prune(testContext(), 0)
	require.NoError(t, err)
	assert.Zero(t, deleted)

	_, err = uc.Prune(testContext(), -1)
	assert.Error(t, err)
}

func TestLaunchHistoryUseCase_Counts(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockLaunchRepository(ctrl)
	repo.EXPECT().Counts(gomock.Any()).Return([]*entity.LaunchCount{{ItemID: "mail", Count: 3}}, nil)

	got, err := usecase.NewLaunchHistoryUseCase(repo).Counts(testContext())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].Count)
}

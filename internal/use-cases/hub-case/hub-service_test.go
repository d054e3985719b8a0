package hub_case

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/virtutask/virtutask-api/internal/entity"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
	use_cases "github.com/virtutask/virtutask-api/internal/use-cases"
)

var fixedNow = time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

func newTestService() (*HubService, *use_cases.MockEngagementRepo, *use_cases.MockScoreClient) {
	repo := new(use_cases.MockEngagementRepo)
	scores := new(use_cases.MockScoreClient)
	return &HubService{
		repo:  repo,
		score: scores,
		loc:   time.UTC,
		now:   func() time.Time { return fixedNow },
	}, repo, scores
}

func noErr() *app_errors.AppError {
	return (*app_errors.AppError)(nil)
}

func TestAllowanceFor(t *testing.T) {
	cases := map[float64]int64{
		100: 3600,
		92:  3600,
		90:  3600,
		89:  1800,
		80:  1800,
		75:  1800,
		74:  900,
		60:  900,
		0:   900,
	}
	for score, want := range cases {
		assert.Equal(t, want, AllowanceFor(score), "score %v", score)
	}
}

func TestCheckStatus_StaleDayResets(t *testing.T) {
	ctx := context.Background()
	service, repo, scores := newTestService()

	scores.On("Fetch", ctx, "alice").Return(92.0, nil)
	repo.On("GetEngagement", ctx, "alice").Return(&entity.UserEngagement{
		EmployeeID:       "alice",
		LastSessionStart: fixedNow.AddDate(0, 0, -1),
		SessionDuration:  99999,
		IsEnabled:        false,
	}, noErr())
	repo.On("UpsertEngagement", ctx, mock.MatchedBy(func(e *entity.UserEngagement) bool {
		return e.SessionDuration == 0 && e.IsEnabled && e.LastSessionStart.Equal(fixedNow)
	})).Return(noErr())

	resp, err := service.CheckStatus(ctx, "alice")

	require.Nil(t, err)
	assert.True(t, resp.IsEnabled)
	assert.Equal(t, int64(0), resp.SessionDuration)
	assert.Equal(t, int64(3600), resp.AllowanceSeconds)
	assert.Equal(t, int64(3600), resp.RemainingSeconds)
	repo.AssertExpectations(t)
}

func TestCheckStatus_SameDayLateEveningIsNotStale(t *testing.T) {
	ctx := context.Background()
	service, repo, scores := newTestService()

	scores.On("Fetch", ctx, "alice").Return(80.0, nil)
	repo.On("GetEngagement", ctx, "alice").Return(&entity.UserEngagement{
		EmployeeID:       "alice",
		LastSessionStart: time.Date(2025, 6, 10, 0, 5, 0, 0, time.UTC),
		SessionDuration:  600,
		IsEnabled:        true,
	}, noErr())
	repo.On("UpsertEngagement", ctx, mock.AnythingOfType("*entity.UserEngagement")).Return(noErr())

	resp, err := service.CheckStatus(ctx, "alice")

	require.Nil(t, err)
	assert.True(t, resp.IsEnabled)
	assert.Equal(t, int64(600), resp.SessionDuration)
	assert.Equal(t, int64(1200), resp.RemainingSeconds)
}

func TestCheckStatus_QuotaUsedUpDisables(t *testing.T) {
	ctx := context.Background()
	service, repo, scores := newTestService()

	scores.On("Fetch", ctx, "bob").Return(60.0, nil)
	repo.On("GetEngagement", ctx, "bob").Return(&entity.UserEngagement{
		EmployeeID:       "bob",
		LastSessionStart: fixedNow.Add(-time.Hour),
		SessionDuration:  900,
		IsEnabled:        true,
	}, noErr())
	repo.On("UpsertEngagement", ctx, mock.AnythingOfType("*entity.UserEngagement")).Return(noErr())

	resp, err := service.CheckStatus(ctx, "bob")

	require.Nil(t, err)
	assert.False(t, resp.IsEnabled)
	assert.Equal(t, int64(0), resp.RemainingSeconds)
}

func TestCheckStatus_ScoreFailureFailsOpenToLowestTier(t *testing.T) {
	ctx := context.Background()
	service, repo, scores := newTestService()

	scores.On("Fetch", ctx, "erin").Return(0.0, errors.New("timeout"))
	repo.On("GetEngagement", ctx, "erin").Return((*entity.UserEngagement)(nil), noErr())
	repo.On("UpsertEngagement", ctx, mock.AnythingOfType("*entity.UserEngagement")).Return(noErr())

	resp, err := service.CheckStatus(ctx, "erin")

	require.Nil(t, err)
	assert.Equal(t, 0.0, resp.ProductivityScore)
	assert.Equal(t, int64(900), resp.AllowanceSeconds)
	assert.True(t, resp.IsEnabled)
	assert.Equal(t, "erin", resp.EmployeeID)
}

func TestCheckStatus_RepoError(t *testing.T) {
	ctx := context.Background()
	service, repo, scores := newTestService()

	scores.On("Fetch", ctx, "erin").Return(50.0, nil)
	repo.On("GetEngagement", ctx, "erin").Return((*entity.UserEngagement)(nil), app_errors.Internal(assert.AnError))

	resp, err := service.CheckStatus(ctx, "erin")

	assert.Nil(t, resp)
	require.NotNil(t, err)
	assert.Equal(t, 500, err.Code)
	repo.AssertNotCalled(t, "UpsertEngagement", mock.Anything, mock.Anything)
}

func TestToggleStatus(t *testing.T) {
	ctx := context.Background()
	service, repo, scores := newTestService()

	scores.On("Fetch", ctx, "alice").Return(95.0, nil)
	repo.On("GetEngagement", ctx, "alice").Return(&entity.UserEngagement{
		EmployeeID:       "alice",
		LastSessionStart: fixedNow,
		IsEnabled:        true,
	}, noErr())
	repo.On("UpsertEngagement", ctx, mock.MatchedBy(func(e *entity.UserEngagement) bool {
		return !e.IsEnabled
	})).Return(noErr())

	resp, err := service.ToggleStatus(ctx, "alice", false)

	require.Nil(t, err)
	assert.False(t, resp.IsEnabled)
	repo.AssertExpectations(t)
}

func TestRecordPlayTime_PersistsVerbatim(t *testing.T) {
	ctx := context.Background()
	service, repo, scores := newTestService()

	scores.On("Fetch", ctx, "alice").Return(80.0, nil)
	repo.On("GetEngagement", ctx, "alice").Return(&entity.UserEngagement{
		EmployeeID:       "alice",
		LastSessionStart: fixedNow,
		SessionDuration:  300,
		IsEnabled:        true,
	}, noErr())
	repo.On("UpsertEngagement", ctx, mock.MatchedBy(func(e *entity.UserEngagement) bool {
		return e.SessionDuration == 120
	})).Return(noErr())

	resp, err := service.RecordPlayTime(ctx, "alice", 120)

	require.Nil(t, err)
	assert.Equal(t, int64(120), resp.SessionDuration)
	assert.Equal(t, int64(1680), resp.RemainingSeconds)
	assert.True(t, resp.IsEnabled)
}

func TestRecordPlayTime_OverAllowanceDisables(t *testing.T) {
	ctx := context.Background()
	service, repo, scores := newTestService()

	scores.On("Fetch", ctx, "bob").Return(10.0, nil)
	repo.On("GetEngagement", ctx, "bob").Return((*entity.UserEngagement)(nil), noErr())
	repo.On("UpsertEngagement", ctx, mock.AnythingOfType("*entity.UserEngagement")).Return(noErr())

	resp, err := service.RecordPlayTime(ctx, "bob", 1000)

	require.Nil(t, err)
	assert.False(t, resp.IsEnabled)
	assert.Equal(t, int64(0), resp.RemainingSeconds)
}

func TestRecordPlayTime_SmallerReportDoesNotReEnable(t *testing.T) {
	ctx := context.Background()
	service, repo, scores := newTestService()

	scores.On("Fetch", ctx, "bob").Return(10.0, nil)
	repo.On("GetEngagement", ctx, "bob").Return(&entity.UserEngagement{
		EmployeeID:       "bob",
		LastSessionStart: fixedNow.Add(-2 * time.Hour),
		SessionDuration:  1000,
		IsEnabled:        false,
	}, noErr())
	repo.On("UpsertEngagement", ctx, mock.AnythingOfType("*entity.UserEngagement")).Return(noErr())

	resp, err := service.RecordPlayTime(ctx, "bob", 100)

	require.Nil(t, err)
	assert.False(t, resp.IsEnabled)
	assert.Equal(t, int64(800), resp.RemainingSeconds)

	saved := repo.Calls[1].Arguments.Get(1).(*entity.UserEngagement)
	assert.Equal(t, int64(100), saved.SessionDuration)
	assert.False(t, saved.IsEnabled)
}

package hub_case

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	hub_dto "github.com/virtutask/virtutask-api/internal/dtos/hub-dto"
	"github.com/virtutask/virtutask-api/internal/entity"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
	engagement_repo "github.com/virtutask/virtutask-api/internal/repo/engagement-repo"
	"github.com/virtutask/virtutask-api/internal/score"
)

type HubService struct {
	repo  engagement_repo.EngagementRepoContract
	score score.Client
	loc   *time.Location
	now   func() time.Time
}

func NewHubService(db *pgxpool.Pool, scoreClient score.Client, loc *time.Location) HubServiceContract {
	return &HubService{
		repo:  engagement_repo.NewEngagementRepo(db),
		score: scoreClient,
		loc:   loc,
		now:   time.Now,
	}
}

func (s *HubService) CheckStatus(ctx context.Context, employeeID string) (*hub_dto.HubStatusResponse, *app_errors.AppError) {
	productivity := s.fetchScore(ctx, employeeID)
	allowance := AllowanceFor(productivity)

	engagement, err := s.load(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if !resetIfStale(engagement, s.now(), s.loc) && Remaining(allowance, engagement.SessionDuration) <= 0 {
		engagement.IsEnabled = false
	}

	if err := s.save(ctx, engagement); err != nil {
		return nil, err
	}
	return toStatusResponse(engagement, productivity, allowance), nil
}

func (s *HubService) ToggleStatus(ctx context.Context, employeeID string, enabled bool) (*hub_dto.HubStatusResponse, *app_errors.AppError) {
	productivity := s.fetchScore(ctx, employeeID)
	allowance := AllowanceFor(productivity)

	engagement, err := s.load(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	resetIfStale(engagement, s.now(), s.loc)
	engagement.IsEnabled = enabled

	if err := s.save(ctx, engagement); err != nil {
		return nil, err
	}
	return toStatusResponse(engagement, productivity, allowance), nil
}

// RecordPlayTime übernimmt den vom Client gemeldeten Wert unverändert.
func (s *HubService) RecordPlayTime(ctx context.Context, employeeID string, elapsedSeconds int64) (*hub_dto.HubStatusResponse, *app_errors.AppError) {
	productivity := s.fetchScore(ctx, employeeID)
	allowance := AllowanceFor(productivity)

	engagement, err := s.load(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	resetIfStale(engagement, s.now(), s.loc)
	engagement.SessionDuration = elapsedSeconds
	if Remaining(allowance, elapsedSeconds) <= 0 {
		engagement.IsEnabled = false
	}

	if err := s.save(ctx, engagement); err != nil {
		return nil, err
	}
	return toStatusResponse(engagement, productivity, allowance), nil
}

// fetchScore: jeder Fehler zählt als Score 0.
func (s *HubService) fetchScore(ctx context.Context, employeeID string) float64 {
	productivity, err := s.score.Fetch(ctx, employeeID)
	if err != nil {
		log.Warn().Err(err).Str("employee_id", employeeID).Msg("Produktivitäts-Score nicht verfügbar, nutze 0")
		return 0
	}
	return productivity
}

func (s *HubService) load(ctx context.Context, employeeID string) (*entity.UserEngagement, *app_errors.AppError) {
	engagement, err := s.repo.GetEngagement(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if engagement == nil {
		engagement = &entity.UserEngagement{
			EmployeeID:       employeeID,
			LastSessionStart: s.now(),
			IsEnabled:        true,
		}
	}
	return engagement, nil
}

func (s *HubService) save(ctx context.Context, engagement *entity.UserEngagement) *app_errors.AppError {
	engagement.UpdatedAt = s.now().UTC()
	if err := s.repo.UpsertEngagement(ctx, engagement); err != nil {
		log.Error().Err(err).Str("employee_id", engagement.EmployeeID).Msg("Engagement konnte nicht gespeichert werden")
		return err
	}
	return nil
}

func toStatusResponse(e *entity.UserEngagement, productivity float64, allowance int64) *hub_dto.HubStatusResponse {
	return &hub_dto.HubStatusResponse{
		EmployeeID:        e.EmployeeID,
		IsEnabled:         e.IsEnabled,
		ProductivityScore: productivity,
		AllowanceSeconds:  allowance,
		SessionDuration:   e.SessionDuration,
		RemainingSeconds:  max(Remaining(allowance, e.SessionDuration), 0),
		LastSessionStart:  e.LastSessionStart,
	}
}

package reward_case

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	reward_dto "github.com/virtutask/virtutask-api/internal/dtos/reward-dto"
	"github.com/virtutask/virtutask-api/internal/entity"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
	"github.com/virtutask/virtutask-api/internal/queue"
	reward_repo "github.com/virtutask/virtutask-api/internal/repo/reward-repo"
	"github.com/virtutask/virtutask-api/internal/score"
	"github.com/virtutask/virtutask-api/internal/utils"
	worker_task "github.com/virtutask/virtutask-api/internal/worker/tasks"
)

type RewardService struct {
	repo  reward_repo.RewardRepoContract
	score score.Client
	queue queue.TaskQueueClient
	loc   *time.Location
	now   func() time.Time
}

func NewRewardService(db *pgxpool.Pool, scoreClient score.Client, taskQueue queue.TaskQueueClient, loc *time.Location) RewardServiceContract {
	return &RewardService{
		repo:  reward_repo.NewRewardRepo(db),
		score: scoreClient,
		queue: taskQueue,
		loc:   loc,
		now:   time.Now,
	}
}

func (s *RewardService) CreateGameReward(ctx context.Context, caller *entity.Account, req *reward_dto.CreateGameRequest) (*reward_dto.RewardResponse, *app_errors.AppError) {
	var productivity float64
	if req.ProductivityScore != nil {
		productivity = *req.ProductivityScore
	} else {
		productivity = s.fetchScore(ctx, caller.ID)
	}

	return s.grant(ctx, caller, GameTimeGrant(productivity), productivity)
}

func (s *RewardService) CreateMonthlyReward(ctx context.Context, caller *entity.Account, req *reward_dto.CreateMonthlyRequest) (*reward_dto.RewardResponse, *app_errors.AppError) {
	var average float64
	if len(req.Scores) > 0 {
		average = Average(req.Scores)
	} else {
		average = s.fetchScore(ctx, caller.ID)
	}

	g, ok := MonthlyGrant(average)
	if !ok {
		log.Debug().Str("employee_id", caller.ID).Float64("average", average).Msg("keine Monatsbelohnung")
		return nil, nil
	}
	return s.grant(ctx, caller, g, average)
}

func (s *RewardService) ListGameTime(ctx context.Context, employeeID, date string) ([]*reward_dto.RewardResponse, *app_errors.AppError) {
	day := s.now().In(s.loc)
	if date != "" {
		parsed, err := time.ParseInLocation(utils.DateLayout, date, s.loc)
		if err != nil {
			return nil, app_errors.NewAppError(400, app_errors.ErrInvalidQuery, "validation.date", err)
		}
		day = parsed
	}

	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, s.loc)
	to := from.AddDate(0, 0, 1)

	return s.list(ctx, entity.RewardFilter{
		EmployeeID: &employeeID,
		Types:      []string{entity.RewardGameTime},
		From:       &from,
		To:         &to,
	})
}

func (s *RewardService) ListMonthly(ctx context.Context, employeeID, month string) ([]*reward_dto.RewardResponse, *app_errors.AppError) {
	ref := s.now().In(s.loc)
	if month != "" {
		parsed, err := time.ParseInLocation("2006-01", month, s.loc)
		if err != nil {
			return nil, app_errors.NewAppError(400, app_errors.ErrInvalidQuery, "validation.date", err)
		}
		ref = parsed
	}

	from := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, s.loc)
	to := from.AddDate(0, 1, 0)

	return s.list(ctx, entity.RewardFilter{
		EmployeeID: &employeeID,
		Types:      entity.MonthlyRewardTypes,
		From:       &from,
		To:         &to,
	})
}

// ListRewards ist der Admin-Filter. Ein reines Datum bei "to" schließt den ganzen Tag ein.
func (s *RewardService) ListRewards(ctx context.Context, q *reward_dto.RewardFilterQuery) ([]*reward_dto.RewardResponse, *app_errors.AppError) {
	var filter entity.RewardFilter
	if q.EmployeeID != "" {
		filter.EmployeeID = &q.EmployeeID
	}
	if q.RewardType != "" {
		filter.Types = []string{q.RewardType}
	}
	if q.From != "" {
		from, err := utils.ParseFlexibleDate(q.From)
		if err != nil {
			return nil, app_errors.NewAppError(400, app_errors.ErrInvalidQuery, "validation.date", err)
		}
		filter.From = &from
	}
	if q.To != "" {
		to, err := utils.ParseFlexibleDate(q.To)
		if err != nil {
			return nil, app_errors.NewAppError(400, app_errors.ErrInvalidQuery, "validation.date", err)
		}
		if len(q.To) == len(utils.DateLayout) {
			to = to.AddDate(0, 0, 1)
		}
		filter.To = &to
	}

	return s.list(ctx, filter)
}

func (s *RewardService) GetReward(ctx context.Context, caller *entity.Account, rewardID string) (*reward_dto.RewardResponse, *app_errors.AppError) {
	reward, err := s.repo.GetRewardByID(ctx, rewardID)
	if err != nil {
		return nil, err
	}
	if reward.EmployeeID != caller.ID && caller.Role != entity.RoleAdmin {
		return nil, app_errors.Forbidden("forbidden.not_reward_owner")
	}
	return reward_dto.ToRewardResponse(reward), nil
}

func (s *RewardService) grant(ctx context.Context, caller *entity.Account, g Grant, points float64) (*reward_dto.RewardResponse, *app_errors.AppError) {
	rewardID, uuidErr := uuid.NewV7()
	if uuidErr != nil {
		return nil, app_errors.Internal(uuidErr)
	}

	reward := &entity.Reward{
		ID:           rewardID.String(),
		EmployeeID:   caller.ID,
		RewardType:   g.Type,
		RewardAmount: g.Amount,
		RewardUnit:   g.Unit,
		Description:  g.Description,
		Date:         s.now().UTC(),
		Points:       points,
	}

	if err := s.repo.InsertReward(ctx, reward); err != nil {
		log.Error().Err(err).Str("employee_id", caller.ID).Msg("Belohnung konnte nicht gespeichert werden")
		return nil, err
	}

	s.notify(caller, reward)
	return reward_dto.ToRewardResponse(reward), nil
}

// notify: ohne E-Mail-Adresse keine Benachrichtigung, Fehler nur loggen.
func (s *RewardService) notify(caller *entity.Account, reward *entity.Reward) {
	if caller.Email == "" {
		return
	}

	payload := &worker_task.RewardGrantedPayload{
		RewardID:     reward.ID,
		EmployeeID:   reward.EmployeeID,
		Email:        caller.Email,
		Username:     caller.Username,
		RewardType:   reward.RewardType,
		RewardAmount: reward.RewardAmount,
		RewardUnit:   reward.RewardUnit,
		Description:  reward.Description,
		Points:       reward.Points,
		GrantedAt:    reward.Date,
	}
	if err := s.queue.EnqueueRewardGranted(payload); err != nil {
		log.Error().Err(err).Str("reward_id", reward.ID).Msg("Belohnungs-Mail konnte nicht eingereiht werden")
	}
}

func (s *RewardService) fetchScore(ctx context.Context, employeeID string) float64 {
	productivity, err := s.score.Fetch(ctx, employeeID)
	if err != nil {
		log.Warn().Err(err).Str("employee_id", employeeID).Msg("Produktivitäts-Score nicht verfügbar, nutze 0")
		return 0
	}
	return productivity
}

func (s *RewardService) list(ctx context.Context, filter entity.RewardFilter) ([]*reward_dto.RewardResponse, *app_errors.AppError) {
	rewards, err := s.repo.ListRewards(ctx, filter)
	if err != nil {
		return nil, err
	}
	return reward_dto.ToRewardResponses(rewards), nil
}

package engagement_repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/virtutask/virtutask-api/internal/entity"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
)

type EngagementRepo struct {
	db *pgxpool.Pool
}

func NewEngagementRepo(db *pgxpool.Pool) EngagementRepoContract {
	return &EngagementRepo{
		db: db,
	}
}

func (r *EngagementRepo) GetEngagement(ctx context.Context, employeeID string) (*entity.UserEngagement, *app_errors.AppError) {
	query := `
	SELECT employee_id, last_session_start, session_duration, is_enabled, updated_at
	FROM user_engagement
	WHERE employee_id = $1;
	`
	var e entity.UserEngagement
	err := r.db.QueryRow(ctx, query, employeeID).Scan(&e.EmployeeID, &e.LastSessionStart, &e.SessionDuration, &e.IsEnabled, &e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, app_errors.Internal(err)
	}
	return &e, nil
}

func (r *EngagementRepo) UpsertEngagement(ctx context.Context, e *entity.UserEngagement) *app_errors.AppError {
	query := `
	INSERT INTO user_engagement (employee_id, last_session_start, session_duration, is_enabled, updated_at)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (employee_id) DO UPDATE
	SET last_session_start = EXCLUDED.last_session_start,
		session_duration = EXCLUDED.session_duration,
		is_enabled = EXCLUDED.is_enabled,
		updated_at = EXCLUDED.updated_at;
	`
	if _, err := r.db.Exec(ctx, query, e.EmployeeID, e.LastSessionStart, e.SessionDuration, e.IsEnabled, e.UpdatedAt); err != nil {
		return app_errors.MapPgxError(err)
	}
	return nil
}

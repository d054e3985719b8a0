package reward_repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/virtutask/virtutask-api/internal/entity"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
)

type RewardRepo struct {
	db *pgxpool.Pool
}

func NewRewardRepo(db *pgxpool.Pool) RewardRepoContract {
	return &RewardRepo{
		db: db,
	}
}

const rewardColumns = `id, employee_id, reward_type, reward_amount, reward_unit, description, date, points`

func scanReward(row pgx.Row) (*entity.Reward, error) {
	var rw entity.Reward
	if err := row.Scan(&rw.ID, &rw.EmployeeID, &rw.RewardType, &rw.RewardAmount, &rw.RewardUnit, &rw.Description, &rw.Date, &rw.Points); err != nil {
		return nil, err
	}
	return &rw, nil
}

func (r *RewardRepo) InsertReward(ctx context.Context, rw *entity.Reward) *app_errors.AppError {
	query := `
	INSERT INTO rewards (` + rewardColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	if _, err := r.db.Exec(ctx, query, rw.ID, rw.EmployeeID, rw.RewardType, rw.RewardAmount, rw.RewardUnit, rw.Description, rw.Date, rw.Points); err != nil {
		return app_errors.MapPgxError(err)
	}
	return nil
}

func (r *RewardRepo) GetRewardByID(ctx context.Context, rewardID string) (*entity.Reward, *app_errors.AppError) {
	query := `SELECT ` + rewardColumns + ` FROM rewards WHERE id = $1;`

	rw, err := scanReward(r.db.QueryRow(ctx, query, rewardID))
	if err != nil {
		return nil, app_errors.MapPgxError(err, "reward_not_found")
	}
	return rw, nil
}

// ListRewards baut die WHERE-Klausel dynamisch aus dem Filter. From ist inklusiv, To exklusiv.
func (r *RewardRepo) ListRewards(ctx context.Context, filter entity.RewardFilter) ([]entity.Reward, *app_errors.AppError) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.EmployeeID != nil {
		add("employee_id = $%d", *filter.EmployeeID)
	}
	if len(filter.Types) > 0 {
		add("reward_type = ANY($%d)", filter.Types)
	}
	if filter.From != nil {
		add("date >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("date < $%d", *filter.To)
	}

	query := `SELECT ` + rewardColumns + ` FROM rewards`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY date DESC;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, app_errors.Internal(err)
	}
	defer rows.Close()

	rewards := make([]entity.Reward, 0)
	for rows.Next() {
		rw, err := scanReward(rows)
		if err != nil {
			return nil, app_errors.Internal(err)
		}
		rewards = append(rewards, *rw)
	}
	if err := rows.Err(); err != nil {
		return nil, app_errors.Internal(err)
	}
	return rewards, nil
}

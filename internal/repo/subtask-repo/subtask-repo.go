package subtask_repo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/virtutask/virtutask-api/internal/abstraction/tx"
	"github.com/virtutask/virtutask-api/internal/entity"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
)

type SubtaskRepo struct {
	db *pgxpool.Pool
}

func NewSubtaskRepo(db *pgxpool.Pool) SubtaskRepoContract {
	return &SubtaskRepo{
		db: db,
	}
}

const subtaskColumns = `id, task_id, project_id, assignee_id, text, created_at, updated_at`

func scanSubtask(row pgx.Row) (*entity.Subtask, error) {
	var s entity.Subtask
	if err := row.Scan(&s.ID, &s.TaskID, &s.ProjectID, &s.AssigneeID, &s.Text, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SubtaskRepo) InsertSubtask(ctx context.Context, s *entity.Subtask) *app_errors.AppError {
	query := `
	INSERT INTO subtasks (id, task_id, project_id, assignee_id, text, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	if _, err := r.db.Exec(ctx, query, s.ID, s.TaskID, s.ProjectID, s.AssigneeID, s.Text, s.CreatedAt, s.UpdatedAt); err != nil {
		return app_errors.MapPgxError(err)
	}
	return nil
}

func (r *SubtaskRepo) GetSubtask(ctx context.Context, taskID, subtaskID string) (*entity.Subtask, *app_errors.AppError) {
	query := `SELECT ` + subtaskColumns + ` FROM subtasks WHERE id = $1 AND task_id = $2;`

	s, err := scanSubtask(r.db.QueryRow(ctx, query, subtaskID, taskID))
	if err != nil {
		return nil, app_errors.MapPgxError(err, "subtask_not_found")
	}
	return s, nil
}

func (r *SubtaskRepo) ListSubtasksForAssignee(ctx context.Context, taskID, assigneeID string) ([]entity.Subtask, *app_errors.AppError) {
	query := `SELECT ` + subtaskColumns + ` FROM subtasks WHERE task_id = $1 AND assignee_id = $2 ORDER BY created_at ASC;`

	rows, err := r.db.Query(ctx, query, taskID, assigneeID)
	if err != nil {
		return nil, app_errors.Internal(err)
	}
	defer rows.Close()

	subtasks := make([]entity.Subtask, 0)
	for rows.Next() {
		s, err := scanSubtask(rows)
		if err != nil {
			return nil, app_errors.Internal(err)
		}
		subtasks = append(subtasks, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, app_errors.Internal(err)
	}
	return subtasks, nil
}

func (r *SubtaskRepo) UpdateSubtaskText(ctx context.Context, subtaskID, text string) (*entity.Subtask, *app_errors.AppError) {
	query := `
	UPDATE subtasks SET text = $2, updated_at = now()
	WHERE id = $1
	RETURNING ` + subtaskColumns + `;
	`
	s, err := scanSubtask(r.db.QueryRow(ctx, query, subtaskID, text))
	if err != nil {
		return nil, app_errors.MapPgxError(err, "subtask_not_found")
	}
	return s, nil
}

func (r *SubtaskRepo) DeleteSubtask(ctx context.Context, subtaskID string) *app_errors.AppError {
	tag, err := r.db.Exec(ctx, `DELETE FROM subtasks WHERE id = $1;`, subtaskID)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NotFound("subtask_not_found")
	}
	return nil
}

// DeleteSubtasksByTask läuft in der Transaktion, die auch die Aufgabe löscht.
func (r *SubtaskRepo) DeleteSubtasksByTask(ctx context.Context, t tx.Tx, taskID string) (int64, *app_errors.AppError) {
	query := `DELETE FROM subtasks WHERE task_id = $1;`

	var (
		tag pgconn.CommandTag
		err error
	)
	if t != nil {
		pgxTx, appErr := tx.PgxFrom(t)
		if appErr != nil {
			return 0, appErr
		}
		tag, err = pgxTx.Exec(ctx, query, taskID)
	} else {
		tag, err = r.db.Exec(ctx, query, taskID)
	}
	if err != nil {
		return 0, app_errors.MapPgxError(err)
	}
	return tag.RowsAffected(), nil
}

// DeleteOrphanSubtasks entfernt Unteraufgaben, deren Aufgabe nicht mehr existiert.
func (r *SubtaskRepo) DeleteOrphanSubtasks(ctx context.Context) (int64, *app_errors.AppError) {
	query := `
	DELETE FROM subtasks s
	WHERE NOT EXISTS (SELECT 1 FROM tasks t WHERE t.id = s.task_id);
	`
	tag, err := r.db.Exec(ctx, query)
	if err != nil {
		return 0, app_errors.Internal(err)
	}
	return tag.RowsAffected(), nil
}

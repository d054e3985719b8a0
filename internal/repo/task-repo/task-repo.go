package task_repo

import (
	"context"

	json "github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/virtutask/virtutask-api/internal/abstraction/tx"
	"github.com/virtutask/virtutask-api/internal/entity"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
)

type TaskRepo struct {
	db *pgxpool.Pool
}

func NewTaskRepo(db *pgxpool.Pool) TaskRepoContract {
	return &TaskRepo{
		db: db,
	}
}

const taskColumns = `id, name, due_date, priority, status, description, project_id, assignees, attachments, comments, created_by, created_at, updated_at`

func scanTask(row pgx.Row) (*entity.Task, error) {
	var t entity.Task
	var assignees, attachments, comments []byte
	if err := row.Scan(
		&t.ID, &t.Name, &t.DueDate, &t.Priority, &t.Status, &t.Description, &t.ProjectID,
		&assignees, &attachments, &comments, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(assignees, &t.Assignees); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(attachments, &t.Attachments); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(comments, &t.Comments); err != nil {
		return nil, err
	}
	return &t, nil
}

// jsonList serialisiert nil als [] statt null.
func jsonList[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	return json.Marshal(items)
}

func encodeLists(t *entity.Task) (assignees, attachments, comments []byte, err error) {
	if assignees, err = jsonList(t.Assignees); err != nil {
		return
	}
	if attachments, err = jsonList(t.Attachments); err != nil {
		return
	}
	comments, err = jsonList(t.Comments)
	return
}

func (r *TaskRepo) InsertTask(ctx context.Context, t *entity.Task) *app_errors.AppError {
	assignees, attachments, comments, err := encodeLists(t)
	if err != nil {
		return app_errors.Internal(err)
	}

	query := `
	INSERT INTO tasks (id, name, due_date, priority, status, description, project_id, assignees, attachments, comments, created_by, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb, $9::jsonb, $10::jsonb, $11, $12, $13);
	`
	if _, err := r.db.Exec(ctx, query,
		t.ID, t.Name, t.DueDate, t.Priority, t.Status, t.Description, t.ProjectID,
		string(assignees), string(attachments), string(comments), t.CreatedBy, t.CreatedAt, t.UpdatedAt,
	); err != nil {
		return app_errors.MapPgxError(err)
	}
	return nil
}

func (r *TaskRepo) GetTask(ctx context.Context, projectID, taskID string) (*entity.Task, *app_errors.AppError) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND project_id = $2;`

	t, err := scanTask(r.db.QueryRow(ctx, query, taskID, projectID))
	if err != nil {
		return nil, app_errors.MapPgxError(err, "task_not_found")
	}
	return t, nil
}

func (r *TaskRepo) ListTasksByProject(ctx context.Context, projectID string) ([]entity.Task, *app_errors.AppError) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = $1 ORDER BY created_at ASC;`
	return r.list(ctx, query, projectID)
}

// tasksForAccountFilter: Ersteller ODER Assignee (JSONB-Containment auf {"user": $1}).
const tasksForAccountFilter = `created_by = $1 OR assignees @> jsonb_build_array(jsonb_build_object('user', $1::text))`

// ListTasksForAccount: Ersteller ODER Assignee.
func (r *TaskRepo) ListTasksForAccount(ctx context.Context, accountID string) ([]entity.Task, *app_errors.AppError) {
	query := `
	SELECT ` + taskColumns + `
	FROM tasks
	WHERE ` + tasksForAccountFilter + `
	ORDER BY due_date ASC;
	`
	return r.list(ctx, query, accountID)
}

func (r *TaskRepo) list(ctx context.Context, query string, args ...any) ([]entity.Task, *app_errors.AppError) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, app_errors.Internal(err)
	}
	defer rows.Close()

	tasks := make([]entity.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, app_errors.Internal(err)
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, app_errors.Internal(err)
	}
	return tasks, nil
}

// UpdateTask schreibt das ganze Dokument zurück (last write wins).
func (r *TaskRepo) UpdateTask(ctx context.Context, t *entity.Task) *app_errors.AppError {
	assignees, attachments, comments, err := encodeLists(t)
	if err != nil {
		return app_errors.Internal(err)
	}

	query := `
	UPDATE tasks
	SET name = $3, due_date = $4, priority = $5, status = $6, description = $7,
		assignees = $8::jsonb, attachments = $9::jsonb, comments = $10::jsonb, updated_at = $11
	WHERE id = $1 AND project_id = $2;
	`
	tag, err := r.db.Exec(ctx, query,
		t.ID, t.ProjectID, t.Name, t.DueDate, t.Priority, t.Status, t.Description,
		string(assignees), string(attachments), string(comments), t.UpdatedAt,
	)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NotFound("task_not_found")
	}
	return nil
}

func (r *TaskRepo) DeleteTask(ctx context.Context, t tx.Tx, projectID, taskID string) *app_errors.AppError {
	pgxTx, appErr := tx.PgxFrom(t)
	if appErr != nil {
		return appErr
	}

	tag, err := pgxTx.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND project_id = $2;`, taskID, projectID)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NotFound("task_not_found")
	}
	return nil
}

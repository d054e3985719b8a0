package project_repo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/virtutask/virtutask-api/internal/entity"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
)

type ProjectRepo struct {
	db *pgxpool.Pool
}

func NewProjectRepo(db *pgxpool.Pool) ProjectRepoContract {
	return &ProjectRepo{
		db: db,
	}
}

const projectColumns = `id, name, description, start_date, due_date, status, department, priority, members, created_by, created_at, updated_at`

func scanProject(row pgx.Row) (*entity.Project, error) {
	var p entity.Project
	if err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.StartDate, &p.DueDate, &p.Status,
		&p.Department, &p.Priority, &p.Members, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepo) InsertProject(ctx context.Context, p *entity.Project) *app_errors.AppError {
	query := `
	INSERT INTO projects (id, name, description, start_date, due_date, status, department, priority, members, created_by, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	if _, err := r.db.Exec(ctx, query,
		p.ID, p.Name, p.Description, p.StartDate, p.DueDate, p.Status,
		p.Department, p.Priority, membersOrEmpty(p.Members), p.CreatedBy, p.CreatedAt, p.UpdatedAt,
	); err != nil {
		return app_errors.MapPgxError(err)
	}
	return nil
}

func (r *ProjectRepo) GetProjectByID(ctx context.Context, projectID string) (*entity.Project, *app_errors.AppError) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1;`

	p, err := scanProject(r.db.QueryRow(ctx, query, projectID))
	if err != nil {
		return nil, app_errors.MapPgxError(err, "project_not_found")
	}
	return p, nil
}

// projectsForAccountFilter: Mitglied ODER Ersteller.
const projectsForAccountFilter = `created_by = $1 OR $1 = ANY(members)`

// ListProjectsForAccount liefert Projekte, in denen accountID Mitglied ODER Ersteller ist.
func (r *ProjectRepo) ListProjectsForAccount(ctx context.Context, accountID string) ([]entity.Project, *app_errors.AppError) {
	query := `
	SELECT ` + projectColumns + `
	FROM projects
	WHERE ` + projectsForAccountFilter + `
	ORDER BY created_at DESC;
	`

	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, app_errors.Internal(err)
	}
	defer rows.Close()

	projects := make([]entity.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, app_errors.Internal(err)
		}
		projects = append(projects, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.Internal(err)
	}

	return projects, nil
}

// UpdateProject überschreibt alle veränderlichen Felder. created_by bleibt unangetastet.
func (r *ProjectRepo) UpdateProject(ctx context.Context, p *entity.Project) *app_errors.AppError {
	query := `
	UPDATE projects
	SET name = $2, description = $3, start_date = $4, due_date = $5, status = $6,
		department = $7, priority = $8, members = $9, updated_at = $10
	WHERE id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		p.ID, p.Name, p.Description, p.StartDate, p.DueDate, p.Status,
		p.Department, p.Priority, membersOrEmpty(p.Members), p.UpdatedAt,
	)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NotFound("project_not_found")
	}
	return nil
}

func (r *ProjectRepo) DeleteProject(ctx context.Context, projectID string) *app_errors.AppError {
	tag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1;`, projectID)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NotFound("project_not_found")
	}
	return nil
}

func membersOrEmpty(m []string) []string {
	if m == nil {
		return []string{}
	}
	return m
}

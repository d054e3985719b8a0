package project_case

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"github.com/virtutask/virtutask-api/internal/abstraction/cache"
	project_dto "github.com/virtutask/virtutask-api/internal/dtos/project-dto"
	"github.com/virtutask/virtutask-api/internal/entity"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
	"github.com/virtutask/virtutask-api/internal/realtime"
	project_repo "github.com/virtutask/virtutask-api/internal/repo/project-repo"
)

const projectCacheTTL = 5 * time.Minute

type ProjectService struct {
	repo        project_repo.ProjectRepoContract
	cache       cache.Cache
	broadcaster realtime.Broadcaster
}

func NewProjectService(db *pgxpool.Pool, c cache.Cache, b realtime.Broadcaster) ProjectServiceContract {
	return &ProjectService{
		repo:        project_repo.NewProjectRepo(db),
		cache:       c,
		broadcaster: b,
	}
}

func (s *ProjectService) CreateProject(ctx context.Context, userID string, req *project_dto.ProjectRequest) (*project_dto.ProjectResponse, *app_errors.AppError) {
	projectID, uuidErr := uuid.NewV7()
	if uuidErr != nil {
		return nil, app_errors.Internal(uuidErr)
	}

	now := time.Now().UTC()
	project := &entity.Project{
		ID:        projectID.String(),
		CreatedBy: userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := applyRequest(project, req); err != nil {
		return nil, err
	}

	if err := s.repo.InsertProject(ctx, project); err != nil {
		log.Error().Err(err).Str("project_id", project.ID).Msg("Projekt konnte nicht gespeichert werden")
		return nil, err
	}

	resp := project_dto.ToProjectResponse(project)
	realtime.PublishEach(ctx, s.broadcaster, project.Members, realtime.EventNewProject, resp)

	return resp, nil
}

func (s *ProjectService) ListMyProjects(ctx context.Context, userID string) ([]*project_dto.ProjectResponse, *app_errors.AppError) {
	projects, err := s.repo.ListProjectsForAccount(ctx, userID)
	if err != nil {
		return nil, err
	}
	return project_dto.ToProjectResponses(projects), nil
}

func (s *ProjectService) GetProject(ctx context.Context, userID, projectID string) (*project_dto.ProjectResponse, *app_errors.AppError) {
	project, err := s.loadProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if !project.CanView(userID) {
		return nil, app_errors.Forbidden("forbidden.not_project_member")
	}

	return project_dto.ToProjectResponse(project), nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, userID, projectID string, req *project_dto.ProjectRequest) (*project_dto.ProjectResponse, *app_errors.AppError) {
	project, err := s.loadProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if !project.IsCreator(userID) {
		return nil, app_errors.Forbidden("forbidden.not_project_creator")
	}

	if err := applyRequest(project, req); err != nil {
		return nil, err
	}
	project.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateProject(ctx, project); err != nil {
		return nil, err
	}
	s.invalidate(ctx, projectID)

	resp := project_dto.ToProjectResponse(project)
	realtime.PublishEach(ctx, s.broadcaster, project.Members, realtime.EventUpdatedProject, resp)

	return resp, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, userID, projectID string) (*project_dto.DeletedProjectResponse, *app_errors.AppError) {
	project, err := s.loadProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if !project.IsCreator(userID) {
		return nil, app_errors.Forbidden("forbidden.not_project_creator")
	}

	if err := s.repo.DeleteProject(ctx, projectID); err != nil {
		return nil, err
	}
	s.invalidate(ctx, projectID)

	resp := &project_dto.DeletedProjectResponse{ID: projectID}
	// Empfänger ist die Mitgliederliste vor dem Löschen
	realtime.PublishEach(ctx, s.broadcaster, project.Members, realtime.EventDeletedProject, resp)

	return resp, nil
}

// loadProject liest zuerst aus dem Cache. Cache-Fehler sind nie fatal.
func (s *ProjectService) loadProject(ctx context.Context, projectID string) (*entity.Project, *app_errors.AppError) {
	return cache.Remember(ctx, s.cache, projectCacheKey(projectID), projectCacheTTL, func(ctx context.Context) (*entity.Project, *app_errors.AppError) {
		return s.repo.GetProjectByID(ctx, projectID)
	})
}

func (s *ProjectService) invalidate(ctx context.Context, projectID string) {
	if err := s.cache.Del(ctx, projectCacheKey(projectID)); err != nil {
		log.Warn().Err(err).Str("project_id", projectID).Msg("Cache-Invalidierung fehlgeschlagen")
	}
}

package subtask_case

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	subtask_dto "github.com/virtutask/virtutask-api/internal/dtos/subtask-dto"
	"github.com/virtutask/virtutask-api/internal/entity"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
	project_repo "github.com/virtutask/virtutask-api/internal/repo/project-repo"
	subtask_repo "github.com/virtutask/virtutask-api/internal/repo/subtask-repo"
	task_repo "github.com/virtutask/virtutask-api/internal/repo/task-repo"
)

type SubtaskService struct {
	repo        subtask_repo.SubtaskRepoContract
	projectRepo project_repo.ProjectRepoContract
	taskRepo    task_repo.TaskRepoContract
}

func NewSubtaskService(db *pgxpool.Pool) SubtaskServiceContract {
	return &SubtaskService{
		repo:        subtask_repo.NewSubtaskRepo(db),
		projectRepo: project_repo.NewProjectRepo(db),
		taskRepo:    task_repo.NewTaskRepo(db),
	}
}

func (s *SubtaskService) CreateSubtask(ctx context.Context, userID, projectID, taskID string, req *subtask_dto.CreateSubtaskRequest) (*subtask_dto.SubtaskResponse, *app_errors.AppError) {
	if err := s.checkProjectAccess(ctx, userID, projectID, taskID); err != nil {
		return nil, err
	}

	subtaskID, uuidErr := uuid.NewV7()
	if uuidErr != nil {
		return nil, app_errors.Internal(uuidErr)
	}

	assigneeID := strings.TrimSpace(req.AssigneeID)
	if assigneeID == "" {
		assigneeID = userID
	}

	now := time.Now().UTC()
	subtask := &entity.Subtask{
		ID:         subtaskID.String(),
		TaskID:     taskID,
		ProjectID:  projectID,
		AssigneeID: assigneeID,
		Text:       strings.TrimSpace(req.Text),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.InsertSubtask(ctx, subtask); err != nil {
		return nil, err
	}
	return subtask_dto.ToSubtaskResponse(subtask), nil
}

// ListMySubtasks liefert nur die Unteraufgaben des Aufrufers.
func (s *SubtaskService) ListMySubtasks(ctx context.Context, userID, projectID, taskID string) ([]*subtask_dto.SubtaskResponse, *app_errors.AppError) {
	if err := s.checkProjectAccess(ctx, userID, projectID, taskID); err != nil {
		return nil, err
	}

	subtasks, err := s.repo.ListSubtasksForAssignee(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}
	return subtask_dto.ToSubtaskResponses(subtasks), nil
}

func (s *SubtaskService) GetSubtask(ctx context.Context, userID, projectID, taskID, subtaskID string) (*subtask_dto.SubtaskResponse, *app_errors.AppError) {
	subtask, err := s.assignedSubtask(ctx, userID, projectID, taskID, subtaskID)
	if err != nil {
		return nil, err
	}
	return subtask_dto.ToSubtaskResponse(subtask), nil
}

func (s *SubtaskService) UpdateSubtask(ctx context.Context, userID, projectID, taskID, subtaskID string, req *subtask_dto.UpdateSubtaskRequest) (*subtask_dto.SubtaskResponse, *app_errors.AppError) {
	if _, err := s.assignedSubtask(ctx, userID, projectID, taskID, subtaskID); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateSubtaskText(ctx, subtaskID, strings.TrimSpace(req.Text))
	if err != nil {
		return nil, err
	}
	return subtask_dto.ToSubtaskResponse(updated), nil
}

func (s *SubtaskService) DeleteSubtask(ctx context.Context, userID, projectID, taskID, subtaskID string) (*subtask_dto.DeletedSubtaskResponse, *app_errors.AppError) {
	if _, err := s.assignedSubtask(ctx, userID, projectID, taskID, subtaskID); err != nil {
		return nil, err
	}

	if err := s.repo.DeleteSubtask(ctx, subtaskID); err != nil {
		return nil, err
	}
	return &subtask_dto.DeletedSubtaskResponse{ID: subtaskID}, nil
}

// checkProjectAccess: 404 wenn Projekt oder Aufgabe fehlen, 403 für Nicht-Mitglieder.
func (s *SubtaskService) checkProjectAccess(ctx context.Context, userID, projectID, taskID string) *app_errors.AppError {
	project, err := s.projectRepo.GetProjectByID(ctx, projectID)
	if err != nil {
		return err
	}
	if _, err := s.taskRepo.GetTask(ctx, projectID, taskID); err != nil {
		return err
	}
	if !project.CanView(userID) {
		return app_errors.Forbidden("forbidden.not_project_member")
	}
	return nil
}

// assignedSubtask: auch der Projektersteller sieht fremde Unteraufgaben nicht.
func (s *SubtaskService) assignedSubtask(ctx context.Context, userID, projectID, taskID, subtaskID string) (*entity.Subtask, *app_errors.AppError) {
	if err := s.checkProjectAccess(ctx, userID, projectID, taskID); err != nil {
		return nil, err
	}

	subtask, err := s.repo.GetSubtask(ctx, taskID, subtaskID)
	if err != nil {
		return nil, err
	}
	if subtask.AssigneeID != userID {
		return nil, app_errors.Forbidden("forbidden.not_subtask_assignee")
	}
	return subtask, nil
}

package task_case

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"github.com/virtutask/virtutask-api/internal/abstraction/tx"
	task_dto "github.com/virtutask/virtutask-api/internal/dtos/task-dto"
	"github.com/virtutask/virtutask-api/internal/entity"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
	"github.com/virtutask/virtutask-api/internal/realtime"
	project_repo "github.com/virtutask/virtutask-api/internal/repo/project-repo"
	subtask_repo "github.com/virtutask/virtutask-api/internal/repo/subtask-repo"
	task_repo "github.com/virtutask/virtutask-api/internal/repo/task-repo"
	"github.com/virtutask/virtutask-api/internal/storage"
)

type TaskService struct {
	repo            task_repo.TaskRepoContract
	projectRepo     project_repo.ProjectRepoContract
	subtaskRepo     subtask_repo.SubtaskRepoContract
	txManager       tx.TxManager
	broadcaster     realtime.Broadcaster
	store           storage.FileStore
	cascadeSubtasks bool
}

func NewTaskService(db *pgxpool.Pool, b realtime.Broadcaster, store storage.FileStore, cascadeSubtasks bool) TaskServiceContract {
	return &TaskService{
		repo:            task_repo.NewTaskRepo(db),
		projectRepo:     project_repo.NewProjectRepo(db),
		subtaskRepo:     subtask_repo.NewSubtaskRepo(db),
		txManager:       tx.NewPgxTxManager(db),
		broadcaster:     b,
		store:           store,
		cascadeSubtasks: cascadeSubtasks,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, userID, projectID string, req *task_dto.TaskRequest) (*task_dto.TaskResponse, *app_errors.AppError) {
	// Nur Existenz des Projekts, keine Mitgliedschaft
	if _, err := s.projectRepo.GetProjectByID(ctx, projectID); err != nil {
		return nil, err
	}

	taskID, uuidErr := uuid.NewV7()
	if uuidErr != nil {
		return nil, app_errors.Internal(uuidErr)
	}

	now := time.Now().UTC()
	task := &entity.Task{
		ID:          taskID.String(),
		ProjectID:   projectID,
		Priority:    defaultTaskPriority,
		Status:      defaultTaskStatus,
		Assignees:   entity.ReconcileAssignees(nil, toAssignees(req.Assignees)),
		Attachments: []entity.Attachment{},
		Comments:    []entity.Comment{},
		CreatedBy:   userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := applyTaskRequest(task, req); err != nil {
		return nil, err
	}
	task.ApplyDerivedStatus()

	if err := s.repo.InsertTask(ctx, task); err != nil {
		log.Error().Err(err).Str("project_id", projectID).Msg("Aufgabe konnte nicht gespeichert werden")
		return nil, err
	}

	resp := task_dto.ToTaskResponse(task)
	realtime.PublishEach(ctx, s.broadcaster, task.AssigneeIDs(), realtime.EventTaskCreated, resp)

	return resp, nil
}

func (s *TaskService) ListProjectTasks(ctx context.Context, userID, projectID string) ([]*task_dto.TaskResponse, *app_errors.AppError) {
	project, err := s.projectRepo.GetProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !project.CanView(userID) {
		return nil, app_errors.Forbidden("forbidden.not_project_member")
	}

	tasks, err := s.repo.ListTasksByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return task_dto.ToTaskResponses(tasks), nil
}

func (s *TaskService) ListMyTasks(ctx context.Context, userID string) ([]*task_dto.TaskResponse, *app_errors.AppError) {
	tasks, err := s.repo.ListTasksForAccount(ctx, userID)
	if err != nil {
		return nil, err
	}
	return task_dto.ToTaskResponses(tasks), nil
}

func (s *TaskService) GetTask(ctx context.Context, userID, projectID, taskID string) (*task_dto.TaskResponse, *app_errors.AppError) {
	task, err := s.repo.GetTask(ctx, projectID, taskID)
	if err != nil {
		return nil, err
	}
	if !task.CanView(userID) {
		return nil, forbiddenNotParticipant()
	}
	return task_dto.ToTaskResponse(task), nil
}

func (s *TaskService) UpdateTask(ctx context.Context, userID, projectID, taskID string, req *task_dto.TaskRequest) (*task_dto.TaskResponse, *app_errors.AppError) {
	task, err := s.repo.GetTask(ctx, projectID, taskID)
	if err != nil {
		return nil, err
	}
	if !task.IsCreator(userID) {
		return nil, forbiddenNotCreator()
	}

	if err := applyTaskRequest(task, req); err != nil {
		return nil, err
	}
	// Fehlt die Liste im Body, bleiben die Assignees unverändert.
	if req.Assignees != nil {
		task.Assignees = entity.ReconcileAssignees(task.Assignees, toAssignees(req.Assignees))
	}
	task.ApplyDerivedStatus()
	task.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateTask(ctx, task); err != nil {
		return nil, err
	}

	resp := task_dto.ToTaskResponse(task)
	realtime.PublishEach(ctx, s.broadcaster, task.AssigneeIDs(), realtime.EventTaskUpdated, resp)

	return resp, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, userID, projectID, taskID string) (*task_dto.DeletedTaskResponse, *app_errors.AppError) {
	task, err := s.repo.GetTask(ctx, projectID, taskID)
	if err != nil {
		return nil, err
	}
	if !task.IsCreator(userID) {
		return nil, forbiddenNotCreator()
	}

	err = tx.WithTx(ctx, s.txManager, func(t tx.Tx) *app_errors.AppError {
		if err := s.repo.DeleteTask(ctx, t, projectID, taskID); err != nil {
			return err
		}
		if !s.cascadeSubtasks {
			return nil
		}
		deleted, err := s.subtaskRepo.DeleteSubtasksByTask(ctx, t, taskID)
		if err != nil {
			return err
		}
		log.Debug().Str("task_id", taskID).Int64("subtasks", deleted).Msg("Unteraufgaben mitgelöscht")
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := &task_dto.DeletedTaskResponse{ID: taskID, ProjectID: projectID}
	realtime.PublishEach(ctx, s.broadcaster, task.AssigneeIDs(), realtime.EventTaskDeleted, resp)

	return resp, nil
}

// UpdateAssigneeStatus ändert den eigenen Status. Der Ersteller ohne eigenen Eintrag
// setzt stellvertretend den Status des ersten Assignees.
func (s *TaskService) UpdateAssigneeStatus(ctx context.Context, userID, projectID, taskID, status string) (*task_dto.TaskResponse, *app_errors.AppError) {
	task, err := s.repo.GetTask(ctx, projectID, taskID)
	if err != nil {
		return nil, err
	}

	idx := task.AssigneeIndex(userID)
	if idx < 0 {
		if !task.IsCreator(userID) {
			return nil, forbiddenNotParticipant()
		}
		if len(task.Assignees) == 0 {
			return nil, app_errors.BadRequest("task.no_assignees", nil)
		}
		idx = 0
	}

	task.Assignees[idx].Status = status
	task.ApplyDerivedStatus()
	task.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateTask(ctx, task); err != nil {
		return nil, err
	}

	resp := task_dto.ToTaskResponse(task)
	s.broadcaster.Publish(ctx, realtime.ProjectRoom(projectID), realtime.EventTaskStatusUpdated, resp)

	return resp, nil
}

package task_case

import (
	"strings"

	task_dto "github.com/virtutask/virtutask-api/internal/dtos/task-dto"
	"github.com/virtutask/virtutask-api/internal/entity"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
	"github.com/virtutask/virtutask-api/internal/utils"
)

const (
	defaultTaskPriority = entity.PriorityMedium
	defaultTaskStatus   = entity.StatusPending
)

func toAssignees(entries []task_dto.AssigneeRequest) []entity.Assignee {
	out := make([]entity.Assignee, 0, len(entries))
	for _, e := range entries {
		out = append(out, entity.Assignee{User: strings.TrimSpace(e.User), Status: e.Status})
	}
	return out
}

// applyTaskRequest schreibt die Pflichtfelder und, falls gesetzt, Priorität und Status.
// Assignees werden vom Aufrufer behandelt.
func applyTaskRequest(t *entity.Task, req *task_dto.TaskRequest) *app_errors.AppError {
	due, err := utils.ParseFlexibleDate(req.DueDate)
	if err != nil {
		return app_errors.BadRequest("validation.date", err)
	}

	t.Name = strings.TrimSpace(req.Name)
	t.DueDate = due
	t.Description = req.Description
	if req.Priority != "" {
		t.Priority = entity.Priority(req.Priority)
	}
	if req.Status != "" {
		t.Status = req.Status
	}
	return nil
}

func forbiddenNotCreator() *app_errors.AppError {
	return app_errors.Forbidden("forbidden.not_task_creator")
}

func forbiddenNotParticipant() *app_errors.AppError {
	return app_errors.Forbidden("forbidden.not_task_participant")
}

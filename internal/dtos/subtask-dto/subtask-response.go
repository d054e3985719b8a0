package subtask_dto

import (
	"time"

	"github.com/virtutask/virtutask-api/internal/entity"
)

type SubtaskResponse struct {
	ID         string    `json:"subtask_id"`
	TaskID     string    `json:"task_id"`
	ProjectID  string    `json:"project_id"`
	AssigneeID string    `json:"assignee_id"`
	Text       string    `json:"subtask"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type DeletedSubtaskResponse struct {
	ID string `json:"subtask_id"`
}

func ToSubtaskResponse(s *entity.Subtask) *SubtaskResponse {
	return &SubtaskResponse{
		ID:         s.ID,
		TaskID:     s.TaskID,
		ProjectID:  s.ProjectID,
		AssigneeID: s.AssigneeID,
		Text:       s.Text,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func ToSubtaskResponses(subtasks []entity.Subtask) []*SubtaskResponse {
	out := make([]*SubtaskResponse, 0, len(subtasks))
	for i := range subtasks {
		out = append(out, ToSubtaskResponse(&subtasks[i]))
	}
	return out
}

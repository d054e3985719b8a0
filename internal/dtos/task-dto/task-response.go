package task_dto

import (
	"time"

	"github.com/virtutask/virtutask-api/internal/entity"
)

type TaskResponse struct {
	ID          string              `json:"task_id"`
	Name        string              `json:"name"`
	DueDate     time.Time           `json:"due_date"`
	Priority    string              `json:"priority"`
	Status      string              `json:"status"`
	Description string              `json:"description"`
	ProjectID   string              `json:"project_id"`
	Assignees   []entity.Assignee   `json:"assignees"`
	Attachments []entity.Attachment `json:"attachments"`
	Comments    []entity.Comment    `json:"comments"`
	CreatedBy   string              `json:"created_by"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

type DeletedTaskResponse struct {
	ID        string `json:"task_id"`
	ProjectID string `json:"project_id"`
}

// AttachmentEvent ist der Payload der task_attachment_* Events.
type AttachmentEvent struct {
	TaskID     string             `json:"task_id"`
	ProjectID  string             `json:"project_id"`
	Attachment *entity.Attachment `json:"attachment"`
}

// AttachmentDownload trägt, was der Handler zum Senden der Datei braucht.
type AttachmentDownload struct {
	Path     string
	Filename string
	MimeType string
}

func ToTaskResponse(t *entity.Task) *TaskResponse {
	return &TaskResponse{
		ID:          t.ID,
		Name:        t.Name,
		DueDate:     t.DueDate,
		Priority:    string(t.Priority),
		Status:      t.Status,
		Description: t.Description,
		ProjectID:   t.ProjectID,
		Assignees:   nonNil(t.Assignees),
		Attachments: nonNil(t.Attachments),
		Comments:    nonNil(t.Comments),
		CreatedBy:   t.CreatedBy,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func ToTaskResponses(tasks []entity.Task) []*TaskResponse {
	out := make([]*TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, ToTaskResponse(&tasks[i]))
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

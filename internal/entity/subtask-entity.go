package entity

import "time"

type Subtask struct {
	ID         string    `json:"subtask_id"`
	TaskID     string    `json:"task_id"`
	ProjectID  string    `json:"project_id"`
	AssigneeID string    `json:"assignee_id"`
	Text       string    `json:"subtask"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

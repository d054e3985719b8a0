package task_dto

type ParamTask struct {
	ProjectID string `params:"project_id" validate:"required,uuid"`
	TaskID    string `params:"task_id" validate:"required,uuid"`
}

type ParamAttachment struct {
	ProjectID    string `params:"project_id" validate:"required,uuid"`
	TaskID       string `params:"task_id" validate:"required,uuid"`
	AttachmentID string `params:"attachment_id" validate:"required,uuid"`
}

type AssigneeRequest struct {
	User   string `json:"user" validate:"required,max=64"`
	Status string `json:"status" validate:"required,assigneeStatus"`
}

// TaskRequest wird für Create und Update benutzt. Assignees werden einzeln validiert.
type TaskRequest struct {
	Name        string            `json:"name" validate:"required,max=255"`
	DueDate     string            `json:"due_date" validate:"required,flexDate"`
	Priority    string            `json:"priority" validate:"omitempty,taskPriority"`
	Status      string            `json:"status" validate:"omitempty,max=64"`
	Description string            `json:"description"`
	Assignees   []AssigneeRequest `json:"assignees" validate:"-"`

	DueDateAlt string `json:"dueDate" validate:"-"`
}

func (r *TaskRequest) Normalize() {
	if r.DueDate == "" {
		r.DueDate = r.DueDateAlt
	}
}

type AssigneeStatusRequest struct {
	Status string `json:"status" validate:"required,assigneeStatus"`
}

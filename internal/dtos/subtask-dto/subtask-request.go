package subtask_dto

type ParamSubtaskParent struct {
	ProjectID string `params:"project_id" validate:"required,uuid"`
	TaskID    string `params:"task_id" validate:"required,uuid"`
}

type ParamSubtask struct {
	ProjectID string `params:"project_id" validate:"required,uuid"`
	TaskID    string `params:"task_id" validate:"required,uuid"`
	SubtaskID string `params:"subtask_id" validate:"required,uuid"`
}

type CreateSubtaskRequest struct {
	Text       string `json:"subtask" validate:"required,max=2000"`
	AssigneeID string `json:"assignee_id" validate:"omitempty,accountID"`
}

type UpdateSubtaskRequest struct {
	Text string `json:"subtask" validate:"required,max=2000"`
}

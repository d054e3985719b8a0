package entity

import "time"

const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

type Task struct {
	ID          string       `json:"task_id"`
	Name        string       `json:"name"`
	DueDate     time.Time    `json:"due_date"`
	Priority    Priority     `json:"priority"`
	Status      string       `json:"status"`
	Description string       `json:"description"`
	ProjectID   string       `json:"project_id"`
	Assignees   []Assignee   `json:"assignees"`
	Attachments []Attachment `json:"attachments"`
	Comments    []Comment    `json:"comments"`
	CreatedBy   string       `json:"created_by"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type Assignee struct {
	User   string `json:"user"`
	Status string `json:"status"`
}

type Attachment struct {
	ID         string    `json:"attachment_id"`
	Filename   string    `json:"filename"`
	Path       string    `json:"path"`
	Size       int64     `json:"size"`
	MimeType   string    `json:"mime_type"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type Comment struct {
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

func IsAssigneeStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// DeriveTaskStatus berechnet den Gesamtstatus aus den Assignee-Status.
// An empty list is Pending.
func DeriveTaskStatus(assignees []Assignee) string {
	if len(assignees) == 0 {
		return StatusPending
	}

	allCompleted := true
	anyInProgress := false
	for _, a := range assignees {
		if a.Status != StatusCompleted {
			allCompleted = false
		}
		if a.Status == StatusInProgress {
			anyInProgress = true
		}
	}

	switch {
	case allCompleted:
		return StatusCompleted
	case anyInProgress:
		return StatusInProgress
	default:
		return StatusPending
	}
}

// ReconcileAssignees merges the incoming list into the current one: users
// missing from incoming are dropped, kept users get the incoming status in
// their current position, new users are appended in incoming order. The
// result holds each user once; for duplicates in incoming the last status wins.
func ReconcileAssignees(current, incoming []Assignee) []Assignee {
	statusByUser := make(map[string]string, len(incoming))
	order := make([]string, 0, len(incoming))
	for _, a := range incoming {
		if _, seen := statusByUser[a.User]; !seen {
			order = append(order, a.User)
		}
		statusByUser[a.User] = a.Status
	}

	result := make([]Assignee, 0, len(order))
	placed := make(map[string]bool, len(order))
	for _, a := range current {
		status, ok := statusByUser[a.User]
		if !ok || placed[a.User] {
			continue
		}
		result = append(result, Assignee{User: a.User, Status: status})
		placed[a.User] = true
	}
	for _, user := range order {
		if placed[user] {
			continue
		}
		result = append(result, Assignee{User: user, Status: statusByUser[user]})
		placed[user] = true
	}

	return result
}

// ApplyDerivedStatus overwrites Status when the task has assignees.
func (t *Task) ApplyDerivedStatus() {
	if len(t.Assignees) > 0 {
		t.Status = DeriveTaskStatus(t.Assignees)
	}
}

func (t *Task) IsCreator(accountID string) bool {
	return t.CreatedBy == accountID
}

func (t *Task) AssigneeIndex(accountID string) int {
	for i, a := range t.Assignees {
		if a.User == accountID {
			return i
		}
	}
	return -1
}

func (t *Task) IsAssignee(accountID string) bool {
	return t.AssigneeIndex(accountID) >= 0
}

func (t *Task) CanView(accountID string) bool {
	return t.IsCreator(accountID) || t.IsAssignee(accountID)
}

func (t *Task) AssigneeIDs() []string {
	ids := make([]string, 0, len(t.Assignees))
	for _, a := range t.Assignees {
		ids = append(ids, a.User)
	}
	return ids
}

func (t *Task) AttachmentIndex(attachmentID string) int {
	for i, a := range t.Attachments {
		if a.ID == attachmentID {
			return i
		}
	}
	return -1
}

package realtime

const (
	EventNewProject     = "new_project"
	EventUpdatedProject = "updated_project"
	EventDeletedProject = "deleted_project"

	EventTaskCreated       = "task_created"
	EventTaskUpdated       = "task_updated"
	EventTaskDeleted       = "task_deleted"
	EventTaskStatusUpdated = "task_status_updated"

	EventAttachmentUploaded = "task_attachment_uploaded"
	EventAttachmentUpdated  = "task_attachment_updated"
	EventAttachmentDeleted  = "task_attachment_deleted"
)

// ProjectRoom ist der opt-in Kanal eines Projekts. Kontokanäle heißen wie die Konto-ID.
func ProjectRoom(projectID string) string {
	return "project:" + projectID
}

// Frame ist das Format jeder Server-Nachricht.
type Frame struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

// ClientFrame ist das Format der Client-Nachrichten.
type ClientFrame struct {
	Action    string `json:"action"`
	ProjectID string `json:"project_id"`
}

const (
	ActionJoinProject  = "join_project"
	ActionLeaveProject = "leave_project"
)

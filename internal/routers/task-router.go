package routers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	task_handlers "github.com/virtutask/virtutask-api/internal/handlers/task"
)

func TaskRouter(api fiber.Router, deps *Deps) {
	taskHandler := task_handlers.NewTaskHandler(deps.Tasks, deps.Validator, deps.I18n)

	api.Get("/my-tasks", taskHandler.ListMyTasks)

	r := api.Group("/projects/:project_id/tasks")
	r.Post("/", taskHandler.CreateTask)
	r.Get("/", taskHandler.ListProjectTasks)
	r.Get("/:task_id", taskHandler.GetTask)
	r.Patch("/:task_id", taskHandler.UpdateTask)
	r.Delete("/:task_id", taskHandler.DeleteTask)
	r.Patch("/:task_id/assignee-status", taskHandler.UpdateAssigneeStatus)

	// Anhang-Mutationen sind begrenzt, Lesezugriffe nicht
	attachmentLimit := rateLimit(deps.LimiterStorage, "attachments", 20, time.Minute)
	r.Post("/:task_id/attachments", attachmentLimit, taskHandler.UploadAttachment)
	r.Get("/:task_id/attachments", taskHandler.ListAttachments)
	r.Get("/:task_id/attachments/:attachment_id", taskHandler.DownloadAttachment)
	r.Patch("/:task_id/attachments/:attachment_id", attachmentLimit, taskHandler.UpdateAttachment)
	r.Delete("/:task_id/attachments/:attachment_id", attachmentLimit, taskHandler.DeleteAttachment)
}

package routers

import (
	"github.com/gofiber/fiber/v2"
	subtask_handlers "github.com/virtutask/virtutask-api/internal/handlers/subtask"
)

func SubtaskRouter(api fiber.Router, deps *Deps) {
	subtaskHandler := subtask_handlers.NewSubtaskHandler(deps.Subtasks, deps.Validator, deps.I18n)

	r := api.Group("/projects/:project_id/tasks/:task_id/subtasks")
	r.Post("/", subtaskHandler.CreateSubtask)
	r.Get("/", subtaskHandler.ListMySubtasks)
	r.Get("/:subtask_id", subtaskHandler.GetSubtask)
	r.Patch("/:subtask_id", subtaskHandler.UpdateSubtask)
	r.Delete("/:subtask_id", subtaskHandler.DeleteSubtask)
}

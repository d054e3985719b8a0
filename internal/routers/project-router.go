package routers

import (
	"github.com/gofiber/fiber/v2"
	project_handlers "github.com/virtutask/virtutask-api/internal/handlers/project"
)

func ProjectRouter(api fiber.Router, deps *Deps) {
	projectHandler := project_handlers.NewProjectHandler(deps.Projects, deps.Validator, deps.I18n)

	api.Post("/projects", projectHandler.CreateProject)
	api.Get("/my-projects", projectHandler.ListMyProjects)
	api.Get("/projects/:project_id", projectHandler.GetProject)
	api.Patch("/projects/:project_id", projectHandler.UpdateProject)
	api.Delete("/projects/:project_id", projectHandler.DeleteProject)
}

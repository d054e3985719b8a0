package routers

import (
	"github.com/gofiber/fiber/v2"
	user_handlers "github.com/virtutask/virtutask-api/internal/handlers/user"
)

func UserRouter(api fiber.Router, deps *Deps) {
	userHandler := user_handlers.NewUserHandler(deps.Users, deps.Validator, deps.I18n)

	api.Get("/users/search", userHandler.SearchUsers)
}

package routers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	hub_handlers "github.com/virtutask/virtutask-api/internal/handlers/hub"
)

func HubRouter(api fiber.Router, deps *Deps) {
	hubHandler := hub_handlers.NewHubHandler(deps.Hub, deps.Validator, deps.I18n)

	r := api.Group("/engagement-hub")
	r.Get("/status", hubHandler.CheckStatus)
	r.Post("/status", hubHandler.ToggleStatus)
	r.Post("/play-time", rateLimit(deps.LimiterStorage, "play-time", 30, time.Minute), hubHandler.RecordPlayTime)
}

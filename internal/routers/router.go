package routers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	realtime_handlers "github.com/virtutask/virtutask-api/internal/handlers/realtime"
	internal_i18n "github.com/virtutask/virtutask-api/internal/i18n"
	"github.com/virtutask/virtutask-api/internal/middleware"
	hub_case "github.com/virtutask/virtutask-api/internal/use-cases/hub-case"
	project_case "github.com/virtutask/virtutask-api/internal/use-cases/project-case"
	reward_case "github.com/virtutask/virtutask-api/internal/use-cases/reward-case"
	subtask_case "github.com/virtutask/virtutask-api/internal/use-cases/subtask-case"
	task_case "github.com/virtutask/virtutask-api/internal/use-cases/task-case"
	user_case "github.com/virtutask/virtutask-api/internal/use-cases/user-case"
	"github.com/virtutask/virtutask-api/internal/verifier"
)

// Deps bündelt alles, was die Router brauchen. Die Services werden in main gebaut.
type Deps struct {
	DB        *pgxpool.Pool
	Redis     *redis.Client
	I18n      internal_i18n.Service
	Validator *validator.Validate
	Verifier  verifier.Verifier

	Projects project_case.ProjectServiceContract
	Tasks    task_case.TaskServiceContract
	Subtasks subtask_case.SubtaskServiceContract
	Hub      hub_case.HubServiceContract
	Rewards  reward_case.RewardServiceContract
	Users    user_case.UserServiceContract
	Realtime *realtime_handlers.RealtimeHandler

	// LimiterStorage darf nil sein, dann zählt der Limiter im Speicher.
	LimiterStorage fiber.Storage
}

// SetupRoutes richtet die API-Routen ein. Health und /ws liegen außerhalb von /api.
func SetupRoutes(app *fiber.App, deps *Deps) {
	HealthRouter(app, deps.DB, deps.Redis)
	if deps.Realtime != nil {
		RealtimeRouter(app, deps.Realtime)
	}

	api := app.Group("/api", middleware.AuthMiddleware(deps.Verifier))

	ProjectRouter(api, deps)
	TaskRouter(api, deps)
	SubtaskRouter(api, deps)
	HubRouter(api, deps)
	RewardRouter(api, deps)
	UserRouter(api, deps)
}

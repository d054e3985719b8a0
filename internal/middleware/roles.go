package middleware

import (
	"slices"

	"github.com/gofiber/fiber/v2"
	"github.com/virtutask/virtutask-api/internal/entity"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
)

// RequireRoles prüft, ob die im Context unter "role" gespeicherte Rolle erlaubt ist.
// Ohne Rolle 401, mit falscher Rolle 403.
func RequireRoles(allowedRoles ...entity.AccountRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok || role == "" {
			return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", nil)
		}

		if slices.Contains(allowedRoles, entity.AccountRole(role)) {
			return c.Next()
		}
		return app_errors.Forbidden("forbidden.role")
	}
}

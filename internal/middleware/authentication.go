package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
	"github.com/virtutask/virtutask-api/internal/verifier"
)

// AuthMiddleware validiert das Authorization-Header ("Bearer <token>") und fragt den Verifier.
// Bei Erfolg werden "user_id", "username", "email", "role" und "token" in c.Locals gesetzt.
// Fehlender oder falsch formatierter Header führt zu 401, ohne den Verifier aufzurufen.
func AuthMiddleware(v verifier.Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.missing_header", nil)
		}

		token, ok := bearerToken(authHeader)
		if !ok {
			return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.invalid_format", nil)
		}

		account, err := v.Verify(c.UserContext(), token)
		if err != nil {
			if err.Code >= fiber.StatusInternalServerError {
				log.Error().Err(err).Str("request_id", requestID(c)).Msg("Token-Verifikation fehlgeschlagen")
			}
			return err
		}

		// Speichern zu kontext, sodass Handler es nutzen kann
		c.Locals("user_id", account.ID)
		c.Locals("username", account.Username)
		c.Locals("email", account.Email)
		c.Locals("role", string(account.Role))
		c.Locals("token", token)

		return c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

func requestID(c *fiber.Ctx) string {
	reqID, _ := c.Locals("request_id").(string)
	return reqID
}

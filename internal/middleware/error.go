package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
	internal_i18n "github.com/virtutask/virtutask-api/internal/i18n"
)

// ErrorHandlerMiddleware behandelt Fehler, die während der Anfrageverarbeitung auftreten.
// Antwortformat: {"message": <lokalisiert>, "error": {code, type, request_id, details?}}.
func ErrorHandlerMiddleware(i18nSvc internal_i18n.Service) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		lang, ok := c.Locals("lang").(string)
		if !ok {
			lang = ParseLanguage(c.Get("Accept-Language"))
		}

		var appErr *app_errors.AppError
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &appErr):
		case errors.As(err, &fiberErr):
			appErr = fromFiberError(fiberErr)
		default:
			appErr = app_errors.Internal(err)
		}

		message := i18nSvc.T(lang, appErr.MessageKey, nil)

		respErr := fiber.Map{
			"code":       appErr.Code,
			"type":       appErr.Type,
			"request_id": requestID(c),
		}

		if len(appErr.Details) > 0 {
			details := make([]fiber.Map, 0, len(appErr.Details))
			for _, d := range appErr.Details {
				details = append(details, fiber.Map{
					"field":   d.Field,
					"reason":  d.Reason,
					"message": i18nSvc.T(lang, d.MessageKey, d.Params),
				})
			}
			respErr["details"] = details
		}

		if appErr.Code >= fiber.StatusInternalServerError {
			log.Error().Err(appErr).Str("request_id", requestID(c)).Str("type", appErr.Type).Msg("application error")
		}

		return c.Status(appErr.Code).JSON(fiber.Map{
			"message": message,
			"error":   respErr,
		})
	}
}

func fromFiberError(e *fiber.Error) *app_errors.AppError {
	switch e.Code {
	case fiber.StatusNotFound:
		return app_errors.NewAppError(e.Code, app_errors.ErrNotFound, "not_found", e)
	case fiber.StatusTooManyRequests:
		return app_errors.NewAppError(e.Code, app_errors.ErrTooManyRequests, "request.too_many_requests", e)
	case fiber.StatusRequestEntityTooLarge:
		return app_errors.NewAppError(e.Code, app_errors.ErrTooLarge, "attachment.too_large", e)
	case fiber.StatusUnprocessableEntity, fiber.StatusBadRequest:
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", e)
	}
	if e.Code < fiber.StatusInternalServerError {
		return app_errors.NewAppError(e.Code, app_errors.ErrInvalidBody, "invalid_request", e)
	}
	return app_errors.Internal(e)
}

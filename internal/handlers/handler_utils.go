package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/virtutask/virtutask-api/internal/dtos"
	"github.com/virtutask/virtutask-api/internal/entity"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
	internal_i18n "github.com/virtutask/virtutask-api/internal/i18n"
)

// CreateResponse erstellt eine standardisierte WebResponse.
func CreateResponse[T any](message string, data T, requestID string, details ...any) dtos.WebResponse[T] {
	return dtos.WebResponse[T]{
		Message:   message,
		Data:      data,
		RequestID: requestID,
		Details:   details,
	}
}

// Respond lokalisiert messageKey und schreibt die WebResponse mit status.
func Respond[T any](c *fiber.Ctx, i18n internal_i18n.Service, status int, messageKey string, data T) error {
	webResp := CreateResponse(i18n.T(GetLang(c), messageKey, nil), data, GetRequestID(c))
	if err := c.Status(status).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

func GetUserID(c *fiber.Ctx) (string, *app_errors.AppError) {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return "", app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", nil)
	}

	return userID, nil
}

// GetAccount baut das Konto aus den Locals der AuthMiddleware.
func GetAccount(c *fiber.Ctx) (*entity.Account, *app_errors.AppError) {
	userID, err := GetUserID(c)
	if err != nil {
		return nil, err
	}

	username, _ := c.Locals("username").(string)
	email, _ := c.Locals("email").(string)
	role, _ := c.Locals("role").(string)
	return &entity.Account{
		ID:       userID,
		Username: username,
		Email:    email,
		Role:     entity.AccountRole(role),
	}, nil
}

func GetToken(c *fiber.Ctx) string {
	token, _ := c.Locals("token").(string)
	return token
}

func GetRequestID(c *fiber.Ctx) string {
	reqID, ok := c.Locals("request_id").(string)
	if !ok {
		reqID = "unknown"
	}
	return reqID
}

func GetLang(c *fiber.Ctx) string {
	lang, ok := c.Locals("lang").(string)
	if !ok || lang == "" {
		return "en"
	}
	return lang
}

func ParseParams(c *fiber.Ctx, v *validator.Validate, out any) *app_errors.AppError {
	if err := c.ParamsParser(out); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := v.Struct(out); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return nil
}

// normalizer wird vor der Validierung aufgerufen (z.B. camelCase-Aliasse).
type normalizer interface {
	Normalize()
}

func ParseBody(c *fiber.Ctx, v *validator.Validate, out any) *app_errors.AppError {
	if err := c.BodyParser(out); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if n, ok := out.(normalizer); ok {
		n.Normalize()
	}

	if err := v.Struct(out); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return nil
}

func ParseQuery(c *fiber.Ctx, v *validator.Validate, out any) *app_errors.AppError {
	if err := c.QueryParser(out); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidQuery, "request.invalid_query", err)
	}

	if err := v.Struct(out); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return nil
}

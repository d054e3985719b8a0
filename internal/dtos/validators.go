package dtos

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/virtutask/virtutask-api/internal/entity"
	"github.com/virtutask/virtutask-api/internal/utils"
)

var accountIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{3,64}$`)

// IsValidAccountID prüft nur die Form einer Konto-ID, nicht ihre Existenz.
func IsValidAccountID(s string) bool {
	return accountIDPattern.MatchString(s)
}

// NewValidator registriert alle eigenen Tags.
func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterValidation("projectPriority", isValidPriority)
	validate.RegisterValidation("taskPriority", isValidPriority)
	validate.RegisterValidation("assigneeStatus", isValidAssigneeStatus)
	validate.RegisterValidation("flexDate", isFlexDate)
	validate.RegisterValidation("accountID", isAccountID)
	return validate
}

func isValidPriority(fl validator.FieldLevel) bool {
	return entity.Priority(fl.Field().String()).IsValid()
}

func isValidAssigneeStatus(fl validator.FieldLevel) bool {
	return entity.IsAssigneeStatus(fl.Field().String())
}

func isFlexDate(fl validator.FieldLevel) bool {
	_, err := utils.ParseFlexibleDate(fl.Field().String())
	return err == nil
}

func isAccountID(fl validator.FieldLevel) bool {
	return IsValidAccountID(fl.Field().String())
}

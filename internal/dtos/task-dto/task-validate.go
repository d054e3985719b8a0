package task_dto

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
)

// ValidateAssignees prüft jeden Eintrag einzeln und bricht beim ersten fehlerhaften ab.
func ValidateAssignees(v *validator.Validate, entries []AssigneeRequest) *app_errors.AppError {
	for i := range entries {
		if err := v.Struct(entries[i]); err != nil {
			details := app_errors.ParseValidationError(err)
			return app_errors.NewValidationError(app_errors.PrefixFields(fmt.Sprintf("assignees[%d]", i), details))
		}
	}
	return nil
}

package app_errors

import (
	"errors"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

func ParseValidationError(err error) []FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}

	var out []FieldError
	for _, fe := range ve {
		msgKey, params := validationMessageKey(fe)

		out = append(out, FieldError{
			Field:      toSnakeCase(fe.Field()),
			Reason:     fe.Tag(),
			MessageKey: msgKey,
			Params:     params,
		})
	}

	return out
}

// PrefixFields qualifies the field names of nested entries, e.g. assignees[2].status.
func PrefixFields(prefix string, details []FieldError) []FieldError {
	for i := range details {
		details[i].Field = prefix + "." + details[i].Field
	}
	return details
}

func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return strings.ReplaceAll(b.String(), " ", "_")
}

func validationMessageKey(fe validator.FieldError) (string, map[string]interface{}) {
	switch fe.Tag() {
	case "required":
		return "validation.required", nil
	case "min":
		return "validation.min", map[string]interface{}{
			"min": fe.Param(),
		}
	case "max":
		return "validation.max", map[string]interface{}{
			"max": fe.Param(),
		}
	case "email":
		return "validation.email", nil
	case "projectPriority":
		return "validation.project_priority", nil
	case "taskPriority":
		return "validation.task_priority", nil
	case "assigneeStatus":
		return "validation.assignee_status", nil
	case "flexDate":
		return "validation.date", nil
	case "accountID":
		return "validation.account_id", nil
	default:
		return "validation.invalid", nil
	}
}

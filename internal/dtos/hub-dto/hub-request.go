package hub_dto

type ToggleRequest struct {
	IsEnabled *bool `json:"is_enabled" validate:"required"`
}

type PlayTimeRequest struct {
	ElapsedSeconds *int64 `json:"elapsed_seconds" validate:"required,min=0"`
}

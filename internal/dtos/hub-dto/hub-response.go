package hub_dto

import "time"

type HubStatusResponse struct {
	EmployeeID        string    `json:"employee_id"`
	IsEnabled         bool      `json:"is_enabled"`
	ProductivityScore float64   `json:"productivity_score"`
	AllowanceSeconds  int64     `json:"allowance_seconds"`
	SessionDuration   int64     `json:"session_duration"`
	RemainingSeconds  int64     `json:"remaining_seconds"`
	LastSessionStart  time.Time `json:"last_session_start"`
}

package entity

import "time"

type UserEngagement struct {
	EmployeeID       string    `json:"employee_id"`
	LastSessionStart time.Time `json:"last_session_start"`
	SessionDuration  int64     `json:"session_duration"`
	IsEnabled        bool      `json:"is_enabled"`
	UpdatedAt        time.Time `json:"updated_at"`
}

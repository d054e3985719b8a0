package entity

import "time"

const (
	RewardGameTime      = "Game Time"
	RewardGymMembership = "Gym Membership"
	RewardGiftCard      = "Gift Card"
	RewardUnitMinutes   = "minutes"
	RewardUnitMonth     = "month"
	RewardUnitCurrency  = "USD"
)

// MonthlyRewardTypes are the reward types granted by the monthly evaluation.
var MonthlyRewardTypes = []string{RewardGymMembership, RewardGiftCard}

// Reward ist unveränderlich, sobald er gespeichert wurde.
type Reward struct {
	ID           string    `json:"reward_id"`
	EmployeeID   string    `json:"employee_id"`
	RewardType   string    `json:"reward_type"`
	RewardAmount float64   `json:"reward_amount"`
	RewardUnit   string    `json:"reward_unit"`
	Description  string    `json:"description"`
	Date         time.Time `json:"date"`
	Points       float64   `json:"points"`
}

type RewardFilter struct {
	EmployeeID *string
	Types      []string
	From       *time.Time
	To         *time.Time
}

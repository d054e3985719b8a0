package worker_task

import "time"

const TaskRewardGranted = "email:reward_granted"

const TaskOrphanSubtaskSweep = "low:orphan_subtask_sweep"

type RewardGrantedPayload struct {
	RewardID     string    `json:"reward_id"`
	EmployeeID   string    `json:"employee_id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	RewardType   string    `json:"reward_type"`
	RewardAmount float64   `json:"reward_amount"`
	RewardUnit   string    `json:"reward_unit"`
	Description  string    `json:"description"`
	Points       float64   `json:"points"`
	GrantedAt    time.Time `json:"granted_at"`
}

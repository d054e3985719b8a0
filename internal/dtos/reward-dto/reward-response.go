package reward_dto

import (
	"time"

	"github.com/virtutask/virtutask-api/internal/entity"
)

type RewardResponse struct {
	ID           string    `json:"reward_id"`
	EmployeeID   string    `json:"employee_id"`
	RewardType   string    `json:"reward_type"`
	RewardAmount float64   `json:"reward_amount"`
	RewardUnit   string    `json:"reward_unit"`
	Description  string    `json:"description"`
	Date         time.Time `json:"date"`
	Points       float64   `json:"points"`
}

func ToRewardResponse(r *entity.Reward) *RewardResponse {
	return &RewardResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		RewardType:   r.RewardType,
		RewardAmount: r.RewardAmount,
		RewardUnit:   r.RewardUnit,
		Description:  r.Description,
		Date:         r.Date,
		Points:       r.Points,
	}
}

func ToRewardResponses(rewards []entity.Reward) []*RewardResponse {
	out := make([]*RewardResponse, 0, len(rewards))
	for i := range rewards {
		out = append(out, ToRewardResponse(&rewards[i]))
	}
	return out
}

package user_dto

import "github.com/virtutask/virtutask-api/internal/entity"

type UserResponse struct {
	EmployeeID string `json:"employee_id"`
	Username   string `json:"username"`
	Email      string `json:"email,omitempty"`
	Role       string `json:"role,omitempty"`
}

func ToUserResponses(accounts []entity.Account) []UserResponse {
	out := make([]UserResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, UserResponse{
			EmployeeID: a.ID,
			Username:   a.Username,
			Email:      a.Email,
			Role:       string(a.Role),
		})
	}
	return out
}

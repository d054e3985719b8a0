package project_dto

import (
	"time"

	"github.com/virtutask/virtutask-api/internal/entity"
)

type ProjectResponse struct {
	ID          string    `json:"project_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	DueDate     time.Time `json:"due_date"`
	Status      string    `json:"status"`
	Department  string    `json:"department"`
	Priority    string    `json:"priority"`
	Members     []string  `json:"members"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type DeletedProjectResponse struct {
	ID string `json:"project_id"`
}

func ToProjectResponse(p *entity.Project) *ProjectResponse {
	members := p.Members
	if members == nil {
		members = []string{}
	}
	return &ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		StartDate:   p.StartDate,
		DueDate:     p.DueDate,
		Status:      p.Status,
		Department:  p.Department,
		Priority:    string(p.Priority),
		Members:     members,
		CreatedBy:   p.CreatedBy,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ToProjectResponses(projects []entity.Project) []*ProjectResponse {
	out := make([]*ProjectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, ToProjectResponse(&projects[i]))
	}
	return out
}

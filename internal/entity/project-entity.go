package entity

import (
	"slices"
	"time"
)

const DefaultProjectStatus = "Active"

type Project struct {
	ID          string    `json:"project_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	DueDate     time.Time `json:"due_date"`
	Status      string    `json:"status"`
	Department  string    `json:"department"`
	Priority    Priority  `json:"priority"`
	Members     []string  `json:"members"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (p *Project) IsCreator(accountID string) bool {
	return p.CreatedBy == accountID
}

func (p *Project) IsMember(accountID string) bool {
	return slices.Contains(p.Members, accountID)
}

// CanView: Mitglied oder Ersteller.
func (p *Project) CanView(accountID string) bool {
	return p.IsCreator(accountID) || p.IsMember(accountID)
}

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

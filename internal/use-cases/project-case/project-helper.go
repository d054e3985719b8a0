package project_case

import (
	"strings"

	project_dto "github.com/virtutask/virtutask-api/internal/dtos/project-dto"
	"github.com/virtutask/virtutask-api/internal/entity"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
	"github.com/virtutask/virtutask-api/internal/utils"
)

// NormalizeMembers behält nur nicht-leere Strings, getrimmt, ohne Duplikate, in Eingabereihenfolge.
// Ein einzelner String wird als Ein-Element-Liste behandelt.
func NormalizeMembers(raw any) []string {
	var candidates []any
	switch v := raw.(type) {
	case []any:
		candidates = v
	case []string:
		for _, s := range v {
			candidates = append(candidates, s)
		}
	case string:
		candidates = []any{v}
	}

	members := make([]string, 0, len(candidates))
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		s, ok := c.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		members = append(members, s)
	}
	return members
}

// applyRequest überträgt alle Felder aus req. created_by wird nie verändert.
func applyRequest(p *entity.Project, req *project_dto.ProjectRequest) *app_errors.AppError {
	start, err := utils.ParseFlexibleDate(req.StartDate)
	if err != nil {
		return app_errors.BadRequest("validation.date", err)
	}
	due, err := utils.ParseFlexibleDate(req.DueDate)
	if err != nil {
		return app_errors.BadRequest("validation.date", err)
	}

	p.Name = strings.TrimSpace(req.Name)
	p.Description = req.Description
	p.StartDate = start
	p.DueDate = due
	p.Department = req.Department
	p.Priority = entity.Priority(req.Priority)
	p.Members = NormalizeMembers(req.Members)
	if req.Status != "" {
		p.Status = req.Status
	}
	if p.Status == "" {
		p.Status = entity.DefaultProjectStatus
	}
	return nil
}

func projectCacheKey(projectID string) string {
	return "project:" + projectID
}

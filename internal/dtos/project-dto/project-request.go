package project_dto

type ParamProjectID struct {
	ID string `params:"project_id" validate:"required,uuid"`
}

// ProjectRequest wird für Create und Update benutzt. Update ersetzt alles, daher sind alle Pflichtfelder erneut nötig.
type ProjectRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	StartDate   string `json:"start_date" validate:"required,flexDate"`
	DueDate     string `json:"due_date" validate:"required,flexDate"`
	Department  string `json:"department" validate:"required,max=255"`
	Priority    string `json:"priority" validate:"required,projectPriority"`
	Status      string `json:"status" validate:"omitempty,max=64"`
	Members     any    `json:"members"`

	// camelCase-Schreibweise älterer Clients
	StartDateAlt string `json:"startDate" validate:"-"`
	DueDateAlt   string `json:"dueDate" validate:"-"`
}

// Normalize übernimmt die camelCase-Felder, falls die snake_case-Felder fehlen.
func (r *ProjectRequest) Normalize() {
	if r.StartDate == "" {
		r.StartDate = r.StartDateAlt
	}
	if r.DueDate == "" {
		r.DueDate = r.DueDateAlt
	}
}

package reward_dto

type ParamRewardID struct {
	ID string `params:"reward_id" validate:"required,uuid"`
}

type CreateGameRequest struct {
	ProductivityScore *float64 `json:"productivity_score" validate:"omitempty,min=0,max=100"`
}

type CreateMonthlyRequest struct {
	Scores []float64 `json:"scores" validate:"omitempty,dive,min=0,max=100"`
}

type GameTimeQuery struct {
	Date string `query:"date" validate:"omitempty,datetime=2006-01-02"`
}

type MonthlyQuery struct {
	Month string `query:"month" validate:"omitempty,datetime=2006-01"`
}

type RewardFilterQuery struct {
	EmployeeID string `query:"employee_id" validate:"omitempty,max=64"`
	RewardType string `query:"reward_type" validate:"omitempty,max=64"`
	From       string `query:"from" validate:"omitempty,flexDate"`
	To         string `query:"to" validate:"omitempty,flexDate"`
}

package user_dto

type SearchUsersQuery struct {
	Q string `query:"q" validate:"required,min=1,max=100"`
}

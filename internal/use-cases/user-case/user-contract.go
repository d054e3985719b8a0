package user_case

import (
	"context"

	user_dto "github.com/virtutask/virtutask-api/internal/dtos/user-dto"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
)

type UserServiceContract interface {
	SearchUsers(ctx context.Context, token, query string) ([]user_dto.UserResponse, *app_errors.AppError)
}

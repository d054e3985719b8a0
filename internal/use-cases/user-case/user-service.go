package user_case

import (
	"context"
	"strings"

	user_dto "github.com/virtutask/virtutask-api/internal/dtos/user-dto"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
	"github.com/virtutask/virtutask-api/internal/verifier"
)

// UserService reicht die Suche an den Credential-Verifier durch. Konten werden hier nie gespeichert.
type UserService struct {
	verifier verifier.Verifier
}

func NewUserService(v verifier.Verifier) UserServiceContract {
	return &UserService{verifier: v}
}

func (s *UserService) SearchUsers(ctx context.Context, token, query string) ([]user_dto.UserResponse, *app_errors.AppError) {
	accounts, err := s.verifier.SearchUsers(ctx, token, strings.TrimSpace(query))
	if err != nil {
		return nil, err
	}
	return user_dto.ToUserResponses(accounts), nil
}

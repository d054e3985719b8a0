package verifier

import (
	"context"
	"errors"

	"github.com/virtutask/virtutask-api/internal/entity"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
	"github.com/virtutask/virtutask-api/internal/utils"
)

// PasetoVerifier prüft lokale V4-Tokens ohne Netzwerkaufruf.
type PasetoVerifier struct {
	maker *utils.PasetoMaker
}

func NewPasetoVerifier(maker *utils.PasetoMaker) *PasetoVerifier {
	return &PasetoVerifier{maker: maker}
}

func (v *PasetoVerifier) Verify(_ context.Context, token string) (*entity.Account, *app_errors.AppError) {
	payload, err := v.maker.VerifyToken(token)
	if err != nil {
		return nil, invalidToken(err)
	}
	if payload.EmployeeID == "" {
		return nil, malformed(errors.New("token without subject"))
	}

	return &entity.Account{
		ID:       payload.EmployeeID,
		Username: payload.Username,
		Email:    payload.Email,
		Role:     entity.AccountRole(payload.Role),
	}, nil
}

// SearchUsers ist ohne Auth-Service nicht möglich.
func (v *PasetoVerifier) SearchUsers(context.Context, string, string) ([]entity.Account, *app_errors.AppError) {
	return nil, app_errors.NewAppError(503, app_errors.ErrServiceUnavailable, "user_search.unavailable", nil)
}

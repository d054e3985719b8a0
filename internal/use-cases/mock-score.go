package use_cases

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/virtutask/virtutask-api/internal/score"
)

var _ score.Client = (*MockScoreClient)(nil)

type MockScoreClient struct {
	mock.Mock
}

func (m *MockScoreClient) Fetch(ctx context.Context, employeeID string) (float64, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(float64), args.Error(1)
}

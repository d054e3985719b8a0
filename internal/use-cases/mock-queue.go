package use_cases

import (
	"github.com/stretchr/testify/mock"
	"github.com/virtutask/virtutask-api/internal/queue"
	worker_task "github.com/virtutask/virtutask-api/internal/worker/tasks"
)

var _ queue.TaskQueueClient = (*MockTaskQueue)(nil)

// Mock TaskQueue for testing
type MockTaskQueue struct {
	mock.Mock
}

func (m *MockTaskQueue) EnqueueRewardGranted(payload *worker_task.RewardGrantedPayload) error {
	args := m.Called(payload)
	return args.Error(0)
}

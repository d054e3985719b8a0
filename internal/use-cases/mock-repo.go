package use_cases

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/virtutask/virtutask-api/internal/abstraction/tx"
	"github.com/virtutask/virtutask-api/internal/entity"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
	engagement_repo "github.com/virtutask/virtutask-api/internal/repo/engagement-repo"
	project_repo "github.com/virtutask/virtutask-api/internal/repo/project-repo"
	reward_repo "github.com/virtutask/virtutask-api/internal/repo/reward-repo"
	subtask_repo "github.com/virtutask/virtutask-api/internal/repo/subtask-repo"
	task_repo "github.com/virtutask/virtutask-api/internal/repo/task-repo"
)

var (
	_ project_repo.ProjectRepoContract       = (*MockProjectRepo)(nil)
	_ task_repo.TaskRepoContract             = (*MockTaskRepo)(nil)
	_ subtask_repo.SubtaskRepoContract       = (*MockSubtaskRepo)(nil)
	_ reward_repo.RewardRepoContract         = (*MockRewardRepo)(nil)
	_ engagement_repo.EngagementRepoContract = (*MockEngagementRepo)(nil)
)

type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) InsertProject(ctx context.Context, project *entity.Project) *app_errors.AppError {
	args := m.Called(ctx, project)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockProjectRepo) GetProjectByID(ctx context.Context, projectID string) (*entity.Project, *app_errors.AppError) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(*entity.Project), args.Get(1).(*app_errors.AppError)
}

func (m *MockProjectRepo) ListProjectsForAccount(ctx context.Context, accountID string) ([]entity.Project, *app_errors.AppError) {
	args := m.Called(ctx, accountID)
	return args.Get(0).([]entity.Project), args.Get(1).(*app_errors.AppError)
}

func (m *MockProjectRepo) UpdateProject(ctx context.Context, project *entity.Project) *app_errors.AppError {
	args := m.Called(ctx, project)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockProjectRepo) DeleteProject(ctx context.Context, projectID string) *app_errors.AppError {
	args := m.Called(ctx, projectID)
	return args.Get(0).(*app_errors.AppError)
}

type MockTaskRepo struct {
	mock.Mock
}

func (m *MockTaskRepo) InsertTask(ctx context.Context, task *entity.Task) *app_errors.AppError {
	args := m.Called(ctx, task)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockTaskRepo) GetTask(ctx context.Context, projectID, taskID string) (*entity.Task, *app_errors.AppError) {
	args := m.Called(ctx, projectID, taskID)
	return args.Get(0).(*entity.Task), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) ListTasksByProject(ctx context.Context, projectID string) ([]entity.Task, *app_errors.AppError) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]entity.Task), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) ListTasksForAccount(ctx context.Context, accountID string) ([]entity.Task, *app_errors.AppError) {
	args := m.Called(ctx, accountID)
	return args.Get(0).([]entity.Task), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) UpdateTask(ctx context.Context, task *entity.Task) *app_errors.AppError {
	args := m.Called(ctx, task)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockTaskRepo) DeleteTask(ctx context.Context, t tx.Tx, projectID, taskID string) *app_errors.AppError {
	args := m.Called(ctx, t, projectID, taskID)
	return args.Get(0).(*app_errors.AppError)
}

type MockSubtaskRepo struct {
	mock.Mock
}

func (m *MockSubtaskRepo) InsertSubtask(ctx context.Context, subtask *entity.Subtask) *app_errors.AppError {
	args := m.Called(ctx, subtask)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockSubtaskRepo) GetSubtask(ctx context.Context, taskID, subtaskID string) (*entity.Subtask, *app_errors.AppError) {
	args := m.Called(ctx, taskID, subtaskID)
	return args.Get(0).(*entity.Subtask), args.Get(1).(*app_errors.AppError)
}

func (m *MockSubtaskRepo) ListSubtasksForAssignee(ctx context.Context, taskID, assigneeID string) ([]entity.Subtask, *app_errors.AppError) {
	args := m.Called(ctx, taskID, assigneeID)
	return args.Get(0).([]entity.Subtask), args.Get(1).(*app_errors.AppError)
}

func (m *MockSubtaskRepo) UpdateSubtaskText(ctx context.Context, subtaskID, text string) (*entity.Subtask, *app_errors.AppError) {
	args := m.Called(ctx, subtaskID, text)
	return args.Get(0).(*entity.Subtask), args.Get(1).(*app_errors.AppError)
}

func (m *MockSubtaskRepo) DeleteSubtask(ctx context.Context, subtaskID string) *app_errors.AppError {
	args := m.Called(ctx, subtaskID)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockSubtaskRepo) DeleteSubtasksByTask(ctx context.Context, t tx.Tx, taskID string) (int64, *app_errors.AppError) {
	args := m.Called(ctx, t, taskID)
	return args.Get(0).(int64), args.Get(1).(*app_errors.AppError)
}

func (m *MockSubtaskRepo) DeleteOrphanSubtasks(ctx context.Context) (int64, *app_errors.AppError) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Get(1).(*app_errors.AppError)
}

type MockRewardRepo struct {
	mock.Mock
}

func (m *MockRewardRepo) InsertReward(ctx context.Context, reward *entity.Reward) *app_errors.AppError {
	args := m.Called(ctx, reward)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockRewardRepo) GetRewardByID(ctx context.Context, rewardID string) (*entity.Reward, *app_errors.AppError) {
	args := m.Called(ctx, rewardID)
	return args.Get(0).(*entity.Reward), args.Get(1).(*app_errors.AppError)
}

func (m *MockRewardRepo) ListRewards(ctx context.Context, filter entity.RewardFilter) ([]entity.Reward, *app_errors.AppError) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]entity.Reward), args.Get(1).(*app_errors.AppError)
}

type MockEngagementRepo struct {
	mock.Mock
}

func (m *MockEngagementRepo) GetEngagement(ctx context.Context, employeeID string) (*entity.UserEngagement, *app_errors.AppError) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(*entity.UserEngagement), args.Get(1).(*app_errors.AppError)
}

func (m *MockEngagementRepo) UpsertEngagement(ctx context.Context, engagement *entity.UserEngagement) *app_errors.AppError {
	args := m.Called(ctx, engagement)
	return args.Get(0).(*app_errors.AppError)
}

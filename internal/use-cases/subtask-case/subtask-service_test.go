package subtask_case

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	subtask_dto "github.com/virtutask/virtutask-api/internal/dtos/subtask-dto"
	"github.com/virtutask/virtutask-api/internal/entity"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
	use_cases "github.com/virtutask/virtutask-api/internal/use-cases"
)

func newTestService() (*SubtaskService, *use_cases.MockSubtaskRepo, *use_cases.MockProjectRepo, *use_cases.MockTaskRepo) {
	repo := new(use_cases.MockSubtaskRepo)
	projectRepo := new(use_cases.MockProjectRepo)
	taskRepo := new(use_cases.MockTaskRepo)
	return &SubtaskService{repo: repo, projectRepo: projectRepo, taskRepo: taskRepo}, repo, projectRepo, taskRepo
}

func noErr() *app_errors.AppError {
	return (*app_errors.AppError)(nil)
}

func expectParents(ctx context.Context, projectRepo *use_cases.MockProjectRepo, taskRepo *use_cases.MockTaskRepo) {
	projectRepo.On("GetProjectByID", ctx, "p-1").Return(&entity.Project{
		ID:        "p-1",
		CreatedBy: "carol",
		Members:   []string{"alice", "bob"},
	}, noErr())
	taskRepo.On("GetTask", ctx, "p-1", "t-1").Return(&entity.Task{ID: "t-1", ProjectID: "p-1", CreatedBy: "carol"}, noErr())
}

func TestCreateSubtask_DefaultsAssigneeToCaller(t *testing.T) {
	ctx := context.Background()
	service, repo, projectRepo, taskRepo := newTestService()
	expectParents(ctx, projectRepo, taskRepo)

	repo.On("InsertSubtask", ctx, mock.AnythingOfType("*entity.Subtask")).Return(noErr())

	resp, err := service.CreateSubtask(ctx, "alice", "p-1", "t-1", &subtask_dto.CreateSubtaskRequest{Text: " Draft intro "})

	require.Nil(t, err)
	assert.Equal(t, "alice", resp.AssigneeID)
	assert.Equal(t, "Draft intro", resp.Text)
	assert.Equal(t, "t-1", resp.TaskID)
	assert.Equal(t, "p-1", resp.ProjectID)
}

func TestCreateSubtask_ExplicitAssignee(t *testing.T) {
	ctx := context.Background()
	service, repo, projectRepo, taskRepo := newTestService()
	expectParents(ctx, projectRepo, taskRepo)

	repo.On("InsertSubtask", ctx, mock.MatchedBy(func(s *entity.Subtask) bool {
		return s.AssigneeID == "bob"
	})).Return(noErr())

	resp, err := service.CreateSubtask(ctx, "carol", "p-1", "t-1", &subtask_dto.CreateSubtaskRequest{Text: "Review", AssigneeID: "bob"})

	require.Nil(t, err)
	assert.Equal(t, "bob", resp.AssigneeID)
	repo.AssertExpectations(t)
}

func TestCreateSubtask_OutsiderForbiddenAndNothingStored(t *testing.T) {
	ctx := context.Background()
	service, repo, projectRepo, taskRepo := newTestService()
	expectParents(ctx, projectRepo, taskRepo)

	resp, err := service.CreateSubtask(ctx, "dave", "p-1", "t-1", &subtask_dto.CreateSubtaskRequest{Text: "Sneaky"})

	assert.Nil(t, resp)
	require.NotNil(t, err)
	assert.Equal(t, 403, err.Code)
	repo.AssertNotCalled(t, "InsertSubtask", mock.Anything, mock.Anything)
}

func TestCreateSubtask_MissingParents(t *testing.T) {
	ctx := context.Background()

	t.Run("project", func(t *testing.T) {
		service, repo, projectRepo, _ := newTestService()
		projectRepo.On("GetProjectByID", ctx, "p-1").Return((*entity.Project)(nil), app_errors.NotFound("project_not_found"))

		_, err := service.CreateSubtask(ctx, "alice", "p-1", "t-1", &subtask_dto.CreateSubtaskRequest{Text: "x"})

		require.NotNil(t, err)
		assert.Equal(t, 404, err.Code)
		repo.AssertNotCalled(t, "InsertSubtask", mock.Anything, mock.Anything)
	})

	t.Run("task", func(t *testing.T) {
		service, _, projectRepo, taskRepo := newTestService()
		projectRepo.On("GetProjectByID", ctx, "p-1").Return(&entity.Project{ID: "p-1", CreatedBy: "carol"}, noErr())
		taskRepo.On("GetTask", ctx, "p-1", "t-1").Return((*entity.Task)(nil), app_errors.NotFound("task_not_found"))

		// 404 hat Vorrang vor 403
		_, err := service.CreateSubtask(ctx, "dave", "p-1", "t-1", &subtask_dto.CreateSubtaskRequest{Text: "x"})

		require.NotNil(t, err)
		assert.Equal(t, "task_not_found", err.MessageKey)
	})
}

func TestListMySubtasks_OnlyCallers(t *testing.T) {
	ctx := context.Background()
	service, repo, projectRepo, taskRepo := newTestService()
	expectParents(ctx, projectRepo, taskRepo)

	repo.On("ListSubtasksForAssignee", ctx, "t-1", "bob").Return([]entity.Subtask{
		{ID: "s-1", TaskID: "t-1", AssigneeID: "bob", Text: "one"},
	}, noErr())

	resp, err := service.ListMySubtasks(ctx, "bob", "p-1", "t-1")

	require.Nil(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "bob", resp[0].AssigneeID)
}

func TestGetSubtask_CreatorCannotReadOthers(t *testing.T) {
	ctx := context.Background()
	service, repo, projectRepo, taskRepo := newTestService()
	expectParents(ctx, projectRepo, taskRepo)

	repo.On("GetSubtask", ctx, "t-1", "s-1").Return(&entity.Subtask{ID: "s-1", TaskID: "t-1", AssigneeID: "alice"}, noErr())

	resp, err := service.GetSubtask(ctx, "carol", "p-1", "t-1", "s-1")

	assert.Nil(t, resp)
	require.NotNil(t, err)
	assert.Equal(t, "forbidden.not_subtask_assignee", err.MessageKey)

	resp, err = service.GetSubtask(ctx, "alice", "p-1", "t-1", "s-1")
	require.Nil(t, err)
	assert.Equal(t, "s-1", resp.ID)
}

func TestUpdateSubtask_Assignee(t *testing.T) {
	ctx := context.Background()
	service, repo, projectRepo, taskRepo := newTestService()
	expectParents(ctx, projectRepo, taskRepo)

	repo.On("GetSubtask", ctx, "t-1", "s-1").Return(&entity.Subtask{ID: "s-1", TaskID: "t-1", AssigneeID: "alice"}, noErr())
	repo.On("UpdateSubtaskText", ctx, "s-1", "new text").Return(&entity.Subtask{ID: "s-1", AssigneeID: "alice", Text: "new text"}, noErr())

	resp, err := service.UpdateSubtask(ctx, "alice", "p-1", "t-1", "s-1", &subtask_dto.UpdateSubtaskRequest{Text: "new text "})

	require.Nil(t, err)
	assert.Equal(t, "new text", resp.Text)
}

func TestDeleteSubtask(t *testing.T) {
	ctx := context.Background()
	service, repo, projectRepo, taskRepo := newTestService()
	expectParents(ctx, projectRepo, taskRepo)

	repo.On("GetSubtask", ctx, "t-1", "s-1").Return(&entity.Subtask{ID: "s-1", TaskID: "t-1", AssigneeID: "alice"}, noErr())
	repo.On("DeleteSubtask", ctx, "s-1").Return(noErr())

	_, err := service.DeleteSubtask(ctx, "bob", "p-1", "t-1", "s-1")
	require.NotNil(t, err)
	assert.Equal(t, 403, err.Code)

	resp, err := service.DeleteSubtask(ctx, "alice", "p-1", "t-1", "s-1")
	require.Nil(t, err)
	assert.Equal(t, "s-1", resp.ID)
	repo.AssertNumberOfCalls(t, "DeleteSubtask", 1)
}

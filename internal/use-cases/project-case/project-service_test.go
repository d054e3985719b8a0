package project_case

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	project_dto "github.com/virtutask/virtutask-api/internal/dtos/project-dto"
	"github.com/virtutask/virtutask-api/internal/entity"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
	"github.com/virtutask/virtutask-api/internal/realtime"
	use_cases "github.com/virtutask/virtutask-api/internal/use-cases"
)

func newTestService() (*ProjectService, *use_cases.MockProjectRepo, *use_cases.MockCache, *use_cases.MockBroadcaster) {
	repo := new(use_cases.MockProjectRepo)
	c := &use_cases.MockCache{}
	b := &use_cases.MockBroadcaster{}
	return &ProjectService{repo: repo, cache: c, broadcaster: b}, repo, c, b
}

func sampleRequest(members any) *project_dto.ProjectRequest {
	return &project_dto.ProjectRequest{
		Name:        "  Launch  ",
		Description: "Website relaunch",
		StartDate:   "2025-01-01",
		DueDate:     "2025-02-01T00:00:00Z",
		Department:  "Marketing",
		Priority:    "High",
		Members:     members,
	}
}

func sampleProject() *entity.Project {
	return &entity.Project{
		ID:        "p-1",
		Name:      "Launch",
		Status:    entity.DefaultProjectStatus,
		Priority:  entity.PriorityHigh,
		Members:   []string{"alice", "bob"},
		CreatedBy: "carol",
	}
}

func TestNormalizeMembers(t *testing.T) {
	cases := []struct {
		name string
		raw  any
		want []string
	}{
		{"nil", nil, []string{}},
		{"single string", " alice ", []string{"alice"}},
		{"blank string", "   ", []string{}},
		{"mixed list", []any{" alice ", "bob", "", 3, nil, "alice"}, []string{"alice", "bob"}},
		{"string slice", []string{"bob", "bob", "carol"}, []string{"bob", "carol"}},
		{"object", map[string]any{"a": "b"}, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeMembers(tc.raw))
		})
	}
}

func TestCreateProject_Success(t *testing.T) {
	ctx := context.Background()
	service, repo, _, b := newTestService()

	repo.On("InsertProject", ctx, mock.AnythingOfType("*entity.Project")).Return((*app_errors.AppError)(nil))

	resp, err := service.CreateProject(ctx, "carol", sampleRequest([]any{"alice", " bob ", "", "alice"}))

	require.Nil(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Launch", resp.Name)
	assert.Equal(t, "carol", resp.CreatedBy)
	assert.Equal(t, []string{"alice", "bob"}, resp.Members)
	assert.Equal(t, entity.DefaultProjectStatus, resp.Status)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), resp.StartDate)

	assert.Equal(t, []string{"alice", "bob"}, b.Channels(realtime.EventNewProject))

	repo.AssertExpectations(t)
}

func TestCreateProject_KeepsGivenStatus(t *testing.T) {
	ctx := context.Background()
	service, repo, _, _ := newTestService()

	repo.On("InsertProject", ctx, mock.AnythingOfType("*entity.Project")).Return((*app_errors.AppError)(nil))

	req := sampleRequest(nil)
	req.Status = "On Hold"
	resp, err := service.CreateProject(ctx, "carol", req)

	require.Nil(t, err)
	assert.Equal(t, "On Hold", resp.Status)
	assert.Empty(t, resp.Members)
}

func TestCreateProject_RepoError(t *testing.T) {
	ctx := context.Background()
	service, repo, _, b := newTestService()

	repo.On("InsertProject", ctx, mock.AnythingOfType("*entity.Project")).Return(app_errors.Internal(assert.AnError))

	resp, err := service.CreateProject(ctx, "carol", sampleRequest([]any{"alice"}))

	assert.Nil(t, resp)
	require.NotNil(t, err)
	assert.Equal(t, 500, err.Code)
	assert.Empty(t, b.Published)
}

func TestGetProject_CreatorAndMember(t *testing.T) {
	ctx := context.Background()
	service, repo, c, _ := newTestService()

	repo.On("GetProjectByID", ctx, "p-1").Return(sampleProject(), (*app_errors.AppError)(nil))

	for _, user := range []string{"carol", "alice"} {
		resp, err := service.GetProject(ctx, user, "p-1")
		require.Nil(t, err)
		assert.Equal(t, "p-1", resp.ID)
	}

	assert.Equal(t, 2, c.SetCalled)
}

func TestGetProject_OutsiderForbidden(t *testing.T) {
	ctx := context.Background()
	service, repo, _, _ := newTestService()

	repo.On("GetProjectByID", ctx, "p-1").Return(sampleProject(), (*app_errors.AppError)(nil))

	resp, err := service.GetProject(ctx, "dave", "p-1")

	assert.Nil(t, resp)
	require.NotNil(t, err)
	assert.Equal(t, app_errors.ErrForbidden, err.Type)
	assert.Equal(t, "forbidden.not_project_member", err.MessageKey)
}

func TestGetProject_NotFound(t *testing.T) {
	ctx := context.Background()
	service, repo, c, _ := newTestService()

	repo.On("GetProjectByID", ctx, "missing").Return((*entity.Project)(nil), app_errors.NotFound("project_not_found"))

	resp, err := service.GetProject(ctx, "carol", "missing")

	assert.Nil(t, resp)
	require.NotNil(t, err)
	assert.Equal(t, 404, err.Code)
	assert.Equal(t, 0, c.SetCalled)
}

func TestGetProject_CacheHit(t *testing.T) {
	ctx := context.Background()
	service, repo, c, _ := newTestService()

	c.GetFn = func(_ context.Context, key string, dest any) (bool, *app_errors.AppError) {
		assert.Equal(t, "project:p-1", key)
		*dest.(*entity.Project) = *sampleProject()
		return true, nil
	}

	resp, err := service.GetProject(ctx, "bob", "p-1")

	require.Nil(t, err)
	assert.Equal(t, "carol", resp.CreatedBy)
	repo.AssertNotCalled(t, "GetProjectByID", mock.Anything, mock.Anything)
}

func TestGetProject_CacheErrorFallsBackToRepo(t *testing.T) {
	ctx := context.Background()
	service, repo, c, _ := newTestService()

	c.GetFn = func(context.Context, string, any) (bool, *app_errors.AppError) {
		return false, app_errors.Internal(assert.AnError)
	}
	repo.On("GetProjectByID", ctx, "p-1").Return(sampleProject(), (*app_errors.AppError)(nil))

	resp, err := service.GetProject(ctx, "alice", "p-1")

	require.Nil(t, err)
	assert.Equal(t, "p-1", resp.ID)
	repo.AssertExpectations(t)
}

func TestListMyProjects(t *testing.T) {
	ctx := context.Background()
	service, repo, _, _ := newTestService()

	repo.On("ListProjectsForAccount", ctx, "alice").Return([]entity.Project{*sampleProject()}, (*app_errors.AppError)(nil))

	resp, err := service.ListMyProjects(ctx, "alice")

	require.Nil(t, err)
	assert.Len(t, resp, 1)
}

func TestUpdateProject_Success(t *testing.T) {
	ctx := context.Background()
	service, repo, c, b := newTestService()

	repo.On("GetProjectByID", ctx, "p-1").Return(sampleProject(), (*app_errors.AppError)(nil))
	repo.On("UpdateProject", ctx, mock.MatchedBy(func(p *entity.Project) bool {
		return p.ID == "p-1" && p.CreatedBy == "carol"
	})).Return((*app_errors.AppError)(nil))

	resp, err := service.UpdateProject(ctx, "carol", "p-1", sampleRequest([]any{"bob", "erin"}))

	require.Nil(t, err)
	assert.Equal(t, []string{"bob", "erin"}, resp.Members)
	assert.Equal(t, "carol", resp.CreatedBy)
	assert.Contains(t, c.DelKeys, "project:p-1")
	assert.Equal(t, []string{"bob", "erin"}, b.Channels(realtime.EventUpdatedProject))

	repo.AssertExpectations(t)
}

func TestUpdateProject_MemberForbidden(t *testing.T) {
	ctx := context.Background()
	service, repo, c, b := newTestService()

	repo.On("GetProjectByID", ctx, "p-1").Return(sampleProject(), (*app_errors.AppError)(nil))

	resp, err := service.UpdateProject(ctx, "alice", "p-1", sampleRequest(nil))

	assert.Nil(t, resp)
	require.NotNil(t, err)
	assert.Equal(t, "forbidden.not_project_creator", err.MessageKey)
	assert.Equal(t, 0, c.DelCalled)
	assert.Empty(t, b.Published)
	repo.AssertNotCalled(t, "UpdateProject", mock.Anything, mock.Anything)
}

func TestDeleteProject_NotifiesEveryPriorMemberOnce(t *testing.T) {
	ctx := context.Background()
	service, repo, c, b := newTestService()

	repo.On("GetProjectByID", ctx, "p-1").Return(sampleProject(), (*app_errors.AppError)(nil))
	repo.On("DeleteProject", ctx, "p-1").Return((*app_errors.AppError)(nil))

	resp, err := service.DeleteProject(ctx, "carol", "p-1")

	require.Nil(t, err)
	assert.Equal(t, "p-1", resp.ID)
	assert.Equal(t, []string{"alice", "bob"}, b.Channels(realtime.EventDeletedProject))
	assert.Equal(t, []string{"project:p-1"}, c.DelKeys)

	repo.AssertExpectations(t)
}

func TestDeleteProject_NonCreatorForbidden(t *testing.T) {
	ctx := context.Background()
	service, repo, _, b := newTestService()

	repo.On("GetProjectByID", ctx, "p-1").Return(sampleProject(), (*app_errors.AppError)(nil))

	resp, err := service.DeleteProject(ctx, "bob", "p-1")

	assert.Nil(t, resp)
	require.NotNil(t, err)
	assert.Equal(t, 403, err.Code)
	assert.Empty(t, b.Published)
	repo.AssertNotCalled(t, "DeleteProject", mock.Anything, mock.Anything)
}

package task_case

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/virtutask/virtutask-api/internal/entity"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
	"github.com/virtutask/virtutask-api/internal/realtime"
	"github.com/virtutask/virtutask-api/internal/storage"
)

func taskWithAttachment() *entity.Task {
	task := sampleTask()
	task.Attachments = []entity.Attachment{
		{ID: "a-1", Filename: "brief.pdf", Path: "uploads/file-1-123456789.pdf", Size: 10, MimeType: "application/pdf"},
		{ID: "a-2", Filename: "logo.png", Path: "uploads/file-2-123456789.png", Size: 20, MimeType: "image/png"},
	}
	return task
}

func TestUploadAttachment_Success(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService(false)
	header := &multipart.FileHeader{Filename: "brief.pdf", Size: 10}

	d.repo.On("GetTask", ctx, "p-1", "t-1").Return(sampleTask(), noErr())
	d.store.On("Save", "file", header).Return(&storage.StoredFile{
		Filename: "brief.pdf",
		Path:     "uploads/file-1-123456789.pdf",
		Size:     10,
		MimeType: "application/pdf",
	}, noErr())
	d.repo.On("UpdateTask", ctx, mock.MatchedBy(func(task *entity.Task) bool {
		return len(task.Attachments) == 1
	})).Return(noErr())

	attachment, err := service.UploadAttachment(ctx, "carol", "p-1", "t-1", header)

	require.Nil(t, err)
	assert.NotEmpty(t, attachment.ID)
	assert.Equal(t, "uploads/file-1-123456789.pdf", attachment.Path)
	assert.Equal(t, []string{"alice", "bob"}, d.broadcaster.Channels(realtime.EventAttachmentUploaded))
	d.repo.AssertExpectations(t)
}

func TestUploadAttachment_NonCreatorForbidden(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService(false)

	d.repo.On("GetTask", ctx, "p-1", "t-1").Return(sampleTask(), noErr())

	attachment, err := service.UploadAttachment(ctx, "alice", "p-1", "t-1", &multipart.FileHeader{Filename: "a.pdf"})

	assert.Nil(t, attachment)
	require.NotNil(t, err)
	assert.Equal(t, 403, err.Code)
	d.store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUploadAttachment_MissingFile(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService(false)

	d.repo.On("GetTask", ctx, "p-1", "t-1").Return(sampleTask(), noErr())

	_, err := service.UploadAttachment(ctx, "carol", "p-1", "t-1", nil)

	require.NotNil(t, err)
	assert.Equal(t, "attachment.file_required", err.MessageKey)
}

func TestUploadAttachment_RejectedByStore(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService(false)
	header := &multipart.FileHeader{Filename: "tool.exe", Size: 10}

	d.repo.On("GetTask", ctx, "p-1", "t-1").Return(sampleTask(), noErr())
	d.store.On("Save", "file", header).Return((*storage.StoredFile)(nil), app_errors.BadRequest("attachment.type_not_allowed", nil))

	_, err := service.UploadAttachment(ctx, "carol", "p-1", "t-1", header)

	require.NotNil(t, err)
	assert.Equal(t, "attachment.type_not_allowed", err.MessageKey)
	d.repo.AssertNotCalled(t, "UpdateTask", mock.Anything, mock.Anything)
}

func TestUploadAttachment_RepoFailureRemovesFile(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService(false)
	header := &multipart.FileHeader{Filename: "brief.pdf", Size: 10}

	d.repo.On("GetTask", ctx, "p-1", "t-1").Return(sampleTask(), noErr())
	d.store.On("Save", "file", header).Return(&storage.StoredFile{Path: "uploads/x.pdf"}, noErr())
	d.repo.On("UpdateTask", ctx, mock.AnythingOfType("*entity.Task")).Return(app_errors.Internal(assert.AnError))
	d.store.On("Remove", "uploads/x.pdf").Return(nil)

	_, err := service.UploadAttachment(ctx, "carol", "p-1", "t-1", header)

	require.NotNil(t, err)
	d.store.AssertExpectations(t)
	assert.Empty(t, d.broadcaster.Published)
}

func TestListAttachments_AssigneeCanRead(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService(false)

	d.repo.On("GetTask", ctx, "p-1", "t-1").Return(taskWithAttachment(), noErr())

	list, err := service.ListAttachments(ctx, "bob", "p-1", "t-1")

	require.Nil(t, err)
	assert.Len(t, list, 2)

	_, err = service.ListAttachments(ctx, "dave", "p-1", "t-1")
	require.NotNil(t, err)
	assert.Equal(t, 403, err.Code)
}

func TestGetAttachment(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		service, d := newTestService(false)
		d.repo.On("GetTask", ctx, "p-1", "t-1").Return(taskWithAttachment(), noErr())
		d.store.On("Exists", "uploads/file-1-123456789.pdf").Return(true)

		dl, err := service.GetAttachment(ctx, "alice", "p-1", "t-1", "a-1")

		require.Nil(t, err)
		assert.Equal(t, "brief.pdf", dl.Filename)
		assert.Equal(t, "application/pdf", dl.MimeType)
	})

	t.Run("unknown attachment", func(t *testing.T) {
		service, d := newTestService(false)
		d.repo.On("GetTask", ctx, "p-1", "t-1").Return(taskWithAttachment(), noErr())

		_, err := service.GetAttachment(ctx, "alice", "p-1", "t-1", "a-9")

		require.NotNil(t, err)
		assert.Equal(t, 404, err.Code)
	})

	t.Run("file vanished", func(t *testing.T) {
		service, d := newTestService(false)
		d.repo.On("GetTask", ctx, "p-1", "t-1").Return(taskWithAttachment(), noErr())
		d.store.On("Exists", "uploads/file-1-123456789.pdf").Return(false)

		_, err := service.GetAttachment(ctx, "carol", "p-1", "t-1", "a-1")

		require.NotNil(t, err)
		assert.Equal(t, 410, err.Code)
		assert.Equal(t, app_errors.ErrGone, err.Type)
	})
}

func TestUpdateAttachment_KeepsIDAndRemovesOldFile(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService(false)
	header := &multipart.FileHeader{Filename: "brief-v2.pdf", Size: 12}

	d.repo.On("GetTask", ctx, "p-1", "t-1").Return(taskWithAttachment(), noErr())
	d.store.On("Save", "file", header).Return(&storage.StoredFile{
		Filename: "brief-v2.pdf",
		Path:     "uploads/file-3-123456789.pdf",
		Size:     12,
		MimeType: "application/pdf",
	}, noErr())
	d.repo.On("UpdateTask", ctx, mock.MatchedBy(func(task *entity.Task) bool {
		return len(task.Attachments) == 2 && task.Attachments[0].Filename == "brief-v2.pdf"
	})).Return(noErr())
	d.store.On("Remove", "uploads/file-1-123456789.pdf").Return(nil)

	attachment, err := service.UpdateAttachment(ctx, "carol", "p-1", "t-1", "a-1", header)

	require.Nil(t, err)
	assert.Equal(t, "a-1", attachment.ID)
	assert.Equal(t, "uploads/file-3-123456789.pdf", attachment.Path)
	assert.Equal(t, []string{"alice", "bob"}, d.broadcaster.Channels(realtime.EventAttachmentUpdated))
	d.store.AssertExpectations(t)
}

func TestDeleteAttachment_FileRemovalErrorIsTolerated(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService(false)

	d.repo.On("GetTask", ctx, "p-1", "t-1").Return(taskWithAttachment(), noErr())
	d.repo.On("UpdateTask", ctx, mock.MatchedBy(func(task *entity.Task) bool {
		return len(task.Attachments) == 1 && task.Attachments[0].ID == "a-2"
	})).Return(noErr())
	d.store.On("Remove", "uploads/file-1-123456789.pdf").Return(errors.New("permission denied"))

	event, err := service.DeleteAttachment(ctx, "carol", "p-1", "t-1", "a-1")

	require.Nil(t, err)
	assert.Equal(t, "a-1", event.Attachment.ID)
	assert.Equal(t, []string{"alice", "bob"}, d.broadcaster.Channels(realtime.EventAttachmentDeleted))
	d.repo.AssertExpectations(t)
}

func TestDeleteAttachment_NonCreatorForbidden(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService(false)

	d.repo.On("GetTask", ctx, "p-1", "t-1").Return(taskWithAttachment(), noErr())

	_, err := service.DeleteAttachment(ctx, "bob", "p-1", "t-1", "a-1")

	require.NotNil(t, err)
	assert.Equal(t, 403, err.Code)
	d.store.AssertNotCalled(t, "Remove", mock.Anything)
}

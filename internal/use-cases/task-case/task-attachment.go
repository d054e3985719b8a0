package task_case

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	task_dto "github.com/virtutask/virtutask-api/internal/dtos/task-dto"
	"github.com/virtutask/virtutask-api/internal/entity"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
	"github.com/virtutask/virtutask-api/internal/realtime"
)

const attachmentField = "file"

func (s *TaskService) UploadAttachment(ctx context.Context, userID, projectID, taskID string, file *multipart.FileHeader) (*entity.Attachment, *app_errors.AppError) {
	task, err := s.creatorTask(ctx, userID, projectID, taskID)
	if err != nil {
		return nil, err
	}

	attachment, err := s.storeFile(file)
	if err != nil {
		return nil, err
	}

	task.Attachments = append(task.Attachments, *attachment)
	task.UpdatedAt = time.Now().UTC()
	if err := s.repo.UpdateTask(ctx, task); err != nil {
		s.removeFile(attachment.Path)
		return nil, err
	}

	s.publishAttachment(ctx, task, realtime.EventAttachmentUploaded, attachment)
	return attachment, nil
}

func (s *TaskService) ListAttachments(ctx context.Context, userID, projectID, taskID string) ([]entity.Attachment, *app_errors.AppError) {
	task, err := s.repo.GetTask(ctx, projectID, taskID)
	if err != nil {
		return nil, err
	}
	if !task.CanView(userID) {
		return nil, forbiddenNotParticipant()
	}

	if task.Attachments == nil {
		return []entity.Attachment{}, nil
	}
	return task.Attachments, nil
}

func (s *TaskService) GetAttachment(ctx context.Context, userID, projectID, taskID, attachmentID string) (*task_dto.AttachmentDownload, *app_errors.AppError) {
	task, err := s.repo.GetTask(ctx, projectID, taskID)
	if err != nil {
		return nil, err
	}
	if !task.CanView(userID) {
		return nil, forbiddenNotParticipant()
	}

	idx := task.AttachmentIndex(attachmentID)
	if idx < 0 {
		return nil, app_errors.NotFound("attachment_not_found")
	}
	attachment := task.Attachments[idx]

	if !s.store.Exists(attachment.Path) {
		return nil, app_errors.NewAppError(410, app_errors.ErrGone, "attachment.file_missing", nil)
	}

	return &task_dto.AttachmentDownload{
		Path:     attachment.Path,
		Filename: attachment.Filename,
		MimeType: attachment.MimeType,
	}, nil
}

// UpdateAttachment ersetzt die Datei, die Anhang-ID bleibt erhalten.
func (s *TaskService) UpdateAttachment(ctx context.Context, userID, projectID, taskID, attachmentID string, file *multipart.FileHeader) (*entity.Attachment, *app_errors.AppError) {
	task, err := s.creatorTask(ctx, userID, projectID, taskID)
	if err != nil {
		return nil, err
	}

	idx := task.AttachmentIndex(attachmentID)
	if idx < 0 {
		return nil, app_errors.NotFound("attachment_not_found")
	}
	oldPath := task.Attachments[idx].Path

	replacement, err := s.storeFile(file)
	if err != nil {
		return nil, err
	}
	replacement.ID = attachmentID

	task.Attachments[idx] = *replacement
	task.UpdatedAt = time.Now().UTC()
	if err := s.repo.UpdateTask(ctx, task); err != nil {
		s.removeFile(replacement.Path)
		return nil, err
	}
	s.removeFile(oldPath)

	s.publishAttachment(ctx, task, realtime.EventAttachmentUpdated, replacement)
	return replacement, nil
}

func (s *TaskService) DeleteAttachment(ctx context.Context, userID, projectID, taskID, attachmentID string) (*task_dto.AttachmentEvent, *app_errors.AppError) {
	task, err := s.creatorTask(ctx, userID, projectID, taskID)
	if err != nil {
		return nil, err
	}

	idx := task.AttachmentIndex(attachmentID)
	if idx < 0 {
		return nil, app_errors.NotFound("attachment_not_found")
	}
	removed := task.Attachments[idx]

	task.Attachments = append(task.Attachments[:idx:idx], task.Attachments[idx+1:]...)
	task.UpdatedAt = time.Now().UTC()
	if err := s.repo.UpdateTask(ctx, task); err != nil {
		return nil, err
	}
	s.removeFile(removed.Path)

	event := &task_dto.AttachmentEvent{TaskID: task.ID, ProjectID: task.ProjectID, Attachment: &removed}
	realtime.PublishEach(ctx, s.broadcaster, task.AssigneeIDs(), realtime.EventAttachmentDeleted, event)
	return event, nil
}

func (s *TaskService) creatorTask(ctx context.Context, userID, projectID, taskID string) (*entity.Task, *app_errors.AppError) {
	task, err := s.repo.GetTask(ctx, projectID, taskID)
	if err != nil {
		return nil, err
	}
	if !task.IsCreator(userID) {
		return nil, forbiddenNotCreator()
	}
	return task, nil
}

func (s *TaskService) storeFile(file *multipart.FileHeader) (*entity.Attachment, *app_errors.AppError) {
	if file == nil {
		return nil, app_errors.BadRequest("attachment.file_required", nil)
	}

	stored, err := s.store.Save(attachmentField, file)
	if err != nil {
		return nil, err
	}

	attachmentID, uuidErr := uuid.NewV7()
	if uuidErr != nil {
		s.removeFile(stored.Path)
		return nil, app_errors.Internal(uuidErr)
	}

	return &entity.Attachment{
		ID:         attachmentID.String(),
		Filename:   stored.Filename,
		Path:       stored.Path,
		Size:       stored.Size,
		MimeType:   stored.MimeType,
		UploadedAt: time.Now().UTC(),
	}, nil
}

// removeFile: Fehler werden nur geloggt.
func (s *TaskService) removeFile(path string) {
	if err := s.store.Remove(path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Datei konnte nicht entfernt werden")
	}
}

func (s *TaskService) publishAttachment(ctx context.Context, task *entity.Task, event string, attachment *entity.Attachment) {
	payload := &task_dto.AttachmentEvent{TaskID: task.ID, ProjectID: task.ProjectID, Attachment: attachment}
	realtime.PublishEach(ctx, s.broadcaster, task.AssigneeIDs(), event, payload)
}

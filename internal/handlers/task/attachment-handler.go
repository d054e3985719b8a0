package task_handlers

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	task_dto "github.com/virtutask/virtutask-api/internal/dtos/task-dto"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
	"github.com/virtutask/virtutask-api/internal/handlers"
)

const attachmentFormField = "file"

func (h *TaskHandler) UploadAttachment(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	var param task_dto.ParamTask
	if err := handlers.ParseParams(c, h.validator, &param); err != nil {
		return err
	}

	file, err := formFile(c)
	if err != nil {
		return err
	}

	resp, err := h.service.UploadAttachment(c.Context(), userID, param.ProjectID, param.TaskID, file)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusCreated, "response.success_upload_attachment", resp)
}

func (h *TaskHandler) ListAttachments(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	var param task_dto.ParamTask
	if err := handlers.ParseParams(c, h.validator, &param); err != nil {
		return err
	}

	resp, err := h.service.ListAttachments(c.Context(), userID, param.ProjectID, param.TaskID)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_list_attachments", resp)
}

// DownloadAttachment sendet die Datei selbst, nicht die WebResponse.
func (h *TaskHandler) DownloadAttachment(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	var param task_dto.ParamAttachment
	if err := handlers.ParseParams(c, h.validator, &param); err != nil {
		return err
	}

	dl, err := h.service.GetAttachment(c.Context(), userID, param.ProjectID, param.TaskID, param.AttachmentID)
	if err != nil {
		return err
	}

	if err := c.Download(dl.Path, dl.Filename); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

func (h *TaskHandler) UpdateAttachment(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	var param task_dto.ParamAttachment
	if err := handlers.ParseParams(c, h.validator, &param); err != nil {
		return err
	}

	file, err := formFile(c)
	if err != nil {
		return err
	}

	resp, err := h.service.UpdateAttachment(c.Context(), userID, param.ProjectID, param.TaskID, param.AttachmentID, file)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_update_attachment", resp)
}

func (h *TaskHandler) DeleteAttachment(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	var param task_dto.ParamAttachment
	if err := handlers.ParseParams(c, h.validator, &param); err != nil {
		return err
	}

	resp, err := h.service.DeleteAttachment(c.Context(), userID, param.ProjectID, param.TaskID, param.AttachmentID)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_delete_attachment", resp)
}

func formFile(c *fiber.Ctx) (*multipart.FileHeader, *app_errors.AppError) {
	file, err := c.FormFile(attachmentFormField)
	if err != nil {
		return nil, app_errors.BadRequest("attachment.file_required", err)
	}
	return file, nil
}

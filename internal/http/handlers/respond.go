package handlers

import (
	"github.com/experience-marketplace/backend/internal/http/dto"
	"github.com/experience-marketplace/backend/internal/middleware"
	"github.com/experience-marketplace/backend/internal/models"
	"github.com/gofiber/fiber/v2"
)

// fail maps a service error onto the error envelope. Unknown errors
// become a generic 500 so internal detail never leaks to clients.
func fail(c *fiber.Ctx, err error) error {
	if appErr := models.AsAppError(err); appErr != nil {
		return c.Status(appErr.Status).JSON(dto.ErrorResponse{
			OK:        false,
			Error:     dto.ErrorDetail{Code: appErr.Code, Message: appErr.Message},
			RequestID: middleware.GetRequestID(c),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		OK:        false,
		Error:     dto.ErrorDetail{Code: models.ErrCodeInternalError, Message: "internal error"},
		RequestID: middleware.GetRequestID(c),
	})
}

func badRequest(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		OK:        false,
		Error:     dto.ErrorDetail{Code: code, Message: message},
		RequestID: middleware.GetRequestID(c),
	})
}

func ok(c *fiber.Ctx, data any) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: data})
}

func created(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: data})
}

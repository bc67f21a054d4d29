package handler

import (
	"errors"

	"qryptogenia-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps domain errors to HTTP status codes, instead of the
// one-size-fits-all 500.
func statusForError(err error) int {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrRoleExists), errors.Is(err, service.ErrEmailExists):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrRoleNotFound), errors.Is(err, service.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrUserInactive):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

func errorResponse(c *fiber.Ctx, err error) error {
	status := statusForError(err)
	if status == fiber.StatusInternalServerError {
		return c.Status(status).JSON(fiber.Map{
			"message": "Internal server error",
			"error":   err.Error(),
		})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

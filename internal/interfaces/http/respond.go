package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/pr-poehali-dev/stock-management-excel/internal/application/dto"
	"github.com/pr-poehali-dev/stock-management-excel/internal/domain"
)

// respondError maps domain errors to the HTTP codes and {"error": "..."}
// bodies the frontend expects. Anything unmapped degrades to a 500 carrying
// the error text — acceptable for an internal tool.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
}

// ErrorHandler is the Fiber-level fallback: routing errors (404, and 405 for
// a known path with the wrong verb) and panics recovered by the recover
// middleware end up here as JSON instead of plain text.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	if code == fiber.StatusMethodNotAllowed {
		return c.Status(code).JSON(dto.ErrorResponse{Error: "Method not allowed"})
	}
	return c.Status(code).JSON(dto.ErrorResponse{Error: err.Error()})
}

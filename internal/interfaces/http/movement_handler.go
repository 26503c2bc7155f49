package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pr-poehali-dev/stock-management-excel/internal/application/dto"
	"github.com/pr-poehali-dev/stock-management-excel/internal/application/inventory"
)

// MovementHandler handles the ledger endpoints.
type MovementHandler struct {
	ledger *inventory.Ledger
}

// NewMovementHandler builds the handler.
func NewMovementHandler(ledger *inventory.Ledger) *MovementHandler {
	return &MovementHandler{ledger: ledger}
}

// List godoc
// @Summary      Recent movements
// @Description  Newest first, joined with product name and sku, capped at 50.
// @Tags         movements
// @Produce      json
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	out, err := h.ledger.ListMovements(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Record godoc
// @Summary      Record a movement
// @Description  Inserts the movement and adjusts the product quantity in one transaction.
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "Movement data"
// @Success      201   {object}  dto.MovementCreatedResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "некорректное тело запроса"})
	}
	out, err := h.ledger.RecordMovement(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementCreatedResponse{Movement: *out})
}

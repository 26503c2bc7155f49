package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/pr-poehali-dev/stock-management-excel/internal/application/dto"
	"github.com/pr-poehali-dev/stock-management-excel/internal/application/usecase"
	"github.com/pr-poehali-dev/stock-management-excel/internal/domain"
	"github.com/pr-poehali-dev/stock-management-excel/internal/domain/entity"
)

// ActRenderer renders a write-off act into its printable PDF form.
type ActRenderer interface {
	Render(act *entity.WriteoffAct) ([]byte, error)
}

// WriteoffHandler handles write-off act endpoints. Acts are paperwork only:
// nothing here touches the ledger or product quantities.
type WriteoffHandler struct {
	uc  *usecase.WriteoffActUseCase
	pdf ActRenderer
}

// NewWriteoffHandler builds the handler.
func NewWriteoffHandler(uc *usecase.WriteoffActUseCase, pdf ActRenderer) *WriteoffHandler {
	return &WriteoffHandler{uc: uc, pdf: pdf}
}

// List godoc
// @Summary      List write-off acts
// @Tags         writeoff-acts
// @Produce      json
// @Success      200  {object}  dto.WriteoffActListResponse
// @Router       /api/writeoff-acts [get]
func (h *WriteoffHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Save a write-off act
// @Tags         writeoff-acts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWriteoffActRequest  true  "Act data"
// @Success      201   {object}  dto.WriteoffActCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/writeoff-acts [post]
func (h *WriteoffHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWriteoffActRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "некорректное тело запроса"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.WriteoffActCreatedResponse{Act: *out})
}

// Delete godoc
// @Summary      Delete a write-off act
// @Tags         writeoff-acts
// @Produce      json
// @Param        id  query  int  true  "Act id"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/writeoff-acts [delete]
func (h *WriteoffHandler) Delete(c *fiber.Ctx) error {
	// The legacy frontend sends the id as a query parameter.
	raw := c.Params("id", c.Query("id"))
	if raw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Act ID required"})
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Act ID required"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// RenderPDF godoc
// @Summary      Printable act
// @Tags         writeoff-acts
// @Produce      application/pdf
// @Param        id  path  int  true  "Act id"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/writeoff-acts/{id}/pdf [get]
func (h *WriteoffHandler) RenderPDF(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Act ID required"})
	}
	act, err := h.uc.GetActByID(c.Context(), int64(id))
	if err != nil {
		return respondError(c, err)
	}
	if act == nil {
		return respondError(c, domain.ErrNotFound)
	}
	data, err := h.pdf.Render(act)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="act_`+act.ActNumber+`.pdf"`)
	return c.Send(data)
}

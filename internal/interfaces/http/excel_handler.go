package http

import (
	"encoding/base64"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/pr-poehali-dev/stock-management-excel/internal/application/dto"
	"github.com/pr-poehali-dev/stock-management-excel/internal/application/importer"
	"github.com/pr-poehali-dev/stock-management-excel/internal/application/usecase"
	"github.com/pr-poehali-dev/stock-management-excel/internal/infrastructure/excel"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExcelHandler handles the workbook export and bulk import routes.
type ExcelHandler struct {
	products   *usecase.ProductUseCase
	reconciler *importer.Reconciler
}

// NewExcelHandler builds the handler.
func NewExcelHandler(products *usecase.ProductUseCase, reconciler *importer.Reconciler) *ExcelHandler {
	return &ExcelHandler{products: products, reconciler: reconciler}
}

// Export godoc
// @Summary      Export products as an xlsx workbook
// @Description  The body is the workbook base64-encoded; clients decode before saving.
// @Tags         excel
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {string}  string  "base64 workbook"
// @Router       /api/products/export [get]
func (h *ExcelHandler) Export(c *fiber.Ctx) error {
	products, err := h.products.ListForExport(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	book, err := excel.BuildWorkbook(products)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", excel.Filename))
	return c.SendString(base64.StdEncoding.EncodeToString(book))
}

// Import godoc
// @Summary      Import products from an xlsx workbook
// @Description  Rows are matched by sku: hits update the product in place, misses insert.
// @Tags         excel
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportRequest  true  "Base64-encoded workbook"
// @Success      200   {object}  dto.ImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/import [post]
func (h *ExcelHandler) Import(c *fiber.Ctx) error {
	var in dto.ImportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "No file provided"})
	}
	if in.File == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "No file provided"})
	}
	data, err := base64.StdEncoding.DecodeString(in.File)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "No file provided"})
	}

	rows, err := excel.ParseRows(data)
	if err != nil {
		return importError(c, err)
	}
	summary, err := h.reconciler.Reconcile(c.Context(), rows)
	if err != nil {
		return importError(c, err)
	}
	return c.JSON(dto.ImportResponse{
		Success:  true,
		Inserted: summary.Inserted,
		Updated:  summary.Updated,
		Total:    summary.Total(),
	})
}

// importError keeps the legacy wire shape: any failure past the file check,
// parse errors included, comes back as a 500 with the reason in the message.
func importError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: fmt.Sprintf("Import error: %v", err)})
}

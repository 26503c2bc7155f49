// Package excel builds and parses the product workbook. One sheet, a styled
// header row, one data row per product. The import layout matches the export
// layout so an exported file re-imports losslessly.
package excel

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/pr-poehali-dev/stock-management-excel/internal/application/importer"
	"github.com/pr-poehali-dev/stock-management-excel/internal/domain"
	"github.com/pr-poehali-dev/stock-management-excel/internal/domain/entity"
)

// SheetName is the single sheet of the export workbook.
const SheetName = "Товары"

// Filename is sent in Content-Disposition on export.
const Filename = "stock_products.xlsx"

const timestampLayout = "2006-01-02 15:04"

var headers = []string{
	"Название", "Артикул", "Количество", "Ед. изм.", "Мин. остаток",
	"Цена (₽)", "Партия", "Создан", "Обновлен",
}

var columnWidths = []float64{25, 15, 12, 10, 14, 15, 15, 18, 18}

// BuildWorkbook renders products into an xlsx workbook.
func BuildWorkbook(products []*entity.Product) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	styleID, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
		Font:      &excelize.Font{Color: "FFFFFF", Bold: true, Size: 12},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return nil, fmt.Errorf("set header: %w", err)
		}
	}
	lastHeaderCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(SheetName, "A1", lastHeaderCell, styleID); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	for i, w := range columnWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(SheetName, col, col, w); err != nil {
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	for i, p := range products {
		rowNum := i + 2
		values := []any{
			p.Name,
			p.SKU,
			p.Quantity,
			p.Unit,
			p.MinStock,
			p.Price.InexactFloat64(),
			p.Batch,
			p.CreatedAt.Format(timestampLayout),
			p.UpdatedAt.Format(timestampLayout),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, rowNum)
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// ParseRows reads the first sheet of an uploaded workbook into import rows.
// The header row is skipped. Blank numeric cells coerce to zero, a missing
// unit falls back to entity.DefaultUnit, and any non-numeric cell in a
// numeric column aborts the whole parse with domain.ErrParse.
func ParseRows(data []byte) ([]importer.Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: no sheets in workbook", domain.ErrParse)
	}
	rawRows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}
	if len(rawRows) < 2 {
		return nil, nil
	}

	rows := make([]importer.Row, 0, len(rawRows)-1)
	for i, raw := range rawRows[1:] {
		rowNum := i + 2

		quantity, err := cellInt(cell(raw, 2), rowNum, "quantity")
		if err != nil {
			return nil, err
		}
		minStock, err := cellInt(cell(raw, 4), rowNum, "min_stock")
		if err != nil {
			return nil, err
		}
		price, err := cellDecimal(cell(raw, 5), rowNum, "price")
		if err != nil {
			return nil, err
		}

		unit := cell(raw, 3)
		if unit == "" {
			unit = entity.DefaultUnit
		}

		rows = append(rows, importer.Row{
			Name:     cell(raw, 0),
			SKU:      cell(raw, 1),
			Quantity: quantity,
			Unit:     unit,
			MinStock: minStock,
			Price:    price,
			Batch:    cell(raw, 6),
		})
	}
	return rows, nil
}

// cell returns the value at index or "" — excelize trims trailing empty cells,
// so short slices are normal.
func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

// cellInt parses a quantity-like cell. Spreadsheets store integers as "10"
// or "10.0" depending on the editor, so it goes through float.
func cellInt(s string, rowNum int, column string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: row %d, column %s: %q is not a number", domain.ErrParse, rowNum, column, s)
	}
	return int64(v), nil
}

func cellDecimal(s string, rowNum int, column string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: row %d, column %s: %q is not a number", domain.ErrParse, rowNum, column, s)
	}
	return v, nil
}

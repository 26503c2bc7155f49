package excel_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pr-poehali-dev/stock-management-excel/internal/domain"
	"github.com/pr-poehali-dev/stock-management-excel/internal/domain/entity"
	"github.com/pr-poehali-dev/stock-management-excel/internal/infrastructure/excel"
)

// buildWorkbook writes rows under the standard header into an xlsx and
// returns the raw bytes. Row cells follow the import column order.
func buildWorkbook(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	headers := []string{"Название", "Артикул", "Количество", "Ед. изм.", "Мин. остаток", "Цена (₽)", "Партия"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, f.SetCellValue("Sheet1", cell, h))
	}
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			require.NoError(t, f.SetCellValue("Sheet1", cell, v))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestParseRows_ReadsDataRows(t *testing.T) {
	data := buildWorkbook(t, [][]any{
		{"Кабель ВВГ", "CAB-001", 10, "м", 5, 149.90, "Партия 7"},
		{"Розетка", "SOC-002", 25, "шт", 10, 89, ""},
	})

	rows, err := excel.ParseRows(data)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Кабель ВВГ", rows[0].Name)
	assert.Equal(t, "CAB-001", rows[0].SKU)
	assert.Equal(t, int64(10), rows[0].Quantity)
	assert.Equal(t, "м", rows[0].Unit)
	assert.Equal(t, int64(5), rows[0].MinStock)
	assert.True(t, rows[0].Price.Equal(decimal.NewFromFloat(149.90)), "price %s", rows[0].Price)
	assert.Equal(t, "Партия 7", rows[0].Batch)
}

func TestParseRows_BlankNumericCellsCoerceToZero(t *testing.T) {
	data := buildWorkbook(t, [][]any{
		{"Товар", "SKU-1", "", "", "", "", ""},
	})

	rows, err := excel.ParseRows(data)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, int64(0), rows[0].Quantity)
	assert.Equal(t, int64(0), rows[0].MinStock)
	assert.True(t, rows[0].Price.IsZero())
	assert.Equal(t, entity.DefaultUnit, rows[0].Unit)
}

func TestParseRows_NonNumericCellAborts(t *testing.T) {
	data := buildWorkbook(t, [][]any{
		{"Первый", "SKU-1", 5, "шт", 1, 10, ""},
		{"Второй", "SKU-2", "десять", "шт", 1, 10, ""},
	})

	rows, err := excel.ParseRows(data)
	assert.ErrorIs(t, err, domain.ErrParse)
	assert.Contains(t, err.Error(), "row 3")
	assert.Nil(t, rows)
}

func TestParseRows_FloatQuantityTruncates(t *testing.T) {
	data := buildWorkbook(t, [][]any{
		{"Товар", "SKU-1", "10.0", "шт", "2.5", 10, ""},
	})

	rows, err := excel.ParseRows(data)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(10), rows[0].Quantity)
	assert.Equal(t, int64(2), rows[0].MinStock)
}

func TestParseRows_HeaderOnlyWorkbook(t *testing.T) {
	data := buildWorkbook(t, nil)

	rows, err := excel.ParseRows(data)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseRows_GarbageInput(t *testing.T) {
	_, err := excel.ParseRows([]byte("this is not a zip archive"))
	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestBuildWorkbook_RoundTripsThroughParse(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	products := []*entity.Product{
		{
			ID: 1, Name: "Кабель ВВГ", SKU: "CAB-001", Quantity: 10, Unit: "м",
			MinStock: 5, Price: decimal.NewFromFloat(149.90), Batch: "Партия 7",
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: 2, Name: "Розетка", SKU: "SOC-002", Quantity: 25, Unit: entity.DefaultUnit,
			Price: decimal.NewFromInt(89), CreatedAt: now, UpdatedAt: now,
		},
	}

	book, err := excel.BuildWorkbook(products)
	require.NoError(t, err)

	rows, err := excel.ParseRows(book)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Кабель ВВГ", rows[0].Name)
	assert.Equal(t, "CAB-001", rows[0].SKU)
	assert.Equal(t, int64(10), rows[0].Quantity)
	assert.Equal(t, "м", rows[0].Unit)
	assert.Equal(t, int64(5), rows[0].MinStock)
	assert.True(t, rows[0].Price.Equal(decimal.NewFromFloat(149.90)))

	assert.Equal(t, "SOC-002", rows[1].SKU)
	assert.Equal(t, entity.DefaultUnit, rows[1].Unit)
}

func TestBuildWorkbook_SheetAndHeader(t *testing.T) {
	book, err := excel.BuildWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(book))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{excel.SheetName}, f.GetSheetList())

	name, err := f.GetCellValue(excel.SheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Название", name)

	sku, err := f.GetCellValue(excel.SheetName, "B1")
	require.NoError(t, err)
	assert.Equal(t, "Артикул", sku)
}

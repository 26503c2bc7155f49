// Package pdf renders the printable form of a write-off act with Maroto v2.
//
// A4 layout:
//
//	АКТ СПИСАНИЯ № <act_number> от <date>      (header)
//	Ответственный / Основание                  (meta block)
//	№ | Наименование | Артикул | Кол-во | Ед.  (items table)
//	Подписи                                    (signature lines)
package pdf

import (
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/pr-poehali-dev/stock-management-excel/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 68, Green: 114, Blue: 196}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ActRenderer renders write-off acts to PDF bytes.
type ActRenderer struct{}

// NewActRenderer builds the renderer.
func NewActRenderer() *ActRenderer {
	return &ActRenderer{}
}

// Render produces the printable act.
func (g *ActRenderer) Render(act *entity.WriteoffAct) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(act))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(metaRows(act)...)
	m.AddRows(line.NewRow(2))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(act.Items) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalRow(act.Items))

	m.AddRows(line.NewRow(6))
	m.AddRows(signatureRows(act)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate act: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(act *entity.WriteoffAct) core.Row {
	title := "АКТ СПИСАНИЯ № " + act.ActNumber
	if act.IsDraft {
		title += " (черновик)"
	}
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("от "+act.ActDate.Format("02.01.2006"), props.Text{
				Size: 11, Top: 4, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func metaRows(act *entity.WriteoffAct) []core.Row {
	return []core.Row{
		row.New(7).Add(
			col.New(12).Add(
				text.New("Ответственный: "+act.ResponsiblePerson, props.Text{Size: 10, Top: 1}),
			),
		),
		row.New(7).Add(
			col.New(12).Add(
				text.New("Основание: "+act.Reason, props.Text{Size: 10, Top: 1}),
			),
		),
	}
}

func tableHeaderRow() core.Row {
	bold := props.Text{Style: fontstyle.Bold, Size: 9, Top: 1, Color: colorPrimary}
	boldRight := bold
	boldRight.Align = align.Right
	return row.New(8).Add(
		col.New(1).Add(text.New("№", bold)),
		col.New(6).Add(text.New("Наименование", bold)),
		col.New(2).Add(text.New("Артикул", bold)),
		col.New(2).Add(text.New("Кол-во", boldRight)),
		col.New(1).Add(text.New("Ед.", bold)),
	)
}

func tableItemRows(items []entity.WriteoffActItem) []core.Row {
	normal := props.Text{Size: 9, Top: 1}
	normalRight := normal
	normalRight.Align = align.Right

	rows := make([]core.Row, 0, len(items))
	for i, it := range items {
		unit := it.Unit
		if unit == "" {
			unit = entity.DefaultUnit
		}
		rows = append(rows, row.New(7).Add(
			col.New(1).Add(text.New(strconv.Itoa(i+1), normal)),
			col.New(6).Add(text.New(it.ProductName, normal)),
			col.New(2).Add(text.New(it.SKU, normal)),
			col.New(2).Add(text.New(strconv.FormatInt(it.Quantity, 10), normalRight)),
			col.New(1).Add(text.New(unit, normal)),
		))
	}
	return rows
}

func totalRow(items []entity.WriteoffActItem) core.Row {
	var total int64
	for _, it := range items {
		total += it.Quantity
	}
	return row.New(8).Add(
		col.New(9).Add(text.New("Итого позиций: "+strconv.Itoa(len(items)), props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 1,
		})),
		col.New(3).Add(text.New("Всего: "+strconv.FormatInt(total, 10), props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 1, Align: align.Right,
		})),
	)
}

func signatureRows(act *entity.WriteoffAct) []core.Row {
	gray := props.Text{Size: 9, Top: 1, Color: colorGray}
	return []core.Row{
		row.New(7).Add(
			col.New(6).Add(text.New("Ответственный: _________________ / "+act.ResponsiblePerson, gray)),
			col.New(6).Add(text.New("Составил: _________________ / "+act.CreatedBy, gray)),
		),
	}
}

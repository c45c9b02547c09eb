// Package pdf renders layout plans into PDF bytes with Maroto v2.
//
// Every page-break decision is already made by the planner in
// internal/application/render; this adapter only translates bands into
// styled Maroto rows, one explicit page per planned page.
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/vishvakarma/studiodesk-api/internal/application/billing"
	"github.com/vishvakarma/studiodesk-api/internal/application/render"
)

// ── Color palette ─────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 41, Blue: 59}
	colorAccent  = &props.Color{Red: 180, Green: 83, Blue: 9}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}

	fillPrimary = &props.Color{Red: 30, Green: 41, Blue: 59}
	fillLight   = &props.Color{Red: 241, Green: 245, Blue: 249}
)

// The planner works in PDF points, Maroto in millimetres.
const ptToMM = 25.4 / 72.0

// lineStepMM is the vertical offset between stacked lines inside one cell.
const lineStepMM = 4.0

var _ billing.DocumentRenderer = (*MarotoRenderer)(nil)

// MarotoRenderer implements billing.DocumentRenderer using Maroto v2.
type MarotoRenderer struct{}

// NewMarotoRenderer builds the renderer.
func NewMarotoRenderer() *MarotoRenderer { return &MarotoRenderer{} }

// Render turns a finished layout plan into PDF bytes.
func (r *MarotoRenderer) Render(_ context.Context, plan *render.Plan) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(plan.Title, true).
		Build()

	m := maroto.New(cfg)
	for _, pg := range plan.Pages {
		p := page.New()
		for _, band := range pg.Bands {
			p.Add(bandRow(band))
		}
		m.AddPages(p)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Band translation ──────────────────────────────────────────────────────────

// bandRow maps one planned band onto a styled Maroto row of the same height.
func bandRow(band render.Band) core.Row {
	h := band.Height * ptToMM
	r := row.New(h)

	switch band.Kind {
	case render.KindSpacer:
		return r
	case render.KindCompanyHeader:
		return r.Add(bandCols(band, headerStyle)...)
	case render.KindTitleBadge, render.KindStatusBadge:
		return r.Add(bandCols(band, badgeStyle)...).
			WithStyle(&props.Cell{BackgroundColor: fillPrimary})
	case render.KindTableHeader, render.KindPlanHeader:
		return r.Add(bandCols(band, tableHeaderStyle)...).
			WithStyle(&props.Cell{BackgroundColor: fillPrimary})
	case render.KindRoomTitle, render.KindSectionTitle:
		return r.Add(bandCols(band, sectionTitleStyle)...)
	case render.KindGroupSubtotal, render.KindSummary, render.KindAmountBox:
		return r.Add(bandCols(band, summaryStyle)...).
			WithStyle(&props.Cell{BackgroundColor: fillLight})
	case render.KindFooterNote:
		return r.Add(bandCols(band, footerStyle)...)
	default:
		// doc_meta, client_box, marketing, item_row, plan_row, text_block,
		// signature: plain body text.
		return r.Add(bandCols(band, bodyStyle)...)
	}
}

// styleFunc builds the text props for one line of a cell.
type styleFunc func(cell render.Cell, topMM float64) props.Text

// bandCols renders the cells of a band on the 12-column grid, stacking
// newline-separated text inside each cell.
func bandCols(band render.Band, style styleFunc) []core.Col {
	cols := make([]core.Col, 0, len(band.Cells))
	for _, cell := range band.Cells {
		c := col.New(cell.Span)
		for i, ln := range strings.Split(cell.Text, "\n") {
			c.Add(text.New(ln, style(cell, 1+float64(i)*lineStepMM)))
		}
		cols = append(cols, c)
	}
	return cols
}

func alignOf(cell render.Cell) align.Type {
	switch cell.Align {
	case render.AlignCenter:
		return align.Center
	case render.AlignRight:
		return align.Right
	default:
		return align.Left
	}
}

func styleOf(cell render.Cell) fontstyle.Type {
	if cell.Bold {
		return fontstyle.Bold
	}
	return fontstyle.Normal
}

func headerStyle(cell render.Cell, top float64) props.Text {
	size := 9.0
	color := colorGray
	if cell.Bold {
		size = 14
		color = colorPrimary
	}
	return props.Text{
		Style: styleOf(cell), Size: size, Align: alignOf(cell),
		Color: color, Top: top, Left: 1, Right: 1,
	}
}

func badgeStyle(cell render.Cell, top float64) props.Text {
	return props.Text{
		Style: fontstyle.Bold, Size: 12, Align: alignOf(cell),
		Color: colorWhite, Top: top,
	}
}

func tableHeaderStyle(cell render.Cell, top float64) props.Text {
	return props.Text{
		Style: fontstyle.Bold, Size: 8, Align: alignOf(cell),
		Color: colorWhite, Top: top, Left: 1, Right: 1,
	}
}

func sectionTitleStyle(cell render.Cell, top float64) props.Text {
	return props.Text{
		Style: fontstyle.Bold, Size: 10, Align: alignOf(cell),
		Color: colorAccent, Top: top, Left: 1,
	}
}

func summaryStyle(cell render.Cell, top float64) props.Text {
	return props.Text{
		Style: styleOf(cell), Size: 9, Align: alignOf(cell),
		Color: colorPrimary, Top: top, Left: 2, Right: 2,
	}
}

func footerStyle(cell render.Cell, top float64) props.Text {
	return props.Text{
		Size: 6.5, Align: alignOf(cell), Color: colorGray, Top: top,
	}
}

func bodyStyle(cell render.Cell, top float64) props.Text {
	return props.Text{
		Style: styleOf(cell), Size: 8, Align: alignOf(cell),
		Top: top, Left: 1, Right: 1,
	}
}

// Package render plans the page layout of quotation, bill and receipt PDFs.
//
// The planner is pure: it folds a document and its item lines into an ordered
// sequence of typed bands distributed across pages, making every page-break
// decision (group height pre-calculation, fit thresholds, per-row overflow)
// without touching a rendering backend. The maroto adapter in
// internal/infrastructure/pdf turns the finished plan into bytes; identical
// inputs always produce identical plans.
package render

// Geometry in PDF points on an A4 page, matching the coordinate system the
// layout decisions are defined in.
const (
	pageTop = 50 // cursor position after every page break

	// Item rows overflow to a fresh page once the cursor would cross this.
	rowBreakLimit = 750

	// A room group shorter than this fits on a single page and is never
	// split: if it does not fit in the space left on the current page it
	// moves to a fresh one whole.
	groupSinglePageMax = 680

	// A group too tall for any single page still breaks first when the
	// cursor is already below this, so it does not start in a sliver.
	lowCursorCutoff = 600

	// The summary block moves to a fresh page when the cursor is past this.
	summaryBreakAt = 650

	minRowHeight = 20 // item rows never shrink below this
	rowPadding   = 8  // added to wrapped description height

	roomTitleAdvance = 26
	tableHeaderH     = 22

	// Pre-calculated fixed overhead of a group: title + header + footer bands.
	groupOverheadH = 60

	summaryBoxH = 115
	planRowH    = 25

	billRowH          = 20
	billHeaderH       = 20
	billRowBreakLimit = 650
	billSummaryH      = 120
)

// Kind tags a band for the renderer and for layout tests.
type Kind string

const (
	KindSpacer        Kind = "spacer"
	KindCompanyHeader Kind = "company_header"
	KindTitleBadge    Kind = "title_badge"
	KindDocMeta       Kind = "doc_meta"
	KindClientBox     Kind = "client_box"
	KindMarketing     Kind = "marketing"
	KindRoomTitle     Kind = "room_title"
	KindTableHeader   Kind = "table_header"
	KindItemRow       Kind = "item_row"
	KindGroupSubtotal Kind = "group_subtotal"
	KindSummary       Kind = "summary"
	KindSectionTitle  Kind = "section_title"
	KindPlanHeader    Kind = "plan_header"
	KindPlanRow       Kind = "plan_row"
	KindTextBlock     Kind = "text_block"
	KindAmountBox     Kind = "amount_box"
	KindStatusBadge   Kind = "status_badge"
	KindSignature     Kind = "signature"
	KindFooterNote    Kind = "footer_note"
)

// Align is the horizontal alignment of a cell.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Cell is one column of a band on a 12-column grid. Text may contain
// newlines for stacked lines inside one cell.
type Cell struct {
	Span  int
	Text  string
	Align Align
	Bold  bool
}

// Band is one full-width horizontal slice of a page. Height is in points and
// is exactly what the band advances the cursor by.
type Band struct {
	Kind   Kind
	Height float64
	Cells  []Cell
}

// Page is an ordered list of bands.
type Page struct {
	Bands []Band
}

// Plan is the complete layout of one document.
type Plan struct {
	Title    string // PDF document title, e.g. "QUOTATION"
	FileName string // download filename, slashes of the number replaced by dashes
	Pages    []Page
}

// BandKinds flattens the plan to the sequence of band kinds per page.
// Test helper for asserting layout decisions.
func (p *Plan) BandKinds() [][]Kind {
	out := make([][]Kind, len(p.Pages))
	for i, pg := range p.Pages {
		kinds := make([]Kind, len(pg.Bands))
		for j, b := range pg.Bands {
			kinds[j] = b.Kind
		}
		out[i] = kinds
	}
	return out
}

// cursor is the fold state of the planner: finished pages, the page being
// built, and the y position on it.
type cursor struct {
	pages []Page
	cur   []Band
	y     float64
}

func newCursor() *cursor {
	return &cursor{y: pageTop}
}

func (c *cursor) add(b Band) {
	c.cur = append(c.cur, b)
	c.y += b.Height
}

func (c *cursor) space(h float64) {
	c.add(Band{Kind: KindSpacer, Height: h})
}

func (c *cursor) breakPage() {
	c.pages = append(c.pages, Page{Bands: c.cur})
	c.cur = nil
	c.y = pageTop
}

func (c *cursor) finish() []Page {
	if len(c.cur) > 0 {
		c.pages = append(c.pages, Page{Bands: c.cur})
		c.cur = nil
	}
	return c.pages
}

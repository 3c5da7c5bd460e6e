package export

import (
	"fmt"

	"github.com/insurance/backend/internal/domain/claims"
	"github.com/insurance/backend/internal/domain/shared/valueobject"
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
)

// Page geometry in points on a letter page, origin at the bottom
const (
	firstRowY        = 652
	continuationRowY = 742
	bottomLimitY     = 50
	rowPitchPt       = 20
)

// rowHeight is the 20pt pitch in millimetres
const rowHeight = rowPitchPt * 25.4 / 72

// RowsPerPage returns how many report rows fit on the first and on each following page
func RowsPerPage() (first, rest int) {
	return (firstRowY-bottomLimitY)/rowPitchPt + 1, (continuationRowY-bottomLimitY)/rowPitchPt + 1
}

// paginate splits n rows into page-sized [start, end) ranges
func paginate(n int) [][2]int {
	first, rest := RowsPerPage()
	pages := [][2]int{{0, min(n, first)}}
	for start := first; start < n; start += rest {
		pages = append(pages, [2]int{start, min(n, start+rest)})
	}
	return pages
}

// ClaimsByMonthPDF renders rows as a PDF report on letter pages
func ClaimsByMonthPDF(rows []claims.MonthlyClaims, currency valueobject.Currency) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 11}).
		WithTitle("Claims by Month Report", true).
		Build()

	m := maroto.New(cfg)

	for i, span := range paginate(len(rows)) {
		var content []core.Row
		if i == 0 {
			content = append(content, titleRows(currency)...)
			content = append(content, headerRow(currency))
		}
		for _, r := range rows[span[0]:span[1]] {
			content = append(content, dataRow(r))
		}
		m.AddPages(page.New().Add(content...))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func titleRows(currency valueobject.Currency) []core.Row {
	return []core.Row{
		row.New(14).Add(col.New(12).Add(text.New("Claims by Month Report", props.Text{
			Style: fontstyle.Bold, Size: 16, Top: 2,
		}))),
		row.New(rowHeight).Add(col.New(12).Add(text.New("Currency: "+currency.String(), props.Text{
			Size: 11, Top: 1,
		}))),
	}
}

func headerRow(currency valueobject.Currency) core.Row {
	h := Headers(currency)
	cell := func(label string, a align.Type) core.Col {
		return col.New(4).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 11, Align: a, Top: 1}))
	}
	return row.New(rowHeight).Add(
		cell(h[0], align.Left),
		cell(h[1], align.Right),
		cell(h[2], align.Right),
	)
}

func dataRow(r claims.MonthlyClaims) core.Row {
	cell := func(value string, a align.Type) core.Col {
		return col.New(4).Add(text.New(value, props.Text{Size: 11, Align: a, Top: 1}))
	}
	return row.New(rowHeight).Add(
		cell(r.Month, align.Left),
		cell(fmt.Sprintf("%d", r.Count), align.Right),
		cell(fmt.Sprintf("%.2f", r.TotalValue.InexactFloat64()), align.Right),
	)
}

package claims

import (
	"sort"

	"github.com/insurance/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// MonthlyClaims is one row of the claims-by-month report
type MonthlyClaims struct {
	Month      string          `json:"month"`
	Count      int             `json:"count"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// ClaimsByMonth groups filed claims by the year-month of their filed date.
// Claims without a filed date are skipped and an unknown amount counts as
// zero. Totals are converted when currency is USD. Rows are ordered by
// month and empty input yields an empty, non-nil slice.
func ClaimsByMonth(claims []Claim, currency valueobject.Currency) []MonthlyClaims {
	byMonth := make(map[string]*MonthlyClaims)
	for i := range claims {
		c := &claims[i]
		if !c.IsFiled() {
			continue
		}
		key := c.FiledDate.MonthKey()
		row, ok := byMonth[key]
		if !ok {
			row = &MonthlyClaims{Month: key, TotalValue: decimal.Zero}
			byMonth[key] = row
		}
		row.Count++
		row.TotalValue = row.TotalValue.Add(currency.Convert(c.AmountOrZero()))
	}

	result := make([]MonthlyClaims, 0, len(byMonth))
	for _, row := range byMonth {
		result = append(result, *row)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Month < result[j].Month
	})
	return result
}

// TotalCount sums the claim counts of the report rows
func TotalCount(rows []MonthlyClaims) int {
	total := 0
	for _, r := range rows {
		total += r.Count
	}
	return total
}

// TotalValue sums the values of the report rows
func TotalValue(rows []MonthlyClaims) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.TotalValue)
	}
	return total
}

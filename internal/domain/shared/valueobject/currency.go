package valueobject

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency represents the currency a report is expressed in
type Currency string

const (
	LRD Currency = "LRD" // Liberian Dollar, the currency amounts are stored in
	USD Currency = "USD" // US Dollar
)

// DefaultCurrency is the currency amounts are recorded in
const DefaultCurrency = LRD

// LRDToUSD is the fixed conversion rate applied to reports requested in USD
var LRDToUSD = decimal.RequireFromString("0.005")

// ParseCurrency maps a query value onto a supported currency.
// Anything other than USD (case-insensitive) is treated as LRD.
func ParseCurrency(s string) Currency {
	if strings.EqualFold(strings.TrimSpace(s), string(USD)) {
		return USD
	}
	return LRD
}

// Convert expresses an LRD amount in the currency c
func (c Currency) Convert(amount decimal.Decimal) decimal.Decimal {
	if c == USD {
		return amount.Mul(LRDToUSD)
	}
	return amount
}

// String returns the currency code
func (c Currency) String() string {
	return string(c)
}

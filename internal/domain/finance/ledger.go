package finance

import (
	"context"
	"strings"

	"github.com/insurance/backend/internal/domain/shared"
	"github.com/insurance/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// EntryType is the side of the ledger an entry is posted to
type EntryType string

const (
	EntryTypeDebit  EntryType = "debit"
	EntryTypeCredit EntryType = "credit"
)

// IsValid reports whether t is debit or credit
func (t EntryType) IsValid() bool {
	return t == EntryTypeDebit || t == EntryTypeCredit
}

// ParseEntryType normalizes an entry type; unknown values are returned as-is
func ParseEntryType(s string) EntryType {
	return EntryType(strings.ToLower(strings.TrimSpace(s)))
}

// LedgerEntry is a general ledger posting
type LedgerEntry struct {
	shared.BaseEntity
	EntryDate   *valueobject.Date
	Description string
	Amount      decimal.Decimal
	EntryType   EntryType
}

// NewLedgerEntry creates a new ledger entry
func NewLedgerEntry(amount decimal.Decimal, entryType EntryType, description string) *LedgerEntry {
	return &LedgerEntry{
		Amount:      amount,
		EntryType:   entryType,
		Description: description,
	}
}

// LedgerSummary totals the debit and credit sides of the ledger
type LedgerSummary struct {
	TotalDebits  decimal.Decimal `json:"total_debits"`
	TotalCredits decimal.Decimal `json:"total_credits"`
	NetBalance   decimal.Decimal `json:"net_balance"` // debits - credits
	EntryCount   int             `json:"entry_count"`
}

// IsBalanced reports whether debits equal credits
func (s LedgerSummary) IsBalanced() bool {
	return s.NetBalance.IsZero()
}

// SummarizeLedger totals the entries by side. Entries with an
// unrecognized type are counted but not totalled.
func SummarizeLedger(entries []LedgerEntry) LedgerSummary {
	summary := LedgerSummary{
		TotalDebits:  decimal.Zero,
		TotalCredits: decimal.Zero,
	}
	for _, e := range entries {
		summary.EntryCount++
		switch e.EntryType {
		case EntryTypeDebit:
			summary.TotalDebits = summary.TotalDebits.Add(e.Amount)
		case EntryTypeCredit:
			summary.TotalCredits = summary.TotalCredits.Add(e.Amount)
		}
	}
	summary.NetBalance = summary.TotalDebits.Sub(summary.TotalCredits)
	return summary
}

// LedgerRepository defines the interface for ledger persistence
type LedgerRepository interface {
	shared.Repository[LedgerEntry]

	// FindAllEntries returns every entry, for summaries
	FindAllEntries(ctx context.Context) ([]LedgerEntry, error)
}

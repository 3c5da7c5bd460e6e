package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSummarizeLedger(t *testing.T) {
	entries := []LedgerEntry{
		*NewLedgerEntry(decimal.NewFromInt(500), EntryTypeDebit, "premium received"),
		*NewLedgerEntry(decimal.NewFromInt(200), EntryTypeCredit, "claim paid"),
		*NewLedgerEntry(decimal.NewFromInt(300), EntryTypeCredit, "commission"),
		*NewLedgerEntry(decimal.NewFromInt(999), EntryType("memo"), "ignored"),
	}

	s := SummarizeLedger(entries)
	assert.Equal(t, 4, s.EntryCount)
	assert.True(t, decimal.NewFromInt(500).Equal(s.TotalDebits))
	assert.True(t, decimal.NewFromInt(500).Equal(s.TotalCredits))
	assert.True(t, s.IsBalanced())

	empty := SummarizeLedger(nil)
	assert.True(t, empty.IsBalanced())
	assert.Equal(t, 0, empty.EntryCount)
}

func TestParseEntryType(t *testing.T) {
	assert.Equal(t, EntryTypeDebit, ParseEntryType(" Debit "))
	assert.True(t, ParseEntryType("CREDIT").IsValid())
	assert.False(t, ParseEntryType("other").IsValid())
}

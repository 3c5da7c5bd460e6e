package finance

import (
	"context"
	"fmt"

	"github.com/insurance/backend/internal/application/listing"
	"github.com/insurance/backend/internal/domain/finance"
	"github.com/insurance/backend/internal/domain/records"
	"github.com/insurance/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// LedgerService handles general ledger postings
type LedgerService struct {
	ledgerRepo finance.LedgerRepository
	audit      records.AuditRecorder
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(ledgerRepo finance.LedgerRepository, audit records.AuditRecorder) *LedgerService {
	return &LedgerService{
		ledgerRepo: ledgerRepo,
		audit:      records.RecorderOrNop(audit),
	}
}

// Create posts a new ledger entry. A missing amount posts zero.
func (s *LedgerService) Create(ctx context.Context, req CreateLedgerEntryRequest) (*LedgerEntryResponse, error) {
	amount := decimal.Zero
	if req.Amount != nil {
		amount = *req.Amount
	}
	entryType, err := parseEntryType(req.EntryType)
	if err != nil {
		return nil, err
	}
	entry := finance.NewLedgerEntry(amount, entryType, req.Description)
	entry.EntryDate = req.EntryDate

	if err := s.ledgerRepo.Save(ctx, entry); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "ledger.create", fmt.Sprintf("id=%d", entry.ID))

	response := ToLedgerEntryResponse(entry)
	return &response, nil
}

// GetByID retrieves a ledger entry by ID
func (s *LedgerService) GetByID(ctx context.Context, id uint) (*LedgerEntryResponse, error) {
	entry, err := s.ledgerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToLedgerEntryResponse(entry)
	return &response, nil
}

// List retrieves a page of ledger entries and the total count
func (s *LedgerService) List(ctx context.Context, filter LedgerListFilter) ([]LedgerEntryResponse, int64, error) {
	domainFilter := filter.Filter()
	if filter.EntryType != nil {
		entryType := string(finance.ParseEntryType(*filter.EntryType))
		domainFilter = listing.Where(domainFilter, "entry_type", &entryType)
	}
	entries, total, err := listing.List[finance.LedgerEntry](ctx, s.ledgerRepo, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return listing.Map(entries, ToLedgerEntryResponse), total, nil
}

// Summary totals the whole ledger by side
func (s *LedgerService) Summary(ctx context.Context) (*finance.LedgerSummary, error) {
	entries, err := s.ledgerRepo.FindAllEntries(ctx)
	if err != nil {
		return nil, err
	}
	summary := finance.SummarizeLedger(entries)
	return &summary, nil
}

// Update applies a partial update to a ledger entry
func (s *LedgerService) Update(ctx context.Context, id uint, req UpdateLedgerEntryRequest) (*LedgerEntryResponse, error) {
	entry, err := s.ledgerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.EntryDate.ApplyNullable(&entry.EntryDate)
	req.Description.ApplyOrZero(&entry.Description)
	req.Amount.ApplyOrZero(&entry.Amount)
	if req.EntryType.Set {
		entryType, err := parseEntryType(req.EntryType.Value)
		if err != nil {
			return nil, err
		}
		entry.EntryType = entryType
	}

	if err := s.ledgerRepo.Save(ctx, entry); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "ledger.update", fmt.Sprintf("id=%d", entry.ID))

	response := ToLedgerEntryResponse(entry)
	return &response, nil
}

// Delete removes a ledger entry
func (s *LedgerService) Delete(ctx context.Context, id uint) error {
	if err := s.ledgerRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, "ledger.delete", fmt.Sprintf("id=%d", id))
	return nil
}

// parseEntryType accepts debit, credit or an empty value
func parseEntryType(s string) (finance.EntryType, error) {
	t := finance.ParseEntryType(s)
	if t == "" || t.IsValid() {
		return t, nil
	}
	return "", shared.InvalidInput("entry_type must be debit or credit")
}

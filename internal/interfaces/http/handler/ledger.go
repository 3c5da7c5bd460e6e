package handler

import (
	"github.com/gin-gonic/gin"
	financeapp "github.com/insurance/backend/internal/application/finance"
)

// LedgerHandler handles ledger entry API endpoints
type LedgerHandler struct {
	BaseHandler
	ledgerService *financeapp.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler
func NewLedgerHandler(ledgerService *financeapp.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// Create handles POST /api/ledger/
func (h *LedgerHandler) Create(c *gin.Context) {
	var req financeapp.CreateLedgerEntryRequest
	if !h.bindJSON(c, &req) {
		return
	}

	entry, err := h.ledgerService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, entry)
}

// List handles GET /api/ledger/
func (h *LedgerHandler) List(c *gin.Context) {
	var filter financeapp.LedgerListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	entries, total, err := h.ledgerService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, entries, total, filter.Query)
}

// GetByID handles GET /api/ledger/:id
func (h *LedgerHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	entry, err := h.ledgerService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, entry)
}

// Update handles PUT /api/ledger/:id
func (h *LedgerHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req financeapp.UpdateLedgerEntryRequest
	if !h.bindJSON(c, &req) {
		return
	}

	entry, err := h.ledgerService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, entry)
}

// Delete handles DELETE /api/ledger/:id
func (h *LedgerHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.ledgerService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Summary handles GET /api/ledger/summary
func (h *LedgerHandler) Summary(c *gin.Context) {
	summary, err := h.ledgerService.Summary(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

package handler

import (
	"github.com/gin-gonic/gin"
	financeapp "github.com/insurance/backend/internal/application/finance"
)

// PremiumHandler handles premium API endpoints
type PremiumHandler struct {
	BaseHandler
	premiumService *financeapp.PremiumService
}

// NewPremiumHandler creates a new PremiumHandler
func NewPremiumHandler(premiumService *financeapp.PremiumService) *PremiumHandler {
	return &PremiumHandler{premiumService: premiumService}
}

// Create handles POST /api/premiums/
func (h *PremiumHandler) Create(c *gin.Context) {
	var req financeapp.CreatePremiumRequest
	if !h.bindJSON(c, &req) {
		return
	}

	premium, err := h.premiumService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, premium)
}

// List handles GET /api/premiums/
func (h *PremiumHandler) List(c *gin.Context) {
	var filter financeapp.PremiumListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	premiums, total, err := h.premiumService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, premiums, total, filter.Query)
}

// GetByID handles GET /api/premiums/:id
func (h *PremiumHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	premium, err := h.premiumService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, premium)
}

// Update handles PUT /api/premiums/:id
func (h *PremiumHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req financeapp.UpdatePremiumRequest
	if !h.bindJSON(c, &req) {
		return
	}

	premium, err := h.premiumService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, premium)
}

// Delete handles DELETE /api/premiums/:id
func (h *PremiumHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.premiumService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

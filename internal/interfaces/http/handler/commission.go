package handler

import (
	"github.com/gin-gonic/gin"
	financeapp "github.com/insurance/backend/internal/application/finance"
)

// CommissionHandler handles commission API endpoints
type CommissionHandler struct {
	BaseHandler
	commissionService *financeapp.CommissionService
}

// NewCommissionHandler creates a new CommissionHandler
func NewCommissionHandler(commissionService *financeapp.CommissionService) *CommissionHandler {
	return &CommissionHandler{commissionService: commissionService}
}

// Create handles POST /api/commissions/
func (h *CommissionHandler) Create(c *gin.Context) {
	var req financeapp.CreateCommissionRequest
	if !h.bindJSON(c, &req) {
		return
	}

	commission, err := h.commissionService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, commission)
}

// List handles GET /api/commissions/
func (h *CommissionHandler) List(c *gin.Context) {
	var filter financeapp.CommissionListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	commissions, total, err := h.commissionService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, commissions, total, filter.Query)
}

// GetByID handles GET /api/commissions/:id
func (h *CommissionHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	commission, err := h.commissionService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, commission)
}

// Update handles PUT /api/commissions/:id
func (h *CommissionHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req financeapp.UpdateCommissionRequest
	if !h.bindJSON(c, &req) {
		return
	}

	commission, err := h.commissionService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, commission)
}

// Delete handles DELETE /api/commissions/:id
func (h *CommissionHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.commissionService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

package handler

import (
	"github.com/gin-gonic/gin"
	underwritingapp "github.com/insurance/backend/internal/application/underwriting"
)

// ReinsuranceHandler handles reinsurance contract API endpoints
type ReinsuranceHandler struct {
	BaseHandler
	reinsuranceService *underwritingapp.ReinsuranceService
}

// NewReinsuranceHandler creates a new ReinsuranceHandler
func NewReinsuranceHandler(reinsuranceService *underwritingapp.ReinsuranceService) *ReinsuranceHandler {
	return &ReinsuranceHandler{reinsuranceService: reinsuranceService}
}

// Create handles POST /api/reinsurance/
func (h *ReinsuranceHandler) Create(c *gin.Context) {
	var req underwritingapp.CreateReinsuranceRequest
	if !h.bindJSON(c, &req) {
		return
	}

	contract, err := h.reinsuranceService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, contract)
}

// List handles GET /api/reinsurance/
func (h *ReinsuranceHandler) List(c *gin.Context) {
	var filter underwritingapp.ReinsuranceListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	contracts, total, err := h.reinsuranceService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, contracts, total, filter.Query)
}

// GetByID handles GET /api/reinsurance/:id
func (h *ReinsuranceHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	contract, err := h.reinsuranceService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, contract)
}

// Update handles PUT /api/reinsurance/:id
func (h *ReinsuranceHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req underwritingapp.UpdateReinsuranceRequest
	if !h.bindJSON(c, &req) {
		return
	}

	contract, err := h.reinsuranceService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, contract)
}

// Delete handles DELETE /api/reinsurance/:id
func (h *ReinsuranceHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.reinsuranceService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

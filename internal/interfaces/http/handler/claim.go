package handler

import (
	"github.com/gin-gonic/gin"
	claimsapp "github.com/insurance/backend/internal/application/claims"
)

// ClaimHandler handles claim API endpoints
type ClaimHandler struct {
	BaseHandler
	claimService *claimsapp.ClaimService
}

// NewClaimHandler creates a new ClaimHandler
func NewClaimHandler(claimService *claimsapp.ClaimService) *ClaimHandler {
	return &ClaimHandler{claimService: claimService}
}

// Create handles POST /api/claims/
func (h *ClaimHandler) Create(c *gin.Context) {
	var req claimsapp.CreateClaimRequest
	if !h.bindJSON(c, &req) {
		return
	}

	claim, err := h.claimService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, claim)
}

// List handles GET /api/claims/
func (h *ClaimHandler) List(c *gin.Context) {
	var filter claimsapp.ClaimListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	claims, total, err := h.claimService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, claims, total, filter.Query)
}

// GetByID handles GET /api/claims/:id
func (h *ClaimHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	claim, err := h.claimService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, claim)
}

// Update handles PUT /api/claims/:id
func (h *ClaimHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req claimsapp.UpdateClaimRequest
	if !h.bindJSON(c, &req) {
		return
	}

	claim, err := h.claimService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, claim)
}

// Delete handles DELETE /api/claims/:id
func (h *ClaimHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.claimService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

package handler

import (
	"github.com/gin-gonic/gin"
	underwritingapp "github.com/insurance/backend/internal/application/underwriting"
)

// PolicyHandler handles policy API endpoints
type PolicyHandler struct {
	BaseHandler
	policyService *underwritingapp.PolicyService
}

// NewPolicyHandler creates a new PolicyHandler
func NewPolicyHandler(policyService *underwritingapp.PolicyService) *PolicyHandler {
	return &PolicyHandler{policyService: policyService}
}

// Create handles POST /api/policies/
func (h *PolicyHandler) Create(c *gin.Context) {
	var req underwritingapp.CreatePolicyRequest
	if !h.bindJSON(c, &req) {
		return
	}

	policy, err := h.policyService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, policy)
}

// List handles GET /api/policies/
func (h *PolicyHandler) List(c *gin.Context) {
	var filter underwritingapp.PolicyListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	policies, total, err := h.policyService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, policies, total, filter.Query)
}

// GetByID handles GET /api/policies/:id
func (h *PolicyHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	policy, err := h.policyService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, policy)
}

// Update handles PUT /api/policies/:id
func (h *PolicyHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req underwritingapp.UpdatePolicyRequest
	if !h.bindJSON(c, &req) {
		return
	}

	policy, err := h.policyService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, policy)
}

// Delete handles DELETE /api/policies/:id
func (h *PolicyHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.policyService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListByClient handles GET /api/clients/:id/policies
func (h *PolicyHandler) ListByClient(c *gin.Context) {
	clientID, ok := h.parseID(c)
	if !ok {
		return
	}

	policies, err := h.policyService.ListByClient(c.Request.Context(), clientID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, policies)
}

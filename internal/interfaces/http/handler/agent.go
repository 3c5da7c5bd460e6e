package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/insurance/backend/internal/application/listing"
	partnerapp "github.com/insurance/backend/internal/application/partner"
)

// AgentHandler handles agent API endpoints
type AgentHandler struct {
	BaseHandler
	agentService *partnerapp.AgentService
}

// NewAgentHandler creates a new AgentHandler
func NewAgentHandler(agentService *partnerapp.AgentService) *AgentHandler {
	return &AgentHandler{agentService: agentService}
}

// Create handles POST /api/agents/
func (h *AgentHandler) Create(c *gin.Context) {
	var req partnerapp.CreateContactRequest
	if !h.bindJSON(c, &req) {
		return
	}

	agent, err := h.agentService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, agent)
}

// List handles GET /api/agents/
func (h *AgentHandler) List(c *gin.Context) {
	var filter listing.Query
	if !h.bindQuery(c, &filter) {
		return
	}

	agents, total, err := h.agentService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, agents, total, filter)
}

// GetByID handles GET /api/agents/:id
func (h *AgentHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	agent, err := h.agentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, agent)
}

// Update handles PUT /api/agents/:id
func (h *AgentHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req partnerapp.UpdateContactRequest
	if !h.bindJSON(c, &req) {
		return
	}

	agent, err := h.agentService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, agent)
}

// Delete handles DELETE /api/agents/:id
func (h *AgentHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.agentService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

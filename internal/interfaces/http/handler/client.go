package handler

import (
	"github.com/gin-gonic/gin"
	underwritingapp "github.com/insurance/backend/internal/application/underwriting"
)

// ClientHandler handles client API endpoints
type ClientHandler struct {
	BaseHandler
	clientService *underwritingapp.ClientService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clientService *underwritingapp.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// Create handles POST /api/clients/
func (h *ClientHandler) Create(c *gin.Context) {
	var req underwritingapp.CreateClientRequest
	if !h.bindJSON(c, &req) {
		return
	}

	client, err := h.clientService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, client)
}

// List handles GET /api/clients/
func (h *ClientHandler) List(c *gin.Context) {
	var filter underwritingapp.ClientListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	clients, total, err := h.clientService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, clients, total, filter.Query)
}

// GetByID handles GET /api/clients/:id
func (h *ClientHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	client, err := h.clientService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, client)
}

// Update handles PUT /api/clients/:id
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req underwritingapp.UpdateClientRequest
	if !h.bindJSON(c, &req) {
		return
	}

	client, err := h.clientService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, client)
}

// Delete handles DELETE /api/clients/:id
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.clientService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

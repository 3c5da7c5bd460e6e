package handler

import (
	"github.com/gin-gonic/gin"
	recordsapp "github.com/insurance/backend/internal/application/records"
)

// AuditHandler handles audit log API endpoints
type AuditHandler struct {
	BaseHandler
	auditService *recordsapp.AuditService
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(auditService *recordsapp.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// Create handles POST /api/audit/
func (h *AuditHandler) Create(c *gin.Context) {
	var req recordsapp.CreateAuditLogRequest
	if !h.bindJSON(c, &req) {
		return
	}

	entry, err := h.auditService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, entry)
}

// List handles GET /api/audit/
func (h *AuditHandler) List(c *gin.Context) {
	var filter recordsapp.AuditLogListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	entries, total, err := h.auditService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, entries, total, filter.Query)
}

// GetByID handles GET /api/audit/:id
func (h *AuditHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	entry, err := h.auditService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, entry)
}

// Update handles PUT /api/audit/:id
func (h *AuditHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req recordsapp.UpdateAuditLogRequest
	if !h.bindJSON(c, &req) {
		return
	}

	entry, err := h.auditService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, entry)
}

// Delete handles DELETE /api/audit/:id
func (h *AuditHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.auditService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

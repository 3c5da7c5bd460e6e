package handler

import (
	"mime"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
	"github.com/insurance/backend/internal/application/listing"
	recordsapp "github.com/insurance/backend/internal/application/records"
)

// DocumentHandler handles document API endpoints
type DocumentHandler struct {
	BaseHandler
	documentService *recordsapp.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(documentService *recordsapp.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// Create handles POST /api/documents/
func (h *DocumentHandler) Create(c *gin.Context) {
	var req recordsapp.CreateDocumentRequest
	if !h.bindJSON(c, &req) {
		return
	}

	doc, err := h.documentService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, doc)
}

// List handles GET /api/documents/
func (h *DocumentHandler) List(c *gin.Context) {
	var filter listing.Query
	if !h.bindQuery(c, &filter) {
		return
	}

	docs, total, err := h.documentService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, docs, total, filter)
}

// GetByID handles GET /api/documents/:id
func (h *DocumentHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	doc, err := h.documentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, doc)
}

// Update handles PUT /api/documents/:id
func (h *DocumentHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req recordsapp.UpdateDocumentRequest
	if !h.bindJSON(c, &req) {
		return
	}

	doc, err := h.documentService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, doc)
}

// Delete handles DELETE /api/documents/:id
func (h *DocumentHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.documentService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Upload handles POST /api/documents/:id/file (multipart field "file")
func (h *DocumentHandler) Upload(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.BadRequest(c, "Missing multipart field \"file\"")
		return
	}
	defer file.Close()

	in := recordsapp.UploadFileInput{
		FileName:    path.Base(header.Filename),
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	}
	doc, err := h.documentService.AttachFile(c.Request.Context(), id, in, file)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, doc)
}

// Download handles GET /api/documents/:id/file
func (h *DocumentHandler) Download(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	body, doc, err := h.documentService.OpenFile(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	defer body.Close()

	size := doc.Size
	if size <= 0 {
		size = -1
	}
	c.DataFromReader(http.StatusOK, size, doc.ContentType, body, map[string]string{
		"Content-Disposition": mime.FormatMediaType("attachment", map[string]string{"filename": path.Base(doc.FilePath)}),
	})
}

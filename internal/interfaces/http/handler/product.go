package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/insurance/backend/internal/application/listing"
	underwritingapp "github.com/insurance/backend/internal/application/underwriting"
)

// ProductHandler handles product API endpoints
type ProductHandler struct {
	BaseHandler
	productService *underwritingapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *underwritingapp.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Create handles POST /api/products/
func (h *ProductHandler) Create(c *gin.Context) {
	var req underwritingapp.CreateProductRequest
	if !h.bindJSON(c, &req) {
		return
	}

	product, err := h.productService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}

// List handles GET /api/products/
func (h *ProductHandler) List(c *gin.Context) {
	var filter listing.Query
	if !h.bindQuery(c, &filter) {
		return
	}

	products, total, err := h.productService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, products, total, filter)
}

// GetByID handles GET /api/products/:id
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Update handles PUT /api/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req underwritingapp.UpdateProductRequest
	if !h.bindJSON(c, &req) {
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Delete handles DELETE /api/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

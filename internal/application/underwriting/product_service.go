package underwriting

import (
	"context"
	"fmt"

	"github.com/insurance/backend/internal/application/listing"
	"github.com/insurance/backend/internal/domain/records"
	"github.com/insurance/backend/internal/domain/underwriting"
)

// ProductService handles product-related business operations
type ProductService struct {
	productRepo underwriting.ProductRepository
	audit       records.AuditRecorder
}

// NewProductService creates a new ProductService
func NewProductService(productRepo underwriting.ProductRepository, audit records.AuditRecorder) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		audit:       records.RecorderOrNop(audit),
	}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	product, err := underwriting.NewProduct(req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "product.create", fmt.Sprintf("id=%d", product.ID))

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uint) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves a page of products and the total count
func (s *ProductService) List(ctx context.Context, query listing.Query) ([]ProductResponse, int64, error) {
	products, total, err := listing.List[underwriting.Product](ctx, s.productRepo, query.Filter())
	if err != nil {
		return nil, 0, err
	}
	return listing.Map(products, ToProductResponse), total, nil
}

// Update applies a partial update to a product
func (s *ProductService) Update(ctx context.Context, id uint, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := req.Name.ApplyFunc("name", product.SetName); err != nil {
		return nil, err
	}
	req.Description.ApplyOrZero(&product.Description)
	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "product.update", fmt.Sprintf("id=%d", product.ID))

	response := ToProductResponse(product)
	return &response, nil
}

// Delete removes a product
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, "product.delete", fmt.Sprintf("id=%d", id))
	return nil
}

// Package listing holds the list query shared by every entity service.
package listing

import (
	"context"
	"strings"

	"github.com/insurance/backend/internal/domain/shared"
)

// Query is the paging, sorting and search part of a list request.
// It binds from the query string: ?page=2&page_size=50&order_by=name&order_dir=desc&search=acme
type Query struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=500"`
	OrderBy  string `form:"order_by" binding:"omitempty,max=50"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc ASC DESC"`
	Search   string `form:"search" binding:"omitempty,max=100"`
}

// Filter converts the query into a domain filter with defaults applied
func (q Query) Filter() shared.Filter {
	f := shared.DefaultFilter()
	if q.Page > 0 {
		f.Page = q.Page
	}
	if q.PageSize > 0 {
		f.PageSize = q.PageSize
	}
	if q.OrderBy != "" {
		f.OrderBy = q.OrderBy
	}
	if q.OrderDir != "" {
		f.OrderDir = strings.ToLower(q.OrderDir)
	}
	f.Search = strings.TrimSpace(q.Search)
	return f
}

// Where adds an equality condition when value is set
func Where[T comparable](f shared.Filter, column string, value *T) shared.Filter {
	if value == nil {
		return f
	}
	if f.Filters == nil {
		f.Filters = make(map[string]any)
	}
	f.Filters[column] = *value
	return f
}

// Source is the read side of a repository
type Source[T any] interface {
	FindAll(ctx context.Context, filter shared.Filter) ([]T, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// List loads one page and the total row count
func List[T any](ctx context.Context, src Source[T], filter shared.Filter) ([]T, int64, error) {
	rows, err := src.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := src.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// Map converts a page of entities into responses
func Map[E any, R any](items []E, convert func(*E) R) []R {
	out := make([]R, len(items))
	for i := range items {
		out[i] = convert(&items[i])
	}
	return out
}

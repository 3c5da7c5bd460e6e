package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/insurance/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// domainModel is implemented by every persistence model that maps to a domain entity
type domainModel[E any] interface {
	ToDomain() *E
	FromDomain(*E)
}

// tableSpec describes how list queries may touch a table
type tableSpec struct {
	entity        string          // name used in error messages
	uniqueField   string          // column named in conflict errors
	sortFields    map[string]bool // whitelist for Filter.OrderBy
	filterColumns map[string]bool // whitelist for Filter.Filters equality matches
	searchColumns []string        // columns matched by Filter.Search
}

// gormRepository implements shared.Repository[E] for a model M with pointer methods PM
type gormRepository[E any, M any, PM interface {
	*M
	domainModel[E]
}] struct {
	db   *gorm.DB
	spec tableSpec
}

func newGormRepository[E any, M any, PM interface {
	*M
	domainModel[E]
}](db *gorm.DB, spec tableSpec) *gormRepository[E, M, PM] {
	return &gormRepository[E, M, PM]{db: db, spec: spec}
}

// FindByID loads one row by primary key
func (r *gormRepository[E, M, PM]) FindByID(ctx context.Context, id uint) (*E, error) {
	var model M
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NotFound(r.spec.entity)
		}
		return nil, fmt.Errorf("find %s %d: %w", r.spec.entity, id, err)
	}
	return PM(&model).ToDomain(), nil
}

// FindAll returns one page of rows matching the filter
func (r *gormRepository[E, M, PM]) FindAll(ctx context.Context, filter shared.Filter) ([]E, error) {
	var rows []M
	query := r.applyFilter(r.db.WithContext(ctx).Model(new(M)), filter)
	query = query.Order(r.orderClause(filter)).Offset(filter.Offset()).Limit(filter.Limit())
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", r.spec.entity, err)
	}
	out := make([]E, len(rows))
	for i := range rows {
		out[i] = *PM(&rows[i]).ToDomain()
	}
	return out, nil
}

// Count returns the number of rows matching the filter, ignoring pagination
func (r *gormRepository[E, M, PM]) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var n int64
	if err := r.applyFilter(r.db.WithContext(ctx).Model(new(M)), filter).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count %s: %w", r.spec.entity, err)
	}
	return n, nil
}

// Save inserts a new entity or updates an existing one, then copies generated
// fields (id, timestamps) back into the entity
func (r *gormRepository[E, M, PM]) Save(ctx context.Context, entity *E) error {
	var model M
	PM(&model).FromDomain(entity)
	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.AlreadyExists(r.spec.entity, r.spec.uniqueField)
		}
		return fmt.Errorf("save %s: %w", r.spec.entity, err)
	}
	*entity = *PM(&model).ToDomain()
	return nil
}

// Delete removes a row by primary key
func (r *gormRepository[E, M, PM]) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(new(M), id)
	if res.Error != nil {
		return fmt.Errorf("delete %s %d: %w", r.spec.entity, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return shared.NotFound(r.spec.entity)
	}
	return nil
}

// findWhere returns every row matching the condition, ordered by id
func (r *gormRepository[E, M, PM]) findWhere(ctx context.Context, query any, args ...any) ([]E, error) {
	var rows []M
	if err := r.db.WithContext(ctx).Where(query, args...).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query %s: %w", r.spec.entity, err)
	}
	out := make([]E, len(rows))
	for i := range rows {
		out[i] = *PM(&rows[i]).ToDomain()
	}
	return out, nil
}

// existsOther reports whether a row other than excludeID has column = value
func (r *gormRepository[E, M, PM]) existsOther(ctx context.Context, column string, value any, excludeID uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(new(M)).
		Where(column+" = ? AND id <> ?", value, excludeID).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("check %s %s: %w", r.spec.entity, column, err)
	}
	return n > 0, nil
}

func (r *gormRepository[E, M, PM]) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if s := strings.TrimSpace(filter.Search); s != "" && len(r.spec.searchColumns) > 0 {
		pattern := "%" + strings.ToLower(s) + "%"
		conds := make([]string, len(r.spec.searchColumns))
		args := make([]any, len(r.spec.searchColumns))
		for i, col := range r.spec.searchColumns {
			conds[i] = "LOWER(" + col + ") LIKE ?"
			args[i] = pattern
		}
		query = query.Where(strings.Join(conds, " OR "), args...)
	}
	for key, value := range filter.Filters {
		if r.spec.filterColumns[key] {
			query = query.Where(key+" = ?", value)
		}
	}
	return query
}

func (r *gormRepository[E, M, PM]) orderClause(filter shared.Filter) string {
	field := ValidateSortField(filter.OrderBy, r.spec.sortFields, "id")
	return field + " " + ValidateSortOrder(filter.OrderDir)
}

func columns(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

package web

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	claimsapp "github.com/insurance/backend/internal/application/claims"
	financeapp "github.com/insurance/backend/internal/application/finance"
	identityapp "github.com/insurance/backend/internal/application/identity"
	"github.com/insurance/backend/internal/application/listing"
	partnerapp "github.com/insurance/backend/internal/application/partner"
	recordsapp "github.com/insurance/backend/internal/application/records"
	underwritingapp "github.com/insurance/backend/internal/application/underwriting"
	"github.com/insurance/backend/internal/domain/shared"
	"github.com/insurance/backend/internal/interfaces/http/middleware"
)

// pageRoutes registers the list and detail page of one entity
type pageRoutes interface {
	register(rg *gin.RouterGroup, h *Handler)
}

type column[T any] struct {
	label string
	value func(T) any
}

// entityPage renders any record type as a paged table and a field list
type entityPage[T any] struct {
	path    string
	roles   []string // empty admits any signed-in role
	columns []column[T]
	id      func(T) string
	list    func(ctx context.Context, q listing.Query) ([]T, int64, error)
	get     func(ctx context.Context, id string) (*T, error)
}

type listView struct {
	pageData
	Path     string
	Columns  []string
	Rows     []rowView
	Page     int
	PageSize int
	Total    int64
	HasNext  bool
}

type rowView struct {
	ID    string
	Cells []any
}

type detailView struct {
	pageData
	Path   string
	ID     string
	Fields []fieldView
}

type fieldView struct {
	Label string
	Value any
}

func (p *entityPage[T]) register(rg *gin.RouterGroup, h *Handler) {
	group := rg.Group("/" + p.path)
	if len(p.roles) > 0 {
		group.Use(middleware.RequireRole(h.reject, p.roles...))
	}
	group.GET("", func(c *gin.Context) { p.index(c, h) })
	group.GET("/:id", func(c *gin.Context) { p.show(c, h) })
}

func (p *entityPage[T]) index(c *gin.Context, h *Handler) {
	var q listing.Query
	if err := c.ShouldBindQuery(&q); err != nil {
		h.renderError(c, http.StatusBadRequest, "Invalid page parameters")
		return
	}
	f := q.Filter()

	items, total, err := p.list(c.Request.Context(), q)
	if err != nil {
		h.fail(c, err)
		return
	}

	view := listView{
		pageData: h.page(c, titleCase(p.path)),
		Path:     p.path,
		Page:     f.Page,
		PageSize: f.PageSize,
		Total:    total,
		HasNext:  int64(f.Page*f.PageSize) < total,
	}
	for _, col := range p.columns {
		view.Columns = append(view.Columns, col.label)
	}
	for _, item := range items {
		row := rowView{ID: p.id(item)}
		for _, col := range p.columns {
			row.Cells = append(row.Cells, col.value(item))
		}
		view.Rows = append(view.Rows, row)
	}
	c.HTML(http.StatusOK, "list.html", view)
}

func (p *entityPage[T]) show(c *gin.Context, h *Handler) {
	item, err := p.get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	view := detailView{
		pageData: h.page(c, titleCase(p.path)),
		Path:     p.path,
		ID:       p.id(*item),
	}
	for _, col := range p.columns {
		view.Fields = append(view.Fields, fieldView{Label: col.label, Value: col.value(*item)})
	}
	c.HTML(http.StatusOK, "detail.html", view)
}

// byID adapts a GetByID taking a numeric id; unparsable ids are not found
func byID[T any](entity string, get func(context.Context, uint) (*T, error)) func(context.Context, string) (*T, error) {
	return func(ctx context.Context, raw string) (*T, error) {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			return nil, shared.NotFound(entity)
		}
		return get(ctx, uint(id))
	}
}

func uintID(id uint) string { return strconv.FormatUint(uint64(id), 10) }

func entityPages(s Services) []pageRoutes {
	var pages []pageRoutes

	if s.Clients != nil {
		pages = append(pages, &entityPage[underwritingapp.ClientResponse]{
			path: "clients",
			columns: []column[underwritingapp.ClientResponse]{
				{"Name", func(r underwritingapp.ClientResponse) any { return r.Name }},
				{"Email", func(r underwritingapp.ClientResponse) any { return r.Email }},
				{"Phone", func(r underwritingapp.ClientResponse) any { return r.Phone }},
			},
			id: func(r underwritingapp.ClientResponse) string { return uintID(r.ID) },
			list: func(ctx context.Context, q listing.Query) ([]underwritingapp.ClientResponse, int64, error) {
				return s.Clients.List(ctx, underwritingapp.ClientListFilter{Query: q})
			},
			get: byID("Client", s.Clients.GetByID),
		})
	}

	if s.Policies != nil {
		pages = append(pages, &entityPage[underwritingapp.PolicyResponse]{
			path: "policies",
			columns: []column[underwritingapp.PolicyResponse]{
				{"Policy Number", func(r underwritingapp.PolicyResponse) any { return r.PolicyNumber }},
				{"Client", func(r underwritingapp.PolicyResponse) any { return r.ClientID }},
				{"Product", func(r underwritingapp.PolicyResponse) any { return r.ProductID }},
				{"Start", func(r underwritingapp.PolicyResponse) any { return r.StartDate }},
				{"End", func(r underwritingapp.PolicyResponse) any { return r.EndDate }},
				{"Status", func(r underwritingapp.PolicyResponse) any { return r.Status }},
			},
			id: func(r underwritingapp.PolicyResponse) string { return uintID(r.ID) },
			list: func(ctx context.Context, q listing.Query) ([]underwritingapp.PolicyResponse, int64, error) {
				return s.Policies.List(ctx, underwritingapp.PolicyListFilter{Query: q})
			},
			get: byID("Policy", s.Policies.GetByID),
		})
	}

	if s.Products != nil {
		pages = append(pages, &entityPage[underwritingapp.ProductResponse]{
			path: "products",
			columns: []column[underwritingapp.ProductResponse]{
				{"Name", func(r underwritingapp.ProductResponse) any { return r.Name }},
				{"Description", func(r underwritingapp.ProductResponse) any { return r.Description }},
			},
			id:   func(r underwritingapp.ProductResponse) string { return uintID(r.ID) },
			list: s.Products.List,
			get:  byID("Product", s.Products.GetByID),
		})
	}

	if s.Reinsurance != nil {
		pages = append(pages, &entityPage[underwritingapp.ReinsuranceResponse]{
			path:  "reinsurance",
			roles: middleware.BackOffice,
			columns: []column[underwritingapp.ReinsuranceResponse]{
				{"Policy", func(r underwritingapp.ReinsuranceResponse) any { return r.PolicyID }},
				{"Reinsurer", func(r underwritingapp.ReinsuranceResponse) any { return r.Reinsurer }},
				{"Coverage", func(r underwritingapp.ReinsuranceResponse) any { return r.CoverageAmount }},
				{"Start", func(r underwritingapp.ReinsuranceResponse) any { return r.StartDate }},
				{"End", func(r underwritingapp.ReinsuranceResponse) any { return r.EndDate }},
			},
			id: func(r underwritingapp.ReinsuranceResponse) string { return uintID(r.ID) },
			list: func(ctx context.Context, q listing.Query) ([]underwritingapp.ReinsuranceResponse, int64, error) {
				return s.Reinsurance.List(ctx, underwritingapp.ReinsuranceListFilter{Query: q})
			},
			get: byID("Reinsurance", s.Reinsurance.GetByID),
		})
	}

	if s.Claims != nil {
		pages = append(pages, &entityPage[claimsapp.ClaimResponse]{
			path: "claims",
			columns: []column[claimsapp.ClaimResponse]{
				{"Claim Number", func(r claimsapp.ClaimResponse) any { return r.ClaimNumber }},
				{"Policy", func(r claimsapp.ClaimResponse) any { return r.PolicyID }},
				{"Amount", func(r claimsapp.ClaimResponse) any { return r.Amount }},
				{"Status", func(r claimsapp.ClaimResponse) any { return r.Status }},
				{"Filed", func(r claimsapp.ClaimResponse) any { return r.FiledDate }},
				{"Settled", func(r claimsapp.ClaimResponse) any { return r.SettledDate }},
			},
			id: func(r claimsapp.ClaimResponse) string { return uintID(r.ID) },
			list: func(ctx context.Context, q listing.Query) ([]claimsapp.ClaimResponse, int64, error) {
				return s.Claims.List(ctx, claimsapp.ClaimListFilter{Query: q})
			},
			get: byID("Claim", s.Claims.GetByID),
		})
	}

	if s.Premiums != nil {
		pages = append(pages, &entityPage[financeapp.PremiumResponse]{
			path: "premiums",
			columns: []column[financeapp.PremiumResponse]{
				{"Policy", func(r financeapp.PremiumResponse) any { return r.PolicyID }},
				{"Amount", func(r financeapp.PremiumResponse) any { return r.Amount }},
				{"Due", func(r financeapp.PremiumResponse) any { return r.DueDate }},
				{"Paid", func(r financeapp.PremiumResponse) any { return r.PaidDate }},
			},
			id: func(r financeapp.PremiumResponse) string { return uintID(r.ID) },
			list: func(ctx context.Context, q listing.Query) ([]financeapp.PremiumResponse, int64, error) {
				return s.Premiums.List(ctx, financeapp.PremiumListFilter{Query: q})
			},
			get: byID("Premium", s.Premiums.GetByID),
		})
	}

	if s.Commissions != nil {
		pages = append(pages, &entityPage[financeapp.CommissionResponse]{
			path:  "commissions",
			roles: middleware.BackOffice,
			columns: []column[financeapp.CommissionResponse]{
				{"Agent", func(r financeapp.CommissionResponse) any { return r.AgentID }},
				{"Amount", func(r financeapp.CommissionResponse) any { return r.Amount }},
				{"Date", func(r financeapp.CommissionResponse) any { return r.Date }},
			},
			id: func(r financeapp.CommissionResponse) string { return uintID(r.ID) },
			list: func(ctx context.Context, q listing.Query) ([]financeapp.CommissionResponse, int64, error) {
				return s.Commissions.List(ctx, financeapp.CommissionListFilter{Query: q})
			},
			get: byID("Commission", s.Commissions.GetByID),
		})
	}

	if s.Ledger != nil {
		pages = append(pages, &entityPage[financeapp.LedgerEntryResponse]{
			path:  "ledger",
			roles: middleware.BackOffice,
			columns: []column[financeapp.LedgerEntryResponse]{
				{"Date", func(r financeapp.LedgerEntryResponse) any { return r.EntryDate }},
				{"Description", func(r financeapp.LedgerEntryResponse) any { return r.Description }},
				{"Amount", func(r financeapp.LedgerEntryResponse) any { return r.Amount }},
				{"Type", func(r financeapp.LedgerEntryResponse) any { return r.EntryType }},
			},
			id: func(r financeapp.LedgerEntryResponse) string { return uintID(r.ID) },
			list: func(ctx context.Context, q listing.Query) ([]financeapp.LedgerEntryResponse, int64, error) {
				return s.Ledger.List(ctx, financeapp.LedgerListFilter{Query: q})
			},
			get: byID("Ledger entry", s.Ledger.GetByID),
		})
	}

	contactColumns := []column[partnerapp.ContactResponse]{
		{"Name", func(r partnerapp.ContactResponse) any { return r.Name }},
		{"Email", func(r partnerapp.ContactResponse) any { return r.Email }},
		{"Phone", func(r partnerapp.ContactResponse) any { return r.Phone }},
	}
	contactID := func(r partnerapp.ContactResponse) string { return uintID(r.ID) }

	if s.Customers != nil {
		pages = append(pages, &entityPage[partnerapp.ContactResponse]{
			path:    "customers",
			columns: contactColumns,
			id:      contactID,
			list:    s.Customers.List,
			get:     byID("Customer", s.Customers.GetByID),
		})
	}

	if s.Agents != nil {
		pages = append(pages, &entityPage[partnerapp.ContactResponse]{
			path:    "agents",
			columns: contactColumns,
			id:      contactID,
			list:    s.Agents.List,
			get:     byID("Agent", s.Agents.GetByID),
		})
	}

	if s.Documents != nil {
		pages = append(pages, &entityPage[recordsapp.DocumentResponse]{
			path: "documents",
			columns: []column[recordsapp.DocumentResponse]{
				{"Title", func(r recordsapp.DocumentResponse) any { return r.Title }},
				{"Uploaded", func(r recordsapp.DocumentResponse) any { return r.UploadedDate }},
				{"Content Type", func(r recordsapp.DocumentResponse) any { return r.ContentType }},
				{"Size", func(r recordsapp.DocumentResponse) any {
					if !r.HasFile {
						return ""
					}
					return fmt.Sprintf("%d bytes", r.Size)
				}},
			},
			id:   func(r recordsapp.DocumentResponse) string { return uintID(r.ID) },
			list: s.Documents.List,
			get:  byID("Document", s.Documents.GetByID),
		})
	}

	if s.Audit != nil {
		pages = append(pages, &entityPage[recordsapp.AuditLogResponse]{
			path:  "audit",
			roles: middleware.BackOffice,
			columns: []column[recordsapp.AuditLogResponse]{
				{"Action", func(r recordsapp.AuditLogResponse) any { return r.Action }},
				{"User", func(r recordsapp.AuditLogResponse) any { return r.User }},
				{"Time", func(r recordsapp.AuditLogResponse) any { return r.Timestamp }},
				{"Details", func(r recordsapp.AuditLogResponse) any { return r.Details }},
			},
			id: func(r recordsapp.AuditLogResponse) string { return uintID(r.ID) },
			list: func(ctx context.Context, q listing.Query) ([]recordsapp.AuditLogResponse, int64, error) {
				return s.Audit.List(ctx, recordsapp.AuditLogListFilter{Query: q})
			},
			get: byID("Audit entry", s.Audit.GetByID),
		})
	}

	if s.Users != nil {
		pages = append(pages, &entityPage[identityapp.UserResponse]{
			path:  "users",
			roles: middleware.AdminOnly,
			columns: []column[identityapp.UserResponse]{
				{"Username", func(r identityapp.UserResponse) any { return r.Username }},
				{"Email", func(r identityapp.UserResponse) any { return r.Email }},
				{"Role", func(r identityapp.UserResponse) any { return titleCase(r.Role) }},
				{"Status", func(r identityapp.UserResponse) any { return titleCase(r.Status) }},
			},
			id:   func(r identityapp.UserResponse) string { return r.ID.String() },
			list: s.Users.List,
			get: func(ctx context.Context, raw string) (*identityapp.UserResponse, error) {
				id, err := uuid.Parse(raw)
				if err != nil {
					return nil, shared.NotFound("User")
				}
				return s.Users.GetByID(ctx, id)
			},
		})
	}

	return pages
}

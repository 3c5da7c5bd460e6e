package router

import (
	"github.com/gin-gonic/gin"
	"github.com/insurance/backend/internal/interfaces/http/handler"
	"github.com/insurance/backend/internal/interfaces/http/middleware"
)

// Handlers holds the REST handlers served below /api
type Handlers struct {
	Clients     *handler.ClientHandler
	Policies    *handler.PolicyHandler
	Products    *handler.ProductHandler
	Premiums    *handler.PremiumHandler
	Commissions *handler.CommissionHandler
	Claims      *handler.ClaimHandler
	Customers   *handler.CustomerHandler
	Agents      *handler.AgentHandler
	Documents   *handler.DocumentHandler
	Audit       *handler.AuditHandler
	Ledger      *handler.LedgerHandler
	Reinsurance *handler.ReinsuranceHandler
	Users       *handler.UserHandler
	Reports     *handler.ReportHandler
	Auth        *handler.AuthHandler
}

// RoleGate builds the middleware admitting the given roles
type RoleGate func(roles ...string) gin.HandlerFunc

// JSONRoleGate answers refused requests with the API error envelope
func JSONRoleGate(roles ...string) gin.HandlerFunc {
	return middleware.RequireRole(middleware.JSONRejecter, roles...)
}

// OpenGate admits everyone. It is used when the API is not session protected,
// since no role is known without a session.
func OpenGate(...string) gin.HandlerFunc {
	return func(c *gin.Context) { c.Next() }
}

// APIRoutes returns one domain group per entity with its role gate applied
func APIRoutes(h Handlers, gate RoleGate) []RouteRegistrar {
	clients := NewDomainGroup("clients", "/clients").CRUD(h.Clients).
		GET("/:id/policies", h.Policies.ListByClient)

	ledger := NewDomainGroup("ledger", "/ledger").Use(gate(middleware.BackOffice...)).
		GET("/summary", h.Ledger.Summary).
		CRUD(h.Ledger)

	documents := NewDomainGroup("documents", "/documents").CRUD(h.Documents).
		POST("/:id/file", h.Documents.Upload).
		GET("/:id/file", h.Documents.Download)

	reports := NewDomainGroup("reports", "/reports").Use(gate(middleware.ReportViewer...)).
		GET("/claims-by-month", h.Reports.ClaimsByMonth).
		GET("/claims-by-month/excel", h.Reports.ExportExcel).
		GET("/claims-by-month/pdf", h.Reports.ExportPDF).
		GET("/warmup", h.Reports.WarmupStatus).
		POST("/warmup", gate(middleware.AdminOnly...), h.Reports.RunWarmup)

	return []RouteRegistrar{
		clients,
		NewDomainGroup("policies", "/policies").CRUD(h.Policies),
		NewDomainGroup("products", "/products").CRUD(h.Products),
		NewDomainGroup("premiums", "/premiums").CRUD(h.Premiums),
		NewDomainGroup("commissions", "/commissions").Use(gate(middleware.BackOffice...)).CRUD(h.Commissions),
		NewDomainGroup("claims", "/claims").CRUD(h.Claims),
		NewDomainGroup("customers", "/customers").CRUD(h.Customers),
		NewDomainGroup("agents", "/agents").CRUD(h.Agents),
		documents,
		NewDomainGroup("audit", "/audit").Use(gate(middleware.BackOffice...)).CRUD(h.Audit),
		ledger,
		NewDomainGroup("reinsurance", "/reinsurance").Use(gate(middleware.BackOffice...)).CRUD(h.Reinsurance),
		NewDomainGroup("users", "/users").Use(gate(middleware.AdminOnly...)).CRUD(h.Users),
		reports,
	}
}

// AuthRoutes registers the cookie login endpoints. Only /me needs a session.
func AuthRoutes(rg *gin.RouterGroup, h *handler.AuthHandler, session, limit gin.HandlerFunc) {
	auth := rg.Group("/auth")
	auth.POST("/logout", h.Logout)

	attempts := auth.Group("")
	if limit != nil {
		attempts.Use(limit)
	}
	attempts.POST("/login", h.Login)
	attempts.POST("/reset-password", h.ResetPassword)

	gated := auth.Group("")
	if session != nil {
		gated.Use(session)
	}
	gated.GET("/me", h.Me)
}

// Package web serves the server-rendered back-office pages: landing page,
// login flow, entity lists and details, and the claims dashboard.
package web

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	claimsapp "github.com/insurance/backend/internal/application/claims"
	financeapp "github.com/insurance/backend/internal/application/finance"
	identityapp "github.com/insurance/backend/internal/application/identity"
	partnerapp "github.com/insurance/backend/internal/application/partner"
	recordsapp "github.com/insurance/backend/internal/application/records"
	"github.com/insurance/backend/internal/application/reporting"
	underwritingapp "github.com/insurance/backend/internal/application/underwriting"
	"github.com/insurance/backend/internal/domain/shared"
	"github.com/insurance/backend/internal/infrastructure/auth"
	"github.com/insurance/backend/internal/infrastructure/logger"
	"github.com/insurance/backend/internal/interfaces/http/dto"
	"github.com/insurance/backend/internal/interfaces/http/handler"
	"github.com/insurance/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// Services are the application services the pages read from
type Services struct {
	Clients     *underwritingapp.ClientService
	Policies    *underwritingapp.PolicyService
	Products    *underwritingapp.ProductService
	Reinsurance *underwritingapp.ReinsuranceService
	Claims      *claimsapp.ClaimService
	Premiums    *financeapp.PremiumService
	Commissions *financeapp.CommissionService
	Ledger      *financeapp.LedgerService
	Customers   *partnerapp.CustomerService
	Agents      *partnerapp.AgentService
	Documents   *recordsapp.DocumentService
	Audit       *recordsapp.AuditService
	Users       *identityapp.UserService
	Auth        *identityapp.AuthService
	Reports     *reporting.Service
}

// Handler serves the HTML pages
type Handler struct {
	services Services
	codec    *auth.CookieCodec
	secure   bool
	renderer *Renderer
	exports  *handler.ReportHandler
	pages    []pageRoutes
}

// Options configures the page handler
type Options struct {
	Codec *auth.CookieCodec
	// SecureCookies marks session cookies Secure
	SecureCookies bool
	// Exports renders the dashboard downloads
	Exports *handler.ReportHandler
}

// NewHandler parses the templates and builds the entity pages
func NewHandler(services Services, opts Options) (*Handler, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	h := &Handler{
		services: services,
		codec:    opts.Codec,
		secure:   opts.SecureCookies,
		renderer: renderer,
		exports:  opts.Exports,
	}
	h.pages = entityPages(services)
	return h, nil
}

// Register mounts the pages on engine. limit, when not nil, guards the
// login and reset-password form posts.
func (h *Handler) Register(engine *gin.Engine, limit gin.HandlerFunc) {
	engine.HTMLRender = h.renderer
	engine.StaticFS("/static", http.FS(Static()))

	engine.GET("/", h.Index)
	engine.GET("/login", h.LoginForm)
	engine.GET("/logout", h.Logout)
	engine.POST("/logout", h.Logout)
	engine.GET("/reset-password", h.ResetPasswordForm)

	attempts := engine.Group("")
	if limit != nil {
		attempts.Use(limit)
	}
	attempts.POST("/login", h.Login)
	attempts.POST("/reset-password", h.ResetPassword)

	pages := engine.Group("", middleware.Session(h.codec, middleware.SessionOptions{
		Secure: h.secure,
		Reject: h.reject,
	}))

	dashboard := pages.Group("/dashboard", middleware.RequireRole(h.reject, middleware.ReportViewer...))
	dashboard.GET("", h.Dashboard)
	if h.exports != nil {
		dashboard.GET("/export/excel", h.exports.ExportExcel)
		dashboard.GET("/export/pdf", h.exports.ExportPDF)
	}

	for _, p := range h.pages {
		p.register(pages, h)
	}
}

// reject answers refused page requests: 401 goes back to the login form,
// 403 renders the error page.
func (h *Handler) reject(c *gin.Context, status int, message string) {
	if status == http.StatusUnauthorized {
		c.Redirect(http.StatusFound, "/login?error="+url.QueryEscape(message))
		c.Abort()
		return
	}
	h.renderError(c, status, message)
	c.Abort()
}

// pageData is embedded in every view
type pageData struct {
	Title   string
	User    string
	Role    string
	Error   string
	Message string
}

func (h *Handler) page(c *gin.Context, title string) pageData {
	return pageData{
		Title: title,
		User:  middleware.CurrentUser(c),
		Role:  middleware.CurrentRole(c),
	}
}

type errorView struct {
	pageData
	Status int
	Detail string
}

func (h *Handler) renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", errorView{
		pageData: h.page(c, http.StatusText(status)),
		Status:   status,
		Detail:   message,
	})
}

// fail renders a service error. Domain errors keep their status and message;
// anything else is logged and shown as a generic failure.
func (h *Handler) fail(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		h.renderError(c, dto.GetHTTPStatus(dto.NormalizeErrorCode(domainErr.Code)), domainErr.Message)
		return
	}
	logger.GetGinLogger(c).Error("Page failed", zap.Error(err), zap.String("route", c.FullPath()))
	h.renderError(c, http.StatusInternalServerError, "An unexpected error occurred")
}

type indexView struct {
	pageData
	Sections []section
}

type section struct {
	Title       string
	Description string
	Links       []string
}

var landingSections = []section{
	{"Client Management", "Manage client information, policies, and relationships.", []string{"clients", "customers"}},
	{"Policy Administration", "Create, modify, and track insurance policies from inception to claims.", []string{"policies", "products"}},
	{"Financial Operations", "Handle premiums, commissions, and ledger entries.", []string{"premiums", "commissions", "ledger"}},
	{"Claims & Risk", "Track claims and reinsurance contracts.", []string{"claims", "reinsurance"}},
	{"Records", "Agents, documents, and the audit trail.", []string{"agents", "documents", "audit"}},
	{"Reports", "Claims by month, with Excel and PDF exports.", []string{"dashboard"}},
}

// Index renders the landing page
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", indexView{
		pageData: h.page(c, "Insurance Company of Africa"),
		Sections: landingSections,
	})
}

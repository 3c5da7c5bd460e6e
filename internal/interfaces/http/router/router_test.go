package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	claimsapp "github.com/insurance/backend/internal/application/claims"
	financeapp "github.com/insurance/backend/internal/application/finance"
	identityapp "github.com/insurance/backend/internal/application/identity"
	partnerapp "github.com/insurance/backend/internal/application/partner"
	recordsapp "github.com/insurance/backend/internal/application/records"
	"github.com/insurance/backend/internal/application/reporting"
	underwritingapp "github.com/insurance/backend/internal/application/underwriting"
	"github.com/insurance/backend/internal/domain/identity"
	"github.com/insurance/backend/internal/infrastructure/auth"
	"github.com/insurance/backend/internal/infrastructure/config"
	"github.com/insurance/backend/internal/infrastructure/persistence"
	"github.com/insurance/backend/internal/infrastructure/telemetry"
	"github.com/insurance/backend/internal/interfaces/http/handler"
	"github.com/insurance/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	group := NewDomainGroup("test", "/test").GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	NewRouter(engine).Register(group).Setup()

	w := serve(engine, http.MethodGet, "/api/test/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestRouterWithPrefixAndMiddleware(t *testing.T) {
	engine := gin.New()
	var calls []string
	r := NewRouter(engine,
		WithPrefix("/v2"),
		WithMiddleware(func(c *gin.Context) { calls = append(calls, "router"); c.Next() }),
	)
	group := NewDomainGroup("items", "/items").
		Use(func(c *gin.Context) { calls = append(calls, "group"); c.Next() }).
		GET("", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.Register(group).Setup()

	w := serve(engine, http.MethodGet, "/v2/items", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []string{"router", "group"}, calls)
	assert.Equal(t, "items", group.Name())
	assert.Equal(t, "/items", group.Prefix())
}

type fakeResource struct{}

func (fakeResource) Create(c *gin.Context)  { c.String(http.StatusCreated, "create") }
func (fakeResource) List(c *gin.Context)    { c.String(http.StatusOK, "list") }
func (fakeResource) GetByID(c *gin.Context) { c.String(http.StatusOK, "get "+c.Param("id")) }
func (fakeResource) Update(c *gin.Context)  { c.String(http.StatusOK, "update "+c.Param("id")) }
func (fakeResource) Delete(c *gin.Context)  { c.String(http.StatusNoContent, "") }

func TestDomainGroupCRUD(t *testing.T) {
	engine := gin.New()
	group := NewDomainGroup("things", "/things").CRUD(fakeResource{})
	group.Group("nested", "/nested").GET("/x", func(c *gin.Context) { c.String(http.StatusOK, "nested") })
	NewRouter(engine).Register(group).Setup()

	tests := []struct {
		method, path string
		code         int
		body         string
	}{
		{http.MethodGet, "/api/things", http.StatusOK, "list"},
		{http.MethodGet, "/api/things/", http.StatusOK, "list"},
		{http.MethodPost, "/api/things/", http.StatusCreated, "create"},
		{http.MethodGet, "/api/things/7", http.StatusOK, "get 7"},
		{http.MethodPut, "/api/things/7", http.StatusOK, "update 7"},
		{http.MethodDelete, "/api/things/7", http.StatusNoContent, ""},
		{http.MethodGet, "/api/things/nested/x", http.StatusOK, "nested"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := serve(engine, tt.method, tt.path, nil)
			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, tt.body, w.Body.String())
		})
	}
}

type testApp struct {
	engine *Engine
	codec  *auth.CookieCodec
}

func newTestApp(t *testing.T, protect bool) *testApp {
	t.Helper()
	db, err := persistence.NewDatabase(&config.DatabaseConfig{URL: "sqlite://:memory:", MaxOpenConns: 1, MaxIdleConns: 1})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate())
	t.Cleanup(func() { _ = db.Close() })

	cfg := &config.Config{
		App:     config.AppConfig{Name: "insurance-test", Env: "test"},
		Session: config.SessionConfig{Secret: "router-test-secret-router-test-secret", Timeout: 30 * time.Minute, ProtectAPI: protect},
		HTTP:    config.HTTPConfig{MaxBodySize: 1 << 20, RateLimitEnabled: true, RateLimitRequests: 1000, RateLimitWindow: time.Minute},
	}
	log := zap.NewNop()
	metrics := telemetry.NewMetrics()

	users := persistence.NewGormUserRepository(db.DB)
	_, err = identityapp.NewUserService(users, nil, log).EnsureUser(context.Background(), "admin", "admin123", identity.RoleAdmin)
	require.NoError(t, err)

	claimRepo := persistence.NewGormClaimRepository(db.DB)
	reports := reporting.NewService(claimRepo)
	codec := auth.NewCookieCodec(cfg.Session)

	h := Handlers{
		Clients:     handler.NewClientHandler(underwritingapp.NewClientService(persistence.NewGormClientRepository(db.DB), nil)),
		Policies:    handler.NewPolicyHandler(underwritingapp.NewPolicyService(persistence.NewGormPolicyRepository(db.DB), nil)),
		Products:    handler.NewProductHandler(underwritingapp.NewProductService(persistence.NewGormProductRepository(db.DB), nil)),
		Reinsurance: handler.NewReinsuranceHandler(underwritingapp.NewReinsuranceService(persistence.NewGormReinsuranceRepository(db.DB), nil)),
		Claims:      handler.NewClaimHandler(claimsapp.NewClaimService(claimRepo, reports, nil)),
		Premiums:    handler.NewPremiumHandler(financeapp.NewPremiumService(persistence.NewGormPremiumRepository(db.DB), nil)),
		Commissions: handler.NewCommissionHandler(financeapp.NewCommissionService(persistence.NewGormCommissionRepository(db.DB), nil)),
		Ledger:      handler.NewLedgerHandler(financeapp.NewLedgerService(persistence.NewGormLedgerRepository(db.DB), nil)),
		Customers:   handler.NewCustomerHandler(partnerapp.NewCustomerService(persistence.NewGormCustomerRepository(db.DB), nil)),
		Agents:      handler.NewAgentHandler(partnerapp.NewAgentService(persistence.NewGormAgentRepository(db.DB), nil)),
		Documents:   handler.NewDocumentHandler(recordsapp.NewDocumentService(persistence.NewGormDocumentRepository(db.DB), nil, nil)),
		Audit:       handler.NewAuditHandler(recordsapp.NewAuditService(persistence.NewGormAuditLogRepository(db.DB))),
		Users:       handler.NewUserHandler(identityapp.NewUserService(users, nil, log)),
		Reports:     handler.NewReportHandler(reports, metrics),
		Auth:        handler.NewAuthHandler(identityapp.NewAuthService(users, log), codec, false),
	}

	engine, err := NewEngine(EngineOptions{Config: cfg, Logger: log, Metrics: metrics})
	require.NoError(t, err)
	t.Cleanup(engine.Stop)

	engine.RegisterAPI(cfg, middleware.Session(codec, middleware.SessionOptions{}), h)
	sqlDB, err := db.DB.DB()
	require.NoError(t, err)
	engine.RegisterSystem(handler.NewSystemHandler(sqlDB, cfg.App.Name), metrics)
	return &testApp{engine: engine, codec: codec}
}

// cookies signs a fresh session for user with role
func (a *testApp) cookies(t *testing.T, user, role string) []*http.Cookie {
	t.Helper()
	session, err := a.codec.SignSession(time.Now(), user)
	require.NoError(t, err)
	roleToken, err := a.codec.SignRole(role)
	require.NoError(t, err)
	return []*http.Cookie{
		{Name: auth.SessionCookie, Value: session},
		{Name: auth.RoleCookie, Value: roleToken},
	}
}

func serve(h http.Handler, method, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	return serveBody(h, method, path, "", cookies)
}

func serveBody(h http.Handler, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestEngine_SessionGate(t *testing.T) {
	app := newTestApp(t, true)

	w := serve(app.engine, http.MethodGet, "/api/clients/", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "unauthenticated")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = serve(app.engine, http.MethodGet, "/api/clients/", app.cookies(t, "agent7", "agent"))
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotEmpty(t, w.Result().Cookies(), "session cookie is re-issued")
}

func TestEngine_RoleAllowLists(t *testing.T) {
	app := newTestApp(t, true)

	tests := []struct {
		path string
		role string
		code int
	}{
		{"/api/users/", "admin", http.StatusOK},
		{"/api/users/", "manager", http.StatusForbidden},
		{"/api/audit/", "manager", http.StatusOK},
		{"/api/audit/", "agent", http.StatusForbidden},
		{"/api/ledger/summary", "manager", http.StatusOK},
		{"/api/ledger/", "customer", http.StatusForbidden},
		{"/api/reinsurance/", "agent", http.StatusForbidden},
		{"/api/commissions/", "admin", http.StatusOK},
		{"/api/reports/claims-by-month", "agent", http.StatusOK},
		{"/api/reports/claims-by-month", "customer", http.StatusForbidden},
		{"/api/products/", "customer", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.role+" "+tt.path, func(t *testing.T) {
			w := serve(app.engine, http.MethodGet, tt.path, app.cookies(t, "someone", tt.role))
			assert.Equal(t, tt.code, w.Code, w.Body.String())
			if tt.code == http.StatusForbidden {
				assert.Contains(t, w.Body.String(), "ERR_FORBIDDEN")
			}
		})
	}
}

func TestEngine_WarmupRunIsAdminOnly(t *testing.T) {
	app := newTestApp(t, true)

	w := serve(app.engine, http.MethodPost, "/api/reports/warmup", app.cookies(t, "m", "manager"))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = serve(app.engine, http.MethodGet, "/api/reports/warmup", app.cookies(t, "m", "manager"))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code, "no warm-up schedule configured")

	w = serve(app.engine, http.MethodPost, "/api/reports/warmup", app.cookies(t, "a", "admin"))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_WARMUP_UNAVAILABLE")
}

func TestEngine_UnprotectedAPI(t *testing.T) {
	app := newTestApp(t, false)

	w := serve(app.engine, http.MethodGet, "/api/users/", nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = serveBody(app.engine, http.MethodPost, "/api/clients/", `{"name":"Ada","email":"ada@example.com","phone":"555"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = serve(app.engine, http.MethodGet, "/api/clients/1/policies", nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestEngine_AuthRoutesBypassSession(t *testing.T) {
	app := newTestApp(t, true)

	w := serveBody(app.engine, http.MethodPost, "/api/auth/login", `{"username":"admin","password":"admin123"}`, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 2)

	w = serve(app.engine, http.MethodGet, "/api/auth/me", cookies)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"admin"`)

	w = serve(app.engine, http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(app.engine, http.MethodPost, "/api/auth/logout", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestEngine_SystemRoutes(t *testing.T) {
	app := newTestApp(t, true)

	for _, path := range []string{"/health", "/status", "/about", "/contact", "/help"} {
		w := serve(app.engine, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	serve(app.engine, http.MethodGet, "/api/clients/", nil)
	w := serve(app.engine, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `insurance_http_requests_total{method="GET",route="/api/clients/",status="401"} 1`)
}

func TestEngine_SecurityHeadersAndBodyLimit(t *testing.T) {
	app := newTestApp(t, false)

	w := serve(app.engine, http.MethodGet, "/status", nil)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	big := `{"name":"` + strings.Repeat("x", 2<<20) + `"}`
	w = serveBody(app.engine, http.MethodPost, "/api/clients/", big, nil)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestEngine_AuthLimitShared(t *testing.T) {
	e := &Engine{Engine: gin.New()}
	defer e.Stop()

	assert.Nil(t, e.AuthLimit(config.HTTPConfig{}))

	cfg := config.HTTPConfig{RateLimitEnabled: true, RateLimitWindow: time.Minute}
	assert.NotNil(t, e.AuthLimit(cfg))
	assert.NotNil(t, e.AuthLimit(cfg))
	assert.Len(t, e.limiters, 1)
}

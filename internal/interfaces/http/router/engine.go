package router

import (
	"github.com/gin-gonic/gin"
	"github.com/insurance/backend/internal/infrastructure/config"
	"github.com/insurance/backend/internal/infrastructure/logger"
	"github.com/insurance/backend/internal/infrastructure/telemetry"
	"github.com/insurance/backend/internal/interfaces/http/handler"
	"github.com/insurance/backend/internal/interfaces/http/middleware"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// EngineOptions configures NewEngine
type EngineOptions struct {
	Config  *config.Config
	Logger  *zap.Logger
	Metrics *telemetry.Metrics
	// TracerProvider is used when telemetry is enabled; the global provider when nil
	TracerProvider trace.TracerProvider
}

// Engine is the configured gin engine plus the resources to release on shutdown
type Engine struct {
	*gin.Engine
	limiters  []*middleware.RateLimiter
	authLimit gin.HandlerFunc
}

// Stop releases the rate limiter cleanup goroutines
func (e *Engine) Stop() {
	for _, l := range e.limiters {
		l.Stop()
	}
}

// NewEngine builds a gin engine with the global middleware chain:
// request id, logging, recovery, security headers, CORS, body limit,
// rate limit, tracing and metrics, in that order.
func NewEngine(opts EngineOptions) (*Engine, error) {
	cfg := opts.Config
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		return nil, err
	}

	e := &Engine{Engine: engine}

	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(opts.Logger),
		logger.Recovery(opts.Logger),
		middleware.Secure(),
		middleware.CORSWithConfig(middleware.CORSFromHTTPConfig(cfg.HTTP)),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)
	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		e.limiters = append(e.limiters, limiter)
		engine.Use(middleware.RateLimit(limiter))
	}
	engine.Use(
		middleware.TracingWithConfig(middleware.TracingConfig{
			ServiceName:    cfg.Telemetry.ServiceName,
			Enabled:        cfg.Telemetry.Enabled,
			TracerProvider: opts.TracerProvider,
		}),
		middleware.SpanErrorMarker(),
	)
	if opts.Metrics != nil {
		engine.Use(middleware.HTTPMetrics(opts.Metrics))
	}
	return e, nil
}

// authAttemptLimit allows this many login or reset attempts per client per rate limit window
const authAttemptLimit = 10

// RegisterAPI mounts the REST API below /api. With session protection on,
// every entity route needs a valid session and its role allow-list.
func (e *Engine) RegisterAPI(cfg *config.Config, session gin.HandlerFunc, h Handlers) {
	gate := RoleGate(OpenGate)
	var routerOpts []RouterOption
	if cfg.Session.ProtectAPI {
		gate = JSONRoleGate
		routerOpts = append(routerOpts, WithMiddleware(session))
	}
	routerOpts = append(routerOpts, WithMiddleware(middleware.SpanAttributes()))

	NewRouter(e.Engine, routerOpts...).Register(APIRoutes(h, gate)...).Setup()

	AuthRoutes(e.Group("/api"), h.Auth, session, e.AuthLimit(cfg.HTTP))
}

// AuthLimit returns the shared login attempt limiter, or nil when rate
// limiting is off. The API and the login form count against the same budget.
func (e *Engine) AuthLimit(cfg config.HTTPConfig) gin.HandlerFunc {
	if !cfg.RateLimitEnabled {
		return nil
	}
	if e.authLimit == nil {
		limiter := middleware.NewRateLimiter(authAttemptLimit, cfg.RateLimitWindow)
		e.limiters = append(e.limiters, limiter)
		e.authLimit = middleware.AuthRateLimit(limiter)
	}
	return e.authLimit
}

// RegisterSystem mounts the health probe, the informational routes and /metrics
func (e *Engine) RegisterSystem(h *handler.SystemHandler, metrics *telemetry.Metrics) {
	e.GET("/health", h.Health)
	e.GET("/status", h.Status)
	e.GET("/about", h.About)
	e.GET("/contact", h.Contact)
	e.GET("/help", h.Help)
	if metrics != nil {
		e.GET("/metrics", gin.WrapH(metrics.Handler()))
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	claimsapp "github.com/insurance/backend/internal/application/claims"
	financeapp "github.com/insurance/backend/internal/application/finance"
	identityapp "github.com/insurance/backend/internal/application/identity"
	partnerapp "github.com/insurance/backend/internal/application/partner"
	recordsapp "github.com/insurance/backend/internal/application/records"
	"github.com/insurance/backend/internal/application/reporting"
	underwritingapp "github.com/insurance/backend/internal/application/underwriting"
	"github.com/insurance/backend/internal/infrastructure/auth"
	"github.com/insurance/backend/internal/infrastructure/cache"
	"github.com/insurance/backend/internal/infrastructure/config"
	"github.com/insurance/backend/internal/infrastructure/logger"
	"github.com/insurance/backend/internal/infrastructure/persistence"
	"github.com/insurance/backend/internal/infrastructure/scheduler"
	"github.com/insurance/backend/internal/infrastructure/storage"
	"github.com/insurance/backend/internal/infrastructure/telemetry"
	"github.com/insurance/backend/internal/interfaces/http/handler"
	"github.com/insurance/backend/internal/interfaces/http/middleware"
	"github.com/insurance/backend/internal/interfaces/http/router"
	"github.com/insurance/backend/internal/interfaces/web"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting insurance back office",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database with zap-backed GORM logger
	gormLog := logger.NewGormLogger(log, logger.GormLevel(cfg.Log.Level), 200*time.Millisecond)
	db, err := persistence.NewDatabase(&cfg.Database, persistence.WithLogger(gormLog))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if err := db.AutoMigrate(); err != nil {
		log.Fatal("Failed to migrate database", zap.Error(err))
	}
	log.Info("Database connected successfully", zap.String("driver", db.Driver))

	// Tracing
	tp, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	if err := telemetry.RegisterDBTracing(db.DB, telemetry.DBTracingConfig{
		Enabled:       cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		LogFullSQL:    cfg.Telemetry.DBLogFullSQL,
		DBSystem:      dbSystem(db.Driver),
		SlowThreshold: 200 * time.Millisecond,
	}, log); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}
	metrics := telemetry.NewMetrics()

	// Report cache and document storage
	reportCache := cache.New(cfg.Redis, log)
	defer func() { _ = reportCache.Close() }()

	files, err := storage.New(cfg.Storage, log)
	if err != nil {
		log.Fatal("Failed to initialize document storage", zap.Error(err))
	}

	// Repositories
	clientRepo := persistence.NewGormClientRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	policyRepo := persistence.NewGormPolicyRepository(db.DB)
	reinsuranceRepo := persistence.NewGormReinsuranceRepository(db.DB)
	claimRepo := persistence.NewGormClaimRepository(db.DB)
	premiumRepo := persistence.NewGormPremiumRepository(db.DB)
	commissionRepo := persistence.NewGormCommissionRepository(db.DB)
	ledgerRepo := persistence.NewGormLedgerRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	agentRepo := persistence.NewGormAgentRepository(db.DB)
	documentRepo := persistence.NewGormDocumentRepository(db.DB)
	auditRepo := persistence.NewGormAuditLogRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Application services; every mutation is recorded in the audit trail
	auditService := recordsapp.NewAuditService(auditRepo)
	reports := reporting.NewService(claimRepo,
		reporting.WithCache(reportCache, cfg.Report.CacheTTL),
		reporting.WithObserver(metrics),
		reporting.WithLogger(log),
	)
	services := web.Services{
		Clients:     underwritingapp.NewClientService(clientRepo, auditService),
		Policies:    underwritingapp.NewPolicyService(policyRepo, auditService),
		Products:    underwritingapp.NewProductService(productRepo, auditService),
		Reinsurance: underwritingapp.NewReinsuranceService(reinsuranceRepo, auditService),
		Claims:      claimsapp.NewClaimService(claimRepo, reports, auditService),
		Premiums:    financeapp.NewPremiumService(premiumRepo, auditService),
		Commissions: financeapp.NewCommissionService(commissionRepo, auditService),
		Ledger:      financeapp.NewLedgerService(ledgerRepo, auditService),
		Customers:   partnerapp.NewCustomerService(customerRepo, auditService),
		Agents:      partnerapp.NewAgentService(agentRepo, auditService),
		Documents:   recordsapp.NewDocumentService(documentRepo, files, auditService),
		Audit:       auditService,
		Users:       identityapp.NewUserService(userRepo, auditService, log),
		Auth:        identityapp.NewAuthService(userRepo, log),
		Reports:     reports,
	}

	// Report warm-up
	var warmer *scheduler.ReportWarmer
	reportHandler := handler.NewReportHandler(reports, metrics)
	if cfg.Report.WarmSchedule != "" {
		warmer, err = scheduler.NewReportWarmer(scheduler.ReportWarmerConfig{
			Schedule:    cfg.Report.WarmSchedule,
			JobTimeout:  time.Minute,
			WarmOnStart: true,
		}, reports, log)
		if err != nil {
			log.Fatal("Failed to create report warmer", zap.Error(err))
		}
		reportHandler.WithWarmup(warmer)
	}

	// HTTP handlers
	codec := auth.NewCookieCodec(cfg.Session)
	handlers := router.Handlers{
		Clients:     handler.NewClientHandler(services.Clients),
		Policies:    handler.NewPolicyHandler(services.Policies),
		Products:    handler.NewProductHandler(services.Products),
		Premiums:    handler.NewPremiumHandler(services.Premiums),
		Commissions: handler.NewCommissionHandler(services.Commissions),
		Claims:      handler.NewClaimHandler(services.Claims),
		Customers:   handler.NewCustomerHandler(services.Customers),
		Agents:      handler.NewAgentHandler(services.Agents),
		Documents:   handler.NewDocumentHandler(services.Documents),
		Audit:       handler.NewAuditHandler(services.Audit),
		Ledger:      handler.NewLedgerHandler(services.Ledger),
		Reinsurance: handler.NewReinsuranceHandler(services.Reinsurance),
		Users:       handler.NewUserHandler(services.Users),
		Reports:     reportHandler,
		Auth:        handler.NewAuthHandler(services.Auth, codec, cfg.Session.CookieSecure),
	}

	engine, err := router.NewEngine(router.EngineOptions{
		Config:         cfg,
		Logger:         log,
		Metrics:        metrics,
		TracerProvider: otel.GetTracerProvider(),
	})
	if err != nil {
		log.Fatal("Failed to build HTTP engine", zap.Error(err))
	}
	defer engine.Stop()

	session := middleware.Session(codec, middleware.SessionOptions{Secure: cfg.Session.CookieSecure})
	engine.RegisterAPI(cfg, session, handlers)

	sqlDB, err := db.DB.DB()
	if err != nil {
		log.Fatal("Failed to get database handle", zap.Error(err))
	}
	engine.RegisterSystem(handler.NewSystemHandler(sqlDB, cfg.App.Name), metrics)

	pages, err := web.NewHandler(services, web.Options{
		Codec:         codec,
		SecureCookies: cfg.Session.CookieSecure,
		Exports:       reportHandler,
	})
	if err != nil {
		log.Fatal("Failed to load page templates", zap.Error(err))
	}
	pages.Register(engine.Engine, engine.AuthLimit(cfg.HTTP))

	if warmer != nil {
		if err := warmer.Start(context.Background()); err != nil {
			log.Fatal("Failed to start report warmer", zap.Error(err))
		}
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if warmer != nil {
		if err := warmer.Stop(ctx); err != nil {
			log.Warn("Report warmer did not stop cleanly", zap.Error(err))
		}
	}
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := tp.Shutdown(ctx); err != nil {
		log.Warn("Tracer shutdown failed", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// dbSystem maps the configured driver to the OpenTelemetry db.system value
func dbSystem(driver string) string {
	if driver == config.DriverPostgres {
		return "postgresql"
	}
	return "sqlite"
}

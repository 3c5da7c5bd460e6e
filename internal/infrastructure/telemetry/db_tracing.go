package telemetry

import (
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBTracingConfig controls query tracing.
type DBTracingConfig struct {
	Enabled       bool
	LogFullSQL    bool          // include bound variables in db.statement (dev only)
	DBSystem      string        // sqlite or postgresql
	SlowThreshold time.Duration // queries slower than this get db.slow_query=true

	// TracerProvider defaults to the global provider when nil
	TracerProvider trace.TracerProvider
}

const startedAtKey = "telemetry:started_at"

// RegisterDBTracing installs the otelgorm plugin plus callbacks that tag slow queries
// on the active span.
func RegisterDBTracing(db *gorm.DB, cfg DBTracingConfig, logger *zap.Logger) error {
	if !cfg.Enabled {
		return nil
	}

	opts := []otelgorm.Option{otelgorm.WithDBName(cfg.DBSystem)}
	if !cfg.LogFullSQL {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if cfg.TracerProvider != nil {
		opts = append(opts, otelgorm.WithTracerProvider(cfg.TracerProvider))
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	before := func(tx *gorm.DB) { tx.InstanceSet(startedAtKey, time.Now()) }
	after := func(tx *gorm.DB) { annotateSpan(tx, cfg.SlowThreshold) }

	cb := db.Callback()
	steps := []struct {
		name     string
		register func(string, string, func(*gorm.DB)) error
	}{
		{"create", func(b, a string, fn func(*gorm.DB)) error {
			return cb.Create().Before(b).Register(a, fn)
		}},
		{"query", func(b, a string, fn func(*gorm.DB)) error {
			return cb.Query().Before(b).Register(a, fn)
		}},
		{"update", func(b, a string, fn func(*gorm.DB)) error {
			return cb.Update().Before(b).Register(a, fn)
		}},
		{"delete", func(b, a string, fn func(*gorm.DB)) error {
			return cb.Delete().Before(b).Register(a, fn)
		}},
	}
	for _, s := range steps {
		if err := s.register("gorm:"+s.name, "telemetry:before_"+s.name, before); err != nil {
			return err
		}
	}
	if err := cb.Create().After("gorm:create").Register("telemetry:after_create", after); err != nil {
		return err
	}
	if err := cb.Query().After("gorm:query").Register("telemetry:after_query", after); err != nil {
		return err
	}
	if err := cb.Update().After("gorm:update").Register("telemetry:after_update", after); err != nil {
		return err
	}
	if err := cb.Delete().After("gorm:delete").Register("telemetry:after_delete", after); err != nil {
		return err
	}

	logger.Info("Database tracing enabled",
		zap.String("db_system", cfg.DBSystem),
		zap.Bool("log_full_sql", cfg.LogFullSQL),
		zap.Duration("slow_query_threshold", cfg.SlowThreshold),
	)
	return nil
}

func annotateSpan(tx *gorm.DB, slow time.Duration) {
	if tx.Statement.Context == nil {
		return
	}
	span := trace.SpanFromContext(tx.Statement.Context)
	if !span.IsRecording() {
		return
	}
	v, ok := tx.InstanceGet(startedAtKey)
	if !ok || slow <= 0 {
		return
	}
	if started, ok := v.(time.Time); ok {
		if elapsed := time.Since(started); elapsed > slow {
			span.SetAttributes(
				attribute.Bool("db.slow_query", true),
				attribute.Int64("db.query_duration_ms", elapsed.Milliseconds()),
			)
		}
	}
}

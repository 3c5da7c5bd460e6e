package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/insurance/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// FileStore is implemented by every document content store
type FileStore interface {
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	DeleteObject(ctx context.Context, key string) error
	ObjectExists(ctx context.Context, key string) (bool, error)
}

// New builds the store selected by storage.type
func New(cfg config.StorageConfig, logger *zap.Logger) (FileStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch cfg.Type {
	case "", "local":
		store, err := NewLocalFileStore(cfg.LocalDir)
		if err != nil {
			return nil, err
		}
		logger.Info("Using local document storage", zap.String("dir", cfg.LocalDir))
		return store, nil
	case "s3":
		store, err := NewS3ObjectStorage(&cfg, WithLogger(logger))
		if err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := store.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		logger.Info("Using S3 document storage", zap.String("bucket", cfg.Bucket))
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Type)
	}
}

var (
	_ FileStore = (*S3ObjectStorage)(nil)
	_ FileStore = (*LocalFileStore)(nil)
)

package blobstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/killallgit/segment-editor/pkg/config"
	apperrors "github.com/killallgit/segment-editor/pkg/errors"
)

// New builds the store selected by cfg.Backend. db is required only for the
// gorm backend.
func New(ctx context.Context, cfg config.StorageConfig, db *gorm.DB) (Store, error) {
	switch cfg.Backend {
	case "", "memory":
		return NewMemoryStore(cfg.MemoryQuota), nil
	case "file":
		store, err := NewFileStore(cfg.FileDir)
		if err != nil {
			return nil, err
		}
		return store, nil
	case "gorm":
		if db == nil {
			return nil, apperrors.ConfigError("storage.backend", "gorm backend requires a database")
		}
		return NewGormStore(db), nil
	case "redis":
		store, err := NewRedisStore(ctx, RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
		if err != nil {
			return nil, err
		}
		return store, nil
	case "minio":
		store, err := NewMinioStore(ctx, MinioOptions{
			Endpoint:  cfg.Minio.Endpoint,
			AccessKey: cfg.Minio.AccessKey,
			SecretKey: cfg.Minio.SecretKey,
			Bucket:    cfg.Minio.Bucket,
			Region:    cfg.Minio.Region,
			UseSSL:    cfg.Minio.UseSSL,
		})
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, apperrors.ConfigError("storage.backend", "unknown backend "+cfg.Backend)
	}
}

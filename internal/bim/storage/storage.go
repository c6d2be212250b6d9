package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ============================================================
// Storage backends
// ============================================================
//
// Сгенерированный IFC-файл загружается в выбранное хранилище.
// Бэкенд выбирается переменной окружения STORAGE_BACKEND:
//
//	s3    → AWS S3, pre-signed URL на час
//	local → без загрузки, возвращается локальный путь (dev)

// Backend — интерфейс хранилища результирующих файлов.
type Backend interface {
	Upload(ctx context.Context, localPath string) (string, error)
}

// Config — настройки выбора бэкенда.
type Config struct {
	Backend  string
	S3Bucket string
	S3Region string
}

// FromConfig выбирает бэкенд по конфигурации; по умолчанию local.
func FromConfig(ctx context.Context, cfg Config) (Backend, error) {
	switch strings.ToLower(cfg.Backend) {
	case "s3":
		return NewS3Backend(ctx, cfg.S3Bucket, cfg.S3Region)
	case "", "local":
		return &LocalBackend{}, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// ============================================================
// Local fallback (dev)
// ============================================================

// LocalBackend ничего не загружает — возвращает локальный путь.
type LocalBackend struct{}

func (b *LocalBackend) Upload(_ context.Context, localPath string) (string, error) {
	abs, err := filepath.Abs(localPath)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}
	if _, err := os.Stat(abs); err != nil {
		return "", fmt.Errorf("stat %s: %w", abs, err)
	}
	return abs, nil
}

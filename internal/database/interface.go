package database

import (
	"context"

	"github.com/akyairhashvil/eclb/internal/models"
)

// TemplateRepository defines sheet template operations.
type TemplateRepository interface {
	ListTemplates(ctx context.Context) ([]models.Template, error)
	GetTemplate(ctx context.Context, name string) (models.Template, error)
	SaveTemplate(ctx context.Context, t models.Template) (int64, error)
}

// HistoryRepository defines batch history operations.
type HistoryRepository interface {
	RecordBatch(ctx context.Context, rec BatchRecord) (string, error)
	ListBatches(ctx context.Context, limit int) ([]models.Batch, error)
	GetBatchLabels(ctx context.Context, id string) ([]models.BatchLabel, error)
	DeleteBatch(ctx context.Context, id string) error
}

// SettingsRepository defines key/value preference operations.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// Store combines all repository interfaces.
//
//go:generate mockgen -destination=../tui/mock_store_test.go -package=tui github.com/akyairhashvil/eclb/internal/database Store
type Store interface {
	TemplateRepository
	HistoryRepository
	SettingsRepository
}

var _ Store = (*Database)(nil)

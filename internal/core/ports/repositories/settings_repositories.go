package repositories

import (
	"context"

	"github.com/karkhana/factory_ledger_app/internal/core/domain"
)

// SettingsRepository manages the single company settings row.
type SettingsRepository interface {
	// GetOrCreateDefault returns the settings row, inserting the default
	// one on first access so callers never observe a missing row.
	GetOrCreateDefault(ctx context.Context) (*domain.CompanySettings, error)

	// UpdateSettings persists changes to the settings row.
	UpdateSettings(ctx context.Context, settings domain.CompanySettings) error
}

package services

import (
	"context"

	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	"github.com/karkhana/factory_ledger_app/internal/dto"
)

// SettingsSvcFacade manages the company accounting settings.
type SettingsSvcFacade interface {
	// GetSettings returns the settings row, creating the default on first access.
	GetSettings(ctx context.Context) (*domain.CompanySettings, error)

	// UpdateSettings applies the provided fields and returns the new state.
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, userID string) (*domain.CompanySettings, error)
}

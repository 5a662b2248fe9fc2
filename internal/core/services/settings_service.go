package services

import (
	"context"
	"time"

	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	portsrepo "github.com/karkhana/factory_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/karkhana/factory_ledger_app/internal/core/ports/services"
	"github.com/karkhana/factory_ledger_app/internal/dto"
)

// settingsService manages the company accounting settings row.
type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepository
}

// NewSettingsService creates a new settings service.
func NewSettingsService(settingsRepo portsrepo.SettingsRepository) portssvc.SettingsSvcFacade {
	return &settingsService{settingsRepo: settingsRepo}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetSettings(ctx context.Context) (*domain.CompanySettings, error) {
	return s.settingsRepo.GetOrCreateDefault(ctx)
}

func (s *settingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, userID string) (*domain.CompanySettings, error) {
	settings, err := s.settingsRepo.GetOrCreateDefault(ctx)
	if err != nil {
		return nil, err
	}

	if req.CompanyName != nil {
		settings.CompanyName = *req.CompanyName
	}
	if req.GSTIN != nil {
		settings.GSTIN = *req.GSTIN
	}
	if req.CGSTRate != nil {
		settings.CGSTRate = *req.CGSTRate
	}
	if req.SGSTRate != nil {
		settings.SGSTRate = *req.SGSTRate
	}
	if req.IGSTRate != nil {
		settings.IGSTRate = *req.IGSTRate
	}
	if req.FinancialYearStartMonth != nil {
		settings.FinancialYearStartMonth = *req.FinancialYearStartMonth
	}
	if req.AutoPostVouchers != nil {
		settings.AutoPostVouchers = *req.AutoPostVouchers
	}
	settings.LastUpdatedAt = time.Now()
	settings.LastUpdatedBy = userID

	if err := s.settingsRepo.UpdateSettings(ctx, *settings); err != nil {
		return nil, err
	}
	return settings, nil
}

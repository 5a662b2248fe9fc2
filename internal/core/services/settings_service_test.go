package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	"github.com/karkhana/factory_ledger_app/internal/core/services"
	"github.com/karkhana/factory_ledger_app/internal/dto"
)

func defaultSettings() *domain.CompanySettings {
	return &domain.CompanySettings{
		SettingsID:              "default",
		CompanyName:             "Karkhana Works",
		CGSTRate:                decimal.NewFromInt(9),
		SGSTRate:                decimal.NewFromInt(9),
		IGSTRate:                decimal.NewFromInt(18),
		FinancialYearStartMonth: 4,
		AutoPostVouchers:        false,
	}
}

func TestGetSettings_ReturnsDefaultRow(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockSettingsRepository)
	svc := services.NewSettingsService(mockRepo)

	mockRepo.On("GetOrCreateDefault", ctx).Return(defaultSettings(), nil).Once()

	settings, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Karkhana Works", settings.CompanyName)
	assert.Equal(t, 4, settings.FinancialYearStartMonth)
	mockRepo.AssertExpectations(t)
}

func TestUpdateSettings_AppliesOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockSettingsRepository)
	svc := services.NewSettingsService(mockRepo)

	autoPost := true
	igst := decimal.NewFromInt(12)

	mockRepo.On("GetOrCreateDefault", ctx).Return(defaultSettings(), nil).Once()
	mockRepo.On("UpdateSettings", ctx, mock.MatchedBy(func(s domain.CompanySettings) bool {
		return s.AutoPostVouchers &&
			s.IGSTRate.Equal(decimal.NewFromInt(12)) &&
			s.CompanyName == "Karkhana Works" &&
			s.LastUpdatedBy == "user-1"
	})).Return(nil).Once()

	settings, err := svc.UpdateSettings(ctx, dto.UpdateSettingsRequest{
		AutoPostVouchers: &autoPost,
		IGSTRate:         &igst,
	}, "user-1")
	require.NoError(t, err)
	assert.True(t, settings.AutoPostVouchers)
	assert.True(t, settings.CGSTRate.Equal(decimal.NewFromInt(9)), "untouched rate changed")
	mockRepo.AssertExpectations(t)
}

func TestUpdateSettings_RepoError(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockSettingsRepository)
	svc := services.NewSettingsService(mockRepo)

	name := "Renamed Works"
	mockRepo.On("GetOrCreateDefault", ctx).Return(defaultSettings(), nil).Once()
	mockRepo.On("UpdateSettings", ctx, mock.Anything).Return(assert.AnError).Once()

	_, err := svc.UpdateSettings(ctx, dto.UpdateSettingsRequest{CompanyName: &name}, "user-1")
	assert.Error(t, err)
}

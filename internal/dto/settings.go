package dto

import (
	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateSettingsRequest defines the mutable company settings fields.
type UpdateSettingsRequest struct {
	CompanyName             *string          `json:"companyName"`
	GSTIN                   *string          `json:"gstin" binding:"omitempty,gstin"`
	CGSTRate                *decimal.Decimal `json:"cgstRate"`
	SGSTRate                *decimal.Decimal `json:"sgstRate"`
	IGSTRate                *decimal.Decimal `json:"igstRate"`
	FinancialYearStartMonth *int             `json:"financialYearStartMonth" binding:"omitempty,min=1,max=12"`
	AutoPostVouchers        *bool            `json:"autoPostVouchers"`
}

// SettingsResponse defines the data returned for company settings.
type SettingsResponse struct {
	CompanyName             string          `json:"companyName"`
	GSTIN                   string          `json:"gstin,omitempty"`
	CGSTRate                decimal.Decimal `json:"cgstRate"`
	SGSTRate                decimal.Decimal `json:"sgstRate"`
	IGSTRate                decimal.Decimal `json:"igstRate"`
	FinancialYearStartMonth int             `json:"financialYearStartMonth"`
	AutoPostVouchers        bool            `json:"autoPostVouchers"`
}

// ToSettingsResponse converts domain.CompanySettings to its response DTO.
func ToSettingsResponse(s *domain.CompanySettings) SettingsResponse {
	return SettingsResponse{
		CompanyName:             s.CompanyName,
		GSTIN:                   s.GSTIN,
		CGSTRate:                s.CGSTRate,
		SGSTRate:                s.SGSTRate,
		IGSTRate:                s.IGSTRate,
		FinancialYearStartMonth: s.FinancialYearStartMonth,
		AutoPostVouchers:        s.AutoPostVouchers,
	}
}

package domain

import "github.com/shopspring/decimal"

// CompanySettings holds the single accounting configuration row.
// Repositories expose it with get-or-create-default semantics so callers
// never observe a missing row.
type CompanySettings struct {
	SettingsID              string          `json:"settingsID"`
	CompanyName             string          `json:"companyName"`
	GSTIN                   string          `json:"gstin,omitempty"`
	CGSTRate                decimal.Decimal `json:"cgstRate"`
	SGSTRate                decimal.Decimal `json:"sgstRate"`
	IGSTRate                decimal.Decimal `json:"igstRate"`
	FinancialYearStartMonth int             `json:"financialYearStartMonth"`
	AutoPostVouchers        bool            `json:"autoPostVouchers"`
	AuditFields
}

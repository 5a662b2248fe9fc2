package models

import "github.com/shopspring/decimal"

// CompanySettings maps to the company_settings table (single row).
type CompanySettings struct {
	SettingsID              string          `db:"settings_id"`
	CompanyName             string          `db:"company_name"`
	GSTIN                   string          `db:"gstin"` // nullable
	CGSTRate                decimal.Decimal `db:"cgst_rate"`
	SGSTRate                decimal.Decimal `db:"sgst_rate"`
	IGSTRate                decimal.Decimal `db:"igst_rate"`
	FinancialYearStartMonth int             `db:"financial_year_start_month"`
	AutoPostVouchers        bool            `db:"auto_post_vouchers"`
	AuditFields
}

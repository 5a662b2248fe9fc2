package mapping

import (
	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	"github.com/karkhana/factory_ledger_app/internal/models"
)

func ToModelCompanySettings(d domain.CompanySettings) models.CompanySettings {
	return models.CompanySettings{
		SettingsID:              d.SettingsID,
		CompanyName:             d.CompanyName,
		GSTIN:                   d.GSTIN,
		CGSTRate:                d.CGSTRate,
		SGSTRate:                d.SGSTRate,
		IGSTRate:                d.IGSTRate,
		FinancialYearStartMonth: d.FinancialYearStartMonth,
		AutoPostVouchers:        d.AutoPostVouchers,
		AuditFields:             ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainCompanySettings(m models.CompanySettings) domain.CompanySettings {
	return domain.CompanySettings{
		SettingsID:              m.SettingsID,
		CompanyName:             m.CompanyName,
		GSTIN:                   m.GSTIN,
		CGSTRate:                m.CGSTRate,
		SGSTRate:                m.SGSTRate,
		IGSTRate:                m.IGSTRate,
		FinancialYearStartMonth: m.FinancialYearStartMonth,
		AutoPostVouchers:        m.AutoPostVouchers,
		AuditFields:             ToDomainAuditFields(m.AuditFields),
	}
}

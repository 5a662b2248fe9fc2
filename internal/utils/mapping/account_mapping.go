package mapping

import (
	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	"github.com/karkhana/factory_ledger_app/internal/models"
)

// ToModelAccountGroup converts a domain AccountGroup to its model form.
func ToModelAccountGroup(d domain.AccountGroup) models.AccountGroup {
	return models.AccountGroup{
		GroupID:       d.GroupID,
		Name:          d.Name,
		Code:          d.Code,
		GroupType:     string(d.GroupType),
		ParentGroupID: d.ParentGroupID,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccountGroup converts a model AccountGroup to its domain form.
func ToDomainAccountGroup(m models.AccountGroup) domain.AccountGroup {
	return domain.AccountGroup{
		GroupID:       m.GroupID,
		Name:          m.Name,
		Code:          m.Code,
		GroupType:     domain.GroupType(m.GroupType),
		ParentGroupID: m.ParentGroupID,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelAccount converts a domain Account to its model form.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:       d.AccountID,
		Name:            d.Name,
		Code:            d.Code,
		GroupID:         d.GroupID,
		AccountType:     string(d.AccountType),
		OpeningBalance:  d.OpeningBalance,
		CurrentBalance:  d.CurrentBalance,
		IsGSTApplicable: d.IsGSTApplicable,
		IsBankAccount:   d.IsBankAccount,
		IsCashAccount:   d.IsCashAccount,
		IsActive:        d.IsActive,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to its domain form.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:       m.AccountID,
		Name:            m.Name,
		Code:            m.Code,
		GroupID:         m.GroupID,
		AccountType:     domain.AccountType(m.AccountType),
		OpeningBalance:  m.OpeningBalance,
		CurrentBalance:  m.CurrentBalance,
		IsGSTApplicable: m.IsGSTApplicable,
		IsBankAccount:   m.IsBankAccount,
		IsCashAccount:   m.IsCashAccount,
		IsActive:        m.IsActive,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

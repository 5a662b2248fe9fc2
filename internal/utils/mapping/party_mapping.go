package mapping

import (
	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	"github.com/karkhana/factory_ledger_app/internal/models"
)

func ToModelSupplier(d domain.Supplier) models.Supplier {
	return models.Supplier{
		SupplierID:    d.SupplierID,
		Name:          d.Name,
		GSTIN:         d.GSTIN,
		ContactPerson: d.ContactPerson,
		Phone:         d.Phone,
		Email:         d.Email,
		Address:       d.Address,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainSupplier(m models.Supplier) domain.Supplier {
	return domain.Supplier{
		SupplierID:    m.SupplierID,
		Name:          m.Name,
		GSTIN:         m.GSTIN,
		ContactPerson: m.ContactPerson,
		Phone:         m.Phone,
		Email:         m.Email,
		Address:       m.Address,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:    d.CustomerID,
		Name:          d.Name,
		GSTIN:         d.GSTIN,
		ContactPerson: d.ContactPerson,
		Phone:         d.Phone,
		Email:         d.Email,
		Address:       d.Address,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:    m.CustomerID,
		Name:          m.Name,
		GSTIN:         m.GSTIN,
		ContactPerson: m.ContactPerson,
		Phone:         m.Phone,
		Email:         m.Email,
		Address:       m.Address,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

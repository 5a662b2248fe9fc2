package mapping

import (
	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	"github.com/karkhana/factory_ledger_app/internal/models"
)

// ToModelVoucherType converts a domain VoucherType to its model form.
func ToModelVoucherType(d domain.VoucherType) models.VoucherType {
	return models.VoucherType{
		VoucherTypeID: d.VoucherTypeID,
		Name:          d.Name,
		Code:          d.Code,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVoucherType converts a model VoucherType to its domain form.
func ToDomainVoucherType(m models.VoucherType) domain.VoucherType {
	return domain.VoucherType{
		VoucherTypeID: m.VoucherTypeID,
		Name:          m.Name,
		Code:          m.Code,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelVoucher converts a domain Voucher header to its model form.
func ToModelVoucher(d domain.Voucher) models.Voucher {
	return models.Voucher{
		VoucherID:       d.VoucherID,
		VoucherNumber:   d.VoucherNumber,
		VoucherTypeID:   d.VoucherTypeID,
		TransactionDate: d.TransactionDate,
		ReferenceNumber: d.ReferenceNumber,
		Narration:       d.Narration,
		PartyType:       string(d.PartyType),
		PartyID:         d.PartyID,
		TotalAmount:     d.TotalAmount,
		TaxAmount:       d.TaxAmount,
		DiscountAmount:  d.DiscountAmount,
		Status:          string(d.Status),
		IsGSTApplicable: d.IsGSTApplicable,
		PostedBy:        d.PostedBy,
		PostedAt:        d.PostedAt,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVoucher converts a model Voucher header to its domain form.
// Entries are attached separately by the repository.
func ToDomainVoucher(m models.Voucher) domain.Voucher {
	return domain.Voucher{
		VoucherID:       m.VoucherID,
		VoucherNumber:   m.VoucherNumber,
		VoucherTypeID:   m.VoucherTypeID,
		TransactionDate: m.TransactionDate,
		ReferenceNumber: m.ReferenceNumber,
		Narration:       m.Narration,
		PartyType:       domain.PartyType(m.PartyType),
		PartyID:         m.PartyID,
		TotalAmount:     m.TotalAmount,
		TaxAmount:       m.TaxAmount,
		DiscountAmount:  m.DiscountAmount,
		Status:          domain.VoucherStatus(m.Status),
		IsGSTApplicable: m.IsGSTApplicable,
		PostedBy:        m.PostedBy,
		PostedAt:        m.PostedAt,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalEntry converts a domain JournalEntry to its model form.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:         d.EntryID,
		VoucherID:       d.VoucherID,
		AccountID:       d.AccountID,
		EntryType:       string(d.EntryType),
		Amount:          d.Amount,
		Narration:       d.Narration,
		ReferenceType:   string(d.Ref.Kind),
		ReferenceID:     d.Ref.ID,
		TransactionDate: d.TransactionDate,
		CreatedAt:       d.CreatedAt,
		CreatedBy:       d.CreatedBy,
	}
}

// ToDomainJournalEntry converts a model JournalEntry to its domain form.
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:         m.EntryID,
		VoucherID:       m.VoucherID,
		AccountID:       m.AccountID,
		EntryType:       domain.EntryType(m.EntryType),
		Amount:          m.Amount,
		Narration:       m.Narration,
		TransactionDate: m.TransactionDate,
		Ref:             domain.DocumentRef{Kind: domain.RefKind(m.ReferenceType), ID: m.ReferenceID},
		CreatedAt:       m.CreatedAt,
		CreatedBy:       m.CreatedBy,
	}
}

// ToDomainJournalEntrySlice converts a slice of model entries to domain form.
func ToDomainJournalEntrySlice(ms []models.JournalEntry) []domain.JournalEntry {
	ds := make([]domain.JournalEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalEntry(m)
	}
	return ds
}

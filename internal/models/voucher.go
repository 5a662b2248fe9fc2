package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherType maps to the voucher_types table.
type VoucherType struct {
	VoucherTypeID string `db:"voucher_type_id"`
	Name          string `db:"name"`
	Code          string `db:"code"`
	IsActive      bool   `db:"is_active"`
	AuditFields
}

// Voucher maps to the vouchers table.
type Voucher struct {
	VoucherID       string          `db:"voucher_id"`
	VoucherNumber   string          `db:"voucher_number"`
	VoucherTypeID   string          `db:"voucher_type_id"`
	TransactionDate time.Time       `db:"transaction_date"`
	ReferenceNumber string          `db:"reference_number"` // nullable
	Narration       string          `db:"narration"`        // nullable
	PartyType       string          `db:"party_type"`       // nullable
	PartyID         string          `db:"party_id"`         // nullable
	TotalAmount     decimal.Decimal `db:"total_amount"`
	TaxAmount       decimal.Decimal `db:"tax_amount"`
	DiscountAmount  decimal.Decimal `db:"discount_amount"`
	Status          string          `db:"status"`
	IsGSTApplicable bool            `db:"is_gst_applicable"`
	PostedBy        string          `db:"posted_by"` // nullable
	PostedAt        *time.Time      `db:"posted_at"` // nullable
	AuditFields
}

// JournalEntry maps to the journal_entries table.
type JournalEntry struct {
	EntryID         string          `db:"entry_id"`
	VoucherID       string          `db:"voucher_id"`
	AccountID       string          `db:"account_id"`
	EntryType       string          `db:"entry_type"`
	Amount          decimal.Decimal `db:"amount"`
	Narration       string          `db:"narration"`      // nullable
	ReferenceType   string          `db:"reference_type"` // nullable
	ReferenceID     string          `db:"reference_id"`   // nullable
	TransactionDate time.Time       `db:"transaction_date"`
	CreatedAt       time.Time       `db:"created_at"`
	CreatedBy       string          `db:"created_by"`
}

// VoucherSequence maps to the voucher_sequences table, one row per
// (type code, calendar year).
type VoucherSequence struct {
	TypeCode   string `db:"type_code"`
	Year       int    `db:"year"`
	LastNumber int64  `db:"last_number"`
}

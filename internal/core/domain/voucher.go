package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherStatus is the lifecycle state of a voucher.
// DRAFT is the only mutable state; POSTED and CANCELLED are terminal.
type VoucherStatus string

const (
	VoucherDraft     VoucherStatus = "DRAFT"
	VoucherPosted    VoucherStatus = "POSTED"
	VoucherCancelled VoucherStatus = "CANCELLED"
)

// EntryType indicates whether a journal entry is a debit or a credit.
type EntryType string

const (
	DebitEntry  EntryType = "DEBIT"
	CreditEntry EntryType = "CREDIT"
)

// VoucherType classifies vouchers (purchase, sales, payment, receipt, ...).
type VoucherType struct {
	VoucherTypeID string `json:"voucherTypeID"`
	Name          string `json:"name"`
	Code          string `json:"code"`
	IsActive      bool   `json:"isActive"`
	AuditFields
}

// Well-known voucher type codes seeded with the default chart.
const (
	VoucherTypePurchase = "PUR"
	VoucherTypeSales    = "SAL"
	VoucherTypePayment  = "PAY"
	VoucherTypeReceipt  = "REC"
	VoucherTypeJournal  = "JOU"
	VoucherTypeContra   = "CON"
)

// Voucher is a transaction header grouping balanced journal entries.
type Voucher struct {
	VoucherID       string          `json:"voucherID"`
	VoucherNumber   string          `json:"voucherNumber"`
	VoucherTypeID   string          `json:"voucherTypeID"`
	TransactionDate time.Time       `json:"transactionDate"`
	ReferenceNumber string          `json:"referenceNumber,omitempty"`
	Narration       string          `json:"narration,omitempty"`
	PartyType       PartyType       `json:"partyType,omitempty"`
	PartyID         string          `json:"partyID,omitempty"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	TaxAmount       decimal.Decimal `json:"taxAmount"`
	DiscountAmount  decimal.Decimal `json:"discountAmount"`
	Status          VoucherStatus   `json:"status"`
	IsGSTApplicable bool            `json:"isGstApplicable"`
	PostedBy        string          `json:"postedBy,omitempty"`
	PostedAt        *time.Time      `json:"postedAt,omitempty"`
	AuditFields

	// Entries are loaded alongside the header; immutable once posted.
	Entries []JournalEntry `json:"entries,omitempty"`
}

// JournalEntry is a single debit or credit line against one account.
type JournalEntry struct {
	EntryID         string          `json:"entryID"`
	VoucherID       string          `json:"voucherID"`
	AccountID       string          `json:"accountID"`
	EntryType       EntryType       `json:"entryType"`
	Amount          decimal.Decimal `json:"amount"`
	Narration       string          `json:"narration,omitempty"`
	TransactionDate time.Time       `json:"transactionDate"`
	Ref             DocumentRef     `json:"ref,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
}

// DebitTotal sums the debit entries on the voucher.
func (v Voucher) DebitTotal() decimal.Decimal {
	total := decimal.Zero
	for _, e := range v.Entries {
		if e.EntryType == DebitEntry {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// CreditTotal sums the credit entries on the voucher.
func (v Voucher) CreditTotal() decimal.Decimal {
	total := decimal.Zero
	for _, e := range v.Entries {
		if e.EntryType == CreditEntry {
			total = total.Add(e.Amount)
		}
	}
	return total
}

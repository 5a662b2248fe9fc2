package dto

import (
	"time"

	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryRequest is a single debit/credit line in a voucher request.
type CreateEntryRequest struct {
	AccountCode   string           `json:"accountCode" binding:"required"`
	EntryType     domain.EntryType `json:"entryType" binding:"required,oneof=DEBIT CREDIT"`
	Amount        decimal.Decimal  `json:"amount" binding:"required"`
	Narration     string           `json:"narration"`
	ReferenceType domain.RefKind   `json:"referenceType"`
	ReferenceID   string           `json:"referenceID"`
}

// CreateVoucherRequest defines the data needed to create a draft voucher.
type CreateVoucherRequest struct {
	VoucherTypeCode string               `json:"voucherTypeCode" binding:"required"`
	TransactionDate time.Time            `json:"transactionDate" binding:"required" time_format:"2006-01-02"`
	ReferenceNumber string               `json:"referenceNumber"`
	Narration       string               `json:"narration"`
	PartyType       domain.PartyType     `json:"partyType" binding:"omitempty,oneof=SUPPLIER CUSTOMER"`
	PartyID         string               `json:"partyID"`
	TaxAmount       decimal.Decimal      `json:"taxAmount"`
	DiscountAmount  decimal.Decimal      `json:"discountAmount"`
	IsGSTApplicable bool                 `json:"isGstApplicable"`
	Entries         []CreateEntryRequest `json:"entries" binding:"required,min=2,dive"`
}

// JournalEntryResponse is one line of a voucher response.
type JournalEntryResponse struct {
	EntryID       string           `json:"entryID"`
	AccountID     string           `json:"accountID"`
	EntryType     domain.EntryType `json:"entryType"`
	Amount        decimal.Decimal  `json:"amount"`
	Narration     string           `json:"narration,omitempty"`
	ReferenceType domain.RefKind   `json:"referenceType,omitempty"`
	ReferenceID   string           `json:"referenceID,omitempty"`
}

// VoucherResponse defines the data returned for a voucher.
type VoucherResponse struct {
	VoucherID       string                 `json:"voucherID"`
	VoucherNumber   string                 `json:"voucherNumber"`
	VoucherTypeID   string                 `json:"voucherTypeID"`
	TransactionDate string                 `json:"transactionDate"`
	ReferenceNumber string                 `json:"referenceNumber,omitempty"`
	Narration       string                 `json:"narration,omitempty"`
	PartyType       domain.PartyType       `json:"partyType,omitempty"`
	PartyID         string                 `json:"partyID,omitempty"`
	TotalAmount     decimal.Decimal        `json:"totalAmount"`
	TaxAmount       decimal.Decimal        `json:"taxAmount"`
	DiscountAmount  decimal.Decimal        `json:"discountAmount"`
	Status          domain.VoucherStatus   `json:"status"`
	PostedBy        string                 `json:"postedBy,omitempty"`
	PostedAt        *time.Time             `json:"postedAt,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
	Entries         []JournalEntryResponse `json:"entries,omitempty"`
}

// ToVoucherResponse converts a domain.Voucher to its response DTO.
func ToVoucherResponse(v *domain.Voucher) VoucherResponse {
	resp := VoucherResponse{
		VoucherID:       v.VoucherID,
		VoucherNumber:   v.VoucherNumber,
		VoucherTypeID:   v.VoucherTypeID,
		TransactionDate: v.TransactionDate.Format("2006-01-02"),
		ReferenceNumber: v.ReferenceNumber,
		Narration:       v.Narration,
		PartyType:       v.PartyType,
		PartyID:         v.PartyID,
		TotalAmount:     v.TotalAmount,
		TaxAmount:       v.TaxAmount,
		DiscountAmount:  v.DiscountAmount,
		Status:          v.Status,
		PostedBy:        v.PostedBy,
		PostedAt:        v.PostedAt,
		CreatedAt:       v.CreatedAt,
	}
	for _, e := range v.Entries {
		resp.Entries = append(resp.Entries, JournalEntryResponse{
			EntryID:       e.EntryID,
			AccountID:     e.AccountID,
			EntryType:     e.EntryType,
			Amount:        e.Amount,
			Narration:     e.Narration,
			ReferenceType: e.Ref.Kind,
			ReferenceID:   e.Ref.ID,
		})
	}
	return resp
}

// ToListVoucherResponse converts a slice of vouchers to response DTOs.
func ToListVoucherResponse(vouchers []domain.Voucher) []VoucherResponse {
	res := make([]VoucherResponse, len(vouchers))
	for i, v := range vouchers {
		res[i] = ToVoucherResponse(&v)
	}
	return res
}

// ListVouchersParams defines query parameters for listing vouchers.
// Number and refType/refID are exact lookups that bypass the other filters.
type ListVouchersParams struct {
	TypeCode string `form:"typeCode"`
	Status   string `form:"status"`
	FromDate string `form:"fromDate"`
	ToDate   string `form:"toDate"`
	Number   string `form:"number"`
	RefType  string `form:"refType" binding:"omitempty,oneof=PURCHASE_ORDER SALES_ORDER GRN PRODUCTION EXPENSE SALARY MANUAL"`
	RefID    string `form:"refID"`
	Limit    int    `form:"limit,default=50"`
	Offset   int    `form:"offset,default=0"`

	// PageToken continues a previous listing from its nextToken.
	PageToken string `form:"pageToken"`
}

// VoucherTypeResponse defines the data returned for a voucher type.
type VoucherTypeResponse struct {
	VoucherTypeID string `json:"voucherTypeID"`
	Name          string `json:"name"`
	Code          string `json:"code"`
	IsActive      bool   `json:"isActive"`
}

// ToVoucherTypeResponse converts a domain.VoucherType to its response DTO.
func ToVoucherTypeResponse(vt *domain.VoucherType) VoucherTypeResponse {
	return VoucherTypeResponse{
		VoucherTypeID: vt.VoucherTypeID,
		Name:          vt.Name,
		Code:          vt.Code,
		IsActive:      vt.IsActive,
	}
}

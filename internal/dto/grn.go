package dto

import (
	"time"

	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GRNReceiptRequest records step one of the clearing workflow: materials
// physically arrived against a GRN.
type GRNReceiptRequest struct {
	SupplierID    string          `json:"supplierID" binding:"required"`
	MaterialValue decimal.Decimal `json:"materialValue" binding:"required"`
	ReceiptDate   time.Time       `json:"receiptDate" binding:"required" time_format:"2006-01-02"`
	Narration     string          `json:"narration"`
}

// GRNInvoiceRequest records step two: the vendor invoice arrived.
type GRNInvoiceRequest struct {
	SupplierID    string          `json:"supplierID" binding:"required"`
	InvoiceNumber string          `json:"invoiceNumber" binding:"required"`
	InvoiceDate   time.Time       `json:"invoiceDate" binding:"required" time_format:"2006-01-02"`
	BasicAmount   decimal.Decimal `json:"basicAmount" binding:"required"`
	CGSTAmount    decimal.Decimal `json:"cgstAmount"`
	SGSTAmount    decimal.Decimal `json:"sgstAmount"`
	IGSTAmount    decimal.Decimal `json:"igstAmount"`
	Narration     string          `json:"narration"`
}

// GRNPaymentRequest records step three: the supplier was paid.
type GRNPaymentRequest struct {
	SupplierID      string          `json:"supplierID" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	PaymentDate     time.Time       `json:"paymentDate" binding:"required" time_format:"2006-01-02"`
	Mode            string          `json:"mode" binding:"required,oneof=CASH BANK"`
	ReferenceNumber string          `json:"referenceNumber"`
	Narration       string          `json:"narration"`
}

// GRNWorkflowResponse reports the clearing state of one GRN.
type GRNWorkflowResponse struct {
	GRNID string `json:"grnID"`

	MaterialReceived   bool       `json:"materialReceived"`
	MaterialReceivedAt *time.Time `json:"materialReceivedAt,omitempty"`
	MaterialVoucherID  string     `json:"materialVoucherID,omitempty"`

	InvoiceReceived   bool       `json:"invoiceReceived"`
	InvoiceReceivedAt *time.Time `json:"invoiceReceivedAt,omitempty"`
	InvoiceVoucherID  string     `json:"invoiceVoucherID,omitempty"`

	PaymentMade      bool       `json:"paymentMade"`
	PaymentMadeAt    *time.Time `json:"paymentMadeAt,omitempty"`
	PaymentVoucherID string     `json:"paymentVoucherID,omitempty"`
}

// ToGRNWorkflowResponse converts a workflow status to its response DTO.
func ToGRNWorkflowResponse(s *domain.GRNWorkflowStatus) GRNWorkflowResponse {
	return GRNWorkflowResponse{
		GRNID:              s.GRNID,
		MaterialReceived:   s.MaterialReceived,
		MaterialReceivedAt: s.MaterialReceivedAt,
		MaterialVoucherID:  s.MaterialVoucherID,
		InvoiceReceived:    s.InvoiceReceived,
		InvoiceReceivedAt:  s.InvoiceReceivedAt,
		InvoiceVoucherID:   s.InvoiceVoucherID,
		PaymentMade:        s.PaymentMade,
		PaymentMadeAt:      s.PaymentMadeAt,
		PaymentVoucherID:   s.PaymentVoucherID,
	}
}

package domain

import "time"

// GRNStep names one of the three clearing steps for a goods receipt.
type GRNStep string

const (
	StepMaterialReceived GRNStep = "MATERIAL_RECEIVED"
	StepInvoiceReceived  GRNStep = "INVOICE_RECEIVED"
	StepPaymentMade      GRNStep = "PAYMENT_MADE"
)

// GRNWorkflowStatus tracks the three-step clearing workflow for one goods
// receipt note: material receipt, vendor invoice, payment. Each step is
// guarded independently; business flow invokes them in order but the model
// does not require it.
type GRNWorkflowStatus struct {
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

	AuditFields
}

// StepDone reports whether the given step has already been recorded.
func (s GRNWorkflowStatus) StepDone(step GRNStep) bool {
	switch step {
	case StepMaterialReceived:
		return s.MaterialReceived
	case StepInvoiceReceived:
		return s.InvoiceReceived
	case StepPaymentMade:
		return s.PaymentMade
	}
	return false
}

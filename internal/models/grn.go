package models

import "time"

// GRNWorkflowStatus maps to the grn_workflow_statuses table.
type GRNWorkflowStatus struct {
	GRNID string `db:"grn_id"`

	MaterialReceived   bool       `db:"material_received"`
	MaterialReceivedAt *time.Time `db:"material_received_at"` // nullable
	MaterialVoucherID  string     `db:"material_voucher_id"`  // nullable

	InvoiceReceived   bool       `db:"invoice_received"`
	InvoiceReceivedAt *time.Time `db:"invoice_received_at"` // nullable
	InvoiceVoucherID  string     `db:"invoice_voucher_id"`  // nullable

	PaymentMade      bool       `db:"payment_made"`
	PaymentMadeAt    *time.Time `db:"payment_made_at"`    // nullable
	PaymentVoucherID string     `db:"payment_voucher_id"` // nullable

	AuditFields
}

package services

import (
	"context"

	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	"github.com/karkhana/factory_ledger_app/internal/dto"
)

// GRNWorkflowSvcFacade drives the three-step GRN clearing workflow. Each step
// posts its own voucher and flips the corresponding workflow flag; steps are
// independently idempotent and there is no automatic compensation if a later
// step fails after an earlier one posted.
type GRNWorkflowSvcFacade interface {
	// RecordMaterialReceipt posts Dr Raw Material Inventory / Cr GRN Clearing.
	RecordMaterialReceipt(ctx context.Context, grnID string, req dto.GRNReceiptRequest, userID string) (*domain.GRNWorkflowStatus, error)

	// RecordVendorInvoice posts Dr GRN Clearing (+ GST input) / Cr supplier ledger.
	RecordVendorInvoice(ctx context.Context, grnID string, req dto.GRNInvoiceRequest, userID string) (*domain.GRNWorkflowStatus, error)

	// RecordPayment posts Dr supplier ledger / Cr Bank or Cash.
	RecordPayment(ctx context.Context, grnID string, req dto.GRNPaymentRequest, userID string) (*domain.GRNWorkflowStatus, error)

	// GetWorkflowStatus returns the clearing state for a GRN.
	GetWorkflowStatus(ctx context.Context, grnID string, userID string) (*domain.GRNWorkflowStatus, error)
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/karkhana/factory_ledger_app/internal/apperrors"
	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	portsrepo "github.com/karkhana/factory_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/karkhana/factory_ledger_app/internal/core/ports/services"
	"github.com/karkhana/factory_ledger_app/internal/dto"
)

// grnWorkflowService drives the three-step GRN clearing workflow. Each step
// posts its own voucher and then flips the workflow flag. Steps are guarded
// independently; a step that already ran returns ErrStepAlreadyRecorded and
// posts nothing. There is no automatic compensation across steps.
type grnWorkflowService struct {
	BaseService
	grnRepo    portsrepo.GRNWorkflowRepository
	chartSvc   portssvc.ChartSvcFacade
	voucherSvc portssvc.VoucherSvcFacade
}

// NewGRNWorkflowService creates a new GRN clearing workflow service.
func NewGRNWorkflowService(grnRepo portsrepo.GRNWorkflowRepository, chartSvc portssvc.ChartSvcFacade, voucherSvc portssvc.VoucherSvcFacade) portssvc.GRNWorkflowSvcFacade {
	return &grnWorkflowService{
		grnRepo:    grnRepo,
		chartSvc:   chartSvc,
		voucherSvc: voucherSvc,
	}
}

var _ portssvc.GRNWorkflowSvcFacade = (*grnWorkflowService)(nil)

// beginStep loads (or creates) the workflow row and rejects repeats.
func (s *grnWorkflowService) beginStep(ctx context.Context, grnID string, step domain.GRNStep, userID string) error {
	status, err := s.grnRepo.GetOrCreateWorkflowStatus(ctx, grnID, userID, time.Now())
	if err != nil {
		return err
	}
	if status.StepDone(step) {
		return fmt.Errorf("%w: GRN %s step %s", apperrors.ErrStepAlreadyRecorded, grnID, step)
	}
	return nil
}

// completeStep posts the voucher built for the step and records it on the
// workflow row.
func (s *grnWorkflowService) completeStep(ctx context.Context, grnID string, step domain.GRNStep, voucherID string, userID string) (*domain.GRNWorkflowStatus, error) {
	if _, err := s.voucherSvc.PostVoucher(ctx, voucherID, userID); err != nil {
		return nil, fmt.Errorf("GRN %s step %s: voucher created but posting failed: %w", grnID, step, err)
	}
	if err := s.grnRepo.MarkStepDone(ctx, grnID, step, voucherID, userID, time.Now()); err != nil {
		// A concurrent call won the step after our guard check. The voucher
		// this call posted stays on the books and needs manual reversal.
		s.LogError(ctx, err, "GRN step lost a concurrent race after posting",
			slog.String("grn_id", grnID), slog.String("step", string(step)), slog.String("voucher_id", voucherID))
		return nil, err
	}
	s.LogInfo(ctx, "GRN step recorded",
		slog.String("grn_id", grnID), slog.String("step", string(step)), slog.String("voucher_id", voucherID))
	return s.grnRepo.GetOrCreateWorkflowStatus(ctx, grnID, userID, time.Now())
}

// RecordMaterialReceipt books step one: materials arrived before the invoice.
// Dr Raw Material Inventory / Cr GRN Clearing.
func (s *grnWorkflowService) RecordMaterialReceipt(ctx context.Context, grnID string, req dto.GRNReceiptRequest, userID string) (*domain.GRNWorkflowStatus, error) {
	if err := s.beginStep(ctx, grnID, domain.StepMaterialReceived, userID); err != nil {
		return nil, err
	}

	ref := domain.GRNRef(grnID)
	voucher, err := s.voucherSvc.CreateVoucher(ctx, dto.CreateVoucherRequest{
		VoucherTypeCode: domain.VoucherTypeJournal,
		TransactionDate: req.ReceiptDate,
		Narration:       narrationOr(req.Narration, "Material received against GRN "+grnID),
		PartyType:       domain.PartySupplier,
		PartyID:         req.SupplierID,
		Entries: []dto.CreateEntryRequest{
			{AccountCode: AccountRawMaterial, EntryType: domain.DebitEntry, Amount: req.MaterialValue, ReferenceType: ref.Kind, ReferenceID: ref.ID},
			{AccountCode: AccountGRNClearing, EntryType: domain.CreditEntry, Amount: req.MaterialValue, ReferenceType: ref.Kind, ReferenceID: ref.ID},
		},
	}, userID)
	if err != nil {
		return nil, err
	}
	return s.completeStep(ctx, grnID, domain.StepMaterialReceived, voucher.VoucherID, userID)
}

// RecordVendorInvoice books step two: the vendor invoice arrived.
// Dr GRN Clearing (+ GST input credits) / Cr supplier ledger.
func (s *grnWorkflowService) RecordVendorInvoice(ctx context.Context, grnID string, req dto.GRNInvoiceRequest, userID string) (*domain.GRNWorkflowStatus, error) {
	if err := s.beginStep(ctx, grnID, domain.StepInvoiceReceived, userID); err != nil {
		return nil, err
	}

	supplierAccount, err := s.chartSvc.GetOrCreateSupplierAccount(ctx, req.SupplierID, userID)
	if err != nil {
		return nil, err
	}

	ref := domain.GRNRef(grnID)
	total := req.BasicAmount.Add(req.CGSTAmount).Add(req.SGSTAmount).Add(req.IGSTAmount)

	entries := []dto.CreateEntryRequest{{
		AccountCode:   AccountGRNClearing,
		EntryType:     domain.DebitEntry,
		Amount:        req.BasicAmount,
		ReferenceType: ref.Kind,
		ReferenceID:   ref.ID,
	}}
	entries = gstEntries(entries, domain.DebitEntry, AccountCGSTInput, AccountSGSTInput, AccountIGSTInput, req.CGSTAmount, req.SGSTAmount, req.IGSTAmount, ref)
	entries = append(entries, dto.CreateEntryRequest{
		AccountCode:   supplierAccount.Code,
		EntryType:     domain.CreditEntry,
		Amount:        total,
		ReferenceType: ref.Kind,
		ReferenceID:   ref.ID,
	})

	voucher, err := s.voucherSvc.CreateVoucher(ctx, dto.CreateVoucherRequest{
		VoucherTypeCode: domain.VoucherTypePurchase,
		TransactionDate: req.InvoiceDate,
		ReferenceNumber: req.InvoiceNumber,
		Narration:       narrationOr(req.Narration, "Vendor invoice "+req.InvoiceNumber+" for GRN "+grnID),
		PartyType:       domain.PartySupplier,
		PartyID:         req.SupplierID,
		TaxAmount:       req.CGSTAmount.Add(req.SGSTAmount).Add(req.IGSTAmount),
		IsGSTApplicable: req.CGSTAmount.IsPositive() || req.SGSTAmount.IsPositive() || req.IGSTAmount.IsPositive(),
		Entries:         entries,
	}, userID)
	if err != nil {
		return nil, err
	}
	return s.completeStep(ctx, grnID, domain.StepInvoiceReceived, voucher.VoucherID, userID)
}

// RecordPayment books step three: the supplier was paid.
// Dr supplier ledger / Cr Cash or Bank.
func (s *grnWorkflowService) RecordPayment(ctx context.Context, grnID string, req dto.GRNPaymentRequest, userID string) (*domain.GRNWorkflowStatus, error) {
	if err := s.beginStep(ctx, grnID, domain.StepPaymentMade, userID); err != nil {
		return nil, err
	}

	supplierAccount, err := s.chartSvc.GetOrCreateSupplierAccount(ctx, req.SupplierID, userID)
	if err != nil {
		return nil, err
	}

	ref := domain.GRNRef(grnID)
	voucher, err := s.voucherSvc.CreateVoucher(ctx, dto.CreateVoucherRequest{
		VoucherTypeCode: domain.VoucherTypePayment,
		TransactionDate: req.PaymentDate,
		ReferenceNumber: req.ReferenceNumber,
		Narration:       narrationOr(req.Narration, "Payment for GRN "+grnID),
		PartyType:       domain.PartySupplier,
		PartyID:         req.SupplierID,
		Entries: []dto.CreateEntryRequest{
			{AccountCode: supplierAccount.Code, EntryType: domain.DebitEntry, Amount: req.Amount, ReferenceType: ref.Kind, ReferenceID: ref.ID},
			{AccountCode: modeAccountCode(req.Mode), EntryType: domain.CreditEntry, Amount: req.Amount, ReferenceType: ref.Kind, ReferenceID: ref.ID},
		},
	}, userID)
	if err != nil {
		return nil, err
	}
	return s.completeStep(ctx, grnID, domain.StepPaymentMade, voucher.VoucherID, userID)
}

// GetWorkflowStatus returns the clearing state for a GRN, creating the
// all-pending row on first access.
func (s *grnWorkflowService) GetWorkflowStatus(ctx context.Context, grnID string, userID string) (*domain.GRNWorkflowStatus, error) {
	return s.grnRepo.GetOrCreateWorkflowStatus(ctx, grnID, userID, time.Now())
}

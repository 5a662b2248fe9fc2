package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/karkhana/factory_ledger_app/internal/apperrors"
	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	portssvc "github.com/karkhana/factory_ledger_app/internal/core/ports/services"
	"github.com/karkhana/factory_ledger_app/internal/core/services"
	"github.com/karkhana/factory_ledger_app/internal/dto"
)

type GRNWorkflowServiceTestSuite struct {
	suite.Suite
	mockGRNRepo    *MockGRNWorkflowRepository
	mockChartSvc   *MockChartService
	mockVoucherSvc *MockVoucherService
	service        portssvc.GRNWorkflowSvcFacade

	userID          string
	grnID           string
	supplierAccount domain.Account
}

func (suite *GRNWorkflowServiceTestSuite) SetupTest() {
	suite.mockGRNRepo = new(MockGRNWorkflowRepository)
	suite.mockChartSvc = new(MockChartService)
	suite.mockVoucherSvc = new(MockVoucherService)
	suite.service = services.NewGRNWorkflowService(suite.mockGRNRepo, suite.mockChartSvc, suite.mockVoucherSvc)

	suite.userID = uuid.NewString()
	suite.grnID = "GRN-2025-015"
	suite.supplierAccount = domain.Account{
		AccountID:   uuid.NewString(),
		Name:        "Acme Alloys",
		Code:        "SUP_acme",
		AccountType: domain.CurrentLiability,
		IsActive:    true,
	}
}

func (suite *GRNWorkflowServiceTestSuite) pendingStatus() *domain.GRNWorkflowStatus {
	return &domain.GRNWorkflowStatus{GRNID: suite.grnID}
}

func (suite *GRNWorkflowServiceTestSuite) TestRecordMaterialReceipt_PostsAndMarksStep() {
	ctx := context.Background()
	req := dto.GRNReceiptRequest{
		SupplierID:    "acme",
		MaterialValue: decimal.NewFromInt(5000),
		ReceiptDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	draft := &domain.Voucher{VoucherID: uuid.NewString(), Status: domain.VoucherDraft}
	done := &domain.GRNWorkflowStatus{GRNID: suite.grnID, MaterialReceived: true, MaterialVoucherID: draft.VoucherID}

	suite.mockGRNRepo.On("GetOrCreateWorkflowStatus", ctx, suite.grnID, suite.userID, mock.AnythingOfType("time.Time")).Return(suite.pendingStatus(), nil).Once()
	suite.mockVoucherSvc.On("CreateVoucher", ctx, mock.MatchedBy(func(vr dto.CreateVoucherRequest) bool {
		return vr.VoucherTypeCode == domain.VoucherTypeJournal &&
			hasEntry(vr.Entries, services.AccountRawMaterial, domain.DebitEntry, decimal.NewFromInt(5000)) &&
			hasEntry(vr.Entries, services.AccountGRNClearing, domain.CreditEntry, decimal.NewFromInt(5000)) &&
			vr.Entries[0].ReferenceType == domain.RefGRN &&
			vr.Entries[0].ReferenceID == suite.grnID
	}), suite.userID).Return(draft, nil).Once()
	suite.mockVoucherSvc.On("PostVoucher", ctx, draft.VoucherID, suite.userID).Return(draft, nil).Once()
	suite.mockGRNRepo.On("MarkStepDone", ctx, suite.grnID, domain.StepMaterialReceived, draft.VoucherID, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockGRNRepo.On("GetOrCreateWorkflowStatus", ctx, suite.grnID, suite.userID, mock.AnythingOfType("time.Time")).Return(done, nil).Once()

	status, err := suite.service.RecordMaterialReceipt(ctx, suite.grnID, req, suite.userID)
	suite.Require().NoError(err)
	suite.True(status.MaterialReceived)
	suite.Equal(draft.VoucherID, status.MaterialVoucherID)
	suite.mockGRNRepo.AssertExpectations(suite.T())
	suite.mockVoucherSvc.AssertExpectations(suite.T())
}

func (suite *GRNWorkflowServiceTestSuite) TestRecordMaterialReceipt_RepeatRejected() {
	ctx := context.Background()
	already := &domain.GRNWorkflowStatus{GRNID: suite.grnID, MaterialReceived: true}

	suite.mockGRNRepo.On("GetOrCreateWorkflowStatus", ctx, suite.grnID, suite.userID, mock.AnythingOfType("time.Time")).Return(already, nil).Once()

	_, err := suite.service.RecordMaterialReceipt(ctx, suite.grnID, dto.GRNReceiptRequest{
		SupplierID:    "acme",
		MaterialValue: decimal.NewFromInt(5000),
		ReceiptDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}, suite.userID)
	suite.ErrorIs(err, apperrors.ErrStepAlreadyRecorded)
	// No second voucher for the same step
	suite.mockVoucherSvc.AssertNotCalled(suite.T(), "CreateVoucher", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *GRNWorkflowServiceTestSuite) TestRecordVendorInvoice_ClearsGRNAgainstSupplier() {
	ctx := context.Background()
	req := dto.GRNInvoiceRequest{
		SupplierID:    "acme",
		InvoiceNumber: "INV-88",
		InvoiceDate:   time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
		BasicAmount:   decimal.NewFromInt(5000),
		CGSTAmount:    decimal.NewFromInt(450),
		SGSTAmount:    decimal.NewFromInt(450),
	}
	draft := &domain.Voucher{VoucherID: uuid.NewString(), Status: domain.VoucherDraft}
	done := &domain.GRNWorkflowStatus{GRNID: suite.grnID, MaterialReceived: true, InvoiceReceived: true}

	suite.mockGRNRepo.On("GetOrCreateWorkflowStatus", ctx, suite.grnID, suite.userID, mock.AnythingOfType("time.Time")).
		Return(&domain.GRNWorkflowStatus{GRNID: suite.grnID, MaterialReceived: true}, nil).Once()
	suite.mockChartSvc.On("GetOrCreateSupplierAccount", ctx, "acme", suite.userID).Return(&suite.supplierAccount, nil).Once()
	suite.mockVoucherSvc.On("CreateVoucher", ctx, mock.MatchedBy(func(vr dto.CreateVoucherRequest) bool {
		return vr.VoucherTypeCode == domain.VoucherTypePurchase &&
			vr.ReferenceNumber == "INV-88" &&
			hasEntry(vr.Entries, services.AccountGRNClearing, domain.DebitEntry, decimal.NewFromInt(5000)) &&
			hasEntry(vr.Entries, services.AccountCGSTInput, domain.DebitEntry, decimal.NewFromInt(450)) &&
			hasEntry(vr.Entries, services.AccountSGSTInput, domain.DebitEntry, decimal.NewFromInt(450)) &&
			hasEntry(vr.Entries, "SUP_acme", domain.CreditEntry, decimal.NewFromInt(5900)) &&
			entrySum(vr.Entries, domain.DebitEntry).Equal(entrySum(vr.Entries, domain.CreditEntry))
	}), suite.userID).Return(draft, nil).Once()
	suite.mockVoucherSvc.On("PostVoucher", ctx, draft.VoucherID, suite.userID).Return(draft, nil).Once()
	suite.mockGRNRepo.On("MarkStepDone", ctx, suite.grnID, domain.StepInvoiceReceived, draft.VoucherID, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockGRNRepo.On("GetOrCreateWorkflowStatus", ctx, suite.grnID, suite.userID, mock.AnythingOfType("time.Time")).Return(done, nil).Once()

	status, err := suite.service.RecordVendorInvoice(ctx, suite.grnID, req, suite.userID)
	suite.Require().NoError(err)
	suite.True(status.InvoiceReceived)
	suite.mockVoucherSvc.AssertExpectations(suite.T())
}

func (suite *GRNWorkflowServiceTestSuite) TestRecordPayment_PostingFailureSurfaces() {
	ctx := context.Background()
	req := dto.GRNPaymentRequest{
		SupplierID:  "acme",
		Amount:      decimal.NewFromInt(5900),
		PaymentDate: time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
		Mode:        "BANK",
	}
	draft := &domain.Voucher{VoucherID: uuid.NewString(), Status: domain.VoucherDraft}

	suite.mockGRNRepo.On("GetOrCreateWorkflowStatus", ctx, suite.grnID, suite.userID, mock.AnythingOfType("time.Time")).
		Return(&domain.GRNWorkflowStatus{GRNID: suite.grnID, MaterialReceived: true, InvoiceReceived: true}, nil).Once()
	suite.mockChartSvc.On("GetOrCreateSupplierAccount", ctx, "acme", suite.userID).Return(&suite.supplierAccount, nil).Once()
	suite.mockVoucherSvc.On("CreateVoucher", ctx, mock.Anything, suite.userID).Return(draft, nil).Once()
	suite.mockVoucherSvc.On("PostVoucher", ctx, draft.VoucherID, suite.userID).Return(nil, errors.New("account row locked")).Once()

	_, err := suite.service.RecordPayment(ctx, suite.grnID, req, suite.userID)
	suite.Error(err)
	suite.Contains(err.Error(), "posting failed")
	suite.mockGRNRepo.AssertNotCalled(suite.T(), "MarkStepDone", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *GRNWorkflowServiceTestSuite) TestRecordPayment_ConcurrentMarkFailure() {
	ctx := context.Background()
	req := dto.GRNPaymentRequest{
		SupplierID:  "acme",
		Amount:      decimal.NewFromInt(100),
		PaymentDate: time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC),
		Mode:        "CASH",
	}
	draft := &domain.Voucher{VoucherID: uuid.NewString(), Status: domain.VoucherDraft}

	suite.mockGRNRepo.On("GetOrCreateWorkflowStatus", ctx, suite.grnID, suite.userID, mock.AnythingOfType("time.Time")).
		Return(suite.pendingStatus(), nil).Once()
	suite.mockChartSvc.On("GetOrCreateSupplierAccount", ctx, "acme", suite.userID).Return(&suite.supplierAccount, nil).Once()
	suite.mockVoucherSvc.On("CreateVoucher", ctx, mock.Anything, suite.userID).Return(draft, nil).Once()
	suite.mockVoucherSvc.On("PostVoucher", ctx, draft.VoucherID, suite.userID).Return(draft, nil).Once()
	suite.mockGRNRepo.On("MarkStepDone", ctx, suite.grnID, domain.StepPaymentMade, draft.VoucherID, suite.userID, mock.AnythingOfType("time.Time")).
		Return(apperrors.ErrStepAlreadyRecorded).Once()

	_, err := suite.service.RecordPayment(ctx, suite.grnID, req, suite.userID)
	suite.ErrorIs(err, apperrors.ErrStepAlreadyRecorded)
}

func (suite *GRNWorkflowServiceTestSuite) TestGetWorkflowStatus() {
	ctx := context.Background()

	suite.mockGRNRepo.On("GetOrCreateWorkflowStatus", ctx, suite.grnID, suite.userID, mock.AnythingOfType("time.Time")).
		Return(suite.pendingStatus(), nil).Once()

	status, err := suite.service.GetWorkflowStatus(ctx, suite.grnID, suite.userID)
	suite.Require().NoError(err)
	suite.False(status.MaterialReceived)
	suite.False(status.InvoiceReceived)
	suite.False(status.PaymentMade)
}

func TestGRNWorkflowService(t *testing.T) {
	suite.Run(t, new(GRNWorkflowServiceTestSuite))
}

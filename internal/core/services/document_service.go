package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/karkhana/factory_ledger_app/internal/apperrors"
	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	portssvc "github.com/karkhana/factory_ledger_app/internal/core/ports/services"
	"github.com/karkhana/factory_ledger_app/internal/dto"
)

// documentService assembles the correct debit/credit pairs for each business
// document and delegates voucher creation to the voucher service. When
// AutoPostVouchers is enabled the created voucher is posted immediately.
type documentService struct {
	BaseService
	chartSvc    portssvc.ChartSvcFacade
	voucherSvc  portssvc.VoucherSvcFacade
	settingsSvc portssvc.SettingsSvcFacade
}

// NewDocumentService creates a new document voucher builder service.
func NewDocumentService(chartSvc portssvc.ChartSvcFacade, voucherSvc portssvc.VoucherSvcFacade, settingsSvc portssvc.SettingsSvcFacade) portssvc.DocumentVoucherSvcFacade {
	return &documentService{
		chartSvc:    chartSvc,
		voucherSvc:  voucherSvc,
		settingsSvc: settingsSvc,
	}
}

var _ portssvc.DocumentVoucherSvcFacade = (*documentService)(nil)

// modeAccountCode maps a payment mode to its chart code.
func modeAccountCode(mode string) string {
	if mode == "CASH" {
		return AccountCash
	}
	return AccountBank
}

// gstEntries appends one entry per nonzero GST component.
func gstEntries(entries []dto.CreateEntryRequest, entryType domain.EntryType, cgstCode, sgstCode, igstCode string, cgst, sgst, igst decimal.Decimal, ref domain.DocumentRef) []dto.CreateEntryRequest {
	for _, part := range []struct {
		code   string
		amount decimal.Decimal
	}{
		{cgstCode, cgst},
		{sgstCode, sgst},
		{igstCode, igst},
	} {
		if part.amount.IsPositive() {
			entries = append(entries, dto.CreateEntryRequest{
				AccountCode:   part.code,
				EntryType:     entryType,
				Amount:        part.amount,
				ReferenceType: ref.Kind,
				ReferenceID:   ref.ID,
			})
		}
	}
	return entries
}

// createAndMaybePost creates the draft voucher and posts it when the company
// settings ask for auto-posting.
func (s *documentService) createAndMaybePost(ctx context.Context, req dto.CreateVoucherRequest, userID string) (*domain.Voucher, error) {
	voucher, err := s.voucherSvc.CreateVoucher(ctx, req, userID)
	if err != nil {
		return nil, err
	}

	settings, err := s.settingsSvc.GetSettings(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to load settings, leaving voucher in draft", slog.String("voucher_id", voucher.VoucherID))
		return voucher, nil
	}
	if !settings.AutoPostVouchers {
		return voucher, nil
	}

	posted, err := s.voucherSvc.PostVoucher(ctx, voucher.VoucherID, userID)
	if err != nil {
		return nil, fmt.Errorf("voucher %s created but auto-post failed: %w", voucher.VoucherNumber, err)
	}
	return posted, nil
}

// CreatePurchaseVoucher books a vendor bill:
// Dr Purchases (+ GST input credits) / Cr supplier ledger.
func (s *documentService) CreatePurchaseVoucher(ctx context.Context, req dto.PurchaseBillRequest, userID string) (*domain.Voucher, error) {
	supplierAccount, err := s.chartSvc.GetOrCreateSupplierAccount(ctx, req.SupplierID, userID)
	if err != nil {
		return nil, err
	}

	ref := domain.DocumentRef{Kind: domain.RefManual}
	if req.PurchaseOrderID != "" {
		ref = domain.PurchaseOrderRef(req.PurchaseOrderID)
	}
	total := req.BasicAmount.Add(req.CGSTAmount).Add(req.SGSTAmount).Add(req.IGSTAmount)

	entries := []dto.CreateEntryRequest{{
		AccountCode:   AccountPurchase,
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

	return s.createAndMaybePost(ctx, dto.CreateVoucherRequest{
		VoucherTypeCode: domain.VoucherTypePurchase,
		TransactionDate: req.BillDate,
		ReferenceNumber: req.BillNumber,
		Narration:       narrationOr(req.Narration, "Purchase bill "+req.BillNumber),
		PartyType:       domain.PartySupplier,
		PartyID:         req.SupplierID,
		TaxAmount:       req.CGSTAmount.Add(req.SGSTAmount).Add(req.IGSTAmount),
		IsGSTApplicable: req.CGSTAmount.IsPositive() || req.SGSTAmount.IsPositive() || req.IGSTAmount.IsPositive(),
		Entries:         entries,
	}, userID)
}

// CreateSalesVoucher books a customer invoice:
// Dr customer ledger / Cr Sales (+ GST payable).
func (s *documentService) CreateSalesVoucher(ctx context.Context, req dto.SalesInvoiceRequest, userID string) (*domain.Voucher, error) {
	customerAccount, err := s.chartSvc.GetOrCreateCustomerAccount(ctx, req.CustomerID, userID)
	if err != nil {
		return nil, err
	}

	ref := domain.DocumentRef{Kind: domain.RefManual}
	if req.SalesOrderID != "" {
		ref = domain.SalesOrderRef(req.SalesOrderID)
	}
	total := req.BasicAmount.Add(req.CGSTAmount).Add(req.SGSTAmount).Add(req.IGSTAmount)

	entries := []dto.CreateEntryRequest{
		{
			AccountCode:   customerAccount.Code,
			EntryType:     domain.DebitEntry,
			Amount:        total,
			ReferenceType: ref.Kind,
			ReferenceID:   ref.ID,
		},
		{
			AccountCode:   AccountSales,
			EntryType:     domain.CreditEntry,
			Amount:        req.BasicAmount,
			ReferenceType: ref.Kind,
			ReferenceID:   ref.ID,
		},
	}
	entries = gstEntries(entries, domain.CreditEntry, AccountCGSTPayable, AccountSGSTPayable, AccountIGSTPayable, req.CGSTAmount, req.SGSTAmount, req.IGSTAmount, ref)

	return s.createAndMaybePost(ctx, dto.CreateVoucherRequest{
		VoucherTypeCode: domain.VoucherTypeSales,
		TransactionDate: req.InvoiceDate,
		Narration:       narrationOr(req.Narration, "Sales invoice"),
		PartyType:       domain.PartyCustomer,
		PartyID:         req.CustomerID,
		TaxAmount:       req.CGSTAmount.Add(req.SGSTAmount).Add(req.IGSTAmount),
		IsGSTApplicable: req.CGSTAmount.IsPositive() || req.SGSTAmount.IsPositive() || req.IGSTAmount.IsPositive(),
		Entries:         entries,
	}, userID)
}

// CreatePaymentVoucher books money paid to a supplier:
// Dr supplier ledger / Cr Cash or Bank. An advance simply drives the supplier
// ledger into a debit balance.
func (s *documentService) CreatePaymentVoucher(ctx context.Context, req dto.PaymentMadeRequest, userID string) (*domain.Voucher, error) {
	supplierAccount, err := s.chartSvc.GetOrCreateSupplierAccount(ctx, req.SupplierID, userID)
	if err != nil {
		return nil, err
	}

	narration := "Payment to " + supplierAccount.Name
	if req.IsAdvance {
		narration = "Advance payment to " + supplierAccount.Name
	}

	return s.createAndMaybePost(ctx, dto.CreateVoucherRequest{
		VoucherTypeCode: domain.VoucherTypePayment,
		TransactionDate: req.PaymentDate,
		ReferenceNumber: req.ReferenceNumber,
		Narration:       narrationOr(req.Narration, narration),
		PartyType:       domain.PartySupplier,
		PartyID:         req.SupplierID,
		Entries: []dto.CreateEntryRequest{
			{AccountCode: supplierAccount.Code, EntryType: domain.DebitEntry, Amount: req.Amount},
			{AccountCode: modeAccountCode(req.Mode), EntryType: domain.CreditEntry, Amount: req.Amount},
		},
	}, userID)
}

// CreateReceiptVoucher books money received from a customer:
// Dr Cash or Bank / Cr customer ledger.
func (s *documentService) CreateReceiptVoucher(ctx context.Context, req dto.PaymentReceivedRequest, userID string) (*domain.Voucher, error) {
	customerAccount, err := s.chartSvc.GetOrCreateCustomerAccount(ctx, req.CustomerID, userID)
	if err != nil {
		return nil, err
	}

	narration := "Receipt from " + customerAccount.Name
	if req.IsAdvance {
		narration = "Advance received from " + customerAccount.Name
	}

	return s.createAndMaybePost(ctx, dto.CreateVoucherRequest{
		VoucherTypeCode: domain.VoucherTypeReceipt,
		TransactionDate: req.ReceiptDate,
		ReferenceNumber: req.ReferenceNumber,
		Narration:       narrationOr(req.Narration, narration),
		PartyType:       domain.PartyCustomer,
		PartyID:         req.CustomerID,
		Entries: []dto.CreateEntryRequest{
			{AccountCode: modeAccountCode(req.Mode), EntryType: domain.DebitEntry, Amount: req.Amount},
			{AccountCode: customerAccount.Code, EntryType: domain.CreditEntry, Amount: req.Amount},
		},
	}, userID)
}

// CreateExpenseVoucher books a factory expense paid out in cash or from bank.
func (s *documentService) CreateExpenseVoucher(ctx context.Context, req dto.ExpenseRequest, userID string) (*domain.Voucher, error) {
	expenseAccount, err := s.chartSvc.GetAccountByCode(ctx, req.ExpenseAccountCode)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, req.ExpenseAccountCode)
	}
	if expenseAccount.AccountType != domain.Expense && expenseAccount.AccountType != domain.CostOfGoodsSold {
		return nil, apperrors.NewValidationError(fmt.Sprintf("account %s is not an expense account", req.ExpenseAccountCode))
	}

	var ref domain.DocumentRef
	if req.ExpenseID != "" {
		ref = domain.ExpenseRef(req.ExpenseID)
	}

	return s.createAndMaybePost(ctx, dto.CreateVoucherRequest{
		VoucherTypeCode: domain.VoucherTypePayment,
		TransactionDate: req.ExpenseDate,
		Narration:       narrationOr(req.Narration, "Expense: "+expenseAccount.Name),
		Entries: []dto.CreateEntryRequest{
			{AccountCode: expenseAccount.Code, EntryType: domain.DebitEntry, Amount: req.Amount, ReferenceType: ref.Kind, ReferenceID: ref.ID},
			{AccountCode: modeAccountCode(req.Mode), EntryType: domain.CreditEntry, Amount: req.Amount, ReferenceType: ref.Kind, ReferenceID: ref.ID},
		},
	}, userID)
}

// CreateSalaryVoucher books a salary or wage payment. Wages hit the direct
// wages ledger, salaries the indirect one.
func (s *documentService) CreateSalaryVoucher(ctx context.Context, req dto.SalaryRequest, userID string) (*domain.Voucher, error) {
	expenseCode := AccountSalary
	if req.IsWages {
		expenseCode = AccountWages
	}

	var ref domain.DocumentRef
	if req.SalaryRecordID != "" {
		ref = domain.SalaryRef(req.SalaryRecordID)
	}

	return s.createAndMaybePost(ctx, dto.CreateVoucherRequest{
		VoucherTypeCode: domain.VoucherTypePayment,
		TransactionDate: req.PaymentDate,
		Narration:       "Salary payment: " + req.EmployeeName,
		Entries: []dto.CreateEntryRequest{
			{AccountCode: expenseCode, EntryType: domain.DebitEntry, Amount: req.Amount, ReferenceType: ref.Kind, ReferenceID: ref.ID},
			{AccountCode: modeAccountCode(req.Mode), EntryType: domain.CreditEntry, Amount: req.Amount, ReferenceType: ref.Kind, ReferenceID: ref.ID},
		},
	}, userID)
}

// CreateProductionCostVoucher allocates material, labor and overhead into
// work-in-progress: Dr WIP / Cr Raw Material, Wages, Overheads.
func (s *documentService) CreateProductionCostVoucher(ctx context.Context, req dto.ProductionCostRequest, userID string) (*domain.Voucher, error) {
	total := req.MaterialCost.Add(req.LaborCost).Add(req.OverheadCost)
	if !total.IsPositive() {
		return nil, apperrors.NewValidationError("production cost must be positive")
	}

	ref := domain.ProductionRef(req.ProductionID)
	entries := []dto.CreateEntryRequest{{
		AccountCode:   AccountWorkInProcess,
		EntryType:     domain.DebitEntry,
		Amount:        total,
		ReferenceType: ref.Kind,
		ReferenceID:   ref.ID,
	}}
	for _, part := range []struct {
		code   string
		amount decimal.Decimal
	}{
		{AccountRawMaterial, req.MaterialCost},
		{AccountWages, req.LaborCost},
		{AccountOverhead, req.OverheadCost},
	} {
		if part.amount.IsPositive() {
			entries = append(entries, dto.CreateEntryRequest{
				AccountCode:   part.code,
				EntryType:     domain.CreditEntry,
				Amount:        part.amount,
				ReferenceType: ref.Kind,
				ReferenceID:   ref.ID,
			})
		}
	}

	return s.createAndMaybePost(ctx, dto.CreateVoucherRequest{
		VoucherTypeCode: domain.VoucherTypeJournal,
		TransactionDate: req.ProductionDate,
		Narration:       narrationOr(req.Narration, "Production cost allocation"),
		Entries:         entries,
	}, userID)
}

// CreateProductionCompletionVoucher moves finished cost out of WIP:
// Dr Finished Goods / Cr WIP.
func (s *documentService) CreateProductionCompletionVoucher(ctx context.Context, req dto.ProductionCompletionRequest, userID string) (*domain.Voucher, error) {
	ref := domain.ProductionRef(req.ProductionID)
	return s.createAndMaybePost(ctx, dto.CreateVoucherRequest{
		VoucherTypeCode: domain.VoucherTypeJournal,
		TransactionDate: req.CompletionDate,
		Narration:       narrationOr(req.Narration, "Production completed"),
		Entries: []dto.CreateEntryRequest{
			{AccountCode: AccountFinishedGoods, EntryType: domain.DebitEntry, Amount: req.FinishedCost, ReferenceType: ref.Kind, ReferenceID: ref.ID},
			{AccountCode: AccountWorkInProcess, EntryType: domain.CreditEntry, Amount: req.FinishedCost, ReferenceType: ref.Kind, ReferenceID: ref.ID},
		},
	}, userID)
}

// CreateDispatchCOGSVoucher books cost of goods sold on dispatch:
// Dr COGS / Cr Finished Goods.
func (s *documentService) CreateDispatchCOGSVoucher(ctx context.Context, req dto.DispatchCOGSRequest, userID string) (*domain.Voucher, error) {
	ref := domain.SalesOrderRef(req.SalesOrderID)
	return s.createAndMaybePost(ctx, dto.CreateVoucherRequest{
		VoucherTypeCode: domain.VoucherTypeJournal,
		TransactionDate: req.DispatchDate,
		Narration:       narrationOr(req.Narration, "Cost of goods dispatched"),
		Entries: []dto.CreateEntryRequest{
			{AccountCode: AccountCOGS, EntryType: domain.DebitEntry, Amount: req.CostAmount, ReferenceType: ref.Kind, ReferenceID: ref.ID},
			{AccountCode: AccountFinishedGoods, EntryType: domain.CreditEntry, Amount: req.CostAmount, ReferenceType: ref.Kind, ReferenceID: ref.ID},
		},
	}, userID)
}

func narrationOr(provided, fallback string) string {
	if provided != "" {
		return provided
	}
	return fallback
}

package services

import (
	"context"

	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	"github.com/karkhana/factory_ledger_app/internal/dto"
)

// DocumentVoucherSvcFacade assembles the correct debit/credit pairs for each
// business document. Every builder resolves its accounts by well-known chart
// code, auto-creates the party ledger on first use, and constructs entries
// balanced by construction.
type DocumentVoucherSvcFacade interface {
	CreatePurchaseVoucher(ctx context.Context, req dto.PurchaseBillRequest, userID string) (*domain.Voucher, error)
	CreateSalesVoucher(ctx context.Context, req dto.SalesInvoiceRequest, userID string) (*domain.Voucher, error)
	CreatePaymentVoucher(ctx context.Context, req dto.PaymentMadeRequest, userID string) (*domain.Voucher, error)
	CreateReceiptVoucher(ctx context.Context, req dto.PaymentReceivedRequest, userID string) (*domain.Voucher, error)
	CreateExpenseVoucher(ctx context.Context, req dto.ExpenseRequest, userID string) (*domain.Voucher, error)
	CreateSalaryVoucher(ctx context.Context, req dto.SalaryRequest, userID string) (*domain.Voucher, error)
	CreateProductionCostVoucher(ctx context.Context, req dto.ProductionCostRequest, userID string) (*domain.Voucher, error)
	CreateProductionCompletionVoucher(ctx context.Context, req dto.ProductionCompletionRequest, userID string) (*domain.Voucher, error)
	CreateDispatchCOGSVoucher(ctx context.Context, req dto.DispatchCOGSRequest, userID string) (*domain.Voucher, error)
}

package services

import (
	"context"
	"time"

	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	portsrepo "github.com/karkhana/factory_ledger_app/internal/core/ports/repositories"
	"github.com/karkhana/factory_ledger_app/internal/dto"
)

// VoucherNumberingSvc allocates voucher numbers.
type VoucherNumberingSvc interface {
	// NextVoucherNumber returns the next number in the {CODE}-{YYYY}-{0001..}
	// series for the voucher type, using the calendar year of onDate.
	NextVoucherNumber(ctx context.Context, typeCode string, onDate time.Time) (string, error)
}

// VoucherSvcFacade defines voucher lifecycle operations.
type VoucherSvcFacade interface {
	// CreateVoucher validates a balanced entry set, allocates a number and
	// persists the draft voucher with its entries.
	CreateVoucher(ctx context.Context, req dto.CreateVoucherRequest, creatorUserID string) (*domain.Voucher, error)

	GetVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error)
	GetVoucherByNumber(ctx context.Context, voucherNumber string) (*domain.Voucher, error)
	ListVouchers(ctx context.Context, filter portsrepo.VoucherListFilter) ([]domain.Voucher, error)

	// ListVouchersByRef finds every voucher booked against a source document,
	// e.g. all three clearing vouchers of one GRN.
	ListVouchersByRef(ctx context.Context, ref domain.DocumentRef) ([]domain.Voucher, error)

	ListVoucherTypes(ctx context.Context) ([]domain.VoucherType, error)

	// PostVoucher applies the voucher's entries to account running balances
	// in one transaction and freezes the voucher.
	PostVoucher(ctx context.Context, voucherID string, userID string) (*domain.Voucher, error)

	// CancelVoucher marks a draft voucher cancelled.
	CancelVoucher(ctx context.Context, voucherID string, userID string) error
}

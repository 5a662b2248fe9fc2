package repositories

import (
	"context"
	"time"

	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// VoucherListFilter narrows ListVouchers results.
type VoucherListFilter struct {
	VoucherTypeID string
	Status        domain.VoucherStatus
	FromDate      *time.Time
	ToDate        *time.Time
	PartyType     domain.PartyType
	PartyID       string
	Limit         int
	Offset        int

	// PageToken resumes a previous listing after the voucher it encodes.
	// When set, Offset is ignored.
	PageToken string
}

// VoucherTypeRepository defines operations on voucher type rows.
type VoucherTypeRepository interface {
	// SaveVoucherType persists a new voucher type.
	SaveVoucherType(ctx context.Context, vt domain.VoucherType) error

	// FindVoucherTypeByID retrieves a voucher type by ID.
	FindVoucherTypeByID(ctx context.Context, voucherTypeID string) (*domain.VoucherType, error)

	// FindVoucherTypeByCode retrieves a voucher type by its unique code.
	FindVoucherTypeByCode(ctx context.Context, code string) (*domain.VoucherType, error)

	// ListVoucherTypes retrieves all voucher types.
	ListVoucherTypes(ctx context.Context) ([]domain.VoucherType, error)
}

// VoucherReader defines read operations for vouchers and their entries.
type VoucherReader interface {
	// FindVoucherByID retrieves a voucher header with its entries attached.
	FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error)

	// FindVoucherByNumber retrieves a voucher by its unique number.
	FindVoucherByNumber(ctx context.Context, voucherNumber string) (*domain.Voucher, error)

	// ListVouchers retrieves voucher headers matching the filter, newest first.
	ListVouchers(ctx context.Context, filter VoucherListFilter) ([]domain.Voucher, error)

	// ListVouchersByRef retrieves vouchers whose entries reference the given document.
	ListVouchersByRef(ctx context.Context, ref domain.DocumentRef) ([]domain.Voucher, error)

	// SumEntriesByAccount aggregates posted debit and credit totals for one
	// account, optionally up to a cut-off date.
	SumEntriesByAccount(ctx context.Context, accountID string, asOf *time.Time) (debits, credits decimal.Decimal, err error)
}

// VoucherWriter defines write operations for vouchers.
type VoucherWriter interface {
	// SaveVoucher persists a draft voucher header and its entries atomically.
	SaveVoucher(ctx context.Context, voucher domain.Voucher, entries []domain.JournalEntry) error

	// PostVoucher atomically applies balance deltas to the referenced
	// accounts and flips the voucher to POSTED. The voucher row and every
	// touched account row are locked for the duration. Returns
	// apperrors.ErrAlreadyPosted if the voucher is already posted and
	// apperrors.ErrVoucherCancelled if it was cancelled.
	PostVoucher(ctx context.Context, voucherID string, postedBy string, now time.Time, balanceChanges map[string]decimal.Decimal) error

	// CancelVoucher marks a draft voucher cancelled. Returns
	// apperrors.ErrVoucherNotDraft when the voucher is not a draft.
	CancelVoucher(ctx context.Context, voucherID string, userID string, now time.Time) error
}

// VoucherRepository combines all voucher-related repository interfaces.
type VoucherRepository interface {
	VoucherTypeRepository
	VoucherReader
	VoucherWriter
}

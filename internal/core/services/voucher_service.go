package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/karkhana/factory_ledger_app/internal/apperrors"
	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	portsrepo "github.com/karkhana/factory_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/karkhana/factory_ledger_app/internal/core/ports/services"
	"github.com/karkhana/factory_ledger_app/internal/dto"
	"github.com/karkhana/factory_ledger_app/internal/utils/accounting"
)

// voucherService implements the voucher lifecycle: draft creation, posting
// and cancellation.
type voucherService struct {
	BaseService
	voucherRepo  portsrepo.VoucherRepository
	accountRepo  portsrepo.AccountRepository
	numberingSvc portssvc.VoucherNumberingSvc
}

// NewVoucherService creates a new voucher service.
func NewVoucherService(voucherRepo portsrepo.VoucherRepository, accountRepo portsrepo.AccountRepository, numberingSvc portssvc.VoucherNumberingSvc) portssvc.VoucherSvcFacade {
	return &voucherService{
		voucherRepo:  voucherRepo,
		accountRepo:  accountRepo,
		numberingSvc: numberingSvc,
	}
}

var _ portssvc.VoucherSvcFacade = (*voucherService)(nil)

// CreateVoucher validates a balanced entry set, allocates a voucher number
// and persists the draft. Account balances are not touched until posting.
func (s *voucherService) CreateVoucher(ctx context.Context, req dto.CreateVoucherRequest, creatorUserID string) (*domain.Voucher, error) {
	voucherType, err := s.voucherRepo.FindVoucherTypeByCode(ctx, req.VoucherTypeCode)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown voucher type %q", req.VoucherTypeCode))
	}
	if !voucherType.IsActive {
		return nil, apperrors.NewValidationError(fmt.Sprintf("voucher type %q is inactive", req.VoucherTypeCode))
	}

	now := time.Now()
	voucherID := uuid.NewString()

	entries := make([]domain.JournalEntry, 0, len(req.Entries))
	for _, line := range req.Entries {
		account, err := s.accountRepo.FindAccountByCode(ctx, line.AccountCode)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, line.AccountCode)
		}
		if !account.IsActive {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrAccountInactive, line.AccountCode)
		}
		entries = append(entries, domain.JournalEntry{
			EntryID:         uuid.NewString(),
			VoucherID:       voucherID,
			AccountID:       account.AccountID,
			EntryType:       line.EntryType,
			Amount:          line.Amount,
			Narration:       line.Narration,
			TransactionDate: req.TransactionDate,
			Ref:             domain.DocumentRef{Kind: line.ReferenceType, ID: line.ReferenceID},
			CreatedAt:       now,
			CreatedBy:       creatorUserID,
		})
	}

	if err := accounting.ValidateVoucherBalance(entries); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnbalancedVoucher, err)
	}

	number, err := s.numberingSvc.NextVoucherNumber(ctx, voucherType.Code, req.TransactionDate)
	if err != nil {
		s.LogError(ctx, err, "failed to allocate voucher number", slog.String("type_code", voucherType.Code))
		return nil, err
	}

	voucher := domain.Voucher{
		VoucherID:       voucherID,
		VoucherNumber:   number,
		VoucherTypeID:   voucherType.VoucherTypeID,
		TransactionDate: req.TransactionDate,
		ReferenceNumber: req.ReferenceNumber,
		Narration:       req.Narration,
		PartyType:       req.PartyType,
		PartyID:         req.PartyID,
		TaxAmount:       req.TaxAmount,
		DiscountAmount:  req.DiscountAmount,
		Status:          domain.VoucherDraft,
		IsGSTApplicable: req.IsGSTApplicable,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
		Entries: entries,
	}
	voucher.TotalAmount = voucher.DebitTotal()

	if err := s.voucherRepo.SaveVoucher(ctx, voucher, entries); err != nil {
		s.LogError(ctx, err, "failed to save voucher", slog.String("voucher_number", number))
		return nil, err
	}

	s.LogInfo(ctx, "voucher created",
		slog.String("voucher_id", voucherID),
		slog.String("voucher_number", number),
		slog.String("total", voucher.TotalAmount.String()))
	return &voucher, nil
}

func (s *voucherService) GetVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	return s.voucherRepo.FindVoucherByID(ctx, voucherID)
}

func (s *voucherService) GetVoucherByNumber(ctx context.Context, voucherNumber string) (*domain.Voucher, error) {
	return s.voucherRepo.FindVoucherByNumber(ctx, voucherNumber)
}

func (s *voucherService) ListVouchersByRef(ctx context.Context, ref domain.DocumentRef) ([]domain.Voucher, error) {
	return s.voucherRepo.ListVouchersByRef(ctx, ref)
}

func (s *voucherService) ListVouchers(ctx context.Context, filter portsrepo.VoucherListFilter) ([]domain.Voucher, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	return s.voucherRepo.ListVouchers(ctx, filter)
}

func (s *voucherService) ListVoucherTypes(ctx context.Context) ([]domain.VoucherType, error) {
	return s.voucherRepo.ListVoucherTypes(ctx)
}

// PostVoucher computes the signed balance delta each entry contributes to its
// account and applies all deltas atomically while freezing the voucher.
// Posting a voucher twice fails with ErrAlreadyPosted; balances are never
// applied more than once.
func (s *voucherService) PostVoucher(ctx context.Context, voucherID string, userID string) (*domain.Voucher, error) {
	voucher, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		return nil, err
	}
	switch voucher.Status {
	case domain.VoucherPosted:
		return nil, apperrors.ErrAlreadyPosted
	case domain.VoucherCancelled:
		return nil, apperrors.ErrVoucherCancelled
	}

	accountIDs := make([]string, 0, len(voucher.Entries))
	seen := make(map[string]bool, len(voucher.Entries))
	for _, e := range voucher.Entries {
		if !seen[e.AccountID] {
			seen[e.AccountID] = true
			accountIDs = append(accountIDs, e.AccountID)
		}
	}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return nil, err
	}

	balanceChanges := make(map[string]decimal.Decimal, len(accounts))
	for _, entry := range voucher.Entries {
		account, ok := accounts[entry.AccountID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, entry.AccountID)
		}
		delta := accounting.SignedAmount(entry, account.BalanceType())
		balanceChanges[entry.AccountID] = balanceChanges[entry.AccountID].Add(delta)
	}

	if err := s.voucherRepo.PostVoucher(ctx, voucherID, userID, time.Now(), balanceChanges); err != nil {
		s.LogError(ctx, err, "failed to post voucher", slog.String("voucher_id", voucherID))
		return nil, err
	}

	s.LogInfo(ctx, "voucher posted",
		slog.String("voucher_id", voucherID),
		slog.String("voucher_number", voucher.VoucherNumber),
		slog.Int("accounts_touched", len(balanceChanges)))
	return s.voucherRepo.FindVoucherByID(ctx, voucherID)
}

// CancelVoucher marks a draft voucher cancelled. Posted vouchers cannot be
// cancelled; reversal requires a compensating voucher.
func (s *voucherService) CancelVoucher(ctx context.Context, voucherID string, userID string) error {
	if err := s.voucherRepo.CancelVoucher(ctx, voucherID, userID, time.Now()); err != nil {
		return err
	}
	s.LogInfo(ctx, "voucher cancelled", slog.String("voucher_id", voucherID))
	return nil
}

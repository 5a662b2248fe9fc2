package services

import (
	"context"
	"errors"
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

// Well-known chart codes the document builders depend on.
const (
	GroupCurrentAssets      = "CA"
	GroupFixedAssets        = "FA"
	GroupCurrentLiabilities = "CL"
	GroupLongTermLiabs      = "LTL"
	GroupCapitalReserves    = "CR"
	GroupSalesIncome        = "SI"
	GroupDirectExpenses     = "DE"
	GroupIndirectExpenses   = "IE"
	GroupInventory          = "INV"
	GroupSundryDebtors      = "SD"
	GroupCashBank           = "CB"
	GroupSundryCreditors    = "SC"
	GroupDutiesTaxes        = "DT"

	AccountRawMaterial   = "RM_INV"
	AccountWorkInProcess = "WIP_INV"
	AccountFinishedGoods = "FG_INV"
	AccountCash          = "CASH"
	AccountBank          = "BANK"
	AccountCGSTPayable   = "CGST_PAY"
	AccountSGSTPayable   = "SGST_PAY"
	AccountIGSTPayable   = "IGST_PAY"
	AccountCGSTInput     = "CGST_INP"
	AccountSGSTInput     = "SGST_INP"
	AccountIGSTInput     = "IGST_INP"
	AccountGRNClearing   = "GRN_CLEARING"
	AccountSales         = "SALES"
	AccountCOGS          = "COGS"
	AccountPurchase      = "PURCHASE"
	AccountWages         = "WAGES"
	AccountSalary        = "SALARY"
	AccountOverhead      = "OVERHEAD"
	AccountTransport     = "TRANSPORT"
	AccountCapital       = "CAPITAL"
)

// chartService implements the chart-of-accounts operations.
type chartService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
	voucherRepo portsrepo.VoucherRepository
	partyRepo   portsrepo.PartyRepository
}

// NewChartService creates a new chart-of-accounts service.
func NewChartService(accountRepo portsrepo.AccountRepository, voucherRepo portsrepo.VoucherRepository, partyRepo portsrepo.PartyRepository) portssvc.ChartSvcFacade {
	return &chartService{
		accountRepo: accountRepo,
		voucherRepo: voucherRepo,
		partyRepo:   partyRepo,
	}
}

var _ portssvc.ChartSvcFacade = (*chartService)(nil)

func (s *chartService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

func (s *chartService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByCode(ctx, code)
}

func (s *chartService) ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.accountRepo.ListAccounts(ctx, limit, offset)
}

func (s *chartService) ListAccountsByGroup(ctx context.Context, groupID string) ([]domain.Account, error) {
	if _, err := s.accountRepo.FindGroupByID(ctx, groupID); err != nil {
		return nil, err
	}
	return s.accountRepo.ListAccountsByGroupID(ctx, groupID)
}

func (s *chartService) ListAccountGroups(ctx context.Context) ([]domain.AccountGroup, error) {
	return s.accountRepo.ListGroups(ctx)
}

// CalculateBalance recomputes the balance from posted entries, which is the
// reconciliation counterpart of the cached current balance.
func (s *chartService) CalculateBalance(ctx context.Context, accountID string, asOf *time.Time) (decimal.Decimal, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	debits, credits, err := s.voucherRepo.SumEntriesByAccount(ctx, accountID, asOf)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to aggregate entries for account %s: %w", accountID, err)
	}
	return accounting.CombineBalance(account.OpeningBalance, debits, credits, account.BalanceType()), nil
}

func (s *chartService) CreateAccountGroup(ctx context.Context, req dto.CreateAccountGroupRequest, creatorUserID string) (*domain.AccountGroup, error) {
	if req.ParentGroupID != "" {
		parent, err := s.accountRepo.FindGroupByID(ctx, req.ParentGroupID)
		if err != nil {
			return nil, fmt.Errorf("parent group %s: %w", req.ParentGroupID, err)
		}
		if parent.GroupType != req.GroupType {
			return nil, apperrors.NewValidationError("child group must share its parent's classification")
		}
	}

	now := time.Now()
	group := domain.AccountGroup{
		GroupID:       uuid.NewString(),
		Name:          req.Name,
		Code:          req.Code,
		GroupType:     req.GroupType,
		ParentGroupID: req.ParentGroupID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.accountRepo.SaveAccountGroup(ctx, group); err != nil {
		s.LogError(ctx, err, "failed to create account group", slog.String("code", req.Code))
		return nil, err
	}
	return &group, nil
}

func (s *chartService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	group, err := s.accountRepo.FindGroupByCode(ctx, req.GroupCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("account group %s does not exist", req.GroupCode))
		}
		return nil, err
	}
	if req.AccountType.GroupType() != group.GroupType {
		return nil, apperrors.NewValidationError(fmt.Sprintf("account type %s does not belong under a %s group", req.AccountType, group.GroupType))
	}

	now := time.Now()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		Name:            req.Name,
		Code:            req.Code,
		GroupID:         group.GroupID,
		AccountType:     req.AccountType,
		OpeningBalance:  req.OpeningBalance,
		CurrentBalance:  req.OpeningBalance,
		IsGSTApplicable: req.IsGSTApplicable,
		IsBankAccount:   req.IsBankAccount,
		IsCashAccount:   req.IsCashAccount,
		IsActive:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "failed to create account", slog.String("code", req.Code))
		return nil, err
	}
	s.LogInfo(ctx, "account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

func (s *chartService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.IsGSTApplicable != nil {
		account.IsGSTApplicable = *req.IsGSTApplicable
	}
	if req.IsBankAccount != nil {
		account.IsBankAccount = *req.IsBankAccount
	}
	if req.IsCashAccount != nil {
		account.IsCashAccount = *req.IsCashAccount
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *chartService) DeactivateAccount(ctx context.Context, accountID string, userID string) error {
	return s.accountRepo.DeactivateAccount(ctx, accountID, userID, time.Now())
}

type seedGroup struct {
	code       string
	name       string
	groupType  domain.GroupType
	parentCode string
}

type seedAccount struct {
	code        string
	name        string
	groupCode   string
	accountType domain.AccountType
	gst         bool
	bank        bool
	cash        bool
}

var defaultGroups = []seedGroup{
	{GroupCurrentAssets, "Current Assets", domain.GroupAssets, ""},
	{GroupFixedAssets, "Fixed Assets", domain.GroupAssets, ""},
	{GroupCurrentLiabilities, "Current Liabilities", domain.GroupLiabilities, ""},
	{GroupLongTermLiabs, "Long Term Liabilities", domain.GroupLiabilities, ""},
	{GroupCapitalReserves, "Capital & Reserves", domain.GroupEquity, ""},
	{GroupSalesIncome, "Sales & Income", domain.GroupIncome, ""},
	{GroupDirectExpenses, "Direct Expenses", domain.GroupExpenses, ""},
	{GroupIndirectExpenses, "Indirect Expenses", domain.GroupExpenses, ""},
	{GroupInventory, "Inventory", domain.GroupAssets, GroupCurrentAssets},
	{GroupSundryDebtors, "Sundry Debtors", domain.GroupAssets, GroupCurrentAssets},
	{GroupCashBank, "Cash & Bank", domain.GroupAssets, GroupCurrentAssets},
	{GroupSundryCreditors, "Sundry Creditors", domain.GroupLiabilities, GroupCurrentLiabilities},
	{GroupDutiesTaxes, "Duties & Taxes", domain.GroupLiabilities, GroupCurrentLiabilities},
}

var defaultAccounts = []seedAccount{
	{AccountRawMaterial, "Raw Material Inventory", GroupInventory, domain.CurrentAsset, false, false, false},
	{AccountWorkInProcess, "Work In Progress Inventory", GroupInventory, domain.CurrentAsset, false, false, false},
	{AccountFinishedGoods, "Finished Goods Inventory", GroupInventory, domain.CurrentAsset, false, false, false},
	{AccountCash, "Cash In Hand", GroupCashBank, domain.CurrentAsset, false, false, true},
	{AccountBank, "Bank Account", GroupCashBank, domain.CurrentAsset, false, true, false},
	{AccountCGSTInput, "CGST Input Credit", GroupCurrentAssets, domain.CurrentAsset, true, false, false},
	{AccountSGSTInput, "SGST Input Credit", GroupCurrentAssets, domain.CurrentAsset, true, false, false},
	{AccountIGSTInput, "IGST Input Credit", GroupCurrentAssets, domain.CurrentAsset, true, false, false},
	{AccountCGSTPayable, "CGST Payable", GroupDutiesTaxes, domain.CurrentLiability, true, false, false},
	{AccountSGSTPayable, "SGST Payable", GroupDutiesTaxes, domain.CurrentLiability, true, false, false},
	{AccountIGSTPayable, "IGST Payable", GroupDutiesTaxes, domain.CurrentLiability, true, false, false},
	{AccountGRNClearing, "GRN Clearing", GroupCurrentLiabilities, domain.CurrentLiability, false, false, false},
	{AccountSales, "Sales", GroupSalesIncome, domain.Revenue, true, false, false},
	{AccountCOGS, "Cost of Goods Sold", GroupDirectExpenses, domain.CostOfGoodsSold, false, false, false},
	{AccountPurchase, "Purchases", GroupDirectExpenses, domain.Expense, true, false, false},
	{AccountWages, "Direct Wages", GroupDirectExpenses, domain.Expense, false, false, false},
	{AccountSalary, "Salaries", GroupIndirectExpenses, domain.Expense, false, false, false},
	{AccountOverhead, "Factory Overheads", GroupIndirectExpenses, domain.Expense, false, false, false},
	{AccountTransport, "Transport & Freight", GroupIndirectExpenses, domain.Expense, false, false, false},
	{AccountCapital, "Owner's Capital", GroupCapitalReserves, domain.EquityCapital, false, false, false},
}

var defaultVoucherTypes = []struct {
	code string
	name string
}{
	{domain.VoucherTypePurchase, "Purchase"},
	{domain.VoucherTypeSales, "Sales"},
	{domain.VoucherTypePayment, "Payment"},
	{domain.VoucherTypeReceipt, "Receipt"},
	{domain.VoucherTypeJournal, "Journal"},
	{domain.VoucherTypeContra, "Contra"},
}

// SetupDefaultChart idempotently seeds the factory chart of accounts and the
// standard voucher types. Codes already present are left untouched.
func (s *chartService) SetupDefaultChart(ctx context.Context, creatorUserID string) error {
	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	groupIDs := make(map[string]string, len(defaultGroups))
	for _, g := range defaultGroups {
		existing, err := s.accountRepo.FindGroupByCode(ctx, g.code)
		if err == nil {
			groupIDs[g.code] = existing.GroupID
			continue
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		group := domain.AccountGroup{
			GroupID:       uuid.NewString(),
			Name:          g.name,
			Code:          g.code,
			GroupType:     g.groupType,
			ParentGroupID: groupIDs[g.parentCode],
			AuditFields:   audit,
		}
		if err := s.accountRepo.SaveAccountGroup(ctx, group); err != nil {
			return fmt.Errorf("failed to seed group %s: %w", g.code, err)
		}
		groupIDs[g.code] = group.GroupID
	}

	for _, a := range defaultAccounts {
		_, err := s.accountRepo.FindAccountByCode(ctx, a.code)
		if err == nil {
			continue
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		account := domain.Account{
			AccountID:       uuid.NewString(),
			Name:            a.name,
			Code:            a.code,
			GroupID:         groupIDs[a.groupCode],
			AccountType:     a.accountType,
			OpeningBalance:  decimal.Zero,
			CurrentBalance:  decimal.Zero,
			IsGSTApplicable: a.gst,
			IsBankAccount:   a.bank,
			IsCashAccount:   a.cash,
			IsActive:        true,
			AuditFields:     audit,
		}
		if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
			return fmt.Errorf("failed to seed account %s: %w", a.code, err)
		}
	}

	for _, vt := range defaultVoucherTypes {
		_, err := s.voucherRepo.FindVoucherTypeByCode(ctx, vt.code)
		if err == nil {
			continue
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		voucherType := domain.VoucherType{
			VoucherTypeID: uuid.NewString(),
			Name:          vt.name,
			Code:          vt.code,
			IsActive:      true,
			AuditFields:   audit,
		}
		if err := s.voucherRepo.SaveVoucherType(ctx, voucherType); err != nil {
			return fmt.Errorf("failed to seed voucher type %s: %w", vt.code, err)
		}
	}

	s.LogInfo(ctx, "default chart of accounts ready")
	return nil
}

// GetOrCreateSupplierAccount returns the supplier's ledger under Sundry
// Creditors, creating it with code SUP_{id} on first use.
func (s *chartService) GetOrCreateSupplierAccount(ctx context.Context, supplierID string, userID string) (*domain.Account, error) {
	code := "SUP_" + supplierID
	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	supplier, err := s.partyRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("supplier %s: %w", supplierID, err)
	}
	return s.createPartyAccount(ctx, code, supplier.Name, GroupSundryCreditors, domain.CurrentLiability, userID)
}

// GetOrCreateCustomerAccount returns the customer's ledger under Sundry
// Debtors, creating it with code CUS_{id} on first use.
func (s *chartService) GetOrCreateCustomerAccount(ctx context.Context, customerID string, userID string) (*domain.Account, error) {
	code := "CUS_" + customerID
	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	customer, err := s.partyRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("customer %s: %w", customerID, err)
	}
	return s.createPartyAccount(ctx, code, customer.Name, GroupSundryDebtors, domain.CurrentAsset, userID)
}

func (s *chartService) createPartyAccount(ctx context.Context, code, name, groupCode string, accountType domain.AccountType, userID string) (*domain.Account, error) {
	group, err := s.accountRepo.FindGroupByCode(ctx, groupCode)
	if err != nil {
		return nil, fmt.Errorf("group %s: %w (run default chart setup first)", groupCode, err)
	}

	now := time.Now()
	account := domain.Account{
		AccountID:      uuid.NewString(),
		Name:           name,
		Code:           code,
		GroupID:        group.GroupID,
		AccountType:    accountType,
		OpeningBalance: decimal.Zero,
		CurrentBalance: decimal.Zero,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		// A concurrent caller may have created the ledger first.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return s.accountRepo.FindAccountByCode(ctx, code)
		}
		return nil, err
	}
	s.LogInfo(ctx, "party ledger created", slog.String("code", code))
	return &account, nil
}

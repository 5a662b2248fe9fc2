package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	portsrepo "github.com/karkhana/factory_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/karkhana/factory_ledger_app/internal/core/ports/services"
	"github.com/karkhana/factory_ledger_app/internal/dto"
)

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepository = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) SaveAccountGroup(ctx context.Context, group domain.AccountGroup) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockAccountRepository) FindGroupByID(ctx context.Context, groupID string) (*domain.AccountGroup, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountGroup), args.Error(1)
}

func (m *MockAccountRepository) FindGroupByCode(ctx context.Context, code string) (*domain.AccountGroup, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountGroup), args.Error(1)
}

func (m *MockAccountRepository) ListGroups(ctx context.Context) ([]domain.AccountGroup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountGroup), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByGroupID(ctx context.Context, groupID string) ([]domain.Account, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	args := m.Called(ctx, accountID, userID, now)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ApplyBalanceDeltasInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, tx, balanceChanges, userID, now)
	return args.Error(0)
}

// --- Mock VoucherRepository ---

type MockVoucherRepository struct {
	mock.Mock
}

var _ portsrepo.VoucherRepository = (*MockVoucherRepository)(nil)

func (m *MockVoucherRepository) SaveVoucherType(ctx context.Context, vt domain.VoucherType) error {
	args := m.Called(ctx, vt)
	return args.Error(0)
}

func (m *MockVoucherRepository) FindVoucherTypeByID(ctx context.Context, voucherTypeID string) (*domain.VoucherType, error) {
	args := m.Called(ctx, voucherTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VoucherType), args.Error(1)
}

func (m *MockVoucherRepository) FindVoucherTypeByCode(ctx context.Context, code string) (*domain.VoucherType, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VoucherType), args.Error(1)
}

func (m *MockVoucherRepository) ListVoucherTypes(ctx context.Context) ([]domain.VoucherType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VoucherType), args.Error(1)
}

func (m *MockVoucherRepository) FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	args := m.Called(ctx, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) FindVoucherByNumber(ctx context.Context, voucherNumber string) (*domain.Voucher, error) {
	args := m.Called(ctx, voucherNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) ListVouchers(ctx context.Context, filter portsrepo.VoucherListFilter) ([]domain.Voucher, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) ListVouchersByRef(ctx context.Context, ref domain.DocumentRef) ([]domain.Voucher, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) SumEntriesByAccount(ctx context.Context, accountID string, asOf *time.Time) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, accountID, asOf)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher, entries []domain.JournalEntry) error {
	args := m.Called(ctx, voucher, entries)
	return args.Error(0)
}

func (m *MockVoucherRepository) PostVoucher(ctx context.Context, voucherID string, postedBy string, now time.Time, balanceChanges map[string]decimal.Decimal) error {
	args := m.Called(ctx, voucherID, postedBy, now, balanceChanges)
	return args.Error(0)
}

func (m *MockVoucherRepository) CancelVoucher(ctx context.Context, voucherID string, userID string, now time.Time) error {
	args := m.Called(ctx, voucherID, userID, now)
	return args.Error(0)
}

// --- Mock PartyRepository ---

type MockPartyRepository struct {
	mock.Mock
}

var _ portsrepo.PartyRepository = (*MockPartyRepository)(nil)

func (m *MockPartyRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockPartyRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockPartyRepository) ListSuppliers(ctx context.Context, limit, offset int) ([]domain.Supplier, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Supplier), args.Error(1)
}

func (m *MockPartyRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockPartyRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockPartyRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockPartyRepository) ListCustomers(ctx context.Context, limit, offset int) ([]domain.Customer, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockPartyRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

// --- Mock SequenceRepository ---

type MockSequenceRepository struct {
	mock.Mock
}

var _ portsrepo.SequenceRepository = (*MockSequenceRepository)(nil)

func (m *MockSequenceRepository) NextSequence(ctx context.Context, typeCode string, year int) (int64, error) {
	args := m.Called(ctx, typeCode, year)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock GRNWorkflowRepository ---

type MockGRNWorkflowRepository struct {
	mock.Mock
}

var _ portsrepo.GRNWorkflowRepository = (*MockGRNWorkflowRepository)(nil)

func (m *MockGRNWorkflowRepository) GetOrCreateWorkflowStatus(ctx context.Context, grnID string, userID string, now time.Time) (*domain.GRNWorkflowStatus, error) {
	args := m.Called(ctx, grnID, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GRNWorkflowStatus), args.Error(1)
}

func (m *MockGRNWorkflowRepository) MarkStepDone(ctx context.Context, grnID string, step domain.GRNStep, voucherID string, userID string, now time.Time) error {
	args := m.Called(ctx, grnID, step, voucherID, userID, now)
	return args.Error(0)
}

// --- Mock SettingsRepository ---

type MockSettingsRepository struct {
	mock.Mock
}

var _ portsrepo.SettingsRepository = (*MockSettingsRepository)(nil)

func (m *MockSettingsRepository) GetOrCreateDefault(ctx context.Context) (*domain.CompanySettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanySettings), args.Error(1)
}

func (m *MockSettingsRepository) UpdateSettings(ctx context.Context, settings domain.CompanySettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetTrialBalanceData(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrialBalanceRow), args.Error(1)
}

func (m *MockReportingRepository) GetProfitAndLossData(ctx context.Context, from, to time.Time) ([]domain.AccountAmount, []domain.AccountAmount, error) {
	args := m.Called(ctx, from, to)
	var income, expenses []domain.AccountAmount
	if args.Get(0) != nil {
		income = args.Get(0).([]domain.AccountAmount)
	}
	if args.Get(1) != nil {
		expenses = args.Get(1).([]domain.AccountAmount)
	}
	return income, expenses, args.Error(2)
}

func (m *MockReportingRepository) GetBalanceSheetData(ctx context.Context, asOf time.Time) ([]domain.AccountAmount, []domain.AccountAmount, []domain.AccountAmount, error) {
	args := m.Called(ctx, asOf)
	var assets, liabilities, equity []domain.AccountAmount
	if args.Get(0) != nil {
		assets = args.Get(0).([]domain.AccountAmount)
	}
	if args.Get(1) != nil {
		liabilities = args.Get(1).([]domain.AccountAmount)
	}
	if args.Get(2) != nil {
		equity = args.Get(2).([]domain.AccountAmount)
	}
	return assets, liabilities, equity, args.Error(3)
}

func (m *MockReportingRepository) GetDayBookData(ctx context.Context, date time.Time) ([]domain.DayBookRow, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DayBookRow), args.Error(1)
}

func (m *MockReportingRepository) GetOutstandingParties(ctx context.Context, partyType domain.PartyType) ([]domain.OutstandingRow, error) {
	args := m.Called(ctx, partyType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OutstandingRow), args.Error(1)
}

// --- Mock ChartSvcFacade ---

type MockChartService struct {
	mock.Mock
}

var _ portssvc.ChartSvcFacade = (*MockChartService)(nil)

func (m *MockChartService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockChartService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockChartService) ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockChartService) ListAccountsByGroup(ctx context.Context, groupID string) ([]domain.Account, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockChartService) ListAccountGroups(ctx context.Context) ([]domain.AccountGroup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountGroup), args.Error(1)
}

func (m *MockChartService) CalculateBalance(ctx context.Context, accountID string, asOf *time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID, asOf)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockChartService) CreateAccountGroup(ctx context.Context, req dto.CreateAccountGroupRequest, creatorUserID string) (*domain.AccountGroup, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountGroup), args.Error(1)
}

func (m *MockChartService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockChartService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockChartService) DeactivateAccount(ctx context.Context, accountID string, userID string) error {
	args := m.Called(ctx, accountID, userID)
	return args.Error(0)
}

func (m *MockChartService) SetupDefaultChart(ctx context.Context, creatorUserID string) error {
	args := m.Called(ctx, creatorUserID)
	return args.Error(0)
}

func (m *MockChartService) GetOrCreateSupplierAccount(ctx context.Context, supplierID string, userID string) (*domain.Account, error) {
	args := m.Called(ctx, supplierID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockChartService) GetOrCreateCustomerAccount(ctx context.Context, customerID string, userID string) (*domain.Account, error) {
	args := m.Called(ctx, customerID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// --- Mock VoucherSvcFacade ---

type MockVoucherService struct {
	mock.Mock
}

var _ portssvc.VoucherSvcFacade = (*MockVoucherService)(nil)

func (m *MockVoucherService) CreateVoucher(ctx context.Context, req dto.CreateVoucherRequest, creatorUserID string) (*domain.Voucher, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherService) GetVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	args := m.Called(ctx, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherService) GetVoucherByNumber(ctx context.Context, voucherNumber string) (*domain.Voucher, error) {
	args := m.Called(ctx, voucherNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherService) ListVouchersByRef(ctx context.Context, ref domain.DocumentRef) ([]domain.Voucher, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Voucher), args.Error(1)
}

func (m *MockVoucherService) ListVouchers(ctx context.Context, filter portsrepo.VoucherListFilter) ([]domain.Voucher, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Voucher), args.Error(1)
}

func (m *MockVoucherService) ListVoucherTypes(ctx context.Context) ([]domain.VoucherType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VoucherType), args.Error(1)
}

func (m *MockVoucherService) PostVoucher(ctx context.Context, voucherID string, userID string) (*domain.Voucher, error) {
	args := m.Called(ctx, voucherID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherService) CancelVoucher(ctx context.Context, voucherID string, userID string) error {
	args := m.Called(ctx, voucherID, userID)
	return args.Error(0)
}

// --- Mock SettingsSvcFacade ---

type MockSettingsService struct {
	mock.Mock
}

var _ portssvc.SettingsSvcFacade = (*MockSettingsService)(nil)

func (m *MockSettingsService) GetSettings(ctx context.Context) (*domain.CompanySettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanySettings), args.Error(1)
}

func (m *MockSettingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, userID string) (*domain.CompanySettings, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanySettings), args.Error(1)
}

// --- Mock VoucherNumberingSvc ---

type MockNumberingService struct {
	mock.Mock
}

var _ portssvc.VoucherNumberingSvc = (*MockNumberingService)(nil)

func (m *MockNumberingService) NextVoucherNumber(ctx context.Context, typeCode string, onDate time.Time) (string, error) {
	args := m.Called(ctx, typeCode, onDate)
	return args.String(0), args.Error(1)
}

package services

import (
	"context"
	"time"

	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	"github.com/karkhana/factory_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

// ChartReaderSvc defines read operations over the chart of accounts.
type ChartReaderSvc interface {
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	GetAccountByCode(ctx context.Context, code string) (*domain.Account, error)
	ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error)
	ListAccountsByGroup(ctx context.Context, groupID string) ([]domain.Account, error)
	ListAccountGroups(ctx context.Context) ([]domain.AccountGroup, error)

	// CalculateBalance recomputes an account balance from posted entries,
	// optionally as of a cut-off date. It is the reconciliation counterpart
	// to the cached current balance maintained by the posting engine.
	CalculateBalance(ctx context.Context, accountID string, asOf *time.Time) (decimal.Decimal, error)
}

// ChartWriterSvc defines write operations over the chart of accounts.
type ChartWriterSvc interface {
	CreateAccountGroup(ctx context.Context, req dto.CreateAccountGroupRequest, creatorUserID string) (*domain.AccountGroup, error)
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)
	DeactivateAccount(ctx context.Context, accountID string, userID string) error

	// SetupDefaultChart idempotently seeds the factory chart of accounts
	// and the standard voucher types.
	SetupDefaultChart(ctx context.Context, creatorUserID string) error
}

// PartyAccountSvc resolves or creates party ledger accounts.
type PartyAccountSvc interface {
	// GetOrCreateSupplierAccount returns the supplier's ledger under Sundry
	// Creditors, creating it with code SUP_{id} on first use.
	GetOrCreateSupplierAccount(ctx context.Context, supplierID string, userID string) (*domain.Account, error)

	// GetOrCreateCustomerAccount returns the customer's ledger under Sundry
	// Debtors, creating it with code CUS_{id} on first use.
	GetOrCreateCustomerAccount(ctx context.Context, customerID string, userID string) (*domain.Account, error)
}

// ChartSvcFacade combines all chart-of-accounts service operations.
type ChartSvcFacade interface {
	ChartReaderSvc
	ChartWriterSvc
	PartyAccountSvc
}

package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountGroupRepository defines operations on the chart-of-accounts tree.
type AccountGroupRepository interface {
	// SaveAccountGroup persists a new group.
	SaveAccountGroup(ctx context.Context, group domain.AccountGroup) error

	// FindGroupByID retrieves a group by its unique identifier.
	FindGroupByID(ctx context.Context, groupID string) (*domain.AccountGroup, error)

	// FindGroupByCode retrieves a group by its unique code.
	FindGroupByCode(ctx context.Context, code string) (*domain.AccountGroup, error)

	// ListGroups retrieves all groups, roots first.
	ListGroups(ctx context.Context) ([]domain.AccountGroup, error)
}

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByCode retrieves an account by its unique chart code.
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by their IDs.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves a paginated list of accounts.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)

	// ListAccountsByGroupID retrieves all accounts under a group.
	ListAccountsByGroupID(ctx context.Context, groupID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeactivateAccount marks an account as inactive.
	DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error
}

// AccountTransactionSupport defines operations used by the posting engine.
type AccountTransactionSupport interface {
	// FindAccountsByIDsForUpdate selects accounts and locks them for update within a transaction.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error)

	// ApplyBalanceDeltasInTx adds the given deltas to current_balance for
	// multiple accounts within a transaction. Callers must hold row locks.
	ApplyBalanceDeltasInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error
}

// AccountRepository combines all account-related repository interfaces.
type AccountRepository interface {
	AccountGroupRepository
	AccountReader
	AccountWriter
	AccountTransactionSupport
}

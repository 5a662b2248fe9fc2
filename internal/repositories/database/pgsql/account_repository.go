package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/karkhana/factory_ledger_app/internal/apperrors"
	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	portsrepo "github.com/karkhana/factory_ledger_app/internal/core/ports/repositories"
	"github.com/karkhana/factory_ledger_app/internal/models"
	"github.com/karkhana/factory_ledger_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

const accountColumns = `account_id, name, code, group_id, account_type, opening_balance, current_balance,
	is_gst_applicable, is_bank_account, is_cash_account, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for chart-of-accounts data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepository
var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.Name,
		&m.Code,
		&m.GroupID,
		&m.AccountType,
		&m.OpeningBalance,
		&m.CurrentBalance,
		&m.IsGSTApplicable,
		&m.IsBankAccount,
		&m.IsCashAccount,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan account: %w", err)
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// SaveAccountGroup inserts a new account group.
func (r *PgxAccountRepository) SaveAccountGroup(ctx context.Context, group domain.AccountGroup) error {
	m := mapping.ToModelAccountGroup(group)
	query := `
		INSERT INTO account_groups (group_id, name, code, group_type, parent_group_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	var parentID sql.NullString
	if m.ParentGroupID != "" {
		parentID = sql.NullString{String: m.ParentGroupID, Valid: true}
	}

	_, err := r.Pool.Exec(ctx, query,
		m.GroupID, m.Name, m.Code, m.GroupType, parentID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: account group with code %s already exists", apperrors.ErrDuplicate, m.Code)
		}
		return fmt.Errorf("failed to save account group %s: %w", m.GroupID, err)
	}
	return nil
}

func (r *PgxAccountRepository) findGroup(ctx context.Context, where string, arg any) (*domain.AccountGroup, error) {
	query := `
		SELECT group_id, name, code, group_type, parent_group_id, created_at, created_by, last_updated_at, last_updated_by
		FROM account_groups
		WHERE ` + where + `;
	`
	var m models.AccountGroup
	var parentID sql.NullString
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&m.GroupID, &m.Name, &m.Code, &m.GroupType, &parentID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account group: %w", err)
	}
	m.ParentGroupID = parentID.String
	g := mapping.ToDomainAccountGroup(m)
	return &g, nil
}

// FindGroupByID retrieves an account group by its ID.
func (r *PgxAccountRepository) FindGroupByID(ctx context.Context, groupID string) (*domain.AccountGroup, error) {
	return r.findGroup(ctx, "group_id = $1", groupID)
}

// FindGroupByCode retrieves an account group by its unique code.
func (r *PgxAccountRepository) FindGroupByCode(ctx context.Context, code string) (*domain.AccountGroup, error) {
	return r.findGroup(ctx, "code = $1", code)
}

// ListGroups retrieves all account groups, roots first.
func (r *PgxAccountRepository) ListGroups(ctx context.Context) ([]domain.AccountGroup, error) {
	query := `
		SELECT group_id, name, code, group_type, parent_group_id, created_at, created_by, last_updated_at, last_updated_by
		FROM account_groups
		ORDER BY parent_group_id NULLS FIRST, code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list account groups: %w", err)
	}
	defer rows.Close()

	var groups []domain.AccountGroup
	for rows.Next() {
		var m models.AccountGroup
		var parentID sql.NullString
		if err := rows.Scan(
			&m.GroupID, &m.Name, &m.Code, &m.GroupType, &parentID,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account group: %w", err)
		}
		m.ParentGroupID = parentID.String
		groups = append(groups, mapping.ToDomainAccountGroup(m))
	}
	return groups, rows.Err()
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID, m.Name, m.Code, m.GroupID, m.AccountType,
		m.OpeningBalance, m.CurrentBalance,
		m.IsGSTApplicable, m.IsBankAccount, m.IsCashAccount, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: account with code %s already exists", apperrors.ErrDuplicate, m.Code)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`
	return scanAccount(r.Pool.QueryRow(ctx, query, accountID))
}

// FindAccountByCode retrieves an account by its unique chart code.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE code = $1;`
	return scanAccount(r.Pool.QueryRow(ctx, query, code))
}

func (r *PgxAccountRepository) collectAccounts(rows pgx.Rows) (map[string]domain.Account, error) {
	defer rows.Close()
	accounts := make(map[string]domain.Account)
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(
			&m.AccountID, &m.Name, &m.Code, &m.GroupID, &m.AccountType,
			&m.OpeningBalance, &m.CurrentBalance,
			&m.IsGSTApplicable, &m.IsBankAccount, &m.IsCashAccount, &m.IsActive,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts[m.AccountID] = mapping.ToDomainAccount(m)
	}
	return accounts, rows.Err()
}

// FindAccountsByIDs retrieves multiple accounts by their IDs.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by IDs: %w", err)
	}
	accounts, err := r.collectAccounts(rows)
	if err != nil {
		return nil, err
	}
	if len(accounts) != len(accountIDs) {
		return nil, fmt.Errorf("%w: one or more accounts missing", apperrors.ErrNotFound)
	}
	return accounts, nil
}

// ListAccounts retrieves a paginated list of accounts ordered by code.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY code LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(
			&m.AccountID, &m.Name, &m.Code, &m.GroupID, &m.AccountType,
			&m.OpeningBalance, &m.CurrentBalance,
			&m.IsGSTApplicable, &m.IsBankAccount, &m.IsCashAccount, &m.IsActive,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(m))
	}
	return accounts, rows.Err()
}

// ListAccountsByGroupID retrieves all accounts under a group.
func (r *PgxAccountRepository) ListAccountsByGroupID(ctx context.Context, groupID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE group_id = $1 ORDER BY code;`
	rows, err := r.Pool.Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for group %s: %w", groupID, err)
	}
	accounts, err := r.collectAccounts(rows)
	if err != nil {
		return nil, err
	}
	result := make([]domain.Account, 0, len(accounts))
	for _, acc := range accounts {
		result = append(result, acc)
	}
	return result, nil
}

// UpdateAccount updates mutable account details. Balances are not touched
// here; only the posting engine mutates current_balance.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	query := `
		UPDATE accounts
		SET name = $2, is_gst_applicable = $3, is_bank_account = $4, is_cash_account = $5,
			is_active = $6, last_updated_at = $7, last_updated_by = $8
		WHERE account_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		account.AccountID, account.Name,
		account.IsGSTApplicable, account.IsBankAccount, account.IsCashAccount,
		account.IsActive, account.LastUpdatedAt, account.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", account.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateAccount marks an account as inactive.
func (r *PgxAccountRepository) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE account_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, accountID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindAccountsByIDsForUpdate selects accounts and locks their rows within a
// transaction, so concurrent postings to the same accounts serialize.
func (r *PgxAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = ANY($1) FOR UPDATE;`
	rows, err := tx.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to lock accounts for update: %w", err)
	}
	accounts, err := r.collectAccounts(rows)
	if err != nil {
		return nil, err
	}
	if len(accounts) != len(accountIDs) {
		return nil, fmt.Errorf("%w: one or more accounts missing during lock", apperrors.ErrNotFound)
	}
	return accounts, nil
}

// ApplyBalanceDeltasInTx adds the signed deltas to current_balance for
// multiple accounts within a transaction. Callers must already hold row locks.
func (r *PgxAccountRepository) ApplyBalanceDeltasInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	if len(balanceChanges) == 0 {
		return nil
	}
	query := `
		UPDATE accounts
		SET current_balance = COALESCE(current_balance, 0) + $2,
			last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1;
	`
	batch := &pgx.Batch{}
	for accountID, delta := range balanceChanges {
		batch.Queue(query, accountID, delta, now, userID)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to apply balance deltas: %w", err)
	}
	return nil
}

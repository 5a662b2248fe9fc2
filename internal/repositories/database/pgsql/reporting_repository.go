package pgsql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	portsrepo "github.com/karkhana/factory_ledger_app/internal/core/ports/repositories"
)

// debitNormalTypes is the SQL predicate for accounts whose balances grow on
// the debit side. Everything else is credit-normal.
const debitNormalTypes = `('CURRENT_ASSET', 'FIXED_ASSET', 'EXPENSE', 'COGS')`

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates the read-side reporting repository.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetTrialBalanceData aggregates posted entries per account as of a date and
// presents each account's net balance on its natural side. Accounts with a
// zero net balance are omitted.
func (r *PgxReportingRepository) GetTrialBalanceData(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	query := `
		WITH entry_sums AS (
			SELECT e.account_id,
				COALESCE(SUM(CASE WHEN e.entry_type = 'DEBIT' THEN e.amount ELSE 0 END), 0) AS debits,
				COALESCE(SUM(CASE WHEN e.entry_type = 'CREDIT' THEN e.amount ELSE 0 END), 0) AS credits
			FROM journal_entries e
			JOIN vouchers v ON v.voucher_id = e.voucher_id
			WHERE v.status = 'POSTED' AND e.transaction_date <= $1
			GROUP BY e.account_id
		)
		SELECT t.account_id, t.code, t.name, t.account_type,
			GREATEST(t.net, 0) AS debit,
			GREATEST(-t.net, 0) AS credit
		FROM (
			SELECT a.account_id, a.code, a.name, a.account_type,
				a.opening_balance * CASE WHEN a.account_type IN ` + debitNormalTypes + ` THEN 1 ELSE -1 END
					+ COALESCE(s.debits, 0) - COALESCE(s.credits, 0) AS net
			FROM accounts a
			LEFT JOIN entry_sums s ON s.account_id = a.account_id
		) t
		WHERE t.net <> 0
		ORDER BY t.code;
	`
	rows, err := r.Pool.Query(ctx, query, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to query trial balance data: %w", err)
	}
	defer rows.Close()

	var result []domain.TrialBalanceRow
	for rows.Next() {
		var row domain.TrialBalanceRow
		var accountType string
		if err := rows.Scan(&row.AccountID, &row.AccountCode, &row.AccountName, &accountType, &row.Debit, &row.Credit); err != nil {
			return nil, fmt.Errorf("failed to scan trial balance row: %w", err)
		}
		row.AccountType = domain.AccountType(accountType)
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *PgxReportingRepository) collectAccountAmounts(ctx context.Context, query string, args ...any) ([]domain.AccountAmount, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query account aggregates: %w", err)
	}
	defer rows.Close()

	var result []domain.AccountAmount
	for rows.Next() {
		var row domain.AccountAmount
		var accountType string
		if err := rows.Scan(&row.AccountID, &row.AccountCode, &row.AccountName, &accountType, &row.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan account aggregate: %w", err)
		}
		row.AccountType = domain.AccountType(accountType)
		result = append(result, row)
	}
	return result, rows.Err()
}

// GetProfitAndLossData aggregates posted income and expense movement for the
// period. Income is reported credit-positive, expenses debit-positive.
func (r *PgxReportingRepository) GetProfitAndLossData(ctx context.Context, from, to time.Time) (income, expenses []domain.AccountAmount, err error) {
	incomeQuery := `
		SELECT a.account_id, a.code, a.name, a.account_type,
			COALESCE(SUM(CASE WHEN e.entry_type = 'CREDIT' THEN e.amount ELSE -e.amount END), 0) AS amount
		FROM accounts a
		JOIN journal_entries e ON e.account_id = a.account_id
		JOIN vouchers v ON v.voucher_id = e.voucher_id
		WHERE v.status = 'POSTED' AND a.account_type = 'REVENUE'
			AND e.transaction_date >= $1 AND e.transaction_date <= $2
		GROUP BY a.account_id, a.code, a.name, a.account_type
		HAVING COALESCE(SUM(CASE WHEN e.entry_type = 'CREDIT' THEN e.amount ELSE -e.amount END), 0) <> 0
		ORDER BY a.code;
	`
	expenseQuery := `
		SELECT a.account_id, a.code, a.name, a.account_type,
			COALESCE(SUM(CASE WHEN e.entry_type = 'DEBIT' THEN e.amount ELSE -e.amount END), 0) AS amount
		FROM accounts a
		JOIN journal_entries e ON e.account_id = a.account_id
		JOIN vouchers v ON v.voucher_id = e.voucher_id
		WHERE v.status = 'POSTED' AND a.account_type IN ('EXPENSE', 'COGS')
			AND e.transaction_date >= $1 AND e.transaction_date <= $2
		GROUP BY a.account_id, a.code, a.name, a.account_type
		HAVING COALESCE(SUM(CASE WHEN e.entry_type = 'DEBIT' THEN e.amount ELSE -e.amount END), 0) <> 0
		ORDER BY a.code;
	`
	income, err = r.collectAccountAmounts(ctx, incomeQuery, from, to)
	if err != nil {
		return nil, nil, err
	}
	expenses, err = r.collectAccountAmounts(ctx, expenseQuery, from, to)
	if err != nil {
		return nil, nil, err
	}
	return income, expenses, nil
}

// GetBalanceSheetData aggregates asset, liability and equity balances as of a
// date, opening balances included. Assets are debit-positive, liabilities and
// equity credit-positive.
func (r *PgxReportingRepository) GetBalanceSheetData(ctx context.Context, asOf time.Time) (assets, liabilities, equity []domain.AccountAmount, err error) {
	// Only entries of posted vouchers may reach the aggregation; drafts and
	// cancellations are filtered out before the accounts join.
	const balanceQuery = `
		SELECT a.account_id, a.code, a.name, a.account_type,
			a.opening_balance + COALESCE(SUM(CASE WHEN p.entry_type = $2 THEN p.amount ELSE -p.amount END), 0) AS amount
		FROM accounts a
		LEFT JOIN (
			SELECT e.account_id, e.entry_type, e.amount
			FROM journal_entries e
			JOIN vouchers v ON v.voucher_id = e.voucher_id
			WHERE v.status = 'POSTED' AND e.transaction_date <= $1
		) p ON p.account_id = a.account_id
		WHERE a.account_type = ANY($3)
		GROUP BY a.account_id, a.code, a.name, a.account_type, a.opening_balance
		HAVING a.opening_balance + COALESCE(SUM(CASE WHEN p.entry_type = $2 THEN p.amount ELSE -p.amount END), 0) <> 0
		ORDER BY a.code;
	`
	assets, err = r.collectAccountAmounts(ctx, balanceQuery, asOf, "DEBIT", []string{"CURRENT_ASSET", "FIXED_ASSET"})
	if err != nil {
		return nil, nil, nil, err
	}
	liabilities, err = r.collectAccountAmounts(ctx, balanceQuery, asOf, "CREDIT", []string{"CURRENT_LIABILITY", "LONG_TERM_LIABILITY"})
	if err != nil {
		return nil, nil, nil, err
	}
	equity, err = r.collectAccountAmounts(ctx, balanceQuery, asOf, "CREDIT", []string{"EQUITY"})
	if err != nil {
		return nil, nil, nil, err
	}
	return assets, liabilities, equity, nil
}

// GetDayBookData lists every voucher dated within the given calendar day with
// its entry totals, in creation order.
func (r *PgxReportingRepository) GetDayBookData(ctx context.Context, date time.Time) ([]domain.DayBookRow, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	query := `
		SELECT v.voucher_id, v.voucher_number, vt.code, v.transaction_date, v.narration, v.status,
			COALESCE(SUM(CASE WHEN e.entry_type = 'DEBIT' THEN e.amount ELSE 0 END), 0) AS total_debit,
			COALESCE(SUM(CASE WHEN e.entry_type = 'CREDIT' THEN e.amount ELSE 0 END), 0) AS total_credit
		FROM vouchers v
		JOIN voucher_types vt ON vt.voucher_type_id = v.voucher_type_id
		LEFT JOIN journal_entries e ON e.voucher_id = v.voucher_id
		WHERE v.transaction_date >= $1 AND v.transaction_date < $2
		GROUP BY v.voucher_id, v.voucher_number, vt.code, v.transaction_date, v.narration, v.status, v.created_at
		ORDER BY v.created_at;
	`
	rows, err := r.Pool.Query(ctx, query, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to query day book data: %w", err)
	}
	defer rows.Close()

	var result []domain.DayBookRow
	for rows.Next() {
		var row domain.DayBookRow
		var narration sql.NullString
		var status string
		if err := rows.Scan(&row.VoucherID, &row.VoucherNumber, &row.VoucherTypeCode, &row.TransactionDate, &narration, &status, &row.TotalDebit, &row.TotalCredit); err != nil {
			return nil, fmt.Errorf("failed to scan day book row: %w", err)
		}
		row.Narration = narration.String
		row.Status = domain.VoucherStatus(status)
		result = append(result, row)
	}
	return result, rows.Err()
}

// GetOutstandingParties lists party ledgers carrying a nonzero balance. Party
// ledgers are recognized by their code prefix.
func (r *PgxReportingRepository) GetOutstandingParties(ctx context.Context, partyType domain.PartyType) ([]domain.OutstandingRow, error) {
	pattern := `SUP\_%`
	if partyType == domain.PartyCustomer {
		pattern = `CUS\_%`
	}
	query := `
		SELECT a.account_id, a.code, a.name, a.current_balance
		FROM accounts a
		WHERE a.code LIKE $1 AND a.current_balance <> 0
		ORDER BY a.name;
	`
	rows, err := r.Pool.Query(ctx, query, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to query outstanding parties: %w", err)
	}
	defer rows.Close()

	var result []domain.OutstandingRow
	for rows.Next() {
		var row domain.OutstandingRow
		if err := rows.Scan(&row.AccountID, &row.AccountCode, &row.AccountName, &row.Balance); err != nil {
			return nil, fmt.Errorf("failed to scan outstanding row: %w", err)
		}
		row.PartyType = partyType
		result = append(result, row)
	}
	return result, rows.Err()
}

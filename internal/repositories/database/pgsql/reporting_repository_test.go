package pgsql

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reports aggregate posted entries only. Both queries must route the entries
// join through this filter so draft and cancelled vouchers never reach the
// figures.
var postedEntriesFilter = regexp.QuoteMeta("WHERE v.status = 'POSTED' AND e.transaction_date <= $1")

func newReportingRepoWithMock(t *testing.T) (*PgxReportingRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}, pool
}

func TestGetBalanceSheetData_AggregatesPostedEntriesOnly(t *testing.T) {
	repo, pool := newReportingRepoWithMock(t)
	asOf := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	columns := []string{"account_id", "code", "name", "account_type", "amount"}

	pool.ExpectQuery(postedEntriesFilter).
		WithArgs(asOf, "DEBIT", []string{"CURRENT_ASSET", "FIXED_ASSET"}).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow("acc-cash", "CASH", "Cash In Hand", "CURRENT_ASSET", decimal.NewFromInt(1500)))
	pool.ExpectQuery(postedEntriesFilter).
		WithArgs(asOf, "CREDIT", []string{"CURRENT_LIABILITY", "LONG_TERM_LIABILITY"}).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow("acc-sup", "SUP_acme", "Acme Alloys", "CURRENT_LIABILITY", decimal.NewFromInt(900)))
	pool.ExpectQuery(postedEntriesFilter).
		WithArgs(asOf, "CREDIT", []string{"EQUITY"}).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow("acc-cap", "CAPITAL", "Owner Capital", "EQUITY", decimal.NewFromInt(600)))

	assets, liabilities, equity, err := repo.GetBalanceSheetData(context.Background(), asOf)
	require.NoError(t, err)

	require.Len(t, assets, 1)
	assert.Equal(t, "CASH", assets[0].AccountCode)
	assert.True(t, assets[0].Amount.Equal(decimal.NewFromInt(1500)))

	require.Len(t, liabilities, 1)
	assert.True(t, liabilities[0].Amount.Equal(decimal.NewFromInt(900)))

	require.Len(t, equity, 1)
	assert.True(t, equity[0].Amount.Equal(decimal.NewFromInt(600)))

	require.NoError(t, pool.ExpectationsWereMet())
}

func TestGetTrialBalanceData_AggregatesPostedEntriesOnly(t *testing.T) {
	repo, pool := newReportingRepoWithMock(t)
	asOf := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	pool.ExpectQuery(postedEntriesFilter).
		WithArgs(asOf).
		WillReturnRows(pgxmock.NewRows([]string{"account_id", "code", "name", "account_type", "debit", "credit"}).
			AddRow("acc-cash", "CASH", "Cash In Hand", "CURRENT_ASSET", decimal.NewFromInt(1500), decimal.Zero).
			AddRow("acc-sales", "SALES", "Sales", "REVENUE", decimal.Zero, decimal.NewFromInt(1500)))

	rows, err := repo.GetTrialBalanceData(context.Background(), asOf)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.True(t, rows[0].Debit.Equal(decimal.NewFromInt(1500)))
	assert.True(t, rows[1].Credit.Equal(decimal.NewFromInt(1500)))

	require.NoError(t, pool.ExpectationsWereMet())
}

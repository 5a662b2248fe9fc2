package repositories

import (
	"context"
	"time"

	"github.com/karkhana/factory_ledger_app/internal/core/domain"
)

// ReportingRepository defines read-side aggregation over posted entries.
type ReportingRepository interface {
	// GetTrialBalanceData retrieves per-account debit/credit totals as of a date.
	GetTrialBalanceData(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error)

	// GetProfitAndLossData retrieves income and expense aggregates for a period.
	GetProfitAndLossData(ctx context.Context, from, to time.Time) (income, expenses []domain.AccountAmount, err error)

	// GetBalanceSheetData retrieves asset, liability and equity aggregates as of a date.
	GetBalanceSheetData(ctx context.Context, asOf time.Time) (assets, liabilities, equity []domain.AccountAmount, err error)

	// GetDayBookData retrieves all vouchers dated on the given day.
	GetDayBookData(ctx context.Context, date time.Time) ([]domain.DayBookRow, error)

	// GetOutstandingParties retrieves party ledgers with nonzero balances.
	GetOutstandingParties(ctx context.Context, partyType domain.PartyType) ([]domain.OutstandingRow, error)
}

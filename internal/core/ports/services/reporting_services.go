package services

import (
	"context"
	"time"

	"github.com/karkhana/factory_ledger_app/internal/core/domain"
)

// ReportingSvcFacade defines the read-side financial reports.
type ReportingSvcFacade interface {
	TrialBalance(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error)
	ProfitAndLoss(ctx context.Context, from, to time.Time) (*domain.ProfitAndLossReport, error)
	BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheetReport, error)
	DayBook(ctx context.Context, date time.Time) ([]domain.DayBookRow, error)
	OutstandingPayables(ctx context.Context) ([]domain.OutstandingRow, error)
	OutstandingReceivables(ctx context.Context) ([]domain.OutstandingRow, error)
}

package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	portsrepo "github.com/karkhana/factory_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/karkhana/factory_ledger_app/internal/core/ports/services"
)

// reportingService builds the read-side financial reports from the
// aggregation queries.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) TrialBalance(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	return s.reportingRepo.GetTrialBalanceData(ctx, asOf)
}

func sumAmounts(rows []domain.AccountAmount) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Amount)
	}
	return total
}

func (s *reportingService) ProfitAndLoss(ctx context.Context, from, to time.Time) (*domain.ProfitAndLossReport, error) {
	income, expenses, err := s.reportingRepo.GetProfitAndLossData(ctx, from, to)
	if err != nil {
		return nil, err
	}
	report := &domain.ProfitAndLossReport{
		Income:        income,
		Expenses:      expenses,
		TotalIncome:   sumAmounts(income),
		TotalExpenses: sumAmounts(expenses),
	}
	report.NetProfit = report.TotalIncome.Sub(report.TotalExpenses)
	return report, nil
}

// BalanceSheet reports assets against liabilities and equity as of a date.
// Retained earnings carry the accumulated profit since inception so the two
// sides agree.
func (s *reportingService) BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheetReport, error) {
	assets, liabilities, equity, err := s.reportingRepo.GetBalanceSheetData(ctx, asOf)
	if err != nil {
		return nil, err
	}

	income, expenses, err := s.reportingRepo.GetProfitAndLossData(ctx, time.Time{}, asOf)
	if err != nil {
		return nil, err
	}

	report := &domain.BalanceSheetReport{
		AssetRows:        assets,
		LiabilityRows:    liabilities,
		EquityRows:       equity,
		TotalAssets:      sumAmounts(assets),
		TotalLiabilities: sumAmounts(liabilities),
		TotalEquity:      sumAmounts(equity),
		RetainedEarnings: sumAmounts(income).Sub(sumAmounts(expenses)),
	}
	return report, nil
}

func (s *reportingService) DayBook(ctx context.Context, date time.Time) ([]domain.DayBookRow, error) {
	return s.reportingRepo.GetDayBookData(ctx, date)
}

// OutstandingPayables lists supplier ledgers with a balance still owed.
func (s *reportingService) OutstandingPayables(ctx context.Context) ([]domain.OutstandingRow, error) {
	return s.reportingRepo.GetOutstandingParties(ctx, domain.PartySupplier)
}

// OutstandingReceivables lists customer ledgers with a balance still due.
func (s *reportingService) OutstandingReceivables(ctx context.Context) ([]domain.OutstandingRow, error) {
	return s.reportingRepo.GetOutstandingParties(ctx, domain.PartyCustomer)
}

package dto

import (
	"time"

	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType string          `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	AsOf   string                    `json:"asOf"`
	Rows   []TrialBalanceRowResponse `json:"rows"`
	Totals struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
}

// ToTrialBalanceResponse converts domain trial balance rows to a DTO response
func ToTrialBalanceResponse(rows []domain.TrialBalanceRow, asOf time.Time) TrialBalanceResponse {
	response := TrialBalanceResponse{
		AsOf: asOf.Format("2006-01-02"),
		Rows: make([]TrialBalanceRowResponse, len(rows)),
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero

	for i, row := range rows {
		response.Rows[i] = TrialBalanceRowResponse{
			AccountID:   row.AccountID,
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			AccountType: string(row.AccountType),
			Debit:       row.Debit,
			Credit:      row.Credit,
		}
		totalDebit = totalDebit.Add(row.Debit)
		totalCredit = totalCredit.Add(row.Credit)
	}

	response.Totals.Debit = totalDebit
	response.Totals.Credit = totalCredit
	return response
}

// AccountAmountResponse represents an account with its amount in a financial report
type AccountAmountResponse struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
}

func toAccountAmountResponses(rows []domain.AccountAmount) []AccountAmountResponse {
	res := make([]AccountAmountResponse, len(rows))
	for i, r := range rows {
		res[i] = AccountAmountResponse{
			AccountID:   r.AccountID,
			AccountCode: r.AccountCode,
			Name:        r.AccountName,
			Amount:      r.Amount,
		}
	}
	return res
}

// ProfitAndLossResponse represents the profit and loss report response
type ProfitAndLossResponse struct {
	FromDate string                  `json:"fromDate"`
	ToDate   string                  `json:"toDate"`
	Income   []AccountAmountResponse `json:"income"`
	Expenses []AccountAmountResponse `json:"expenses"`
	Summary  struct {
		TotalIncome   decimal.Decimal `json:"totalIncome"`
		TotalExpenses decimal.Decimal `json:"totalExpenses"`
		NetProfit     decimal.Decimal `json:"netProfit"`
	} `json:"summary"`
}

// ToProfitAndLossResponse converts a domain P&L report to a DTO response
func ToProfitAndLossResponse(report *domain.ProfitAndLossReport, from, to time.Time) ProfitAndLossResponse {
	response := ProfitAndLossResponse{
		FromDate: from.Format("2006-01-02"),
		ToDate:   to.Format("2006-01-02"),
		Income:   toAccountAmountResponses(report.Income),
		Expenses: toAccountAmountResponses(report.Expenses),
	}
	response.Summary.TotalIncome = report.TotalIncome
	response.Summary.TotalExpenses = report.TotalExpenses
	response.Summary.NetProfit = report.NetProfit
	return response
}

// BalanceSheetResponse represents the balance sheet report response
type BalanceSheetResponse struct {
	AsOf        string                  `json:"asOf"`
	Assets      []AccountAmountResponse `json:"assets"`
	Liabilities []AccountAmountResponse `json:"liabilities"`
	Equity      []AccountAmountResponse `json:"equity"`
	Summary     struct {
		TotalAssets      decimal.Decimal `json:"totalAssets"`
		TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
		TotalEquity      decimal.Decimal `json:"totalEquity"`
		RetainedEarnings decimal.Decimal `json:"retainedEarnings"`
	} `json:"summary"`
}

// ToBalanceSheetResponse converts a domain balance sheet to a DTO response
func ToBalanceSheetResponse(report *domain.BalanceSheetReport, asOf time.Time) BalanceSheetResponse {
	response := BalanceSheetResponse{
		AsOf:        asOf.Format("2006-01-02"),
		Assets:      toAccountAmountResponses(report.AssetRows),
		Liabilities: toAccountAmountResponses(report.LiabilityRows),
		Equity:      toAccountAmountResponses(report.EquityRows),
	}
	response.Summary.TotalAssets = report.TotalAssets
	response.Summary.TotalLiabilities = report.TotalLiabilities
	response.Summary.TotalEquity = report.TotalEquity
	response.Summary.RetainedEarnings = report.RetainedEarnings
	return response
}

// DayBookRowResponse represents one voucher line in the day book response
type DayBookRowResponse struct {
	VoucherID       string          `json:"voucherID"`
	VoucherNumber   string          `json:"voucherNumber"`
	VoucherTypeCode string          `json:"voucherTypeCode"`
	TransactionDate string          `json:"transactionDate"`
	Narration       string          `json:"narration,omitempty"`
	Status          string          `json:"status"`
	TotalDebit      decimal.Decimal `json:"totalDebit"`
	TotalCredit     decimal.Decimal `json:"totalCredit"`
}

// DayBookResponse represents the day book report response
type DayBookResponse struct {
	Date string               `json:"date"`
	Rows []DayBookRowResponse `json:"rows"`
}

// ToDayBookResponse converts domain day book rows to a DTO response
func ToDayBookResponse(rows []domain.DayBookRow, date time.Time) DayBookResponse {
	response := DayBookResponse{
		Date: date.Format("2006-01-02"),
		Rows: make([]DayBookRowResponse, len(rows)),
	}
	for i, row := range rows {
		response.Rows[i] = DayBookRowResponse{
			VoucherID:       row.VoucherID,
			VoucherNumber:   row.VoucherNumber,
			VoucherTypeCode: row.VoucherTypeCode,
			TransactionDate: row.TransactionDate.Format("2006-01-02"),
			Narration:       row.Narration,
			Status:          string(row.Status),
			TotalDebit:      row.TotalDebit,
			TotalCredit:     row.TotalCredit,
		}
	}
	return response
}

// OutstandingRowResponse represents one party ledger balance
type OutstandingRowResponse struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Balance     decimal.Decimal `json:"balance"`
}

// OutstandingResponse represents the payables/receivables report response
type OutstandingResponse struct {
	PartyType string                   `json:"partyType"`
	Rows      []OutstandingRowResponse `json:"rows"`
	Total     decimal.Decimal          `json:"total"`
}

// ToOutstandingResponse converts outstanding rows to a DTO response
func ToOutstandingResponse(rows []domain.OutstandingRow, partyType domain.PartyType) OutstandingResponse {
	response := OutstandingResponse{
		PartyType: string(partyType),
		Rows:      make([]OutstandingRowResponse, len(rows)),
		Total:     decimal.Zero,
	}
	for i, row := range rows {
		response.Rows[i] = OutstandingRowResponse{
			AccountID:   row.AccountID,
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			Balance:     row.Balance,
		}
		response.Total = response.Total.Add(row.Balance)
	}
	return response
}

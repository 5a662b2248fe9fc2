package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow is one account line in a trial balance report.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// AccountAmount pairs an account with a single aggregated amount.
type AccountAmount struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Amount      decimal.Decimal `json:"amount"`
}

// ProfitAndLossReport is the read-side P&L aggregation for a period.
type ProfitAndLossReport struct {
	Income        []AccountAmount `json:"income"`
	Expenses      []AccountAmount `json:"expenses"`
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetProfit     decimal.Decimal `json:"netProfit"`
}

// BalanceSheetReport is the read-side balance sheet aggregation as of a date.
type BalanceSheetReport struct {
	AssetRows        []AccountAmount `json:"assetRows"`
	LiabilityRows    []AccountAmount `json:"liabilityRows"`
	EquityRows       []AccountAmount `json:"equityRows"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
	RetainedEarnings decimal.Decimal `json:"retainedEarnings"`
}

// DayBookRow is one voucher line in the day book listing.
type DayBookRow struct {
	VoucherID       string          `json:"voucherID"`
	VoucherNumber   string          `json:"voucherNumber"`
	VoucherTypeCode string          `json:"voucherTypeCode"`
	TransactionDate time.Time       `json:"transactionDate"`
	Narration       string          `json:"narration,omitempty"`
	Status          VoucherStatus   `json:"status"`
	TotalDebit      decimal.Decimal `json:"totalDebit"`
	TotalCredit     decimal.Decimal `json:"totalCredit"`
}

// OutstandingRow is one party ledger with a nonzero balance, used by the
// payables/receivables reports.
type OutstandingRow struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	PartyType   PartyType       `json:"partyType"`
	Balance     decimal.Decimal `json:"balance"`
}

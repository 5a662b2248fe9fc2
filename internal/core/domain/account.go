package domain

import (
	"github.com/shopspring/decimal"
)

// GroupType is the top-level classification of an account group.
type GroupType string

const (
	GroupAssets      GroupType = "ASSETS"
	GroupLiabilities GroupType = "LIABILITIES"
	GroupIncome      GroupType = "INCOME"
	GroupExpenses    GroupType = "EXPENSES"
	GroupEquity      GroupType = "EQUITY"
)

// BalanceType indicates which side (debit or credit) increases an account.
type BalanceType string

const (
	DebitBalance  BalanceType = "DEBIT"
	CreditBalance BalanceType = "CREDIT"
)

// BalanceType returns the natural balance side for accounts under this group.
// Assets and expenses are debit-normal; liabilities, income and equity are
// credit-normal.
func (g GroupType) BalanceType() BalanceType {
	switch g {
	case GroupAssets, GroupExpenses:
		return DebitBalance
	default:
		return CreditBalance
	}
}

// AccountType refines the owning group's type for reporting purposes.
type AccountType string

const (
	CurrentAsset      AccountType = "CURRENT_ASSET"
	FixedAsset        AccountType = "FIXED_ASSET"
	CurrentLiability  AccountType = "CURRENT_LIABILITY"
	LongTermLiability AccountType = "LONG_TERM_LIABILITY"
	EquityCapital     AccountType = "EQUITY"
	Revenue           AccountType = "REVENUE"
	Expense           AccountType = "EXPENSE"
	CostOfGoodsSold   AccountType = "COGS"
)

// GroupType maps the refinement back to its top-level classification.
func (t AccountType) GroupType() GroupType {
	switch t {
	case CurrentAsset, FixedAsset:
		return GroupAssets
	case CurrentLiability, LongTermLiability:
		return GroupLiabilities
	case EquityCapital:
		return GroupEquity
	case Revenue:
		return GroupIncome
	default:
		return GroupExpenses
	}
}

// AccountGroup is a node in the chart-of-accounts classification tree.
// Root groups have an empty ParentGroupID.
type AccountGroup struct {
	GroupID       string    `json:"groupID"`
	Name          string    `json:"name"`
	Code          string    `json:"code"`
	GroupType     GroupType `json:"groupType"`
	ParentGroupID string    `json:"parentGroupID,omitempty"`
	AuditFields
}

// Account is a leaf ledger account carrying a running balance.
// CurrentBalance is mutated only by the posting engine; it must always equal
// OpeningBalance plus the signed sum of all posted entries against the account.
type Account struct {
	AccountID       string          `json:"accountID"`
	Name            string          `json:"name"`
	Code            string          `json:"code"`
	GroupID         string          `json:"groupID"`
	AccountType     AccountType     `json:"accountType"`
	OpeningBalance  decimal.Decimal `json:"openingBalance"`
	CurrentBalance  decimal.Decimal `json:"currentBalance"`
	IsGSTApplicable bool            `json:"isGstApplicable"`
	IsBankAccount   bool            `json:"isBankAccount"`
	IsCashAccount   bool            `json:"isCashAccount"`
	IsActive        bool            `json:"isActive"`
	AuditFields
}

// BalanceType returns the account's natural balance side, which is the owning
// group's side. Every AccountType refines exactly one GroupType and account
// creation rejects an account whose type does not match its group, so
// deriving through AccountType is equivalent to reading the group itself and
// avoids a group lookup.
func (a Account) BalanceType() BalanceType {
	return a.AccountType.GroupType().BalanceType()
}

package models

import (
	"github.com/shopspring/decimal"
)

// AccountGroup maps to the account_groups table.
type AccountGroup struct {
	GroupID       string `db:"group_id"`
	Name          string `db:"name"`
	Code          string `db:"code"`
	GroupType     string `db:"group_type"`
	ParentGroupID string `db:"parent_group_id"` // nullable
	AuditFields
}

// Account maps to the accounts table.
type Account struct {
	AccountID       string          `db:"account_id"`
	Name            string          `db:"name"`
	Code            string          `db:"code"`
	GroupID         string          `db:"group_id"`
	AccountType     string          `db:"account_type"`
	OpeningBalance  decimal.Decimal `db:"opening_balance"`
	CurrentBalance  decimal.Decimal `db:"current_balance"`
	IsGSTApplicable bool            `db:"is_gst_applicable"`
	IsBankAccount   bool            `db:"is_bank_account"`
	IsCashAccount   bool            `db:"is_cash_account"`
	IsActive        bool            `db:"is_active"`
	AuditFields
}

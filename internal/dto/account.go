package dto

import (
	"time"

	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountGroupRequest defines the data needed to create a group.
type CreateAccountGroupRequest struct {
	Name          string           `json:"name" binding:"required"`
	Code          string           `json:"code" binding:"required"`
	GroupType     domain.GroupType `json:"groupType" binding:"required,oneof=ASSETS LIABILITIES INCOME EXPENSES EQUITY"`
	ParentGroupID string           `json:"parentGroupID"`
}

// AccountGroupResponse defines the data returned for a group.
type AccountGroupResponse struct {
	GroupID       string           `json:"groupID"`
	Name          string           `json:"name"`
	Code          string           `json:"code"`
	GroupType     domain.GroupType `json:"groupType"`
	ParentGroupID string           `json:"parentGroupID,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// ToAccountGroupResponse converts a domain.AccountGroup to its response DTO.
func ToAccountGroupResponse(g *domain.AccountGroup) AccountGroupResponse {
	return AccountGroupResponse{
		GroupID:       g.GroupID,
		Name:          g.Name,
		Code:          g.Code,
		GroupType:     g.GroupType,
		ParentGroupID: g.ParentGroupID,
		CreatedAt:     g.CreatedAt,
	}
}

// ToListAccountGroupResponse converts a slice of groups to response DTOs.
func ToListAccountGroupResponse(groups []domain.AccountGroup) []AccountGroupResponse {
	res := make([]AccountGroupResponse, len(groups))
	for i, g := range groups {
		res[i] = ToAccountGroupResponse(&g)
	}
	return res
}

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name            string             `json:"name" binding:"required"`
	Code            string             `json:"code" binding:"required"`
	GroupCode       string             `json:"groupCode" binding:"required"`
	AccountType     domain.AccountType `json:"accountType" binding:"required,oneof=CURRENT_ASSET FIXED_ASSET CURRENT_LIABILITY LONG_TERM_LIABILITY EQUITY REVENUE EXPENSE COGS"`
	OpeningBalance  decimal.Decimal    `json:"openingBalance"`
	IsGSTApplicable bool               `json:"isGstApplicable"`
	IsBankAccount   bool               `json:"isBankAccount"`
	IsCashAccount   bool               `json:"isCashAccount"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateAccountRequest struct {
	Name            *string `json:"name"`
	IsGSTApplicable *bool   `json:"isGstApplicable"`
	IsBankAccount   *bool   `json:"isBankAccount"`
	IsCashAccount   *bool   `json:"isCashAccount"`
	IsActive        *bool   `json:"isActive"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID       string             `json:"accountID"`
	Name            string             `json:"name"`
	Code            string             `json:"code"`
	GroupID         string             `json:"groupID"`
	AccountType     domain.AccountType `json:"accountType"`
	BalanceType     domain.BalanceType `json:"balanceType"`
	OpeningBalance  decimal.Decimal    `json:"openingBalance"`
	CurrentBalance  decimal.Decimal    `json:"currentBalance"`
	IsGSTApplicable bool               `json:"isGstApplicable"`
	IsBankAccount   bool               `json:"isBankAccount"`
	IsCashAccount   bool               `json:"isCashAccount"`
	IsActive        bool               `json:"isActive"`
	CreatedAt       time.Time          `json:"createdAt"`
	LastUpdatedAt   time.Time          `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       acc.AccountID,
		Name:            acc.Name,
		Code:            acc.Code,
		GroupID:         acc.GroupID,
		AccountType:     acc.AccountType,
		BalanceType:     acc.BalanceType(),
		OpeningBalance:  acc.OpeningBalance,
		CurrentBalance:  acc.CurrentBalance,
		IsGSTApplicable: acc.IsGSTApplicable,
		IsBankAccount:   acc.IsBankAccount,
		IsCashAccount:   acc.IsCashAccount,
		IsActive:        acc.IsActive,
		CreatedAt:       acc.CreatedAt,
		LastUpdatedAt:   acc.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to response DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// AccountBalanceResponse defines the data returned for a balance query.
type AccountBalanceResponse struct {
	AccountID string          `json:"accountID"`
	AsOf      string          `json:"asOf,omitempty"`
	Balance   decimal.Decimal `json:"balance"`
}

package domain_test

import (
	"testing"

	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestAccountType_GroupType(t *testing.T) {
	tests := []struct {
		accountType domain.AccountType
		want        domain.GroupType
	}{
		{domain.CurrentAsset, domain.GroupAssets},
		{domain.FixedAsset, domain.GroupAssets},
		{domain.CurrentLiability, domain.GroupLiabilities},
		{domain.LongTermLiability, domain.GroupLiabilities},
		{domain.EquityCapital, domain.GroupEquity},
		{domain.Revenue, domain.GroupIncome},
		{domain.Expense, domain.GroupExpenses},
		{domain.CostOfGoodsSold, domain.GroupExpenses},
	}

	for _, tt := range tests {
		t.Run(string(tt.accountType), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.accountType.GroupType())
		})
	}
}

// An account's balance side must agree with its owning group's side for every
// type-to-group pairing account creation accepts.
func TestAccount_BalanceTypeMatchesOwningGroup(t *testing.T) {
	accountTypes := []domain.AccountType{
		domain.CurrentAsset, domain.FixedAsset,
		domain.CurrentLiability, domain.LongTermLiability,
		domain.EquityCapital, domain.Revenue,
		domain.Expense, domain.CostOfGoodsSold,
	}

	for _, accountType := range accountTypes {
		t.Run(string(accountType), func(t *testing.T) {
			group := domain.AccountGroup{GroupType: accountType.GroupType()}
			account := domain.Account{AccountType: accountType}
			assert.Equal(t, group.GroupType.BalanceType(), account.BalanceType())
		})
	}
}

func TestAccount_BalanceType(t *testing.T) {
	tests := []struct {
		accountType domain.AccountType
		want        domain.BalanceType
	}{
		{domain.CurrentAsset, domain.DebitBalance},
		{domain.FixedAsset, domain.DebitBalance},
		{domain.Expense, domain.DebitBalance},
		{domain.CostOfGoodsSold, domain.DebitBalance},
		{domain.CurrentLiability, domain.CreditBalance},
		{domain.LongTermLiability, domain.CreditBalance},
		{domain.EquityCapital, domain.CreditBalance},
		{domain.Revenue, domain.CreditBalance},
	}

	for _, tt := range tests {
		t.Run(string(tt.accountType), func(t *testing.T) {
			account := domain.Account{AccountType: tt.accountType}
			assert.Equal(t, tt.want, account.BalanceType())
		})
	}
}

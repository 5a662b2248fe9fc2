package accounting

import (
	"testing"

	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func entry(entryType domain.EntryType, amount string) domain.JournalEntry {
	return domain.JournalEntry{
		AccountID: "acc-1",
		EntryType: entryType,
		Amount:    decimal.RequireFromString(amount),
	}
}

func TestSignedAmount(t *testing.T) {
	tests := []struct {
		name        string
		entry       domain.JournalEntry
		balanceType domain.BalanceType
		want        string
	}{
		{"debit entry on debit-normal account grows", entry(domain.DebitEntry, "100"), domain.DebitBalance, "100"},
		{"credit entry on debit-normal account shrinks", entry(domain.CreditEntry, "100"), domain.DebitBalance, "-100"},
		{"credit entry on credit-normal account grows", entry(domain.CreditEntry, "250.50"), domain.CreditBalance, "250.5"},
		{"debit entry on credit-normal account shrinks", entry(domain.DebitEntry, "250.50"), domain.CreditBalance, "-250.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SignedAmount(tt.entry, tt.balanceType)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestValidateVoucherBalance_Balanced(t *testing.T) {
	entries := []domain.JournalEntry{
		entry(domain.DebitEntry, "1000"),
		entry(domain.CreditEntry, "600"),
		entry(domain.CreditEntry, "400"),
	}
	assert.NoError(t, ValidateVoucherBalance(entries))
}

func TestValidateVoucherBalance_WithinTolerance(t *testing.T) {
	// 0.01 apart is still considered balanced
	entries := []domain.JournalEntry{
		entry(domain.DebitEntry, "100.00"),
		entry(domain.CreditEntry, "99.99"),
	}
	assert.NoError(t, ValidateVoucherBalance(entries))
}

func TestValidateVoucherBalance_Unbalanced(t *testing.T) {
	entries := []domain.JournalEntry{
		entry(domain.DebitEntry, "100.00"),
		entry(domain.CreditEntry, "99.98"),
	}
	err := ValidateVoucherBalance(entries)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "do not balance")
}

func TestValidateVoucherBalance_TooFewEntries(t *testing.T) {
	err := ValidateVoucherBalance([]domain.JournalEntry{entry(domain.DebitEntry, "100")})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "at least two")
}

func TestValidateVoucherBalance_NonPositiveAmount(t *testing.T) {
	entries := []domain.JournalEntry{
		entry(domain.DebitEntry, "0"),
		entry(domain.CreditEntry, "0"),
	}
	err := ValidateVoucherBalance(entries)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
}

func TestValidateVoucherBalance_UnknownEntryType(t *testing.T) {
	entries := []domain.JournalEntry{
		entry(domain.DebitEntry, "100"),
		{AccountID: "acc-2", EntryType: domain.EntryType("BOTH"), Amount: decimal.NewFromInt(100)},
	}
	err := ValidateVoucherBalance(entries)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown entry type")
}

func TestCombineBalance(t *testing.T) {
	opening := decimal.NewFromInt(500)
	debits := decimal.NewFromInt(300)
	credits := decimal.NewFromInt(100)

	debitNormal := CombineBalance(opening, debits, credits, domain.DebitBalance)
	assert.True(t, debitNormal.Equal(decimal.NewFromInt(700)), "got %s", debitNormal)

	creditNormal := CombineBalance(opening, debits, credits, domain.CreditBalance)
	assert.True(t, creditNormal.Equal(decimal.NewFromInt(300)), "got %s", creditNormal)
}

package accounting

import (
	"fmt"

	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceTolerance is the maximum difference between debit and credit totals
// a voucher may carry and still be considered balanced.
var BalanceTolerance = decimal.RequireFromString("0.01")

// SignedAmount applies the correct sign to an entry amount relative to the
// account's natural balance side.
//
// Entry side matches the balance type -> positive (balance grows).
// Entry side opposes the balance type -> negative (balance shrinks).
func SignedAmount(entry domain.JournalEntry, balanceType domain.BalanceType) decimal.Decimal {
	isDebit := entry.EntryType == domain.DebitEntry
	matches := (isDebit && balanceType == domain.DebitBalance) ||
		(!isDebit && balanceType == domain.CreditBalance)
	if matches {
		return entry.Amount
	}
	return entry.Amount.Neg()
}

// ValidateVoucherBalance checks that the entries form a valid balanced set:
// at least two lines, every amount strictly positive, and total debits equal
// total credits within BalanceTolerance.
func ValidateVoucherBalance(entries []domain.JournalEntry) error {
	if len(entries) < 2 {
		return fmt.Errorf("voucher must have at least two journal entries")
	}

	debits := decimal.Zero
	credits := decimal.Zero
	for _, e := range entries {
		if e.Amount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("entry amount must be positive for account %s", e.AccountID)
		}
		switch e.EntryType {
		case domain.DebitEntry:
			debits = debits.Add(e.Amount)
		case domain.CreditEntry:
			credits = credits.Add(e.Amount)
		default:
			return fmt.Errorf("unknown entry type %q for account %s", e.EntryType, e.AccountID)
		}
	}

	if debits.Sub(credits).Abs().GreaterThan(BalanceTolerance) {
		return fmt.Errorf("entries do not balance: debits %s, credits %s", debits, credits)
	}
	return nil
}

// CombineBalance folds aggregated debit and credit totals into a balance
// according to the account's natural side: debit-normal accounts grow with
// debits, credit-normal accounts grow with credits.
func CombineBalance(opening, debits, credits decimal.Decimal, balanceType domain.BalanceType) decimal.Decimal {
	if balanceType == domain.DebitBalance {
		return opening.Add(debits).Sub(credits)
	}
	return opening.Add(credits).Sub(debits)
}

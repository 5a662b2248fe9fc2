package tally

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalParse_RoundTrip(t *testing.T) {
	env := NewImportEnvelope(ReportVouchers, []Message{
		{Voucher: &Voucher{
			VoucherTypeName: "Sales",
			VoucherNumber:   "SAL-2025-0001",
			Date:            "20250610",
			Narration:       "Cash sale",
			Entries: []LedgerEntry{
				{LedgerName: "Cash In Hand", IsDeemedPositive: "Yes", Amount: "-1180"},
				{LedgerName: "Sales", IsDeemedPositive: "No", Amount: "1180"},
			},
		}},
	})

	payload, err := Marshal(env)
	require.NoError(t, err)
	assert.Contains(t, string(payload), "<?xml")
	assert.Contains(t, string(payload), "<TALLYREQUEST>Import Data</TALLYREQUEST>")
	assert.Contains(t, string(payload), "<REPORTNAME>Vouchers</REPORTNAME>")

	parsed, err := Parse(payload)
	require.NoError(t, err)
	require.Len(t, parsed.Body.ImportData.RequestData.Messages, 1)
	voucher := parsed.Body.ImportData.RequestData.Messages[0].Voucher
	require.NotNil(t, voucher)
	assert.Equal(t, "SAL-2025-0001", voucher.VoucherNumber)
	require.Len(t, voucher.Entries, 2)
	assert.Equal(t, "Yes", voucher.Entries[0].IsDeemedPositive)
	assert.Equal(t, "-1180", voucher.Entries[0].Amount)
}

func TestMarshalParse_LedgerNameAttribute(t *testing.T) {
	env := NewImportEnvelope(ReportAllMasters, []Message{
		{Ledger: &Ledger{Name: "Acme Alloys", Parent: "Sundry Creditors", OpeningBalance: "5000"}},
	})

	payload, err := Marshal(env)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `<LEDGER NAME="Acme Alloys">`)

	parsed, err := Parse(payload)
	require.NoError(t, err)
	ledger := parsed.Body.ImportData.RequestData.Messages[0].Ledger
	require.NotNil(t, ledger)
	assert.Equal(t, "Acme Alloys", ledger.Name)
	assert.Equal(t, "Sundry Creditors", ledger.Parent)
}

func TestFormatAmount_SignConvention(t *testing.T) {
	// Tally reads credits as positive and debits as negative.
	assert.Equal(t, "-500", FormatAmount(decimal.NewFromInt(500), true))
	assert.Equal(t, "500", FormatAmount(decimal.NewFromInt(500), false))
	assert.Equal(t, "-1180.5", FormatAmount(decimal.RequireFromString("1180.50"), true))
}

func TestParseAmount_UndoesSignConvention(t *testing.T) {
	got, err := ParseAmount("-2500", true)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(2500)))

	got, err = ParseAmount("5000", false)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(5000)))

	// A formatted amount must parse back to the original magnitude.
	opening := decimal.RequireFromString("1180.50")
	got, err = ParseAmount(FormatAmount(opening, true), true)
	require.NoError(t, err)
	assert.True(t, got.Equal(opening))

	_, err = ParseAmount("not-a-number", false)
	assert.Error(t, err)
}

func TestFormatParseDate(t *testing.T) {
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "20250610", FormatDate(date))

	parsed, err := ParseDate("20250610")
	require.NoError(t, err)
	assert.True(t, parsed.Equal(date))
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("<ENVELOPE><HEADER>"))
	assert.Error(t, err)
}

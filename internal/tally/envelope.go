// Package tally implements the ENVELOPE XML dialect used by Tally accounting
// software for master and voucher import/export.
package tally

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Report names Tally expects in REQUESTDESC.
const (
	ReportAllMasters = "All Masters"
	ReportVouchers   = "Vouchers"
)

// DateLayout is Tally's wire date format.
const DateLayout = "20060102"

// Envelope is the root of every Tally exchange document.
type Envelope struct {
	XMLName xml.Name `xml:"ENVELOPE"`
	Header  Header   `xml:"HEADER"`
	Body    Body     `xml:"BODY"`
}

type Header struct {
	TallyRequest string `xml:"TALLYREQUEST"`
}

type Body struct {
	ImportData ImportData `xml:"IMPORTDATA"`
}

type ImportData struct {
	RequestDesc RequestDesc `xml:"REQUESTDESC"`
	RequestData RequestData `xml:"REQUESTDATA"`
}

type RequestDesc struct {
	ReportName string `xml:"REPORTNAME"`
}

type RequestData struct {
	Messages []Message `xml:"TALLYMESSAGE"`
}

// Message carries exactly one master or transaction object.
type Message struct {
	Ledger  *Ledger  `xml:"LEDGER,omitempty"`
	Voucher *Voucher `xml:"VOUCHER,omitempty"`
}

// Ledger is one account master. Amounts follow Tally's sign convention:
// credit balances positive, debit balances negative.
type Ledger struct {
	Name           string `xml:"NAME,attr"`
	Parent         string `xml:"PARENT"`
	OpeningBalance string `xml:"OPENINGBALANCE,omitempty"`
}

// Voucher is one transaction with its ledger entry lines.
type Voucher struct {
	VoucherTypeName string        `xml:"VOUCHERTYPENAME"`
	VoucherNumber   string        `xml:"VOUCHERNUMBER"`
	Date            string        `xml:"DATE"`
	Narration       string        `xml:"NARRATION,omitempty"`
	Entries         []LedgerEntry `xml:"ALLLEDGERENTRIES.LIST"`
}

// LedgerEntry is one debit/credit line. ISDEEMEDPOSITIVE is "Yes" for debits,
// and the AMOUNT then carries a negative sign; credits are positive.
type LedgerEntry struct {
	LedgerName       string `xml:"LEDGERNAME"`
	IsDeemedPositive string `xml:"ISDEEMEDPOSITIVE"`
	Amount           string `xml:"AMOUNT"`
}

// NewImportEnvelope wraps messages in the standard import framing.
func NewImportEnvelope(reportName string, messages []Message) *Envelope {
	return &Envelope{
		Header: Header{TallyRequest: "Import Data"},
		Body: Body{
			ImportData: ImportData{
				RequestDesc: RequestDesc{ReportName: reportName},
				RequestData: RequestData{Messages: messages},
			},
		},
	}
}

// Marshal serializes the envelope with an XML declaration and indentation.
func Marshal(env *Envelope) ([]byte, error) {
	payload, err := xml.MarshalIndent(env, "", " ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tally envelope: %w", err)
	}
	return append([]byte(xml.Header), payload...), nil
}

// Parse reads an envelope from its XML serialization.
func Parse(payload []byte) (*Envelope, error) {
	var env Envelope
	if err := xml.Unmarshal(payload, &env); err != nil {
		return nil, fmt.Errorf("failed to parse tally envelope: %w", err)
	}
	return &env, nil
}

// FormatAmount renders an amount in Tally's convention: credits positive,
// debits negative.
func FormatAmount(amount decimal.Decimal, isDebit bool) string {
	if isDebit {
		return amount.Neg().String()
	}
	return amount.String()
}

// ParseAmount reads a Tally-convention amount back to a positive magnitude on
// the account's natural side, undoing the negation FormatAmount applies to
// debit amounts.
func ParseAmount(s string, isDebit bool) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to parse tally amount %q: %w", s, err)
	}
	if isDebit {
		return amount.Neg(), nil
	}
	return amount, nil
}

// FormatDate renders a date in Tally's wire format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate reads a Tally wire date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

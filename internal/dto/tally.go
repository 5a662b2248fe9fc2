package dto

// TallyImportSummary reports what a Tally XML import created or skipped.
type TallyImportSummary struct {
	LedgersCreated  int      `json:"ledgersCreated"`
	LedgersSkipped  int      `json:"ledgersSkipped"`
	VouchersCreated int      `json:"vouchersCreated"`
	VouchersSkipped int      `json:"vouchersSkipped"`
	Warnings        []string `json:"warnings,omitempty"`
}

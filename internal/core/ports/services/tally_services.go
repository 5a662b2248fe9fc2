package services

import (
	"context"
	"time"

	"github.com/karkhana/factory_ledger_app/internal/dto"
)

// TallySvcFacade exchanges chart-of-accounts masters and vouchers with Tally
// accounting software using its ENVELOPE XML dialect.
type TallySvcFacade interface {
	// ExportMasters serializes all ledger accounts as a Tally master import file.
	ExportMasters(ctx context.Context) ([]byte, error)

	// ExportVouchers serializes posted vouchers in the date range.
	ExportVouchers(ctx context.Context, from, to time.Time) ([]byte, error)

	// ImportMasters creates ledgers from a Tally master export. Existing
	// account names are skipped, making re-import idempotent.
	ImportMasters(ctx context.Context, payload []byte, userID string) (*dto.TallyImportSummary, error)
}

package repositories

import (
	"context"
	"time"

	"github.com/karkhana/factory_ledger_app/internal/core/domain"
)

// GRNWorkflowRepository tracks the three-step clearing workflow per GRN.
type GRNWorkflowRepository interface {
	// GetOrCreateWorkflowStatus returns the workflow row for a GRN,
	// creating a fresh one (all steps pending) if absent.
	GetOrCreateWorkflowStatus(ctx context.Context, grnID string, userID string, now time.Time) (*domain.GRNWorkflowStatus, error)

	// MarkStepDone flips one step's flag and records its voucher and
	// timestamp. The update is guarded: if the step is already recorded it
	// returns apperrors.ErrStepAlreadyRecorded and changes nothing.
	MarkStepDone(ctx context.Context, grnID string, step domain.GRNStep, voucherID string, userID string, now time.Time) error
}

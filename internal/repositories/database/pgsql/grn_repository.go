package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/karkhana/factory_ledger_app/internal/apperrors"
	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	portsrepo "github.com/karkhana/factory_ledger_app/internal/core/ports/repositories"
	"github.com/karkhana/factory_ledger_app/internal/models"
	"github.com/karkhana/factory_ledger_app/internal/utils/mapping"
)

const grnColumns = `grn_id,
	material_received, material_received_at, material_voucher_id,
	invoice_received, invoice_received_at, invoice_voucher_id,
	payment_made, payment_made_at, payment_voucher_id,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxGRNWorkflowRepository struct {
	BaseRepository
}

// newPgxGRNWorkflowRepository creates the GRN clearing workflow repository.
func newPgxGRNWorkflowRepository(pool *pgxpool.Pool) portsrepo.GRNWorkflowRepository {
	return &PgxGRNWorkflowRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.GRNWorkflowRepository = (*PgxGRNWorkflowRepository)(nil)

func scanGRNStatus(row pgx.Row) (*domain.GRNWorkflowStatus, error) {
	var m models.GRNWorkflowStatus
	var materialVoucher, invoiceVoucher, paymentVoucher sql.NullString
	err := row.Scan(
		&m.GRNID,
		&m.MaterialReceived, &m.MaterialReceivedAt, &materialVoucher,
		&m.InvoiceReceived, &m.InvoiceReceivedAt, &invoiceVoucher,
		&m.PaymentMade, &m.PaymentMadeAt, &paymentVoucher,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan GRN workflow status: %w", err)
	}
	m.MaterialVoucherID = materialVoucher.String
	m.InvoiceVoucherID = invoiceVoucher.String
	m.PaymentVoucherID = paymentVoucher.String
	s := mapping.ToDomainGRNWorkflowStatus(m)
	return &s, nil
}

// GetOrCreateWorkflowStatus returns the workflow row for a GRN, inserting a
// fresh all-pending row if absent. The insert tolerates a concurrent create.
func (r *PgxGRNWorkflowRepository) GetOrCreateWorkflowStatus(ctx context.Context, grnID string, userID string, now time.Time) (*domain.GRNWorkflowStatus, error) {
	selectQuery := `SELECT ` + grnColumns + ` FROM grn_workflow_statuses WHERE grn_id = $1;`

	status, err := scanGRNStatus(r.Pool.QueryRow(ctx, selectQuery, grnID))
	if err == nil {
		return status, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	insertQuery := `
		INSERT INTO grn_workflow_statuses (grn_id, material_received, invoice_received, payment_made, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, FALSE, FALSE, FALSE, $2, $3, $2, $3);
	`
	if _, err := r.Pool.Exec(ctx, insertQuery, grnID, now, userID); err != nil {
		var pgErr *pgconn.PgError
		if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
			return nil, fmt.Errorf("failed to create GRN workflow status for %s: %w", grnID, err)
		}
	}
	return scanGRNStatus(r.Pool.QueryRow(ctx, selectQuery, grnID))
}

// MarkStepDone flips one step's flag with its voucher and timestamp. The
// WHERE clause guards against double-recording: zero rows affected means the
// step was already done.
func (r *PgxGRNWorkflowRepository) MarkStepDone(ctx context.Context, grnID string, step domain.GRNStep, voucherID string, userID string, now time.Time) error {
	var query string
	switch step {
	case domain.StepMaterialReceived:
		query = `
			UPDATE grn_workflow_statuses
			SET material_received = TRUE, material_received_at = $2, material_voucher_id = $3,
				last_updated_at = $2, last_updated_by = $4
			WHERE grn_id = $1 AND material_received = FALSE;
		`
	case domain.StepInvoiceReceived:
		query = `
			UPDATE grn_workflow_statuses
			SET invoice_received = TRUE, invoice_received_at = $2, invoice_voucher_id = $3,
				last_updated_at = $2, last_updated_by = $4
			WHERE grn_id = $1 AND invoice_received = FALSE;
		`
	case domain.StepPaymentMade:
		query = `
			UPDATE grn_workflow_statuses
			SET payment_made = TRUE, payment_made_at = $2, payment_voucher_id = $3,
				last_updated_at = $2, last_updated_by = $4
			WHERE grn_id = $1 AND payment_made = FALSE;
		`
	default:
		return fmt.Errorf("%w: unknown GRN step %q", apperrors.ErrValidation, step)
	}

	tag, err := r.Pool.Exec(ctx, query, grnID, now, voucherID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark GRN %s step %s: %w", grnID, step, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStepAlreadyRecorded
	}
	return nil
}

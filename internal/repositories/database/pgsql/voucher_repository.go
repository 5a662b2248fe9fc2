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
	"github.com/karkhana/factory_ledger_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

const voucherColumns = `voucher_id, voucher_number, voucher_type_id, transaction_date,
	reference_number, narration, party_type, party_id,
	total_amount, tax_amount, discount_amount, status, is_gst_applicable,
	posted_by, posted_at, created_at, created_by, last_updated_at, last_updated_by`

type PgxVoucherRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepository
}

// newPgxVoucherRepository creates a new repository for voucher and entry data.
// The account repository is injected for the lock-and-apply steps of posting.
func newPgxVoucherRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepository) portsrepo.VoucherRepository {
	return &PgxVoucherRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxVoucherRepository implements portsrepo.VoucherRepository
var _ portsrepo.VoucherRepository = (*PgxVoucherRepository)(nil)

// SaveVoucherType inserts a new voucher type.
func (r *PgxVoucherRepository) SaveVoucherType(ctx context.Context, vt domain.VoucherType) error {
	m := mapping.ToModelVoucherType(vt)
	query := `
		INSERT INTO voucher_types (voucher_type_id, name, code, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.VoucherTypeID, m.Name, m.Code, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: voucher type with code %s already exists", apperrors.ErrDuplicate, m.Code)
		}
		return fmt.Errorf("failed to save voucher type %s: %w", m.VoucherTypeID, err)
	}
	return nil
}

func (r *PgxVoucherRepository) findVoucherType(ctx context.Context, where string, arg any) (*domain.VoucherType, error) {
	query := `
		SELECT voucher_type_id, name, code, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM voucher_types
		WHERE ` + where + `;
	`
	var m models.VoucherType
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&m.VoucherTypeID, &m.Name, &m.Code, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find voucher type: %w", err)
	}
	vt := mapping.ToDomainVoucherType(m)
	return &vt, nil
}

// FindVoucherTypeByID retrieves a voucher type by ID.
func (r *PgxVoucherRepository) FindVoucherTypeByID(ctx context.Context, voucherTypeID string) (*domain.VoucherType, error) {
	return r.findVoucherType(ctx, "voucher_type_id = $1", voucherTypeID)
}

// FindVoucherTypeByCode retrieves a voucher type by its unique code.
func (r *PgxVoucherRepository) FindVoucherTypeByCode(ctx context.Context, code string) (*domain.VoucherType, error) {
	return r.findVoucherType(ctx, "code = $1", code)
}

// ListVoucherTypes retrieves all voucher types ordered by code.
func (r *PgxVoucherRepository) ListVoucherTypes(ctx context.Context) ([]domain.VoucherType, error) {
	query := `
		SELECT voucher_type_id, name, code, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM voucher_types
		ORDER BY code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list voucher types: %w", err)
	}
	defer rows.Close()

	var types []domain.VoucherType
	for rows.Next() {
		var m models.VoucherType
		if err := rows.Scan(
			&m.VoucherTypeID, &m.Name, &m.Code, &m.IsActive,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan voucher type: %w", err)
		}
		types = append(types, mapping.ToDomainVoucherType(m))
	}
	return types, rows.Err()
}

// SaveVoucher persists a draft voucher header and its entries in one
// database transaction.
func (r *PgxVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher, entries []domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelVoucher(voucher)
	headerQuery := `
		INSERT INTO vouchers (` + voucherColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err = tx.Exec(ctx, headerQuery,
		m.VoucherID, m.VoucherNumber, m.VoucherTypeID, m.TransactionDate,
		nullable(m.ReferenceNumber), nullable(m.Narration), nullable(m.PartyType), nullable(m.PartyID),
		m.TotalAmount, m.TaxAmount, m.DiscountAmount, m.Status, m.IsGSTApplicable,
		nullable(m.PostedBy), m.PostedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: voucher number %s already exists", apperrors.ErrDuplicate, m.VoucherNumber)
		}
		return fmt.Errorf("failed to insert voucher %s: %w", m.VoucherID, err)
	}

	entryQuery := `
		INSERT INTO journal_entries (entry_id, voucher_id, account_id, entry_type, amount, narration, reference_type, reference_id, transaction_date, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	batch := &pgx.Batch{}
	for _, entry := range entries {
		me := mapping.ToModelJournalEntry(entry)
		batch.Queue(entryQuery,
			me.EntryID, me.VoucherID, me.AccountID, me.EntryType, me.Amount,
			nullable(me.Narration), nullable(me.ReferenceType), nullable(me.ReferenceID),
			me.TransactionDate, me.CreatedAt, me.CreatedBy,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert entries for voucher %s: %w", m.VoucherID, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxVoucherRepository) findVoucher(ctx context.Context, where string, arg any) (*domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE ` + where + `;`
	voucher, err := scanVoucher(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		return nil, err
	}
	entries, err := r.findEntriesByVoucherID(ctx, voucher.VoucherID)
	if err != nil {
		return nil, err
	}
	voucher.Entries = entries
	return voucher, nil
}

// FindVoucherByID retrieves a voucher with its entries attached.
func (r *PgxVoucherRepository) FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	return r.findVoucher(ctx, "voucher_id = $1", voucherID)
}

// FindVoucherByNumber retrieves a voucher by its unique number.
func (r *PgxVoucherRepository) FindVoucherByNumber(ctx context.Context, voucherNumber string) (*domain.Voucher, error) {
	return r.findVoucher(ctx, "voucher_number = $1", voucherNumber)
}

func (r *PgxVoucherRepository) findEntriesByVoucherID(ctx context.Context, voucherID string) ([]domain.JournalEntry, error) {
	query := `
		SELECT entry_id, voucher_id, account_id, entry_type, amount, narration, reference_type, reference_id, transaction_date, created_at, created_by
		FROM journal_entries
		WHERE voucher_id = $1
		ORDER BY entry_id;
	`
	rows, err := r.Pool.Query(ctx, query, voucherID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries for voucher %s: %w", voucherID, err)
	}
	defer rows.Close()

	var ms []models.JournalEntry
	for rows.Next() {
		var m models.JournalEntry
		var narration, refType, refID sql.NullString
		if err := rows.Scan(
			&m.EntryID, &m.VoucherID, &m.AccountID, &m.EntryType, &m.Amount,
			&narration, &refType, &refID, &m.TransactionDate, &m.CreatedAt, &m.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		m.Narration = narration.String
		m.ReferenceType = refType.String
		m.ReferenceID = refID.String
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return mapping.ToDomainJournalEntrySlice(ms), nil
}

// ListVouchers retrieves voucher headers matching the filter, newest first.
// Entries are not attached; use FindVoucherByID for the full document.
func (r *PgxVoucherRepository) ListVouchers(ctx context.Context, filter portsrepo.VoucherListFilter) ([]domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE 1=1`
	args := []any{}
	n := 0

	addArg := func(clause string, value any) {
		n++
		query += fmt.Sprintf(" AND %s $%d", clause, n)
		args = append(args, value)
	}

	if filter.VoucherTypeID != "" {
		addArg("voucher_type_id =", filter.VoucherTypeID)
	}
	if filter.Status != "" {
		addArg("status =", string(filter.Status))
	}
	if filter.FromDate != nil {
		addArg("transaction_date >=", *filter.FromDate)
	}
	if filter.ToDate != nil {
		addArg("transaction_date <=", *filter.ToDate)
	}
	if filter.PartyType != "" {
		addArg("party_type =", string(filter.PartyType))
	}
	if filter.PartyID != "" {
		addArg("party_id =", filter.PartyID)
	}

	offset := filter.Offset
	if filter.PageToken != "" {
		txnDate, createdAt, err := pagination.DecodeToken(filter.PageToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += fmt.Sprintf(" AND (transaction_date, created_at) < ($%d, $%d)", n+1, n+2)
		args = append(args, txnDate, createdAt)
		n += 2
		offset = 0
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	query += fmt.Sprintf(" ORDER BY transaction_date DESC, created_at DESC LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list vouchers: %w", err)
	}
	defer rows.Close()

	var vouchers []domain.Voucher
	for rows.Next() {
		voucher, err := scanVoucher(rows)
		if err != nil {
			return nil, err
		}
		vouchers = append(vouchers, *voucher)
	}
	return vouchers, rows.Err()
}

// ListVouchersByRef retrieves vouchers whose entries reference the given document.
func (r *PgxVoucherRepository) ListVouchersByRef(ctx context.Context, ref domain.DocumentRef) ([]domain.Voucher, error) {
	query := `
		SELECT DISTINCT ` + prefixColumns("v", voucherColumns) + `
		FROM vouchers v
		JOIN journal_entries e ON e.voucher_id = v.voucher_id
		WHERE e.reference_type = $1 AND e.reference_id = $2
		ORDER BY v.transaction_date, v.created_at;
	`
	rows, err := r.Pool.Query(ctx, query, string(ref.Kind), ref.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vouchers by reference: %w", err)
	}
	defer rows.Close()

	var vouchers []domain.Voucher
	for rows.Next() {
		voucher, err := scanVoucher(rows)
		if err != nil {
			return nil, err
		}
		vouchers = append(vouchers, *voucher)
	}
	return vouchers, rows.Err()
}

// SumEntriesByAccount aggregates posted debit and credit totals for one
// account, optionally up to a cut-off date.
func (r *PgxVoucherRepository) SumEntriesByAccount(ctx context.Context, accountID string, asOf *time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN e.entry_type = 'DEBIT' THEN e.amount ELSE 0 END), 0) AS total_debit,
			COALESCE(SUM(CASE WHEN e.entry_type = 'CREDIT' THEN e.amount ELSE 0 END), 0) AS total_credit
		FROM journal_entries e
		JOIN vouchers v ON v.voucher_id = e.voucher_id
		WHERE e.account_id = $1
			AND v.status = 'POSTED'
			AND ($2::timestamptz IS NULL OR e.transaction_date <= $2)
	`
	var debits, credits decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, accountID, asOf).Scan(&debits, &credits); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to sum entries for account %s: %w", accountID, err)
	}
	return debits, credits, nil
}

// PostVoucher applies the balance deltas and flips the voucher to POSTED, all
// inside one transaction. The voucher row is locked first so a concurrent
// post of the same voucher observes the status flip, then every touched
// account row is locked before its balance is mutated.
func (r *PgxVoucherRepository) PostVoucher(ctx context.Context, voucherID string, postedBy string, now time.Time, balanceChanges map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	// 1. Lock the voucher row and guard the status transition.
	var status string
	err = tx.QueryRow(ctx, `SELECT status FROM vouchers WHERE voucher_id = $1 FOR UPDATE;`, voucherID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock voucher %s: %w", voucherID, err)
	}
	switch domain.VoucherStatus(status) {
	case domain.VoucherPosted:
		return apperrors.ErrAlreadyPosted
	case domain.VoucherCancelled:
		return apperrors.ErrVoucherCancelled
	}

	// 2. Lock the affected accounts.
	accountIDs := make([]string, 0, len(balanceChanges))
	for accountID := range balanceChanges {
		accountIDs = append(accountIDs, accountID)
	}
	if _, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs); err != nil {
		return fmt.Errorf("failed to lock accounts for voucher %s: %w", voucherID, err)
	}

	// 3. Apply the balance deltas.
	if err := r.accountRepo.ApplyBalanceDeltasInTx(ctx, tx, balanceChanges, postedBy, now); err != nil {
		return fmt.Errorf("failed to apply balances for voucher %s: %w", voucherID, err)
	}

	// 4. Freeze the voucher.
	_, err = tx.Exec(ctx, `
		UPDATE vouchers
		SET status = $2, posted_by = $3, posted_at = $4, last_updated_at = $4, last_updated_by = $3
		WHERE voucher_id = $1;
	`, voucherID, string(domain.VoucherPosted), postedBy, now)
	if err != nil {
		return fmt.Errorf("failed to mark voucher %s posted: %w", voucherID, err)
	}

	return r.Commit(ctx, tx)
}

// CancelVoucher marks a draft voucher cancelled. The guard is in the WHERE
// clause so a posted voucher is never silently cancelled.
func (r *PgxVoucherRepository) CancelVoucher(ctx context.Context, voucherID string, userID string, now time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE vouchers
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE voucher_id = $1 AND status = $5;
	`, voucherID, string(domain.VoucherCancelled), now, userID, string(domain.VoucherDraft))
	if err != nil {
		return fmt.Errorf("failed to cancel voucher %s: %w", voucherID, err)
	}
	if tag.RowsAffected() == 0 {
		// Distinguish a missing voucher from a non-draft one.
		var status string
		err := r.Pool.QueryRow(ctx, `SELECT status FROM vouchers WHERE voucher_id = $1;`, voucherID).Scan(&status)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to check voucher %s status: %w", voucherID, err)
		}
		return apperrors.ErrVoucherNotDraft
	}
	return nil
}

package pgsql

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/karkhana/factory_ledger_app/internal/apperrors"
	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	"github.com/karkhana/factory_ledger_app/internal/models"
	"github.com/karkhana/factory_ledger_app/internal/utils/mapping"
)

// nullable turns an empty string into a NULL parameter.
func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// scanVoucher scans one voucher header row in voucherColumns order.
func scanVoucher(row pgx.Row) (*domain.Voucher, error) {
	var m models.Voucher
	var refNumber, narration, partyType, partyID, postedBy sql.NullString
	err := row.Scan(
		&m.VoucherID, &m.VoucherNumber, &m.VoucherTypeID, &m.TransactionDate,
		&refNumber, &narration, &partyType, &partyID,
		&m.TotalAmount, &m.TaxAmount, &m.DiscountAmount, &m.Status, &m.IsGSTApplicable,
		&postedBy, &m.PostedAt,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan voucher: %w", err)
	}
	m.ReferenceNumber = refNumber.String
	m.Narration = narration.String
	m.PartyType = partyType.String
	m.PartyID = partyID.String
	m.PostedBy = postedBy.String
	voucher := mapping.ToDomainVoucher(m)
	return &voucher, nil
}

// prefixColumns qualifies a comma-separated column list with a table alias.
func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}

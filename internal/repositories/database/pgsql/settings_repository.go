package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/karkhana/factory_ledger_app/internal/apperrors"
	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	portsrepo "github.com/karkhana/factory_ledger_app/internal/core/ports/repositories"
	"github.com/karkhana/factory_ledger_app/internal/models"
	"github.com/karkhana/factory_ledger_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

const settingsColumns = `settings_id, company_name, gstin, cgst_rate, sgst_rate, igst_rate,
	financial_year_start_month, auto_post_vouchers,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxSettingsRepository struct {
	BaseRepository
}

// newPgxSettingsRepository creates the company settings repository.
func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepository {
	return &PgxSettingsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SettingsRepository = (*PgxSettingsRepository)(nil)

func scanSettings(row pgx.Row) (*domain.CompanySettings, error) {
	var m models.CompanySettings
	var gstin sql.NullString
	err := row.Scan(
		&m.SettingsID, &m.CompanyName, &gstin, &m.CGSTRate, &m.SGSTRate, &m.IGSTRate,
		&m.FinancialYearStartMonth, &m.AutoPostVouchers,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan company settings: %w", err)
	}
	m.GSTIN = gstin.String
	s := mapping.ToDomainCompanySettings(m)
	return &s, nil
}

// GetOrCreateDefault returns the single settings row, inserting a default one
// on first access. A concurrent first access is tolerated by re-reading after
// a duplicate insert.
func (r *PgxSettingsRepository) GetOrCreateDefault(ctx context.Context) (*domain.CompanySettings, error) {
	selectQuery := `SELECT ` + settingsColumns + ` FROM company_settings ORDER BY created_at LIMIT 1;`

	settings, err := scanSettings(r.Pool.QueryRow(ctx, selectQuery))
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	insertQuery := `
		INSERT INTO company_settings (settings_id, company_name, cgst_rate, sgst_rate, igst_rate, financial_year_start_month, auto_post_vouchers, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $8, $9);
	`
	_, err = r.Pool.Exec(ctx, insertQuery,
		uuid.NewString(), "My Company",
		decimal.NewFromInt(9), decimal.NewFromInt(9), decimal.NewFromInt(18),
		4, false, now, "system",
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
			return nil, fmt.Errorf("failed to create default company settings: %w", err)
		}
	}
	return scanSettings(r.Pool.QueryRow(ctx, selectQuery))
}

// UpdateSettings persists changes to the settings row.
func (r *PgxSettingsRepository) UpdateSettings(ctx context.Context, settings domain.CompanySettings) error {
	m := mapping.ToModelCompanySettings(settings)
	query := `
		UPDATE company_settings
		SET company_name = $2, gstin = $3, cgst_rate = $4, sgst_rate = $5, igst_rate = $6,
			financial_year_start_month = $7, auto_post_vouchers = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE settings_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.SettingsID, m.CompanyName, nullable(m.GSTIN), m.CGSTRate, m.SGSTRate, m.IGSTRate,
		m.FinancialYearStartMonth, m.AutoPostVouchers,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update company settings %s: %w", m.SettingsID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

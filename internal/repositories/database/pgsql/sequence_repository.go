package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/karkhana/factory_ledger_app/internal/core/ports/repositories"
)

type PgxSequenceRepository struct {
	BaseRepository
}

// newPgxSequenceRepository creates the voucher sequence repository.
func newPgxSequenceRepository(pool *pgxpool.Pool) portsrepo.SequenceRepository {
	return &PgxSequenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SequenceRepository = (*PgxSequenceRepository)(nil)

// NextSequence atomically increments and returns the counter for the given
// voucher type and calendar year. The upsert serializes concurrent callers on
// the (type_code, year) row, so two allocations can never return the same
// number. A fresh year starts a new row at 1.
func (r *PgxSequenceRepository) NextSequence(ctx context.Context, typeCode string, year int) (int64, error) {
	query := `
		INSERT INTO voucher_sequences (type_code, year, last_number)
		VALUES ($1, $2, 1)
		ON CONFLICT (type_code, year)
		DO UPDATE SET last_number = voucher_sequences.last_number + 1
		RETURNING last_number;
	`
	var next int64
	if err := r.Pool.QueryRow(ctx, query, typeCode, year).Scan(&next); err != nil {
		return 0, fmt.Errorf("failed to allocate sequence for %s/%d: %w", typeCode, year, err)
	}
	return next, nil
}

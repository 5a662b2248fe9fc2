package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/karkhana/factory_ledger_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository over one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(pool)
	return &portsrepo.RepositoryProvider{
		AccountRepo:   accountRepo,
		VoucherRepo:   newPgxVoucherRepository(pool, accountRepo),
		SequenceRepo:  newPgxSequenceRepository(pool),
		PartyRepo:     newPgxPartyRepository(pool),
		GRNRepo:       newPgxGRNWorkflowRepository(pool),
		SettingsRepo:  newPgxSettingsRepository(pool),
		ReportingRepo: newPgxReportingRepository(pool),
	}
}

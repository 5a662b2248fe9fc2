package repositories

// RepositoryProvider bundles every repository implementation for injection
// into the service container.
type RepositoryProvider struct {
	AccountRepo   AccountRepository
	VoucherRepo   VoucherRepository
	SequenceRepo  SequenceRepository
	PartyRepo     PartyRepository
	GRNRepo       GRNWorkflowRepository
	SettingsRepo  SettingsRepository
	ReportingRepo ReportingRepository
}

package services

import (
	portsrepo "github.com/karkhana/factory_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/karkhana/factory_ledger_app/internal/core/ports/services"
)

// NewServiceContainer wires every service facade over the repository provider.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	chartSvc := NewChartService(repos.AccountRepo, repos.VoucherRepo, repos.PartyRepo)
	numberingSvc := NewNumberingService(repos.SequenceRepo)
	voucherSvc := NewVoucherService(repos.VoucherRepo, repos.AccountRepo, numberingSvc)
	settingsSvc := NewSettingsService(repos.SettingsRepo)

	return &portssvc.ServiceContainer{
		Chart:     chartSvc,
		Voucher:   voucherSvc,
		Documents: NewDocumentService(chartSvc, voucherSvc, settingsSvc),
		GRN:       NewGRNWorkflowService(repos.GRNRepo, chartSvc, voucherSvc),
		Reporting: NewReportingService(repos.ReportingRepo),
		Settings:  settingsSvc,
		Party:     NewPartyService(repos.PartyRepo),
		Tally:     NewTallyService(repos.AccountRepo, repos.VoucherRepo, chartSvc),
	}
}

package services

// ServiceContainer bundles every service facade for handler registration.
type ServiceContainer struct {
	Chart     ChartSvcFacade
	Voucher   VoucherSvcFacade
	Documents DocumentVoucherSvcFacade
	GRN       GRNWorkflowSvcFacade
	Reporting ReportingSvcFacade
	Settings  SettingsSvcFacade
	Party     PartySvcFacade
	Tally     TallySvcFacade
}

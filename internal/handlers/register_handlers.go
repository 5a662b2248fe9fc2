package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/karkhana/factory_ledger_app/internal/core/ports/services"
	"github.com/karkhana/factory_ledger_app/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidations()

	registerHomeRoutes(r)
	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	registerAccountRoutes(v1, services.Chart)
	registerVoucherRoutes(v1, services.Voucher)
	registerDocumentRoutes(v1, services.Documents)
	registerGRNRoutes(v1, services.GRN)
	registerReportingRoutes(v1, services.Reporting)
	registerSettingsRoutes(v1, services.Settings)
	registerPartyRoutes(v1, services.Party)
	registerTallyRoutes(v1, services.Tally)
}

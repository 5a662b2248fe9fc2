package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/karkhana/factory_ledger_app/internal/core/ports/services"
	"github.com/karkhana/factory_ledger_app/internal/dto"
)

// settingsHandler handles HTTP requests for company settings.
type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

func newSettingsHandler(settingsService portssvc.SettingsSvcFacade) *settingsHandler {
	return &settingsHandler{settingsService: settingsService}
}

// registerSettingsRoutes registers company settings routes.
func registerSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade) {
	h := newSettingsHandler(settingsService)

	rg.GET("/settings", h.getSettings)
	rg.PATCH("/settings", h.updateSettings)
}

func (h *settingsHandler) getSettings(c *gin.Context) {
	logger := requestLogger(c)

	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to get settings")
		return
	}
	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

func (h *settingsHandler) updateSettings(c *gin.Context) {
	logger := requestLogger(c)

	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), req, callerID(c))
	if err != nil {
		respondError(c, logger, err, "Failed to update settings")
		return
	}
	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

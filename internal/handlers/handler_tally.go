package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/karkhana/factory_ledger_app/internal/core/ports/services"
)

// tallyHandler handles Tally XML import and export.
type tallyHandler struct {
	tallyService portssvc.TallySvcFacade
}

func newTallyHandler(tallyService portssvc.TallySvcFacade) *tallyHandler {
	return &tallyHandler{tallyService: tallyService}
}

// registerTallyRoutes registers Tally exchange routes.
func registerTallyRoutes(rg *gin.RouterGroup, tallyService portssvc.TallySvcFacade) {
	h := newTallyHandler(tallyService)

	tally := rg.Group("/tally")
	{
		tally.GET("/export/masters", h.exportMasters)
		tally.GET("/export/vouchers", h.exportVouchers)
		tally.POST("/import/masters", h.importMasters)
	}
}

func (h *tallyHandler) exportMasters(c *gin.Context) {
	logger := requestLogger(c)

	payload, err := h.tallyService.ExportMasters(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to export masters")
		return
	}
	c.Data(http.StatusOK, "application/xml", payload)
}

func (h *tallyHandler) exportVouchers(c *gin.Context) {
	logger := requestLogger(c)

	now := time.Now()
	firstDayOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	from, ok := parseDateQuery(c, "fromDate", firstDayOfMonth)
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "toDate", now)
	if !ok {
		return
	}

	payload, err := h.tallyService.ExportVouchers(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to export vouchers")
		return
	}
	c.Data(http.StatusOK, "application/xml", payload)
}

func (h *tallyHandler) importMasters(c *gin.Context) {
	logger := requestLogger(c)

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil || len(payload) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body must contain a Tally XML document"})
		return
	}

	summary, err := h.tallyService.ImportMasters(c.Request.Context(), payload, callerID(c))
	if err != nil {
		respondError(c, logger, err, "Failed to import masters")
		return
	}
	c.JSON(http.StatusOK, summary)
}

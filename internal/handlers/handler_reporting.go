package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	portssvc "github.com/karkhana/factory_ledger_app/internal/core/ports/services"
	"github.com/karkhana/factory_ledger_app/internal/dto"
)

// reportingHandler handles HTTP requests for financial reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(reportingService portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: reportingService}
}

// registerReportingRoutes registers financial report routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/profit-and-loss", h.getProfitAndLoss)
		reports.GET("/balance-sheet", h.getBalanceSheet)
		reports.GET("/day-book", h.getDayBook)
		reports.GET("/outstanding-payables", h.getOutstandingPayables)
		reports.GET("/outstanding-receivables", h.getOutstandingReceivables)
	}
}

func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := requestLogger(c)

	asOf, ok := parseDateQuery(c, "asOf", time.Now())
	if !ok {
		return
	}

	rows, err := h.reportingService.TrialBalance(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, logger, err, "Failed to generate trial balance report")
		return
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(rows, asOf))
}

func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
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
	if from.After(to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fromDate must be before or equal to toDate"})
		return
	}

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to generate profit and loss report")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfitAndLossResponse(report, from, to))
}

func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := requestLogger(c)

	asOf, ok := parseDateQuery(c, "asOf", time.Now())
	if !ok {
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, logger, err, "Failed to generate balance sheet report")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report, asOf))
}

func (h *reportingHandler) getDayBook(c *gin.Context) {
	logger := requestLogger(c)

	date, ok := parseDateQuery(c, "date", time.Now())
	if !ok {
		return
	}

	rows, err := h.reportingService.DayBook(c.Request.Context(), date)
	if err != nil {
		respondError(c, logger, err, "Failed to generate day book")
		return
	}
	c.JSON(http.StatusOK, dto.ToDayBookResponse(rows, date))
}

func (h *reportingHandler) getOutstandingPayables(c *gin.Context) {
	logger := requestLogger(c)

	rows, err := h.reportingService.OutstandingPayables(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list outstanding payables")
		return
	}
	c.JSON(http.StatusOK, dto.ToOutstandingResponse(rows, domain.PartySupplier))
}

func (h *reportingHandler) getOutstandingReceivables(c *gin.Context) {
	logger := requestLogger(c)

	rows, err := h.reportingService.OutstandingReceivables(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list outstanding receivables")
		return
	}
	c.JSON(http.StatusOK, dto.ToOutstandingResponse(rows, domain.PartyCustomer))
}

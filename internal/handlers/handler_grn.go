package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/karkhana/factory_ledger_app/internal/core/ports/services"
	"github.com/karkhana/factory_ledger_app/internal/dto"
)

// grnHandler exposes the three-step GRN clearing workflow.
type grnHandler struct {
	grnService portssvc.GRNWorkflowSvcFacade
}

func newGRNHandler(grnService portssvc.GRNWorkflowSvcFacade) *grnHandler {
	return &grnHandler{grnService: grnService}
}

// registerGRNRoutes registers GRN clearing workflow routes.
func registerGRNRoutes(rg *gin.RouterGroup, grnService portssvc.GRNWorkflowSvcFacade) {
	h := newGRNHandler(grnService)

	grns := rg.Group("/grns/:grn_id")
	{
		grns.GET("", h.getWorkflowStatus)
		grns.POST("/receipt", h.recordMaterialReceipt)
		grns.POST("/invoice", h.recordVendorInvoice)
		grns.POST("/payment", h.recordPayment)
	}
}

func (h *grnHandler) getWorkflowStatus(c *gin.Context) {
	logger := requestLogger(c)
	grnID := c.Param("grn_id")

	status, err := h.grnService.GetWorkflowStatus(c.Request.Context(), grnID, callerID(c))
	if err != nil {
		respondError(c, logger, err, "Failed to get GRN workflow status")
		return
	}
	c.JSON(http.StatusOK, dto.ToGRNWorkflowResponse(status))
}

func (h *grnHandler) recordMaterialReceipt(c *gin.Context) {
	logger := requestLogger(c)
	grnID := c.Param("grn_id")

	var req dto.GRNReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := h.grnService.RecordMaterialReceipt(c.Request.Context(), grnID, req, callerID(c))
	if err != nil {
		respondError(c, logger, err, "Failed to record material receipt")
		return
	}
	c.JSON(http.StatusCreated, dto.ToGRNWorkflowResponse(status))
}

func (h *grnHandler) recordVendorInvoice(c *gin.Context) {
	logger := requestLogger(c)
	grnID := c.Param("grn_id")

	var req dto.GRNInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := h.grnService.RecordVendorInvoice(c.Request.Context(), grnID, req, callerID(c))
	if err != nil {
		respondError(c, logger, err, "Failed to record vendor invoice")
		return
	}
	c.JSON(http.StatusCreated, dto.ToGRNWorkflowResponse(status))
}

func (h *grnHandler) recordPayment(c *gin.Context) {
	logger := requestLogger(c)
	grnID := c.Param("grn_id")

	var req dto.GRNPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := h.grnService.RecordPayment(c.Request.Context(), grnID, req, callerID(c))
	if err != nil {
		respondError(c, logger, err, "Failed to record GRN payment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToGRNWorkflowResponse(status))
}

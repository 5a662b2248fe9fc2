package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	portssvc "github.com/karkhana/factory_ledger_app/internal/core/ports/services"
	"github.com/karkhana/factory_ledger_app/internal/dto"
)

// documentHandler exposes the business document voucher builders.
type documentHandler struct {
	documentService portssvc.DocumentVoucherSvcFacade
}

func newDocumentHandler(documentService portssvc.DocumentVoucherSvcFacade) *documentHandler {
	return &documentHandler{documentService: documentService}
}

// registerDocumentRoutes registers the document-to-voucher builder routes.
func registerDocumentRoutes(rg *gin.RouterGroup, documentService portssvc.DocumentVoucherSvcFacade) {
	h := newDocumentHandler(documentService)

	rg.POST("/purchases", h.createPurchase)
	rg.POST("/sales", h.createSale)
	rg.POST("/payments", h.createPayment)
	rg.POST("/receipts", h.createReceipt)
	rg.POST("/expenses", h.createExpense)
	rg.POST("/salaries", h.createSalary)
	rg.POST("/production-costs", h.createProductionCost)
	rg.POST("/production-completions", h.createProductionCompletion)
	rg.POST("/dispatches", h.createDispatchCOGS)
}

// buildVoucher factors the bind/call/respond cycle shared by every builder
// endpoint.
func buildVoucher[T any](c *gin.Context, build func(ctx *gin.Context, req T) (*domain.Voucher, error), failMsg string) {
	logger := requestLogger(c)

	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	voucher, err := build(c, req)
	if err != nil {
		respondError(c, logger, err, failMsg)
		return
	}
	c.JSON(http.StatusCreated, dto.ToVoucherResponse(voucher))
}

func (h *documentHandler) createPurchase(c *gin.Context) {
	buildVoucher(c, func(ctx *gin.Context, req dto.PurchaseBillRequest) (*domain.Voucher, error) {
		return h.documentService.CreatePurchaseVoucher(ctx.Request.Context(), req, callerID(ctx))
	}, "Failed to book purchase bill")
}

func (h *documentHandler) createSale(c *gin.Context) {
	buildVoucher(c, func(ctx *gin.Context, req dto.SalesInvoiceRequest) (*domain.Voucher, error) {
		return h.documentService.CreateSalesVoucher(ctx.Request.Context(), req, callerID(ctx))
	}, "Failed to book sales invoice")
}

func (h *documentHandler) createPayment(c *gin.Context) {
	buildVoucher(c, func(ctx *gin.Context, req dto.PaymentMadeRequest) (*domain.Voucher, error) {
		return h.documentService.CreatePaymentVoucher(ctx.Request.Context(), req, callerID(ctx))
	}, "Failed to book payment")
}

func (h *documentHandler) createReceipt(c *gin.Context) {
	buildVoucher(c, func(ctx *gin.Context, req dto.PaymentReceivedRequest) (*domain.Voucher, error) {
		return h.documentService.CreateReceiptVoucher(ctx.Request.Context(), req, callerID(ctx))
	}, "Failed to book receipt")
}

func (h *documentHandler) createExpense(c *gin.Context) {
	buildVoucher(c, func(ctx *gin.Context, req dto.ExpenseRequest) (*domain.Voucher, error) {
		return h.documentService.CreateExpenseVoucher(ctx.Request.Context(), req, callerID(ctx))
	}, "Failed to book expense")
}

func (h *documentHandler) createSalary(c *gin.Context) {
	buildVoucher(c, func(ctx *gin.Context, req dto.SalaryRequest) (*domain.Voucher, error) {
		return h.documentService.CreateSalaryVoucher(ctx.Request.Context(), req, callerID(ctx))
	}, "Failed to book salary payment")
}

func (h *documentHandler) createProductionCost(c *gin.Context) {
	buildVoucher(c, func(ctx *gin.Context, req dto.ProductionCostRequest) (*domain.Voucher, error) {
		return h.documentService.CreateProductionCostVoucher(ctx.Request.Context(), req, callerID(ctx))
	}, "Failed to book production cost")
}

func (h *documentHandler) createProductionCompletion(c *gin.Context) {
	buildVoucher(c, func(ctx *gin.Context, req dto.ProductionCompletionRequest) (*domain.Voucher, error) {
		return h.documentService.CreateProductionCompletionVoucher(ctx.Request.Context(), req, callerID(ctx))
	}, "Failed to book production completion")
}

func (h *documentHandler) createDispatchCOGS(c *gin.Context) {
	buildVoucher(c, func(ctx *gin.Context, req dto.DispatchCOGSRequest) (*domain.Voucher, error) {
		return h.documentService.CreateDispatchCOGSVoucher(ctx.Request.Context(), req, callerID(ctx))
	}, "Failed to book dispatch cost")
}

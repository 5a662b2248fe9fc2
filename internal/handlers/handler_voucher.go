package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	portsrepo "github.com/karkhana/factory_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/karkhana/factory_ledger_app/internal/core/ports/services"
	"github.com/karkhana/factory_ledger_app/internal/dto"
	"github.com/karkhana/factory_ledger_app/internal/utils/pagination"
)

// voucherHandler handles HTTP requests for the voucher lifecycle.
type voucherHandler struct {
	voucherService portssvc.VoucherSvcFacade
}

func newVoucherHandler(voucherService portssvc.VoucherSvcFacade) *voucherHandler {
	return &voucherHandler{voucherService: voucherService}
}

// registerVoucherRoutes registers voucher lifecycle routes.
func registerVoucherRoutes(rg *gin.RouterGroup, voucherService portssvc.VoucherSvcFacade) {
	h := newVoucherHandler(voucherService)

	vouchers := rg.Group("/vouchers")
	{
		vouchers.POST("", h.createVoucher)
		vouchers.GET("", h.listVouchers)
		vouchers.GET("/:voucher_id", h.getVoucher)
		vouchers.POST("/:voucher_id/post", h.postVoucher)
		vouchers.POST("/:voucher_id/cancel", h.cancelVoucher)
	}

	rg.GET("/voucher-types", h.listVoucherTypes)
}

func (h *voucherHandler) createVoucher(c *gin.Context) {
	logger := requestLogger(c)

	var req dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	voucher, err := h.voucherService.CreateVoucher(c.Request.Context(), req, callerID(c))
	if err != nil {
		respondError(c, logger, err, "Failed to create voucher")
		return
	}
	c.JSON(http.StatusCreated, dto.ToVoucherResponse(voucher))
}

func (h *voucherHandler) listVouchers(c *gin.Context) {
	logger := requestLogger(c)

	var params dto.ListVouchersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if params.Number != "" {
		voucher, err := h.voucherService.GetVoucherByNumber(c.Request.Context(), params.Number)
		if err != nil {
			respondError(c, logger, err, "Failed to find voucher by number")
			return
		}
		c.JSON(http.StatusOK, gin.H{"vouchers": []dto.VoucherResponse{dto.ToVoucherResponse(voucher)}})
		return
	}

	if params.RefType != "" || params.RefID != "" {
		if params.RefType == "" || params.RefID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "refType and refID must be provided together"})
			return
		}
		vouchers, err := h.voucherService.ListVouchersByRef(c.Request.Context(), domain.DocumentRef{
			Kind: domain.RefKind(params.RefType),
			ID:   params.RefID,
		})
		if err != nil {
			respondError(c, logger, err, "Failed to list vouchers by reference")
			return
		}
		c.JSON(http.StatusOK, gin.H{"vouchers": dto.ToListVoucherResponse(vouchers)})
		return
	}

	filter := portsrepo.VoucherListFilter{
		Status:    domain.VoucherStatus(params.Status),
		Limit:     params.Limit,
		Offset:    params.Offset,
		PageToken: params.PageToken,
	}
	if params.FromDate != "" {
		from, err := time.Parse("2006-01-02", params.FromDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fromDate format. Use YYYY-MM-DD"})
			return
		}
		filter.FromDate = &from
	}
	if params.ToDate != "" {
		to, err := time.Parse("2006-01-02", params.ToDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid toDate format. Use YYYY-MM-DD"})
			return
		}
		filter.ToDate = &to
	}
	if params.TypeCode != "" {
		voucherTypes, err := h.voucherService.ListVoucherTypes(c.Request.Context())
		if err != nil {
			respondError(c, logger, err, "Failed to resolve voucher type")
			return
		}
		for _, vt := range voucherTypes {
			if vt.Code == params.TypeCode {
				filter.VoucherTypeID = vt.VoucherTypeID
				break
			}
		}
		if filter.VoucherTypeID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown voucher type code"})
			return
		}
	}

	vouchers, err := h.voucherService.ListVouchers(c.Request.Context(), filter)
	if err != nil {
		respondError(c, logger, err, "Failed to list vouchers")
		return
	}

	res := gin.H{"vouchers": dto.ToListVoucherResponse(vouchers)}
	if len(vouchers) == params.Limit && params.Limit > 0 {
		last := vouchers[len(vouchers)-1]
		res["nextToken"] = pagination.EncodeToken(last.TransactionDate, last.CreatedAt)
	}
	c.JSON(http.StatusOK, res)
}

func (h *voucherHandler) getVoucher(c *gin.Context) {
	logger := requestLogger(c)
	voucherID := c.Param("voucher_id")

	voucher, err := h.voucherService.GetVoucherByID(c.Request.Context(), voucherID)
	if err != nil {
		respondError(c, logger, err, "Failed to get voucher")
		return
	}
	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

func (h *voucherHandler) postVoucher(c *gin.Context) {
	logger := requestLogger(c)
	voucherID := c.Param("voucher_id")

	voucher, err := h.voucherService.PostVoucher(c.Request.Context(), voucherID, callerID(c))
	if err != nil {
		respondError(c, logger, err, "Failed to post voucher")
		return
	}
	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

func (h *voucherHandler) cancelVoucher(c *gin.Context) {
	logger := requestLogger(c)
	voucherID := c.Param("voucher_id")

	if err := h.voucherService.CancelVoucher(c.Request.Context(), voucherID, callerID(c)); err != nil {
		respondError(c, logger, err, "Failed to cancel voucher")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *voucherHandler) listVoucherTypes(c *gin.Context) {
	logger := requestLogger(c)

	voucherTypes, err := h.voucherService.ListVoucherTypes(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list voucher types")
		return
	}

	res := make([]dto.VoucherTypeResponse, len(voucherTypes))
	for i, vt := range voucherTypes {
		res[i] = dto.ToVoucherTypeResponse(&vt)
	}
	c.JSON(http.StatusOK, gin.H{"voucherTypes": res})
}

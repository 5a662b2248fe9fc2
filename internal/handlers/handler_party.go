package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/karkhana/factory_ledger_app/internal/core/ports/services"
	"github.com/karkhana/factory_ledger_app/internal/dto"
)

// partyHandler handles HTTP requests for suppliers and customers.
type partyHandler struct {
	partyService portssvc.PartySvcFacade
}

func newPartyHandler(partyService portssvc.PartySvcFacade) *partyHandler {
	return &partyHandler{partyService: partyService}
}

// registerPartyRoutes registers supplier and customer routes.
func registerPartyRoutes(rg *gin.RouterGroup, partyService portssvc.PartySvcFacade) {
	h := newPartyHandler(partyService)

	suppliers := rg.Group("/suppliers")
	{
		suppliers.POST("", h.createSupplier)
		suppliers.GET("", h.listSuppliers)
		suppliers.GET("/:supplier_id", h.getSupplier)
		suppliers.PATCH("/:supplier_id", h.updateSupplier)
	}

	customers := rg.Group("/customers")
	{
		customers.POST("", h.createCustomer)
		customers.GET("", h.listCustomers)
		customers.GET("/:customer_id", h.getCustomer)
		customers.PATCH("/:customer_id", h.updateCustomer)
	}
}

func listParams(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	return limit, offset
}

func (h *partyHandler) createSupplier(c *gin.Context) {
	logger := requestLogger(c)

	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	supplier, err := h.partyService.CreateSupplier(c.Request.Context(), req, callerID(c))
	if err != nil {
		respondError(c, logger, err, "Failed to create supplier")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSupplierResponse(supplier))
}

func (h *partyHandler) listSuppliers(c *gin.Context) {
	logger := requestLogger(c)
	limit, offset := listParams(c)

	suppliers, err := h.partyService.ListSuppliers(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, logger, err, "Failed to list suppliers")
		return
	}

	res := make([]dto.PartyResponse, len(suppliers))
	for i, s := range suppliers {
		res[i] = dto.ToSupplierResponse(&s)
	}
	c.JSON(http.StatusOK, gin.H{"suppliers": res})
}

func (h *partyHandler) getSupplier(c *gin.Context) {
	logger := requestLogger(c)

	supplier, err := h.partyService.GetSupplierByID(c.Request.Context(), c.Param("supplier_id"))
	if err != nil {
		respondError(c, logger, err, "Failed to get supplier")
		return
	}
	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

func (h *partyHandler) updateSupplier(c *gin.Context) {
	logger := requestLogger(c)

	var req dto.UpdatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	supplier, err := h.partyService.UpdateSupplier(c.Request.Context(), c.Param("supplier_id"), req, callerID(c))
	if err != nil {
		respondError(c, logger, err, "Failed to update supplier")
		return
	}
	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

func (h *partyHandler) createCustomer(c *gin.Context) {
	logger := requestLogger(c)

	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := h.partyService.CreateCustomer(c.Request.Context(), req, callerID(c))
	if err != nil {
		respondError(c, logger, err, "Failed to create customer")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

func (h *partyHandler) listCustomers(c *gin.Context) {
	logger := requestLogger(c)
	limit, offset := listParams(c)

	customers, err := h.partyService.ListCustomers(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, logger, err, "Failed to list customers")
		return
	}

	res := make([]dto.PartyResponse, len(customers))
	for i, cust := range customers {
		res[i] = dto.ToCustomerResponse(&cust)
	}
	c.JSON(http.StatusOK, gin.H{"customers": res})
}

func (h *partyHandler) getCustomer(c *gin.Context) {
	logger := requestLogger(c)

	customer, err := h.partyService.GetCustomerByID(c.Request.Context(), c.Param("customer_id"))
	if err != nil {
		respondError(c, logger, err, "Failed to get customer")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

func (h *partyHandler) updateCustomer(c *gin.Context) {
	logger := requestLogger(c)

	var req dto.UpdatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := h.partyService.UpdateCustomer(c.Request.Context(), c.Param("customer_id"), req, callerID(c))
	if err != nil {
		respondError(c, logger, err, "Failed to update customer")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

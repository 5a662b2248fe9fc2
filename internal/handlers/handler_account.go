package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/karkhana/factory_ledger_app/internal/core/ports/services"
	"github.com/karkhana/factory_ledger_app/internal/dto"
)

// accountHandler handles HTTP requests for the chart of accounts.
type accountHandler struct {
	chartService portssvc.ChartSvcFacade
}

func newAccountHandler(chartService portssvc.ChartSvcFacade) *accountHandler {
	return &accountHandler{chartService: chartService}
}

// registerAccountRoutes registers chart-of-accounts routes.
func registerAccountRoutes(rg *gin.RouterGroup, chartService portssvc.ChartSvcFacade) {
	h := newAccountHandler(chartService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:account_id", h.getAccount)
		accounts.PATCH("/:account_id", h.updateAccount)
		accounts.DELETE("/:account_id", h.deactivateAccount)
		accounts.GET("/:account_id/balance", h.getAccountBalance)
	}

	groups := rg.Group("/account-groups")
	{
		groups.POST("", h.createAccountGroup)
		groups.GET("", h.listAccountGroups)
		groups.GET("/:group_id/accounts", h.listGroupAccounts)
	}

	rg.POST("/setup/default-chart", h.setupDefaultChart)
}

func (h *accountHandler) createAccount(c *gin.Context) {
	logger := requestLogger(c)

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := h.chartService.CreateAccount(c.Request.Context(), req, callerID(c))
	if err != nil {
		respondError(c, logger, err, "Failed to create account")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := requestLogger(c)

	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accounts, err := h.chartService.ListAccounts(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, logger, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToListAccountResponse(accounts)})
}

func (h *accountHandler) getAccount(c *gin.Context) {
	logger := requestLogger(c)
	accountID := c.Param("account_id")

	account, err := h.chartService.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, logger, err, "Failed to get account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := requestLogger(c)
	accountID := c.Param("account_id")

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := h.chartService.UpdateAccount(c.Request.Context(), accountID, req, callerID(c))
	if err != nil {
		respondError(c, logger, err, "Failed to update account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

func (h *accountHandler) deactivateAccount(c *gin.Context) {
	logger := requestLogger(c)
	accountID := c.Param("account_id")

	if err := h.chartService.DeactivateAccount(c.Request.Context(), accountID, callerID(c)); err != nil {
		respondError(c, logger, err, "Failed to deactivate account")
		return
	}
	c.Status(http.StatusNoContent)
}

// getAccountBalance recomputes the balance from posted entries, optionally as
// of a cut-off date. Without asOf it should agree with the cached current
// balance.
func (h *accountHandler) getAccountBalance(c *gin.Context) {
	logger := requestLogger(c)
	accountID := c.Param("account_id")

	var asOf *time.Time
	if raw := c.Query("asOf"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asOf format. Use YYYY-MM-DD"})
			return
		}
		asOf = &parsed
	}

	balance, err := h.chartService.CalculateBalance(c.Request.Context(), accountID, asOf)
	if err != nil {
		respondError(c, logger, err, "Failed to calculate balance")
		return
	}

	resp := dto.AccountBalanceResponse{AccountID: accountID, Balance: balance}
	if asOf != nil {
		resp.AsOf = asOf.Format("2006-01-02")
	}
	c.JSON(http.StatusOK, resp)
}

func (h *accountHandler) createAccountGroup(c *gin.Context) {
	logger := requestLogger(c)

	var req dto.CreateAccountGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.chartService.CreateAccountGroup(c.Request.Context(), req, callerID(c))
	if err != nil {
		respondError(c, logger, err, "Failed to create account group")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAccountGroupResponse(group))
}

func (h *accountHandler) listAccountGroups(c *gin.Context) {
	logger := requestLogger(c)

	groups, err := h.chartService.ListAccountGroups(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list account groups")
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": dto.ToListAccountGroupResponse(groups)})
}

func (h *accountHandler) listGroupAccounts(c *gin.Context) {
	logger := requestLogger(c)

	accounts, err := h.chartService.ListAccountsByGroup(c.Request.Context(), c.Param("group_id"))
	if err != nil {
		respondError(c, logger, err, "Failed to list group accounts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"accounts": dto.ToListAccountResponse(accounts)})
}

// setupDefaultChart idempotently seeds the factory chart and voucher types.
func (h *accountHandler) setupDefaultChart(c *gin.Context) {
	logger := requestLogger(c)

	if err := h.chartService.SetupDefaultChart(c.Request.Context(), callerID(c)); err != nil {
		respondError(c, logger, err, "Failed to set up default chart")
		return
	}
	logger.Info("Default chart of accounts set up", slog.String("user_id", callerID(c)))
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

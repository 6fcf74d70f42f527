package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dealerdesk/backend/internal/apperrors"
	"github.com/dealerdesk/backend/internal/core/domain"
	portsrepo "github.com/dealerdesk/backend/internal/core/ports/repositories"
	portssvc "github.com/dealerdesk/backend/internal/core/ports/services"
	"github.com/dealerdesk/backend/internal/dto"
	"github.com/dealerdesk/backend/internal/middleware"
	"github.com/dealerdesk/backend/internal/utils"
)

// ledgerHandler handles HTTP requests for the transaction ledger.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
	posthogClient *utils.PosthogClientWrapper
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade, posthogClient *utils.PosthogClientWrapper) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls, posthogClient: posthogClient}
}

// registerLedgerRoutes registers routes for ledger entries. Appending and
// voiding entries requires the accountant role; reads and exports do not.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, userService portssvc.UserReaderSvc, posthogClient *utils.PosthogClientWrapper) {
	h := newLedgerHandler(ledgerService, posthogClient)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.GET("/export", h.exportTransactions)
		transactions.GET("/:id", h.getTransactionByID)
		transactions.POST("", middleware.RequireRole(userService, domain.RoleAccountant), h.appendEntry)
		transactions.DELETE("/:id", middleware.RequireRole(userService, domain.RoleAccountant), h.voidEntry)
	}
}

// filterFromParams converts bound query parameters into a repository filter.
func filterFromParams(params dto.ListTransactionsParams) portsrepo.TransactionFilter {
	filter := portsrepo.TransactionFilter{
		Scope:    domain.BranchScope(params.Branch),
		Search:   params.Search,
		PeriodID: params.Period,
		Limit:    params.Limit,
		Offset:   params.Offset,
	}
	if params.Type != "" {
		t := domain.EntryType(params.Type)
		filter.Type = &t
	}
	if params.Category != "" {
		cat := domain.EntryCategory(params.Category)
		filter.Category = &cat
	}
	return filter
}

// appendEntry godoc
// @Summary Append a ledger entry
// @Description Records a new manual journal entry; the reporting period is derived from the posting date
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Entry details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Account or branch not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [post]
func (h *ledgerHandler) appendEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for appendEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, err := h.ledgerService.AppendEntry(c.Request.Context(), req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to append ledger entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to append entry"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List ledger entries
// @Description Returns the filtered ledger view, newest posting date first
// @Tags transactions
// @Produce  json
// @Param   branch query string false "Branch ID or 'all'"
// @Param   search query string false "Case-insensitive search over description, account code and entry ID"
// @Param   type query string false "INCOME or EXPENSE"
// @Param   category query string false "Entry category"
// @Param   period query string false "Reporting period (e.g. 2026-08)"
// @Param   limit query int false "Max results (0 = all)"
// @Param   offset query int false "Offset"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *ledgerHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	txns, err := h.ledgerService.ListTransactions(c.Request.Context(), filterFromParams(params))
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{Transactions: dto.ToTransactionResponses(txns)})
}

// getTransactionByID godoc
// @Summary Get a ledger entry
// @Description Retrieves one ledger entry by ID
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *ledgerHandler) getTransactionByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	txn, err := h.ledgerService.GetTransactionByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Transaction not found"})
			return
		}
		logger.Error("Failed to get transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve transaction"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// voidEntry godoc
// @Summary Void a ledger entry
// @Description Removes an entry from the ledger entirely; voiding twice fails with 404
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 204 "Voided"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *ledgerHandler) voidEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.ledgerService.VoidEntry(c.Request.Context(), id, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Transaction not found"})
			return
		}
		logger.Error("Failed to void transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to void transaction"})
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, "entry_voided", map[string]any{
		"transaction_id": id,
	})

	c.Status(http.StatusNoContent)
}

// exportTransactions godoc
// @Summary Export ledger entries as CSV
// @Description Renders the filtered ledger view as a CSV download; identical filters over unchanged data produce identical bytes
// @Tags transactions
// @Produce  text/csv
// @Param   branch query string false "Branch ID or 'all'"
// @Param   search query string false "Search filter"
// @Param   type query string false "INCOME or EXPENSE"
// @Param   category query string false "Entry category"
// @Param   period query string false "Reporting period"
// @Success 200 {string} string "CSV content"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/export [get]
func (h *ledgerHandler) exportTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	data, err := h.ledgerService.ExportTransactionsCSV(c.Request.Context(), filterFromParams(params))
	if err != nil {
		logger.Error("Failed to export transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to export transactions"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="transactions.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

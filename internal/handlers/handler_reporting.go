package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dealerdesk/backend/internal/core/domain"
	portssvc "github.com/dealerdesk/backend/internal/core/ports/services"
	"github.com/dealerdesk/backend/internal/dto"
	"github.com/dealerdesk/backend/internal/middleware"
)

// reportingHandler handles HTTP requests for derived reports. Every report
// is recomputed from current store state on each call.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers routes for reports. Reports are
// read-only and available to every authenticated role.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.financialSummary)
		reports.GET("/assets", h.assetValuation)
		reports.GET("/receivables", h.receivablesStats)
		reports.GET("/vehicle-costs", h.vehicleCostAnalysis)
		reports.GET("/monthly", h.monthlyBreakdown)
	}
}

func (h *reportingHandler) bindScope(c *gin.Context) (domain.BranchScope, bool) {
	var params dto.ReportScopeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return "", false
	}
	return domain.BranchScope(params.Branch), true
}

// financialSummary godoc
// @Summary Income and expense summary
// @Description Sums income and expense over the branch scope, excluding internal transfer legs
// @Tags reports
// @Produce  json
// @Param   branch query string false "Branch ID or 'all'"
// @Success 200 {object} dto.FinancialSummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) financialSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	scope, ok := h.bindScope(c)
	if !ok {
		return
	}

	summary, err := h.reportingService.FinancialSummary(c.Request.Context(), scope)
	if err != nil {
		logger.Error("Failed to compute financial summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, dto.FinancialSummaryResponse{
		Branch:  string(scope),
		Income:  summary.Income,
		Expense: summary.Expense,
		Profit:  summary.Profit,
	})
}

// assetValuation godoc
// @Summary Asset valuation
// @Description Sums the balances of Asset accounts; the chart of accounts is not branch-partitioned
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.AssetValuationResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/assets [get]
func (h *reportingHandler) assetValuation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	total, err := h.reportingService.AssetValuation(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute asset valuation", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute valuation"})
		return
	}

	c.JSON(http.StatusOK, dto.AssetValuationResponse{TotalAssetValue: total})
}

// receivablesStats godoc
// @Summary Receivables statistics
// @Description Summarizes the invoice book within the branch scope
// @Tags reports
// @Produce  json
// @Param   branch query string false "Branch ID or 'all'"
// @Success 200 {object} dto.ReceivablesStatsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/receivables [get]
func (h *reportingHandler) receivablesStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	scope, ok := h.bindScope(c)
	if !ok {
		return
	}

	stats, err := h.reportingService.ReceivablesStats(c.Request.Context(), scope)
	if err != nil {
		logger.Error("Failed to compute receivables stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute receivables stats"})
		return
	}

	c.JSON(http.StatusOK, dto.ReceivablesStatsResponse{
		Branch:               string(scope),
		Total:                stats.Total,
		Outstanding:          stats.Outstanding,
		Overdue:              stats.Overdue,
		CollectionEfficiency: stats.CollectionEfficiency,
	})
}

// vehicleCostAnalysis godoc
// @Summary Per-vehicle cost analysis
// @Description Accumulates attributed ledger cost per vehicle; profit is reported only for sold vehicles
// @Tags reports
// @Produce  json
// @Param   branch query string false "Branch ID or 'all'"
// @Success 200 {object} dto.VehicleCostAnalysisResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/vehicle-costs [get]
func (h *reportingHandler) vehicleCostAnalysis(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	scope, ok := h.bindScope(c)
	if !ok {
		return
	}

	rows, err := h.reportingService.VehicleCostAnalysis(c.Request.Context(), scope)
	if err != nil {
		logger.Error("Failed to compute vehicle cost analysis", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute vehicle costs"})
		return
	}

	c.JSON(http.StatusOK, dto.VehicleCostAnalysisResponse{
		Branch:   string(scope),
		Vehicles: rows,
	})
}

// monthlyBreakdown godoc
// @Summary Monthly income/expense breakdown
// @Description Reports income and expense per posting period, oldest first
// @Tags reports
// @Produce  json
// @Param   branch query string false "Branch ID or 'all'"
// @Success 200 {object} dto.MonthlyBreakdownResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *reportingHandler) monthlyBreakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	scope, ok := h.bindScope(c)
	if !ok {
		return
	}

	periods, err := h.reportingService.MonthlyBreakdown(c.Request.Context(), scope)
	if err != nil {
		logger.Error("Failed to compute monthly breakdown", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute breakdown"})
		return
	}

	c.JSON(http.StatusOK, dto.MonthlyBreakdownResponse{
		Branch:  string(scope),
		Periods: periods,
	})
}

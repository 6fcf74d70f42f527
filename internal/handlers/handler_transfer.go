package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dealerdesk/backend/internal/apperrors"
	"github.com/dealerdesk/backend/internal/core/domain"
	portssvc "github.com/dealerdesk/backend/internal/core/ports/services"
	"github.com/dealerdesk/backend/internal/dto"
	"github.com/dealerdesk/backend/internal/middleware"
	"github.com/dealerdesk/backend/internal/utils"
)

// transferHandler handles HTTP requests for internal transfers.
type transferHandler struct {
	transferService portssvc.TransferSvcFacade
	posthogClient   *utils.PosthogClientWrapper
}

func newTransferHandler(ts portssvc.TransferSvcFacade, posthogClient *utils.PosthogClientWrapper) *transferHandler {
	return &transferHandler{transferService: ts, posthogClient: posthogClient}
}

// registerTransferRoutes registers routes for the internal transfer workflow.
func registerTransferRoutes(rg *gin.RouterGroup, transferService portssvc.TransferSvcFacade, userService portssvc.UserReaderSvc, posthogClient *utils.PosthogClientWrapper) {
	h := newTransferHandler(transferService, posthogClient)

	transfers := rg.Group("/transfers")
	{
		transfers.GET("", h.listTransfers)
		transfers.GET("/:id", h.getTransferByID)
		transfers.POST("", middleware.RequireRole(userService, domain.RoleAccountant), h.createTransfer)
		transfers.POST("/:id/post", middleware.RequireRole(userService, domain.RoleAccountant), h.postTransfer)
	}
}

// createTransfer godoc
// @Summary Create an internal transfer
// @Description Creates a transfer in Pending status; no ledger entries exist until it is posted
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   transfer body dto.CreateTransferRequest true "Transfer details"
// @Success 201 {object} dto.TransferResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transfers [post]
func (h *transferHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createTransfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	transfer, err := h.transferService.CreateTransfer(c.Request.Context(), req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to create transfer", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create transfer"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransferResponse(transfer))
}

// postTransfer godoc
// @Summary Post a pending transfer
// @Description Appends the matched pair of ledger legs and flips the transfer to Posted; posting twice returns 409
// @Tags transfers
// @Produce  json
// @Param   id path string true "Transfer ID"
// @Success 200 {object} dto.TransferResponse
// @Failure 404 {object} ErrorResponse "Transfer not found"
// @Failure 409 {object} ErrorResponse "Transfer already posted"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transfers/{id}/post [post]
func (h *transferHandler) postTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	transfer, err := h.transferService.PostTransfer(c.Request.Context(), id, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Transfer not found"})
		case errors.Is(err, apperrors.ErrInvalidState):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to post transfer", slog.String("error", err.Error()), slog.String("transfer_id", id))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to post transfer"})
		}
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, "transfer_posted", map[string]any{
		"transfer_id": transfer.TransferID,
		"amount":      transfer.Amount.String(),
	})

	c.JSON(http.StatusOK, dto.ToTransferResponse(transfer))
}

// getTransferByID godoc
// @Summary Get a transfer
// @Description Retrieves one internal transfer by ID
// @Tags transfers
// @Produce  json
// @Param   id path string true "Transfer ID"
// @Success 200 {object} dto.TransferResponse
// @Failure 404 {object} ErrorResponse "Transfer not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transfers/{id} [get]
func (h *transferHandler) getTransferByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	transfer, err := h.transferService.GetTransferByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Transfer not found"})
			return
		}
		logger.Error("Failed to get transfer", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve transfer"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransferResponse(transfer))
}

// listTransfers godoc
// @Summary List transfers
// @Description Retrieves internal transfers in creation order
// @Tags transfers
// @Produce  json
// @Param   limit query int false "Max results"
// @Param   offset query int false "Offset"
// @Success 200 {array} dto.TransferResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transfers [get]
func (h *transferHandler) listTransfers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransfersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	transfers, err := h.transferService.ListTransfers(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list transfers", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list transfers"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransferResponses(transfers))
}

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
)

// vehicleHandler handles HTTP requests for the inventory registry.
type vehicleHandler struct {
	vehicleService portssvc.VehicleSvcFacade
}

func newVehicleHandler(vs portssvc.VehicleSvcFacade) *vehicleHandler {
	return &vehicleHandler{vehicleService: vs}
}

// registerVehicleRoutes registers routes for vehicles.
func registerVehicleRoutes(rg *gin.RouterGroup, vehicleService portssvc.VehicleSvcFacade, userService portssvc.UserReaderSvc) {
	h := newVehicleHandler(vehicleService)

	vehicles := rg.Group("/vehicles")
	{
		vehicles.GET("", h.listVehicles)
		vehicles.GET("/:id", h.getVehicleByID)
		vehicles.POST("", middleware.RequireRole(userService, domain.RoleAccountant), h.createVehicle)
		vehicles.POST("/:id/sell", middleware.RequireRole(userService, domain.RoleAccountant), h.markVehicleSold)
	}
}

// createVehicle godoc
// @Summary Register a vehicle
// @Description Adds a vehicle to inventory in IN_STOCK status
// @Tags vehicles
// @Accept  json
// @Produce  json
// @Param   vehicle body dto.CreateVehicleRequest true "Vehicle details"
// @Success 201 {object} dto.VehicleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Branch not found"
// @Failure 409 {object} ErrorResponse "VIN already registered"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /vehicles [post]
func (h *vehicleHandler) createVehicle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	vehicle, err := h.vehicleService.CreateVehicle(c.Request.Context(), req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "VIN already registered"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to create vehicle", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create vehicle"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToVehicleResponse(vehicle))
}

// markVehicleSold godoc
// @Summary Mark a vehicle as sold
// @Description Sets the vehicle status to SOLD and records the final sale price; selling twice returns 409
// @Tags vehicles
// @Accept  json
// @Produce  json
// @Param   id path string true "Vehicle ID"
// @Param   sale body dto.MarkVehicleSoldRequest true "Sale price"
// @Success 200 {object} dto.VehicleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Vehicle not found"
// @Failure 409 {object} ErrorResponse "Vehicle already sold"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /vehicles/{id}/sell [post]
func (h *vehicleHandler) markVehicleSold(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	var req dto.MarkVehicleSoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	vehicle, err := h.vehicleService.MarkVehicleSold(c.Request.Context(), id, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Vehicle not found"})
		case errors.Is(err, apperrors.ErrInvalidState):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to mark vehicle sold", slog.String("error", err.Error()), slog.String("vehicle_id", id))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to mark vehicle sold"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToVehicleResponse(vehicle))
}

// getVehicleByID godoc
// @Summary Get a vehicle
// @Tags vehicles
// @Produce  json
// @Param   id path string true "Vehicle ID"
// @Success 200 {object} dto.VehicleResponse
// @Failure 404 {object} ErrorResponse "Vehicle not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /vehicles/{id} [get]
func (h *vehicleHandler) getVehicleByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	vehicle, err := h.vehicleService.GetVehicleByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Vehicle not found"})
			return
		}
		logger.Error("Failed to get vehicle", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve vehicle"})
		return
	}

	c.JSON(http.StatusOK, dto.ToVehicleResponse(vehicle))
}

// listVehicles godoc
// @Summary List vehicles
// @Description Retrieves inventory within the branch scope
// @Tags vehicles
// @Produce  json
// @Param   branch query string false "Branch ID or 'all'"
// @Param   limit query int false "Max results"
// @Param   offset query int false "Offset"
// @Success 200 {array} dto.VehicleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /vehicles [get]
func (h *vehicleHandler) listVehicles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListVehiclesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	vehicles, err := h.vehicleService.ListVehicles(c.Request.Context(), domain.BranchScope(params.Branch), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list vehicles", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list vehicles"})
		return
	}

	c.JSON(http.StatusOK, dto.ToVehicleResponses(vehicles))
}

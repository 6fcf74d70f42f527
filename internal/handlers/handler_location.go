package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dealerdesk/backend/internal/apperrors"
	portssvc "github.com/dealerdesk/backend/internal/core/ports/services"
	"github.com/dealerdesk/backend/internal/dto"
	"github.com/dealerdesk/backend/internal/middleware"
)

// locationHandler handles HTTP requests for the branch registry.
type locationHandler struct {
	locationService portssvc.LocationSvcFacade
}

func newLocationHandler(ls portssvc.LocationSvcFacade) *locationHandler {
	return &locationHandler{locationService: ls}
}

// registerLocationRoutes registers routes for branches. Managing branches
// is admin-only; reads are open to every authenticated role.
func registerLocationRoutes(rg *gin.RouterGroup, locationService portssvc.LocationSvcFacade, userService portssvc.UserReaderSvc) {
	h := newLocationHandler(locationService)

	locations := rg.Group("/locations")
	{
		locations.GET("", h.listLocations)
		locations.GET("/:id", h.getLocationByID)
		locations.POST("", middleware.RequireRole(userService), h.createLocation)
		locations.PUT("/:id", middleware.RequireRole(userService), h.updateLocation)
	}
}

// createLocation godoc
// @Summary Create a branch
// @Description Adds a new dealership branch (admin operation)
// @Tags locations
// @Accept  json
// @Produce  json
// @Param   location body dto.CreateLocationRequest true "Branch details"
// @Success 201 {object} dto.LocationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /locations [post]
func (h *locationHandler) createLocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	location, err := h.locationService.CreateLocation(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Error("Failed to create location", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create location"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToLocationResponse(location))
}

// getLocationByID godoc
// @Summary Get a branch
// @Tags locations
// @Produce  json
// @Param   id path string true "Location ID"
// @Success 200 {object} dto.LocationResponse
// @Failure 404 {object} ErrorResponse "Branch not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /locations/{id} [get]
func (h *locationHandler) getLocationByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	location, err := h.locationService.GetLocationByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Location not found"})
			return
		}
		logger.Error("Failed to get location", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve location"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLocationResponse(location))
}

// listLocations godoc
// @Summary List branches
// @Tags locations
// @Produce  json
// @Success 200 {array} dto.LocationResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /locations [get]
func (h *locationHandler) listLocations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	locations, err := h.locationService.ListLocations(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list locations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list locations"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLocationResponses(locations))
}

// updateLocation godoc
// @Summary Update a branch
// @Tags locations
// @Accept  json
// @Produce  json
// @Param   id path string true "Location ID"
// @Param   location body dto.UpdateLocationRequest true "Fields to update"
// @Success 200 {object} dto.LocationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Branch not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /locations/{id} [put]
func (h *locationHandler) updateLocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	var req dto.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	location, err := h.locationService.UpdateLocation(c.Request.Context(), id, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Location not found"})
			return
		}
		logger.Error("Failed to update location", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update location"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLocationResponse(location))
}

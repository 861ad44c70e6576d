package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"netgrid/internal/application/location/usecases"
	"netgrid/internal/shared/errors"
	"netgrid/internal/shared/logger"
	"netgrid/internal/shared/utils"
)

type CreateLocationRequest struct {
	AreaName           string `json:"area_name" binding:"required"`
	IsNetworkAvailable bool   `json:"is_network_available"`
}

type UpdateLocationRequest struct {
	AreaName           string `json:"area_name" binding:"required"`
	IsNetworkAvailable bool   `json:"is_network_available"`
}

type LocationHandler struct {
	createLocationUC usecases.CreateLocationExecutor
	updateLocationUC usecases.UpdateLocationExecutor
	deleteLocationUC usecases.DeleteLocationExecutor
	getLocationUC    usecases.GetLocationExecutor
	listLocationsUC  usecases.ListLocationsExecutor
	logger           logger.Interface
}

func NewLocationHandler(
	createLocationUC usecases.CreateLocationExecutor,
	updateLocationUC usecases.UpdateLocationExecutor,
	deleteLocationUC usecases.DeleteLocationExecutor,
	getLocationUC usecases.GetLocationExecutor,
	listLocationsUC usecases.ListLocationsExecutor,
) *LocationHandler {
	return &LocationHandler{
		createLocationUC: createLocationUC,
		updateLocationUC: updateLocationUC,
		deleteLocationUC: deleteLocationUC,
		getLocationUC:    getLocationUC,
		listLocationsUC:  listLocationsUC,
		logger:           logger.NewLogger(),
	}
}

// CreateLocation handles POST /locations
func (h *LocationHandler) CreateLocation(c *gin.Context) {
	var req CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.createLocationUC.Execute(c.Request.Context(), usecases.CreateLocationCommand{
		AreaName:           req.AreaName,
		IsNetworkAvailable: req.IsNetworkAvailable,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Location created successfully")
}

// UpdateLocation handles PUT /locations/:id
func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	locationID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.updateLocationUC.Execute(c.Request.Context(), usecases.UpdateLocationCommand{
		LocationID:         locationID,
		AreaName:           req.AreaName,
		IsNetworkAvailable: req.IsNetworkAvailable,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Location updated successfully", result)
}

// DeleteLocation handles DELETE /locations/:id
func (h *LocationHandler) DeleteLocation(c *gin.Context) {
	locationID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteLocationUC.Execute(c.Request.Context(), locationID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// GetLocation handles GET /locations/:id
func (h *LocationHandler) GetLocation(c *gin.Context) {
	locationID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getLocationUC.Execute(c.Request.Context(), locationID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListLocations handles GET /locations
func (h *LocationHandler) ListLocations(c *gin.Context) {
	result, err := h.listLocationsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

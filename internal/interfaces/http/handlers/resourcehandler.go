package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"netgrid/internal/application/resource/usecases"
	"netgrid/internal/shared/errors"
	"netgrid/internal/shared/logger"
	"netgrid/internal/shared/utils"
)

type CreateResourceRequest struct {
	ResourceName  string `json:"resource_name" binding:"required"`
	QuantityTotal int    `json:"quantity_total" binding:"required,min=0"`
}

type UpdateResourceRequest struct {
	ResourceName  *string `json:"resource_name"`
	QuantityTotal *int    `json:"quantity_total"`
}

type ResourceHandler struct {
	createResourceUC usecases.CreateResourceExecutor
	updateResourceUC usecases.UpdateResourceExecutor
	deleteResourceUC usecases.DeleteResourceExecutor
	getResourceUC    usecases.GetResourceExecutor
	listResourcesUC  usecases.ListResourcesExecutor
	logger           logger.Interface
}

func NewResourceHandler(
	createResourceUC usecases.CreateResourceExecutor,
	updateResourceUC usecases.UpdateResourceExecutor,
	deleteResourceUC usecases.DeleteResourceExecutor,
	getResourceUC usecases.GetResourceExecutor,
	listResourcesUC usecases.ListResourcesExecutor,
) *ResourceHandler {
	return &ResourceHandler{
		createResourceUC: createResourceUC,
		updateResourceUC: updateResourceUC,
		deleteResourceUC: deleteResourceUC,
		getResourceUC:    getResourceUC,
		listResourcesUC:  listResourcesUC,
		logger:           logger.NewLogger(),
	}
}

// CreateResource handles POST /resources
func (h *ResourceHandler) CreateResource(c *gin.Context) {
	var req CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.createResourceUC.Execute(c.Request.Context(), usecases.CreateResourceCommand{
		ResourceName:  req.ResourceName,
		QuantityTotal: req.QuantityTotal,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Resource created successfully")
}

// UpdateResource handles PUT /resources/:id
func (h *ResourceHandler) UpdateResource(c *gin.Context) {
	resourceID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.updateResourceUC.Execute(c.Request.Context(), usecases.UpdateResourceCommand{
		ResourceID:    resourceID,
		ResourceName:  req.ResourceName,
		QuantityTotal: req.QuantityTotal,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Resource updated successfully", result)
}

// DeleteResource handles DELETE /resources/:id
func (h *ResourceHandler) DeleteResource(c *gin.Context) {
	resourceID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.deleteResourceUC.Execute(c.Request.Context(), usecases.DeleteResourceCommand{
		ResourceID: resourceID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// GetResource handles GET /resources/:id
func (h *ResourceHandler) GetResource(c *gin.Context) {
	resourceID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getResourceUC.Execute(c.Request.Context(), resourceID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListResources handles GET /resources
func (h *ResourceHandler) ListResources(c *gin.Context) {
	result, err := h.listResourcesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"netgrid/internal/application/user/usecases"
	"netgrid/internal/shared/errors"
	"netgrid/internal/shared/logger"
	"netgrid/internal/shared/utils"
)

type UpdateUserRequest struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

type UserHandler struct {
	getProfileUC     usecases.GetProfileExecutor
	listUsersUC      usecases.ListUsersExecutor
	updateUserUC     usecases.UpdateUserExecutor
	deleteUserUC     usecases.DeleteUserExecutor
	changePasswordUC usecases.ChangePasswordExecutor
	logger           logger.Interface
}

func NewUserHandler(
	getProfileUC usecases.GetProfileExecutor,
	listUsersUC usecases.ListUsersExecutor,
	updateUserUC usecases.UpdateUserExecutor,
	deleteUserUC usecases.DeleteUserExecutor,
	changePasswordUC usecases.ChangePasswordExecutor,
) *UserHandler {
	return &UserHandler{
		getProfileUC:     getProfileUC,
		listUsersUC:      listUsersUC,
		updateUserUC:     updateUserUC,
		deleteUserUC:     deleteUserUC,
		changePasswordUC: changePasswordUC,
		logger:           logger.NewLogger(),
	}
}

// GetProfile handles GET /users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	caller := actorFromContext(c)

	result, err := h.getProfileUC.Execute(c.Request.Context(), caller.ID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listUsersUC.Execute(c.Request.Context(), usecases.ListUsersCommand{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, result.Page, result.PageSize)
}

// UpdateUser handles PUT /users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	caller := actorFromContext(c)
	result, err := h.updateUserUC.Execute(c.Request.Context(), usecases.UpdateUserCommand{
		UserID:    userID,
		ActorID:   caller.ID,
		ActorRole: caller.Role,
		FullName:  req.FullName,
		Email:     req.Email,
		Role:      req.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User updated successfully", result)
}

// DeleteUser handles DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	caller := actorFromContext(c)
	err = h.deleteUserUC.Execute(c.Request.Context(), usecases.DeleteUserCommand{
		UserID:    userID,
		ActorID:   caller.ID,
		ActorRole: caller.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ChangePassword handles POST /users/me/password
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	caller := actorFromContext(c)
	err := h.changePasswordUC.Execute(c.Request.Context(), usecases.ChangePasswordCommand{
		UserID:      caller.ID,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password changed successfully", nil)
}

package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"netgrid/internal/shared/authorization"
	"netgrid/internal/shared/constants"
	"netgrid/internal/shared/errors"
)

// actor identifies the authenticated caller, as placed in the request
// context by the auth middleware.
type actor struct {
	ID   uint
	Role authorization.UserRole
}

func actorFromContext(c *gin.Context) actor {
	userID, _ := c.Get(constants.ContextKeyUserID)
	id, _ := userID.(uint)
	role := authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole))
	return actor{ID: id, Role: role}
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + name + " parameter")
	}
	return uint(id), nil
}

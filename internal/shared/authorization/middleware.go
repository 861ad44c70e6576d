package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin guards routes reserved for administrators. It reads the
// role the authentication middleware stored on the context, so it must
// run after that middleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := ParseUserRole(c.GetString("user_role"))
		if !role.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "administrator privileges required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// OwnedResource is anything that belongs to a single user, like a request.
type OwnedResource interface {
	GetOwnerID() uint
}

// CanAccessResource reports whether the actor may operate on the resource:
// administrators always, everyone else only on what they own.
func CanAccessResource(userID uint, userRole UserRole, resource OwnedResource) bool {
	if userRole.IsAdmin() {
		return true
	}
	return userID == resource.GetOwnerID()
}

// CanAccessResourceByOwnerID is CanAccessResource for callers that only
// hold the owner's ID.
func CanAccessResourceByOwnerID(userID uint, userRole UserRole, resourceOwnerID uint) bool {
	if userRole.IsAdmin() {
		return true
	}
	return userID == resourceOwnerID
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"netgrid/internal/infrastructure/auth"
	"netgrid/internal/shared/constants"
	"netgrid/internal/shared/logger"
	"netgrid/internal/shared/utils"
)

type AuthMiddleware struct {
	tokens *auth.JWTManager
	logger logger.Interface
}

func NewAuthMiddleware(tokens *auth.JWTManager, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		logger: logger,
	}
}

// RequireAuth validates the bearer access token and stores the caller's
// identity in the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		userID, role, err := m.tokens.ValidateAccessToken(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Set(constants.ContextKeyUserRole, role)

		c.Next()
	}
}

package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kthsports/storefront/internal/auth"
	"github.com/kthsports/storefront/internal/utils"
)

// SessionMiddleware guards admin endpoints with the signed session token.
type SessionMiddleware struct {
	authenticator *auth.Authenticator
}

// NewSessionMiddleware constructs a SessionMiddleware.
func NewSessionMiddleware(authenticator *auth.Authenticator) *SessionMiddleware {
	return &SessionMiddleware{authenticator: authenticator}
}

// Handle validates the Bearer token and stores the admin email in context.
func (m *SessionMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Error(c, 401, "UNAUTHORIZED", "Missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.Error(c, 401, "UNAUTHORIZED", "Invalid authorization header")
			c.Abort()
			return
		}

		claims, err := m.authenticator.Validate(parts[1])
		if err != nil {
			utils.Error(c, 401, "INVALID_TOKEN", "Invalid or expired session")
			c.Abort()
			return
		}

		c.Set("email", claims.Email)
		c.Next()
	}
}

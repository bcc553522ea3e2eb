package middleware

import (
	"net/http"
	"strings"

	"talenthub-backend/internal/delivery/http/response"
	"talenthub-backend/internal/domain"
	"talenthub-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and loads the caller onto the
// context. The role comes from the database, not the token claim, so a
// role change takes effect immediately instead of at token expiry.
func AuthMiddleware(tokens *token.Manager, userRepo domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "Access token required", "")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			response.Error(c, http.StatusForbidden, "Invalid or expired token", "")
			return
		}

		user, err := userRepo.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "User not found", "")
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), user.Email)
		c.Set(string(domain.KeyUserRole), user.Role)

		c.Next()
	}
}

// RequireRoles gates a route group to the given roles. Must run after
// AuthMiddleware.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(string(domain.KeyUserRole))
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		response.Error(c, http.StatusForbidden, "Insufficient permissions", "")
	}
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/alimbdit/bistro-boss-server/auth"
	"github.com/alimbdit/bistro-boss-server/database"
)

// EmailKey is the context key holding the authenticated caller's email.
const EmailKey = "email"

// RequireAuth validates the Authorization bearer token and stores the decoded
// email in the request context. A missing header and a bad token produce the
// same 401 body.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			unauthorized(c)
			return
		}

		claims, err := auth.VerifyToken(strings.TrimPrefix(header, "Bearer "), secret)
		if err != nil {
			unauthorized(c)
			return
		}

		email, _ := claims["email"].(string)
		c.Set(EmailKey, email)
	}
}

// RequireAdmin authenticates and then checks the caller's stored role.
// Taking the auth stage as an argument and running it here pins the
// auth-before-admin ordering at construction instead of relying on route
// registration order. Neither stage calls Next itself; returning without an
// abort lets the chain continue, which keeps the nested invocation from
// running the handler before the role check.
func RequireAdmin(requireAuth gin.HandlerFunc, store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		requireAuth(c)
		if c.IsAborted() {
			return
		}

		user, err := store.UserByEmail(c.Request.Context(), c.GetString(EmailKey))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				gin.H{"error": true, "message": "internal server error"})
			return
		}
		if user == nil || user.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden,
				gin.H{"error": true, "message": "forbidden access"})
		}
	}
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		gin.H{"error": true, "message": "unauthorized access"})
}

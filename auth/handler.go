package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreateToken handles POST /jwt: signs whatever identity claims the client
// sends and hands back the bearer token.
func CreateToken(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var claims map[string]interface{}
		if err := c.ShouldBindJSON(&claims); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": "invalid request body"})
			return
		}

		token, err := IssueToken(claims, secret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

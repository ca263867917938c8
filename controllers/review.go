package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alimbdit/bistro-boss-server/database"
)

// GET /reviews — public, listing only.
func GetReviews(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews, err := store.AllReviews(c.Request.Context())
		if err != nil {
			sendStorageError(c, err)
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

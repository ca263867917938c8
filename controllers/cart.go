package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alimbdit/bistro-boss-server/database"
	"github.com/alimbdit/bistro-boss-server/middleware"
	"github.com/alimbdit/bistro-boss-server/models"
)

// GET /carts?email= — listing is restricted to the token's own email.
// A missing email param answers an empty list.
func GetCartItems(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")
		if email == "" {
			c.JSON(http.StatusOK, []models.CartItem{})
			return
		}
		if email != c.GetString(middleware.EmailKey) {
			c.JSON(http.StatusForbidden, gin.H{"error": true, "message": "forbidden access"})
			return
		}

		items, err := store.CartItemsByEmail(c.Request.Context(), email)
		if err != nil {
			sendStorageError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// POST /carts — open endpoint; the owning email comes from the body and is
// not checked against any token.
func CreateCartItem(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.CartItem
		if err := c.ShouldBindJSON(&item); err != nil {
			badRequest(c)
			return
		}

		res, err := store.InsertCartItem(c.Request.Context(), item)
		if err != nil {
			sendStorageError(c, err)
			return
		}
		sendInsertResult(c, res)
	}
}

// DELETE /carts/:id — open endpoint, no ownership check.
func DeleteCartItem(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := store.DeleteCartItem(c.Request.Context(), c.Param("id"))
		if err != nil {
			sendStorageError(c, err)
			return
		}
		sendDeleteResult(c, res)
	}
}

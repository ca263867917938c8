package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alimbdit/bistro-boss-server/database"
	"github.com/alimbdit/bistro-boss-server/models"
)

// GET /menu — public.
func GetMenu(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := store.AllMenu(c.Request.Context())
		if err != nil {
			sendStorageError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// POST /menu — admin only.
func CreateMenuItem(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.MenuItem
		if err := c.ShouldBindJSON(&item); err != nil {
			badRequest(c)
			return
		}

		res, err := store.InsertMenuItem(c.Request.Context(), item)
		if err != nil {
			sendStorageError(c, err)
			return
		}
		sendInsertResult(c, res)
	}
}

// DELETE /menu/:id — admin only.
func DeleteMenuItem(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := store.DeleteMenuItem(c.Request.Context(), c.Param("id"))
		if err != nil {
			sendStorageError(c, err)
			return
		}
		sendDeleteResult(c, res)
	}
}

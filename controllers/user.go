package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alimbdit/bistro-boss-server/database"
	"github.com/alimbdit/bistro-boss-server/middleware"
	"github.com/alimbdit/bistro-boss-server/models"
)

// GET /users — admin only.
func GetUsers(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := store.AllUsers(c.Request.Context())
		if err != nil {
			sendStorageError(c, err)
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// POST /users — called on every sign-in; inserts unless the email is already
// known. Find-then-insert, not an atomic upsert, so the duplicate check races
// with concurrent sign-ins of the same email.
func CreateUser(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			badRequest(c)
			return
		}

		existing, err := store.UserByEmail(c.Request.Context(), user.Email)
		if err != nil {
			sendStorageError(c, err)
			return
		}
		if existing != nil {
			c.JSON(http.StatusOK, gin.H{"message": "User already exist!"})
			return
		}

		res, err := store.InsertUser(c.Request.Context(), user)
		if err != nil {
			sendStorageError(c, err)
			return
		}
		sendInsertResult(c, res)
	}
}

// GET /users/admin/:email — tells the client whether to show the admin UI.
// An email that doesn't match the token answers {admin:false} without a
// lookup.
func CheckAdmin(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		if email != c.GetString(middleware.EmailKey) {
			c.JSON(http.StatusOK, gin.H{"admin": false})
			return
		}

		user, err := store.UserByEmail(c.Request.Context(), email)
		if err != nil {
			sendStorageError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"admin": user != nil && user.Role == "admin"})
	}
}

// PATCH /users/admin/:id — sets role to admin.
func PromoteUser(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := store.PromoteUserAdmin(c.Request.Context(), c.Param("id"))
		if err != nil {
			sendStorageError(c, err)
			return
		}
		sendUpdateResult(c, res)
	}
}

// DELETE /users/delete/:id
func DeleteUser(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := store.DeleteUser(c.Request.Context(), c.Param("id"))
		if err != nil {
			sendStorageError(c, err)
			return
		}
		sendDeleteResult(c, res)
	}
}

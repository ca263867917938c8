package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/alimbdit/bistro-boss-server/controllers"
	"github.com/alimbdit/bistro-boss-server/database"
)

// SetupUserRoutes registers all "/users*" endpoints.
//
// The PATCH promotion and DELETE endpoints carry no auth; that is the
// public client contract as shipped, kept as-is and flagged in DESIGN.md.
func SetupUserRoutes(r *gin.Engine, store database.Store, requireAuth, requireAdmin gin.HandlerFunc) {
	r.GET("/users", requireAdmin, controllers.GetUsers(store))
	r.POST("/users", controllers.CreateUser(store))
	r.GET("/users/admin/:email", requireAuth, controllers.CheckAdmin(store))
	r.PATCH("/users/admin/:id", controllers.PromoteUser(store))
	r.DELETE("/users/delete/:id", controllers.DeleteUser(store))
}

package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/alimbdit/bistro-boss-server/controllers"
	"github.com/alimbdit/bistro-boss-server/database"
)

// SetupMenuRoutes registers the menu endpoints: public listing, admin-only
// insert and delete.
func SetupMenuRoutes(r *gin.Engine, store database.Store, requireAdmin gin.HandlerFunc) {
	r.GET("/menu", controllers.GetMenu(store))
	r.POST("/menu", requireAdmin, controllers.CreateMenuItem(store))
	r.DELETE("/menu/:id", requireAdmin, controllers.DeleteMenuItem(store))
}

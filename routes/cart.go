package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/alimbdit/bistro-boss-server/controllers"
	"github.com/alimbdit/bistro-boss-server/database"
)

// SetupCartRoutes registers the cart endpoints. Only the listing is
// authenticated; insert and delete are open (see DESIGN.md).
func SetupCartRoutes(r *gin.Engine, store database.Store, requireAuth gin.HandlerFunc) {
	r.GET("/carts", requireAuth, controllers.GetCartItems(store))
	r.POST("/carts", controllers.CreateCartItem(store))
	r.DELETE("/carts/:id", controllers.DeleteCartItem(store))
}

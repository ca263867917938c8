package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/alimbdit/bistro-boss-server/controllers"
	"github.com/alimbdit/bistro-boss-server/database"
)

func SetupReviewRoutes(r *gin.Engine, store database.Store) {
	r.GET("/reviews", controllers.GetReviews(store))
}

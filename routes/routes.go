package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alimbdit/bistro-boss-server/config"
	"github.com/alimbdit/bistro-boss-server/database"
	"github.com/alimbdit/bistro-boss-server/middleware"
)

// SetupRoutes is the single entry point that wires up every resource group.
// The middleware stages are built once here; RequireAdmin carries its own
// RequireAuth stage, so admin routes register just the one handler.
func SetupRoutes(r *gin.Engine, cfg *config.Config, store database.Store) {
	requireAuth := middleware.RequireAuth(cfg.AccessTokenSecret)
	requireAdmin := middleware.RequireAdmin(requireAuth, store)

	// liveness
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "bistro boss is running")
	})

	SetupAuthRoutes(r, cfg)
	SetupUserRoutes(r, store, requireAuth, requireAdmin)
	SetupMenuRoutes(r, store, requireAdmin)
	SetupReviewRoutes(r, store)
	SetupCartRoutes(r, store, requireAuth)
}

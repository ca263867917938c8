package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/alimbdit/bistro-boss-server/auth"
	"github.com/alimbdit/bistro-boss-server/config"
)

// SetupAuthRoutes registers the token endpoint. Issuance is open: the claims
// are whatever the client sends.
func SetupAuthRoutes(r *gin.Engine, cfg *config.Config) {
	r.POST("/jwt", auth.CreateToken(cfg.AccessTokenSecret))
}

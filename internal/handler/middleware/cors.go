package middleware

import (
	"log/slog"
	"slices"

	"slotbook/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware builds the CORS policy for the browser-facing routes.
// The Stripe webhook is server-to-server and never preflights, so the policy
// only matters for the booking pages and the admin panel. Credentialed
// requests cannot pair with a wildcard origin, so the wildcard wins and
// credentials are dropped when both are configured.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowCredentials := cfg.AllowCredentials
	if slices.Contains(cfg.AllowOrigins, "*") {
		allowCredentials = false
	}

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		AllowCredentials: allowCredentials,
	}
	slog.Info("CORS policy configured",
		"allow_origins", cfg.AllowOrigins,
		"allow_credentials", allowCredentials,
	)
	return cors.New(corsCfg)
}

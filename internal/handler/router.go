package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"slotbook/internal/handler/api"
	"slotbook/internal/handler/middleware"
	"slotbook/internal/handler/web"
	"slotbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	publicHandler *api.PublicHandler,
	authHandler *api.AuthHandler,
	adminHandler *api.AdminHandler,
	webhookHandler *api.WebhookHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.SetHTMLTemplate(web.Templates())
	setupMiddleware(engine, cfg)
	setupRoutes(engine, publicHandler, authHandler, adminHandler, webhookHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	publicHandler *api.PublicHandler,
	authHandler *api.AuthHandler,
	adminHandler *api.AdminHandler,
	webhookHandler *api.WebhookHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodGet, Path: "/", Handler: publicHandler.Home},
		{Method: http.MethodGet, Path: "/index", Handler: publicHandler.IndexPage},
		{Method: http.MethodPost, Path: "/index", Handler: publicHandler.BrowseSlots},
		{Method: http.MethodPost, Path: "/create-checkout-session", Handler: publicHandler.CreateCheckoutSession},
		{Method: http.MethodGet, Path: "/payment-success", Handler: publicHandler.PaymentSuccess},
		{Method: http.MethodPost, Path: "/stripe/webhook", Handler: webhookHandler.Handle},
		{Method: http.MethodGet, Path: "/admin-login", Handler: authHandler.LoginPage},
		{Method: http.MethodPost, Path: "/admin-login", Handler: authHandler.Login},
		{Method: http.MethodGet, Path: "/admin-logout", Handler: authHandler.Logout},
	})

	adminGroup := engine.Group("")
	adminGroup.Use(authMiddleware.RequireAdmin())
	addRoutes(adminGroup, []route{
		{Method: http.MethodGet, Path: "/admin", Handler: adminHandler.Panel},
		{Method: http.MethodGet, Path: "/add-availability", Handler: adminHandler.AddAvailabilityPage},
		{Method: http.MethodPost, Path: "/add-availability", Handler: adminHandler.AddAvailability},
		{Method: http.MethodPost, Path: "/delete-availability/:id", Handler: adminHandler.DeleteAvailability},
		{Method: http.MethodPost, Path: "/delete/:id", Handler: adminHandler.DeleteBooking},
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

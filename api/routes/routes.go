package routes

import (
	"net/http"

	"github.com/ArowuTest/community-center-backend/internal/config"
	"github.com/ArowuTest/community-center-backend/internal/handlers"
	"github.com/ArowuTest/community-center-backend/internal/middleware"
	"github.com/ArowuTest/community-center-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HandlerDependencies groups the handlers mounted by SetupRouter
type HandlerDependencies struct {
	AuthHandler       *handlers.AuthHandler
	ContentHandler    *handlers.ContentHandler
	PageHandler       *handlers.PageHandler
	VisibilityHandler *handlers.VisibilityHandler
	ImageHandler      *handlers.ImageHandler
	ChangesHandler    *handlers.ChangesHandler
	StorageHandler    *handlers.StorageHandler
	Tokens            *jwt.AdminTokenService
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware(logger))

	adminOnly := middleware.JWTAuthMiddleware(deps.Tokens, cfg.JWT.Enforce, logger)

	// Public object URLs
	router.GET("/storage/v1/object/public/:bucket/*path", deps.StorageHandler.Serve)

	api := router.Group("/api/v1")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Admin routes
		admin := api.Group("/admin")
		{
			admin.POST("/login", deps.AuthHandler.Login)
			admin.POST("/password", adminOnly, deps.AuthHandler.UpdatePassword)
		}

		// Raw content documents
		content := api.Group("/content")
		{
			content.GET("", deps.ContentHandler.List)
			content.GET("/:page", deps.ContentHandler.Get)
			content.PUT("/:page/sections/:section", adminOnly, deps.ContentHandler.UpdateSection)
		}

		// Rendered pages and navigation
		api.GET("/pages/:page", deps.PageHandler.View)
		api.GET("/navigation", deps.PageHandler.Navigation)

		// Page visibility
		api.GET("/page-visibility", deps.VisibilityHandler.List)
		api.POST("/page-visibility", adminOnly, deps.VisibilityHandler.Update)

		// Images
		images := api.Group("/images")
		{
			images.POST("/upload", adminOnly, deps.ImageHandler.Upload)
			images.POST("/delete", adminOnly, deps.ImageHandler.Delete)
			images.POST("/cleanup", deps.ImageHandler.CleanupInvalid)
		}

		// Change feed
		api.GET("/changes", deps.ChangesHandler.Stream)
	}

	return router
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ArowuTest/community-center-backend/api/routes"
	"github.com/ArowuTest/community-center-backend/internal/cache"
	"github.com/ArowuTest/community-center-backend/internal/config"
	"github.com/ArowuTest/community-center-backend/internal/content"
	"github.com/ArowuTest/community-center-backend/internal/events"
	"github.com/ArowuTest/community-center-backend/internal/handlers"
	"github.com/ArowuTest/community-center-backend/internal/logging"
	"github.com/ArowuTest/community-center-backend/internal/models"
	"github.com/ArowuTest/community-center-backend/internal/repositories"
	"github.com/ArowuTest/community-center-backend/internal/repositories/memory"
	mongorepo "github.com/ArowuTest/community-center-backend/internal/repositories/mongodb"
	"github.com/ArowuTest/community-center-backend/internal/services"
	"github.com/ArowuTest/community-center-backend/internal/storage"
	"github.com/ArowuTest/community-center-backend/pkg/jwt"
	mongodb "github.com/ArowuTest/community-center-backend/pkg/mongodb"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	gin.SetMode(config.GetEnv("GIN_MODE", gin.ReleaseMode))

	urls := repositories.PublicURLBuilder{BaseURL: cfg.Server.PublicBaseURL, PublicBuckets: cfg.Storage.PublicBuckets}

	var (
		contentRepo repositories.ContentRepository
		objectStore repositories.ObjectStore
	)
	switch cfg.Storage.Driver {
	case "memory":
		logger.Warn("Using in-memory storage, content will not survive a restart")
		contentRepo = memory.NewContentRepository()
		objectStore = memory.NewObjectStore(urls)
	default:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoDB.Timeout)
		mongoClient, err := mongodb.NewClient(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
		if err != nil {
			cancel()
			logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
		}
		defer func() {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				logger.Error("Error disconnecting from MongoDB", zap.Error(err))
			}
		}()

		db := mongoClient.Database(cfg.MongoDB.Database)
		repo := mongorepo.NewContentRepository(db, cfg.MongoDB.Collection)
		if err := repo.EnsureIndexes(ctx); err != nil {
			logger.Warn("Failed to ensure content indexes", zap.Error(err))
		}
		cancel()
		contentRepo = repo
		objectStore = mongorepo.NewObjectStore(db, urls)
	}

	broker := events.NewBroker(logger.Named("events"))
	resolver := storage.NewResolver(objectStore,
		storage.Options{Bucket: cfg.Storage.Bucket, Folder: cfg.Storage.DefaultFolder}, logger.Named("storage"))
	tokens := jwt.NewAdminTokenService(cfg.JWT.Secret, cfg.JWT.ExpiresIn)

	contentService := services.NewContentService(contentRepo, broker, services.DefaultRetry, logger.Named("content"))
	pageService := services.NewPageService(contentService, resolver, cache.NewShared[content.View](), logger.Named("pages"))
	visibilityService := services.NewVisibilityService(contentService, logger.Named("visibility"))
	navigationService, err := services.NewNavigationService(visibilityService)
	if err != nil {
		logger.Fatal("Failed to load navigation menu", zap.Error(err))
	}
	imageService := services.NewImageService(objectStore, resolver, contentService, cfg.Storage, logger.Named("images"))
	authService := services.NewAuthService(contentService, tokens, cfg.Admin, logger.Named("auth"))

	broker.OnChange(func(c models.Change) { pageService.Invalidate(c.Page) })

	if _, privileged := cfg.Storage.WriteKey(); !privileged {
		logger.Warn("Storage service role key is not set, image writes use the anonymous key")
	}
	if !cfg.JWT.Enforce {
		logger.Warn("Admin routes are not token protected, set JWT_ENFORCE to require login tokens")
	}

	handlerDeps := routes.HandlerDependencies{
		AuthHandler:       handlers.NewAuthHandler(authService),
		ContentHandler:    handlers.NewContentHandler(contentService),
		PageHandler:       handlers.NewPageHandler(pageService, navigationService),
		VisibilityHandler: handlers.NewVisibilityHandler(visibilityService),
		ImageHandler:      handlers.NewImageHandler(imageService),
		ChangesHandler:    handlers.NewChangesHandler(broker, pageService),
		StorageHandler:    handlers.NewStorageHandler(objectStore, logger.Named("objects")),
		Tokens:            tokens,
	}
	router := routes.SetupRouter(cfg, handlerDeps, logger.Named("http"))

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Server starting", zap.String("port", cfg.Server.Port), zap.String("storage", cfg.Storage.Driver))

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Closing the broker ends open change streams so Shutdown can drain.
	broker.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	pageService.Wait()

	logger.Info("Server exiting")
}

package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v2"
	"github.com/joho/godotenv"

	"fotoshare/application"
	"fotoshare/database"
	"fotoshare/domain/contracts"
	"fotoshare/infrastructure/authctx"
	"fotoshare/infrastructure/config"
	"fotoshare/infrastructure/repositories"
	"fotoshare/infrastructure/storage"
	"fotoshare/interfaces/web/handlers"
	"fotoshare/logging"
)

func main() {
	// Create app-wide context for graceful shutdown
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	// Initialize configuration
	loadEnvironment()
	cfg := config.LoadAppConfigFromEnv()

	// Initialize logging
	logger := initializeLogging(cfg)

	// Initialize database
	db := initializeDatabase(cfg, logger)
	defer db.Close()

	// Build dependencies with app context
	deps := buildDependencies(appCtx, cfg, db, logger)

	// Background orphan sweep keeps the storage queue drained
	startOrphanSweeper(appCtx, cfg, deps.Services.Cleanup, logger)

	// Setup routes and start server
	router := setupRoutes(deps, cfg)
	startServer(router, cfg.HTTPAddr, logger, appCancel)
}

// ApplicationServices holds application services.
type ApplicationServices struct {
	Access  *application.AccessService
	Cascade *application.CascadeService
	Photos  *application.PhotoService
	Shares  *application.ShareService
	Comment *application.CommentService
	Albums  *application.AlbumService
	Users   *application.UserService
	Cleanup *application.CleanupService
}

// PresentationLayer groups the HTTP handler groups.
type PresentationLayer struct {
	PhotoHandlers   *handlers.PhotoHandlers
	ShareHandlers   *handlers.ShareHandlers
	CommentHandlers *handlers.CommentHandlers
	AlbumHandlers   *handlers.AlbumHandlers
	UserHandlers    *handlers.UserHandlers
}

// Dependencies holds all application dependencies organized by layer.
type Dependencies struct {
	DB     *database.Database
	Logger *logging.Logger

	Services     *ApplicationServices
	Presentation *PresentationLayer
}

func loadEnvironment() {
	if err := godotenv.Load(); err != nil {
		println("No .env file found, using environment variables")
	} else {
		println("Loaded configuration from .env file")
	}
}

func initializeLogging(cfg *config.AppConfig) *logging.Logger {
	logger := logging.NewLogger(cfg.Logging)
	logging.SetDefault(logger)

	logger.Info("Application starting",
		"version", "1.0.0",
		"log_level", cfg.Logging.Level,
		"log_format", cfg.Logging.Format,
		"db_path", cfg.Database.Path,
		"storage_backend", cfg.Storage.Backend,
	)

	return logger
}

func initializeDatabase(cfg *config.AppConfig, logger *logging.Logger) *database.Database {
	db, err := database.New(*cfg.Database, logger)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	return db
}

// RepositoryBundle holds all repository implementations.
type RepositoryBundle struct {
	Users    contracts.UserRepository
	Photos   contracts.PhotoRepository
	Albums   contracts.AlbumRepository
	Shares   contracts.ShareRepository
	Comments contracts.CommentaryRepository
	Orphans  contracts.OrphanFileRepository
}

// buildRepositories creates all repository implementations with read/write database separation.
func buildRepositories(db *database.Database) *RepositoryBundle {
	return &RepositoryBundle{
		Users:    repositories.NewSqliteUserRepository(db),
		Photos:   repositories.NewSqlitePhotoRepository(db),
		Albums:   repositories.NewSqliteAlbumRepository(db),
		Shares:   repositories.NewSqliteShareRepository(db),
		Comments: repositories.NewSqliteCommentaryRepository(db),
		Orphans:  repositories.NewSqliteOrphanFileRepository(db),
	}
}

// buildStores creates the object stores for originals and thumbnails.
func buildStores(appCtx context.Context, cfg *config.AppConfig, logger *logging.Logger) (contracts.FileStore, contracts.ThumbnailStore) {
	if cfg.Storage.Backend == config.StorageBackendS3 {
		s3cfg := cfg.Storage.S3
		s3cfg.KeyPrefix = "photos/"
		files, err := storage.NewS3Store(appCtx, s3cfg)
		if err != nil {
			logger.Error("Failed to initialize S3 photo store", "error", err)
			os.Exit(1)
		}

		s3cfg.KeyPrefix = "thumbnails/"
		thumbs, err := storage.NewS3Store(appCtx, s3cfg)
		if err != nil {
			logger.Error("Failed to initialize S3 thumbnail store", "error", err)
			os.Exit(1)
		}
		return files, thumbs
	}

	files, err := storage.NewDiskStore(cfg.Storage.PhotoDir)
	if err != nil {
		logger.Error("Failed to initialize photo store", "error", err)
		os.Exit(1)
	}
	thumbs, err := storage.NewDiskThumbnailStore(cfg.Storage.ThumbnailDir)
	if err != nil {
		logger.Error("Failed to initialize thumbnail store", "error", err)
		os.Exit(1)
	}
	return files, thumbs
}

// buildApplicationServices creates application services with dependency injection.
func buildApplicationServices(
	db *database.Database,
	repos *RepositoryBundle,
	files contracts.FileStore,
	thumbs contracts.ThumbnailStore,
	tokens *authctx.JWTProvider,
	logger *logging.Logger,
) *ApplicationServices {
	access := application.NewAccessService(repos.Photos, repos.Albums, repos.Comments, repos.Shares)
	cascade := application.NewCascadeService(
		repos.Users,
		repos.Photos,
		repos.Albums,
		repos.Shares,
		repos.Comments,
		repos.Orphans,
		files,
		thumbs,
		db,
		logger,
	)

	return &ApplicationServices{
		Access:  access,
		Cascade: cascade,
		Photos:  application.NewPhotoService(access, cascade, repos.Photos, files, logger),
		Shares:  application.NewShareService(repos.Photos, repos.Users, repos.Shares, logger),
		Comment: application.NewCommentService(access, repos.Comments),
		Albums:  application.NewAlbumService(access, repos.Albums, repos.Photos),
		Users:   application.NewUserService(repos.Users, authctx.NewBcryptHasher(), tokens, cascade, logger),
		Cleanup: application.NewCleanupService(repos.Orphans, files, thumbs, logger),
	}
}

// buildPresentationLayer creates the HTTP handler groups.
func buildPresentationLayer(auth contracts.AuthContextProvider, services *ApplicationServices) *PresentationLayer {
	return &PresentationLayer{
		PhotoHandlers:   handlers.NewPhotoHandlers(auth, services.Photos, services.Access),
		ShareHandlers:   handlers.NewShareHandlers(auth, services.Shares),
		CommentHandlers: handlers.NewCommentHandlers(auth, services.Comment),
		AlbumHandlers:   handlers.NewAlbumHandlers(auth, services.Albums),
		UserHandlers:    handlers.NewUserHandlers(auth, services.Users),
	}
}

// buildDependencies creates all application dependencies.
func buildDependencies(appCtx context.Context, cfg *config.AppConfig, db *database.Database, logger *logging.Logger) *Dependencies {
	repos := buildRepositories(db)
	files, thumbs := buildStores(appCtx, cfg, logger)
	tokens := authctx.NewJWTProvider(cfg.Auth.JWTSecret, cfg.Auth.TokenLifetime)

	services := buildApplicationServices(db, repos, files, thumbs, tokens, logger)
	presentation := buildPresentationLayer(tokens, services)

	return &Dependencies{
		DB:           db,
		Logger:       logger,
		Services:     services,
		Presentation: presentation,
	}
}

// startOrphanSweeper drains the storage cleanup queue on an interval
// until the app context is cancelled.
func startOrphanSweeper(appCtx context.Context, cfg *config.AppConfig, cleanup *application.CleanupService, logger *logging.Logger) {
	interval := cfg.Storage.OrphanSweep
	if interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-appCtx.Done():
				return
			case <-ticker.C:
				if _, err := cleanup.SweepOrphans(appCtx); err != nil {
					logger.Error("Orphan sweep failed", "error", err)
				}
			}
		}
	}()
}

func setupRoutes(deps *Dependencies, cfg *config.AppConfig) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	setupHTTPLogging(r, deps, cfg)
	r.Use(middleware.Recoverer)

	// System endpoints
	setupSystemRoutes(r, deps)

	// Main application routes
	r.Route("/api", func(api chi.Router) {
		deps.Presentation.UserHandlers.RegisterRoutes(api)
		deps.Presentation.PhotoHandlers.RegisterRoutes(api)
		deps.Presentation.ShareHandlers.RegisterRoutes(api)
		deps.Presentation.CommentHandlers.RegisterRoutes(api)
		deps.Presentation.AlbumHandlers.RegisterRoutes(api)
	})

	return r
}

func setupHTTPLogging(r *chi.Mux, deps *Dependencies, cfg *config.AppConfig) {
	if cfg.HTTPLogPath == "" {
		// No HTTP logging configured, skip
		return
	}

	logFile, err := os.OpenFile(cfg.HTTPLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		deps.Logger.Error("Failed to open HTTP log file", "error", err, "path", cfg.HTTPLogPath)
		return
	}
	// Note: logFile is not closed here as it needs to stay open for the server lifetime

	httpLogger := httplog.NewLogger("fotoshare", httplog.Options{
		Writer: logFile,
		JSON:   true,
	})
	r.Use(httplog.RequestLogger(httpLogger))

	deps.Logger.Info("HTTP request logging enabled", "path", cfg.HTTPLogPath)
}

func setupSystemRoutes(r *chi.Mux, deps *Dependencies) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		stats, err := deps.DB.Health()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		response := map[string]interface{}{
			"status":   "ok",
			"database": stats,
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	})
}

func startServer(router *chi.Mux, addr string, logger *logging.Logger, appCancel context.CancelFunc) {
	server := &http.Server{Addr: addr, Handler: router}

	serverCtx, serverStopCtx := context.WithCancel(context.Background())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sig
		logger.Info("Shutdown signal received")

		// Cancel app-wide context first to signal all services to shutdown
		appCancel()

		shutdownCtx, cancel := context.WithTimeout(serverCtx, 30*time.Second)
		defer cancel()

		go func() {
			<-shutdownCtx.Done()
			if shutdownCtx.Err() == context.DeadlineExceeded {
				logger.Error("Graceful shutdown timed out, forcing exit")
				os.Exit(1)
			}
		}()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
			os.Exit(1)
		}
		serverStopCtx()
	}()

	logger.Info("Server starting", "address", addr)
	err := server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}

	<-serverCtx.Done()
	logger.Info("Server stopped")
}

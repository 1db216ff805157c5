package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/warungpo/preorder_api/internal/cache"
	"github.com/warungpo/preorder_api/internal/config"
	"github.com/warungpo/preorder_api/internal/database"
	"github.com/warungpo/preorder_api/internal/handler"
	"github.com/warungpo/preorder_api/internal/middleware"
	"github.com/warungpo/preorder_api/internal/models"
	"github.com/warungpo/preorder_api/internal/repository"
	"github.com/warungpo/preorder_api/internal/service"
	"github.com/warungpo/preorder_api/internal/utils"
)

// main is the application entrypoint for the pre-order API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting preorder api")

	// 3. Token signing key
	utils.SetJWTSecret(cfg.JWTSecret)

	// 4. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 4a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 4b. Connect to Redis
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Error().Err(err).Msg("redis connection failed")
		fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected successfully")

	// 4c. Store cache on top of Redis
	storeCache := cache.NewStoreCache(redisClient)

	// 5. Initialize repositories
	productRepo := repository.NewProductRepository(db)
	variantRepo := repository.NewVariantRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	adminRepo := repository.NewAdminUserRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// 6. Initialize services
	settingsSvc := service.NewSettingsService(settingsRepo, storeCache)
	catalogSvc := service.NewCatalogService(productRepo, variantRepo, storeCache)
	orderSvc := service.NewOrderService(orderRepo, productRepo, variantRepo, settingsSvc, storeCache)
	orderAdminSvc := service.NewOrderAdminService(orderRepo, storeCache)
	reportSvc := service.NewReportService(reportRepo, storeCache)
	authSvc := service.NewAuthService(adminRepo)
	adminUserSvc := service.NewAdminUserService(adminRepo)

	uploadSvc, err := service.NewUploadService(&cfg.S3)
	if err != nil {
		log.Warn().Err(err).Msg("upload service initialization failed - image uploads will be disabled")
	}

	// 6a. Bootstrap the first super admin when the table is empty
	if err := adminUserSvc.Bootstrap(context.Background(), cfg.Bootstrap.AdminName, cfg.Bootstrap.AdminEmail, cfg.Bootstrap.AdminPassword); err != nil {
		log.Error().Err(err).Msg("admin bootstrap failed")
		fmt.Fprintf(os.Stderr, "admin bootstrap failed: %v\n", err)
		os.Exit(1)
	}

	// 7. Initialize handlers
	handlers := &Handlers{
		Health:     handler.NewHealthHandler(db, redisClient),
		Product:    handler.NewProductHandler(catalogSvc),
		Variant:    handler.NewVariantHandler(catalogSvc),
		Order:      handler.NewOrderHandler(orderSvc),
		OrderAdmin: handler.NewOrderAdminHandler(orderAdminSvc),
		Settings:   handler.NewSettingsHandler(settingsSvc),
		Report:     handler.NewReportHandler(reportSvc),
		Auth:       handler.NewAuthHandler(authSvc, middleware.NewFailedLoginRateLimiter()),
		AdminUser:  handler.NewAdminUserHandler(adminUserSvc),
		Upload:     handler.NewUploadHandler(uploadSvc),
	}

	// 8. Initialize middleware
	jwtMw := middleware.NewJWTMiddleware()

	// 9. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, jwtMw)

	// 10. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 11. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 12. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health     *handler.HealthHandler
	Product    *handler.ProductHandler
	Variant    *handler.VariantHandler
	Order      *handler.OrderHandler
	OrderAdmin *handler.OrderAdminHandler
	Settings   *handler.SettingsHandler
	Report     *handler.ReportHandler
	Auth       *handler.AuthHandler
	AdminUser  *handler.AdminUserHandler
	Upload     *handler.UploadHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, jwtMiddleware *middleware.JWTMiddleware) {
	router.GET("/health", handlers.Health.Check)

	// Public storefront routes
	api := router.Group("/api")
	{
		api.GET("/products", handlers.Product.ListPublic)
		api.GET("/products/:id", handlers.Product.GetPublic)
		api.GET("/products/:id/variants", handlers.Variant.ListPublic)
		api.GET("/addons", handlers.Product.Addons)
		api.GET("/settings", handlers.Settings.Get)
		api.POST("/orders", handlers.Order.Create)
		api.GET("/orders/track/:code", handlers.Order.TrackByCode)
		api.POST("/auth/login", handlers.Auth.Login)
	}

	// Session restore needs a valid token but no specific role
	router.GET("/api/auth/me", jwtMiddleware.Handle(), handlers.Auth.Me)

	// Admin dashboard routes
	admin := router.Group("/api/admin")
	admin.Use(jwtMiddleware.Handle(), middleware.RequireRole(models.RoleAdmin))
	{
		// Catalog management
		admin.GET("/products", handlers.Product.ListAdmin)
		admin.POST("/products", handlers.Product.Create)
		admin.PUT("/products/:id", handlers.Product.Update)
		admin.DELETE("/products/:id", handlers.Product.Delete)
		admin.GET("/products/:id/variants", handlers.Variant.ListAdmin)
		admin.POST("/variants", handlers.Variant.Create)
		admin.PUT("/variants/:id", handlers.Variant.Update)
		admin.DELETE("/variants/:id", handlers.Variant.Delete)
		admin.POST("/upload", handlers.Upload.Upload)

		// Orders
		admin.GET("/orders", handlers.OrderAdmin.List)
		admin.GET("/orders/stats", handlers.OrderAdmin.Stats)
		admin.GET("/orders/:id", handlers.OrderAdmin.Get)
		admin.PATCH("/orders/:id", handlers.OrderAdmin.Update)
		admin.DELETE("/orders/:id", handlers.OrderAdmin.Delete)

		// Store settings
		admin.PUT("/settings", handlers.Settings.Update)

		// Reports
		admin.GET("/reports/summary", handlers.Report.Summary)
		admin.GET("/reports/by-variant", handlers.Report.ByVariant)
		admin.GET("/reports/export", handlers.Report.Export)
	}

	// Account management is super-admin only
	superAdmin := router.Group("/api/admin/users")
	superAdmin.Use(jwtMiddleware.Handle(), middleware.RequireRole(models.RoleSuperAdmin))
	{
		superAdmin.GET("", handlers.AdminUser.List)
		superAdmin.POST("", handlers.AdminUser.Create)
		superAdmin.PATCH("/:id/active", handlers.AdminUser.SetActive)
	}
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/shaikhmohammadtalha/mern-wanderlist/docs"
	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/config"
	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/facades"
	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/handlers"
	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/jwt"
	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/logger"
	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/middlewares"
	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/migrations"
	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/repositories"
	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title WanderList API
// @version 1.0.0
// @description Travel bucket-list backend: accounts, destinations and place search
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// routeHandlers groups the endpoint handlers mounted by newRouter.
type routeHandlers struct {
	signup            http.HandlerFunc
	login             http.HandlerFunc
	health            http.HandlerFunc
	protected         http.HandlerFunc
	listDestinations  http.HandlerFunc
	createDestination http.HandlerFunc
	destinationStats  http.HandlerFunc
	updateDestination http.HandlerFunc
	deleteDestination http.HandlerFunc
	geocode           http.HandlerFunc
}

// newRouter builds the HTTP routing tree. API routes live under
// cfg.App.BasePath; the Swagger UI is served at /swagger/.
func newRouter(cfg *config.Config, tokener middlewares.Tokener, h routeHandlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route(cfg.App.BasePath, func(r chi.Router) {
		// Public routes
		r.Get("/health", h.health)
		r.Post("/auth/signup", h.signup)
		r.Post("/auth/login", h.login)

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokener))
			r.Get("/protected", h.protected)
			r.Get("/destinations", h.listDestinations)
			r.Post("/destinations", h.createDestination)
			r.Get("/destinations/stats", h.destinationStats)
			r.Patch("/destinations/{id}", h.updateDestination)
			r.Delete("/destinations/{id}", h.deleteDestination)
			r.Get("/geocode", h.geocode)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}

// run initializes the logger, database, Redis, geocoder, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.App.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	// Connect to PostgreSQL
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	if err := migrations.Up(ctx, db.DB); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Connect to Redis when configured
	var geocodeCache services.GeocodeCache
	if cfg.Redis.Enabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Addr(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()
		geocodeCache = repositories.NewGeocodeCacheRepository(rdb, cfg.Geocoder.CacheTTL)
	} else {
		logger.Log.Info("REDIS_HOST not set, geocode cache disabled")
	}

	// Initialize JWT service
	tokens := jwt.New(cfg.JWT.SecretKey, cfg.JWT.Exp)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	destinationReadRepo := repositories.NewDestinationReadRepository(db)
	destinationWriteRepo := repositories.NewDestinationWriteRepository(db)

	geocoder := facades.NewNominatimFacade(
		&http.Client{Timeout: cfg.Geocoder.Timeout},
		cfg.Geocoder.BaseURL,
		cfg.Geocoder.UserAgent,
	)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	destinationService := services.NewDestinationService(destinationReadRepo, destinationWriteRepo)
	geocodeService := services.NewGeocodeService(geocoder, geocodeCache)

	docs.SwaggerInfo.Host = cfg.App.Addr()
	docs.SwaggerInfo.BasePath = cfg.App.BasePath
	docs.SwaggerInfo.Version = buildVersion

	r := newRouter(cfg, tokens, routeHandlers{
		signup:            handlers.NewRegisterHandler(authService),
		login:             handlers.NewLoginHandler(authService),
		health:            handlers.NewHealthHandler(buildVersion),
		protected:         handlers.NewProtectedHandler(),
		listDestinations:  handlers.NewListDestinationsHandler(destinationService),
		createDestination: handlers.NewCreateDestinationHandler(destinationService),
		destinationStats:  handlers.NewDestinationStatsHandler(destinationService),
		updateDestination: handlers.NewUpdateDestinationHandler(destinationService),
		deleteDestination: handlers.NewDeleteDestinationHandler(destinationService),
		geocode:           handlers.NewGeocodeHandler(geocodeService),
	})

	srv := &http.Server{
		Addr:              cfg.App.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.App.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

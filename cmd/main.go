package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/gradewatch/gradewatch/internal/facades"
	"github.com/gradewatch/gradewatch/internal/handlers"
	"github.com/gradewatch/gradewatch/internal/jwt"
	"github.com/gradewatch/gradewatch/internal/logger"
	"github.com/gradewatch/gradewatch/internal/middlewares"
	"github.com/gradewatch/gradewatch/internal/repositories"
	"github.com/gradewatch/gradewatch/internal/services"

	_ "github.com/gradewatch/gradewatch/docs"
	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Request quotas per client address, all over a one minute window.
const (
	rateLimitWindow  = time.Minute
	registerPerMin   = 5
	searchPerMin     = 10
	refreshPerMin    = 5
	confirmPerMin    = 10
	marketplaceHTTP  = 12 * time.Second
	imageSearchHTTP  = 8 * time.Second
	shutdownDeadline = 10 * time.Second
)

// @title gradewatch API
// @version 1.0.0
// @description Service for tracking graded collectible card prices across marketplaces
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
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

// config holds all application settings resolved from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	EbayToken    string
	GoogleAPIKey string
	GoogleCX     string

	KafkaAddr  string
	KafkaTopic string

	JWTSecretKey string
	JWTExpSecond int
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, upstream API, Kafka, and JWT configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "gradewatch")
	if cfg.PGPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Upstream API config. The service degrades gracefully when these are
	// empty: searches return zeroed averages and no image.
	cfg.EbayToken = getEnv("EBAY_OAUTH_TOKEN", "")
	cfg.GoogleAPIKey = getEnv("GOOGLE_API_KEY", "")
	cfg.GoogleCX = getEnv("GOOGLE_CX", "")

	// Kafka config, optional
	cfg.KafkaAddr = getEnv("KAFKA_ADDR", "")
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "gradewatch-searches")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Kafka writer for search snapshots, optional
	var snapshotWriter services.KafkaWriter
	if cfg.KafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaAddr),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		snapshotWriter = w
	}

	// Initialize JWT service
	tokenService := jwt.New(cfg.JWTSecretKey, time.Duration(cfg.JWTExpSecond)*time.Second)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	searchReadRepo := repositories.NewSearchReadRepository(db)
	searchWriteRepo := repositories.NewSearchWriteRepository(db, middlewares.GetTxFromContext)
	rateLimitRepo := repositories.NewRateLimitRepository(rdb)

	// Initialize upstream facades
	marketplace := facades.NewMarketplaceFacade(
		&http.Client{Timeout: marketplaceHTTP},
		facades.BrowseSearchURL,
		cfg.EbayToken,
	)
	imageSearch := facades.NewImageSearchFacade(
		&http.Client{Timeout: imageSearchHTTP},
		facades.GoogleSearchURL,
		facades.DuckDuckGoSearchURL,
		cfg.GoogleAPIKey,
		cfg.GoogleCX,
	)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokenService)
	cardService := services.NewCardService(marketplace, imageSearch, searchReadRepo, searchWriteRepo, snapshotWriter)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	tokenHandler := handlers.NewTokenHandler(authService)
	searchHandler := handlers.NewSearchHandler(cardService)
	refreshHandler := handlers.NewRefreshHandler(cardService)
	confirmHandler := handlers.NewConfirmImageHandler(cardService)
	savedHandler := handlers.NewSavedHandler(cardService)

	rateLimit := func(limit int64) func(http.Handler) http.Handler {
		return middlewares.RateLimitMiddleware(rateLimitRepo, limit, rateLimitWindow)
	}

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Get("/", handlers.NewPageHandler("index.html"))
	r.Get("/login", handlers.NewPageHandler("login.html"))
	r.Get("/register", handlers.NewPageHandler("register.html"))
	r.With(rateLimit(registerPerMin)).Post("/register", registerHandler)
	r.Post("/token", tokenHandler)

	// Protected routes with JWT middleware
	r.Route("/api", func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokenService, userReadRepo))

		r.Get("/saved", savedHandler)

		// Mutating routes run inside a per-request transaction
		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(db))
			r.With(rateLimit(searchPerMin)).Post("/search", searchHandler)
			r.With(rateLimit(refreshPerMin)).Post("/refresh", refreshHandler)
			r.With(rateLimit(confirmPerMin)).Post("/confirm_image", confirmHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
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

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDeadline)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

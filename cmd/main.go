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
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/projecthub/backend/internal/handlers"
	appjwt "github.com/projecthub/backend/internal/jwt"
	"github.com/projecthub/backend/internal/logger"
	"github.com/projecthub/backend/internal/middlewares"
	"github.com/projecthub/backend/internal/migrations"
	"github.com/projecthub/backend/internal/models"
	"github.com/projecthub/backend/internal/repositories"
	"github.com/projecthub/backend/internal/services"
	"github.com/projecthub/backend/internal/storage"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Config holds the full application configuration, loaded from the
// environment with optional defaults.
type Config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDatabase     string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost     string
	RedisPort     int
	RedisDB       int
	RedisPassword string
	CacheExpSec   int

	// Empty KafkaAddr disables audit-event publishing.
	KafkaAddr  string
	KafkaTopic string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioSSL       bool

	JWTSecretKey string
	JWTExpSecond int

	MaxFileSize int64
}

// @title projecthub API
// @version 1.0.0
// @description Backend for project management: authentication, project CRUD with audit trail, document upload
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

// parseConfig loads environment variables from a file and fills the
// configuration with defaults for anything unset.
func parseConfig(path string) (Config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getEnvInt := func(key string, defaultValue int) (int, error) {
		return strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	}

	cfg := Config{
		AppHost:  getEnv("APP_HOST", "localhost"),
		AppPort:  getEnv("APP_PORT", "8080"),
		LogLevel: getEnv("APP_LOG_LEVEL", "info"),

		PGHost:     getEnv("POSTGRES_HOST", "localhost"),
		PGUser:     getEnv("POSTGRES_USER", "user"),
		PGPassword: getEnv("POSTGRES_PASSWORD", "password"),
		PGDatabase: getEnv("POSTGRES_DB", "projecthub"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		KafkaAddr:  getEnv("KAFKA_ADDR", ""),
		KafkaTopic: getEnv("KAFKA_TOPIC", "audit-events"),

		MinioEndpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		MinioSecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
		MinioBucket:    getEnv("MINIO_BUCKET", "documents"),
		MinioSSL:       getEnv("MINIO_SSL", "false") == "true",

		JWTSecretKey: getEnv("JWT_SECRET_KEY", "my_super_secret_key"),
	}

	var err error
	if cfg.PGPort, err = getEnvInt("POSTGRES_PORT", 5432); err != nil {
		return cfg, err
	}
	if cfg.PGMaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return cfg, err
	}
	if cfg.PGMaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return cfg, err
	}
	if cfg.RedisPort, err = getEnvInt("REDIS_PORT", 6379); err != nil {
		return cfg, err
	}
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return cfg, err
	}
	if cfg.CacheExpSec, err = getEnvInt("CACHE_EXP_SECOND", 60); err != nil {
		return cfg, err
	}
	if cfg.JWTExpSecond, err = getEnvInt("JWT_EXP_SECOND", 3600); err != nil {
		return cfg, err
	}
	maxFileSize, err := getEnvInt("MAX_FILE_SIZE", 10*1024*1024)
	if err != nil {
		return cfg, err
	}
	cfg.MaxFileSize = int64(maxFileSize)

	return cfg, nil
}

// run wires the application together and serves HTTP until a shutdown
// signal arrives.
func run(ctx context.Context, cfg Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDatabase)
	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := migrations.Up(ctx, db.DB); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}
	logger.Log.Info("Migrations applied")

	// Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka, optional
	var kafkaWriter services.KafkaWriter
	if cfg.KafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaAddr),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Audit events will be published to %s topic %s", cfg.KafkaAddr, cfg.KafkaTopic)
	}

	// MinIO
	blobStorage, err := storage.NewMinioStorage(ctx,
		cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioSSL)
	if err != nil {
		return fmt.Errorf("minio connection error: %w", err)
	}

	// JWT
	tokener := appjwt.New(cfg.JWTSecretKey, time.Duration(cfg.JWTExpSecond)*time.Second)

	// Repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	projectReadRepo := repositories.NewProjectReadRepository(db, middlewares.GetTxFromContext)
	projectWriteRepo := repositories.NewProjectWriteRepository(db, middlewares.GetTxFromContext)
	auditRepo := repositories.NewAuditLogWriteRepository(db, middlewares.GetTxFromContext)
	documentRepo := repositories.NewDocumentWriteRepository(db, middlewares.GetTxFromContext)
	listCache := repositories.NewProjectListCacheRepository(rdb, time.Duration(cfg.CacheExpSec)*time.Second)

	// Services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokener)
	projectService := services.NewProjectService(projectReadRepo, projectWriteRepo, auditRepo, listCache, kafkaWriter)
	documentService := services.NewDocumentService(projectReadRepo, documentRepo, userReadRepo)

	// Handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	projectCreateHandler := handlers.NewProjectCreateHandler(projectService)
	projectListHandler := handlers.NewProjectListHandler(projectService)
	projectUpdateHandler := handlers.NewProjectUpdateHandler(projectService)
	projectDeleteHandler := handlers.NewProjectDeleteHandler(projectService)
	uploadHandler := handlers.NewUploadHandler(documentService, blobStorage, cfg.MaxFileSize)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/register", registerHandler)
	r.Post("/login", loginHandler)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokener))
		r.Use(middlewares.RequireRole(models.RoleUser, models.RoleAdmin))

		r.Get("/projects", projectListHandler)

		// Mutations run inside a request-scoped transaction that commits
		// only on a success status.
		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(db))

			r.Post("/projects", projectCreateHandler)
			r.Put("/projects/{id}", projectUpdateHandler)
			r.Delete("/projects/{id}", projectDeleteHandler)
			r.Post("/upload", uploadHandler)
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

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

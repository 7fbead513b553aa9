// Command creditscoped is the hosted Creditscope decision service.
// It serves the scoring and decision API, persists decisions in Postgres,
// and archives decision reports to blob storage.
package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/creditscope/creditscope/internal/api"
	"github.com/creditscope/creditscope/internal/archive"
	"github.com/creditscope/creditscope/internal/pipeline"
	"github.com/creditscope/creditscope/internal/platform"
	"github.com/creditscope/creditscope/internal/store"
	"github.com/creditscope/creditscope/pkg/config"
)

func loadConfig() *config.Config {
	cfg := config.DefaultConfig()
	if path := os.Getenv("CREDITSCOPE_CONFIG"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatalf("load config %s: %v", path, err)
		}
		cfg = loaded
	}

	// Environment overrides the file for deployment-specific settings.
	cfg.Service.Port = envOrDefault("PORT", cfg.Service.Port)
	cfg.Service.DatabaseURL = envOrDefault("DATABASE_URL", cfg.Service.DatabaseURL)
	cfg.Service.APIKey = envOrDefault("API_KEY", cfg.Service.APIKey)
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Service.RateLimit = parsed
		}
	}
	cfg.Cache.Backend = envOrDefault("CACHE_BACKEND", cfg.Cache.Backend)
	cfg.Cache.RedisAddr = envOrDefault("REDIS_ADDR", cfg.Cache.RedisAddr)
	cfg.Archive.Backend = envOrDefault("ARCHIVE_BACKEND", cfg.Archive.Backend)
	cfg.Archive.LocalPath = envOrDefault("LOCAL_STORAGE_PATH", cfg.Archive.LocalPath)
	cfg.Archive.Bucket = envOrDefault("ARCHIVE_BUCKET", cfg.Archive.Bucket)
	cfg.Archive.Region = envOrDefault("ARCHIVE_REGION", cfg.Archive.Region)
	cfg.Archive.Endpoint = envOrDefault("ARCHIVE_ENDPOINT", cfg.Archive.Endpoint)

	return cfg
}

func main() {
	cfg := loadConfig()

	var db *sql.DB
	var storeSvc *store.Service
	if cfg.Service.DatabaseURL != "" {
		var err error
		db, err = sql.Open("postgres", cfg.Service.DatabaseURL)
		if err != nil {
			log.Fatalf("open database: %v", err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			log.Fatalf("ping database: %v", err)
		}
		if err := platform.AutoMigrate(db); err != nil {
			log.Fatalf("migrate database: %v", err)
		}
		storeSvc = store.NewService(db)
	} else {
		log.Println("no DATABASE_URL, running stateless")
	}

	storage := buildStorage(cfg)
	cache := buildCache(cfg)

	pipelineSvc := pipeline.NewService(storeSvc, storage, nil)
	handler := api.NewHandler(pipelineSvc, cfg, cache)

	apiMux := http.NewServeMux()
	handler.RegisterRoutes(apiMux)

	var apiHandler http.Handler = apiMux
	if cfg.Service.RateLimit > 0 {
		rl := api.NewRateLimiter(cfg.Service.RateLimit, time.Minute)
		defer rl.Stop()
		apiHandler = api.RateLimit(rl)(apiHandler)
	}
	apiHandler = api.APIKeyAuth(cfg.Service.APIKey)(apiHandler)

	// Health stays outside auth so load balancers can probe it.
	mux := http.NewServeMux()
	mux.Handle("/api/v1/", apiHandler)
	mux.HandleFunc("GET /healthz", healthHandler(db))

	srv := &http.Server{
		Addr:    ":" + cfg.Service.Port,
		Handler: api.CORS(mux),
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("starting creditscoped on :%s", cfg.Service.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

func buildStorage(cfg *config.Config) archive.StorageClient {
	switch cfg.Archive.Backend {
	case "s3":
		storage, err := archive.NewS3Storage(context.Background(), archive.S3Config{
			Bucket:    cfg.Archive.Bucket,
			Region:    cfg.Archive.Region,
			Endpoint:  cfg.Archive.Endpoint,
			AccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		})
		if err != nil {
			log.Fatalf("init s3 storage: %v", err)
		}
		return storage
	case "gcs":
		storage, err := archive.NewGCSStorage(context.Background(), cfg.Archive.Bucket)
		if err != nil {
			log.Fatalf("init gcs storage: %v", err)
		}
		return storage
	case "local":
		return archive.NewLocalStorage(cfg.Archive.LocalPath)
	default:
		return nil
	}
}

func buildCache(cfg *config.Config) api.Cache {
	if cfg.Cache.Backend == "redis" && cfg.Cache.RedisAddr != "" {
		return api.NewRedisCache(cfg.Cache.RedisAddr, time.Hour)
	}
	return api.NewMemoryCache(cfg.Cache.Size)
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				http.Error(w, "database unreachable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

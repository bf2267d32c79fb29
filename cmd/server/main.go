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

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/MitulSachdeva/ShopFlow/internal/catalog"
	searchcache "github.com/MitulSachdeva/ShopFlow/internal/catalog/cache"
	"github.com/MitulSachdeva/ShopFlow/internal/checkout"
	"github.com/MitulSachdeva/ShopFlow/internal/domain"
	"github.com/MitulSachdeva/ShopFlow/internal/httpapi"
	"github.com/MitulSachdeva/ShopFlow/internal/search"
	"github.com/MitulSachdeva/ShopFlow/internal/storage"
	"github.com/MitulSachdeva/ShopFlow/internal/store"
)

type Config struct {
	HTTPPort        string
	DBPath          string
	MigrationsPath  string
	RedisAddr       string // empty disables the search cache
	RedisPassword   string
	CheckoutDelay   time.Duration
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	Verbose         bool
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		DBPath:          getEnv("STATE_DB_PATH", "shopflow.db"),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "migrations"),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		CheckoutDelay:   getDurationEnv("CHECKOUT_DELAY", checkout.DefaultProcessingDelay),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		Verbose:         os.Getenv("VERBOSE") != "",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func main() {
	// .env is optional; real env vars win.
	_ = godotenv.Load()

	cfg := loadConfig()

	zapCfg := zap.NewProductionConfig()
	if cfg.Verbose {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zapCfg.Build()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Durable slot store
	slots, err := storage.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		logger.Fatal("failed to open state database", zap.Error(err))
	}
	if err := slots.RunMigrations(cfg.MigrationsPath); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}
	logger.Info("state database ready", zap.String("path", cfg.DBPath))

	// Static catalog
	cat := catalog.Default()
	logger.Info("catalog loaded", zap.Int("products", cat.Len()))

	// Optional redis-backed search cache
	var cache searchcache.SearchCache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Fatal("redis connection failed", zap.Error(err))
		}
		cache = searchcache.NewRedisCache(redisClient)
		logger.Info("search cache enabled", zap.String("addr", cfg.RedisAddr))
	}

	// State container, rehydrated from the slots
	st := store.New(slots, cat, logger)
	st.OnThemeChange(func(theme domain.Theme) {
		logger.Info("theme changed", zap.String("theme", string(theme)))
	})

	searchSvc := search.NewService(cat, cache, logger)
	checkoutSvc := checkout.NewService(st, logger, cfg.CheckoutDelay)

	router := httpapi.NewRouter(httpapi.Deps{
		Store:          st,
		Catalog:        cat,
		Search:         searchSvc,
		Checkout:       checkoutSvc,
		RequestTimeout: cfg.RequestTimeout,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("storefront server starting", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	// Flush state before exit
	if err := st.Close(); err != nil {
		logger.Error("failed to flush state", zap.Error(err))
	}

	logger.Info("server exited")
}

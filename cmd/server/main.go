package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"aviation-institute-api/internal/config"
	"aviation-institute-api/internal/handler"
	"aviation-institute-api/internal/logging"
	"aviation-institute-api/internal/metrics"
	"aviation-institute-api/internal/middleware"
	"aviation-institute-api/internal/router"
	"aviation-institute-api/internal/session"
	"aviation-institute-api/internal/store"
	"aviation-institute-api/internal/upload"
	"aviation-institute-api/migrations"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is required")
	}
	logger := logging.New(cfg.LogLevel)

	// database
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()
	if err := pool.Ping(context.Background()); err != nil {
		log.Fatalf("db ping: %v", err)
	}
	logger.Info("connected to postgres")

	if err := runMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("migrations: %v", err)
	}
	logger.Info("migrations applied")

	// server-side sessions, backing chosen by config
	var sessions session.Store
	if cfg.SessionBackend == "redis" {
		client := session.NewRedisClient(cfg.RedisAddr)
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("redis ping: %v", err)
		}
		sessions = session.NewRedisStore(client, cfg.SessionTTL)
		logger.Info("sessions backed by redis", "addr", cfg.RedisAddr)
	} else {
		sessions = session.NewMemoryStore(cfg.SessionTTL)
		logger.Info("sessions backed by memory")
	}
	cookies := session.NewCodec(cfg.SessionSecret, cfg.SessionTTL, cfg.CookieSecure)

	files, err := upload.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("uploads: %v", err)
	}

	st := store.New(pool)
	m := metrics.New(nil)
	h := handler.New(st, sessions, cookies, files, logger, m)

	mux := router.New(&router.Config{
		Handler:   h,
		Cookies:   cookies,
		Sessions:  sessions,
		Logger:    logger,
		Limiter:   middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		UploadDir: cfg.UploadDir,
		Metrics:   promhttp.Handler(),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: mux,
	}
	go func() {
		logger.Info("listening", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http: %v", err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "error", err)
	}
}

func runMigrations(databaseURL string) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return err
	}
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}
	mg, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return err
	}
	if err := mg.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

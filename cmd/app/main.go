package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"foodly/cmd"
	httpin "foodly/internal/adapters/in/http"
	"foodly/internal/adapters/out/postgres"
	sessionredis "foodly/internal/adapters/out/redis"
	"foodly/internal/core/application/usecases/commands"
	"foodly/internal/core/domain/model/kernel"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := newLogger(configs.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := postgres.Open(configs.ConnectionSettings(), logger)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	redisClient, err := sessionredis.NewClient(ctx, configs.RedisAddr, configs.RedisPassword, configs.RedisDB)
	if err != nil {
		log.Fatalf("Error connecting to redis: %v", err)
	}
	defer redisClient.Close()

	app, err := cmd.NewCompositionRoot(configs, gormDB, redisClient, kernel.SystemClock{}, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	if configs.SeedMenu {
		seedMenu(ctx, app, logger)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load(".env")

	config := cmd.Config{
		HTTPPort:       envOr("HTTP_PORT", "8080"),
		DBDriver:       envOr("DB_DRIVER", postgres.DriverPostgres),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         os.Getenv("DB_PORT"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBSslMode:      os.Getenv("DB_SSLMODE"),
		SQLitePath:     os.Getenv("SQLITE_PATH"),
		RedisAddr:      envOr("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		ReaperSchedule: os.Getenv("REAPER_SCHEDULE"),
		LogLevel:       envOr("LOG_LEVEL", "info"),
	}

	var err error
	if v := os.Getenv("REDIS_DB"); v != "" {
		if config.RedisDB, err = strconv.Atoi(v); err != nil {
			log.Fatalf("Invalid REDIS_DB %q: %v", v, err)
		}
	}
	if v := os.Getenv("STALENESS_WINDOW"); v != "" {
		if config.StalenessWindow, err = time.ParseDuration(v); err != nil {
			log.Fatalf("Invalid STALENESS_WINDOW %q: %v", v, err)
		}
	}
	if v := os.Getenv("SEED_MENU"); v != "" {
		if config.SeedMenu, err = strconv.ParseBool(v); err != nil {
			log.Fatalf("Invalid SEED_MENU %q: %v", v, err)
		}
	}
	return config
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func seedMenu(ctx context.Context, app cmd.CompositionRoot, logger *slog.Logger) {
	seed, err := commands.NewSeedProductsCommand(commands.DefaultMenu())
	if err != nil {
		log.Fatalf("Invalid default menu: %v", err)
	}

	handler := app.CreateSeedProductsCommandHandler()
	inserted, err := handler.Handle(ctx, seed)
	if err != nil {
		log.Fatalf("Error seeding menu: %v", err)
	}
	logger.InfoContext(ctx, "menu seeded", "inserted", inserted)
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := httpin.NewEcho(app.CreateHTTPServer())

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("http server listening", "port", port)
	if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Error running http server: %v", err)
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/go-redis/redis/v8"

	"anime-catalog/config"
	_ "anime-catalog/docs" // Swagger docs
	animeRepository "anime-catalog/internal/anime/repository"
	animeMemory "anime-catalog/internal/anime/repository/memory"
	animePostgre "anime-catalog/internal/anime/repository/postgre"
	animeRedis "anime-catalog/internal/anime/repository/redis"
	"anime-catalog/internal/httpserver"
	"anime-catalog/internal/middleware"
	userRepository "anime-catalog/internal/user/repository"
	userMemory "anime-catalog/internal/user/repository/memory"
	userPostgre "anime-catalog/internal/user/repository/postgre"
	userUsecase "anime-catalog/internal/user/usecase"
	"anime-catalog/migrations"
	"anime-catalog/pkg/log"
	"anime-catalog/pkg/postgres"
	"anime-catalog/pkg/scope"
)

// @title       Anime Catalog API
// @description CRUD catalog of anime titles with paging, search and role-based access.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.basic BasicAuth
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Anime Catalog...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage driver: %s", cfg.Storage.Driver)

	// 3. Storage
	var (
		animeRepo animeRepository.Repository
		userRepo  userRepository.Repository
		ready     func(ctx context.Context) error
	)

	seeds := make([]userMemory.Seed, 0, len(cfg.Auth.Users))
	for _, u := range cfg.Auth.Users {
		seeds = append(seeds, userMemory.Seed{Name: u.Name, Username: u.Username, Password: u.Password, Roles: u.Roles})
	}
	userRepo, err = userMemory.New(seeds, cfg.Auth.BcryptCost)
	if err != nil {
		logger.Error(ctx, "Failed to seed users: ", err)
		return
	}

	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, postgres.Config{
			DSN:             cfg.Postgres.DSN,
			MaxConns:        cfg.Postgres.MaxConns,
			MinConns:        cfg.Postgres.MinConns,
			MaxConnLifetime: cfg.Postgres.MaxConnLifetime,
			MaxConnIdleTime: cfg.Postgres.MaxConnIdleTime,
		})
		if err != nil {
			logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
			return
		}
		defer pool.Close()

		if cfg.Postgres.AutoMigrate {
			applied, err := postgres.Migrate(ctx, pool, migrations.FS)
			if err != nil {
				logger.Error(ctx, "Failed to apply migrations: ", err)
				return
			}
			logger.Infof(ctx, "Applied %d migration(s)", applied)
		}

		animeRepo = animePostgre.New(pool, logger)
		if cfg.Auth.UseDatabase {
			userRepo = userRepository.Chain(userRepo, userPostgre.New(pool, logger))
		}
		ready = pool.Ping

	case config.DriverRedis:
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()

		if err := client.Ping(ctx).Err(); err != nil {
			logger.Error(ctx, "Failed to connect to Redis: ", err)
			return
		}

		animeRepo = animeRedis.New(client, cfg.Redis.KeyPrefix, logger)
		ready = func(ctx context.Context) error { return client.Ping(ctx).Err() }

	default:
		animeRepo = animeMemory.New()
	}

	// 4. Security
	userUC, err := userUsecase.New(userRepo, scope.New(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTTL), logger, cfg.Auth.BcryptCost)
	if err != nil {
		logger.Error(ctx, "Failed to initialize user usecase: ", err)
		return
	}
	mw := middleware.New(logger, userUC, cfg.Auth, cfg.Access, cfg.HTTPServer)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ReadTimeout:     cfg.HTTPServer.ReadTimeout,
		WriteTimeout:    cfg.HTTPServer.WriteTimeout,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Middleware:      mw,
		UserUseCase:     userUC,
		AnimeRepository: animeRepo,
		Pagination: httpserver.PaginationConfig{
			DefaultPage: cfg.Pagination.DefaultPage,
			DefaultSize: cfg.Pagination.DefaultSize,
			MaxSize:     cfg.Pagination.MaxSize,
		},
		Ready: ready,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	chatService "github.com/askahmah/v1/internal/application/chat"
	inventoryService "github.com/askahmah/v1/internal/application/inventory"
	recipeService "github.com/askahmah/v1/internal/application/recipe"
	"github.com/askahmah/v1/internal/infrastructure/ai/ollama"
	"github.com/askahmah/v1/internal/infrastructure/ai/tools"
	"github.com/askahmah/v1/internal/infrastructure/config"
	"github.com/askahmah/v1/internal/infrastructure/http/server"
	gormRepo "github.com/askahmah/v1/internal/infrastructure/persistence/gorm"
	"github.com/askahmah/v1/internal/infrastructure/persistence/memory"
	"github.com/askahmah/v1/internal/infrastructure/persistence/postgres"
	"github.com/askahmah/v1/internal/infrastructure/persistence/redis"
	"github.com/askahmah/v1/internal/infrastructure/persistence/sqlite"
	"github.com/askahmah/v1/internal/ports/outbound"
	"github.com/askahmah/v1/pkg/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	CacheModule,
	RepositoryModule,
	AIModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// DatabaseModule provides the database connection for the configured driver
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		if cfg.Database.Driver == "postgres" {
			return postgres.Connect(cfg, log)
		}

		logLevel := gormLogger.Silent
		if cfg.App.Debug {
			logLevel = gormLogger.Info
		}

		db, err := sqlite.SetupDatabase(cfg.Database.SQLitePath, logLevel)
		if err != nil {
			return nil, fmt.Errorf("failed to setup SQLite database: %w", err)
		}

		log.Info("Connected to SQLite database",
			zap.String("path", cfg.Database.SQLitePath),
			zap.Bool("in_memory", cfg.Database.SQLitePath == ""),
		)

		return db, nil
	},
)

// CacheModule provides the cache repository, Redis when enabled and the
// in-memory fallback otherwise
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (outbound.CacheRepository, error) {
		if cfg.Redis.Enabled {
			return redis.NewCacheRepository(redis.Config{
				Host:     cfg.Redis.Host,
				Port:     cfg.Redis.Port,
				Password: cfg.Redis.Password,
				Database: cfg.Redis.Database,
				PoolSize: cfg.Redis.PoolSize,
			}, log)
		}
		log.Info("Using in-memory cache")
		return memory.NewCacheRepository(), nil
	},
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	gormRepo.NewInventoryRepository,
	gormRepo.NewMessageRepository,
	gormRepo.NewRecipeRepository,
)

// AIModule provides the model boundary and the tool registry
var AIModule = fx.Provide(
	fx.Annotate(
		func(cfg *config.Config, log *zap.Logger) *ollama.Client {
			return ollama.NewClient(ollama.Config{
				BaseURL:     cfg.AI.OllamaHost,
				Model:       cfg.AI.Model,
				Timeout:     cfg.AI.Timeout,
				Temperature: cfg.AI.Temperature,
				NumCtx:      cfg.AI.NumCtx,
			}, log)
		},
		fx.As(new(outbound.ChatModel)),
	),
	tools.NewRegistry,
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	inventoryService.NewService,
	chatService.NewService,
	recipeService.NewService,
)

// HTTPModule provides the HTTP server
var HTTPModule = fx.Provide(
	server.NewServer,
)

// LifecycleModule provides lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	srv *server.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting application",
				zap.String("name", cfg.App.Name),
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := srv.Start(); err != nil {
					log.Fatal("Failed to start HTTP server", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down application")

			if err := srv.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			sqlDB, err := db.DB()
			if err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Error("Failed to close database connection", zap.Error(err))
				}
			}

			_ = log.Sync()

			return nil
		},
	})
}

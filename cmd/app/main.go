package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	dbadapter "netter/internal/adapters/database"
	"netter/internal/adapters/httpapi"
	redisadapter "netter/internal/adapters/redis"
	"netter/internal/config"
	"netter/internal/workers"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	var cfg config.Config

	cliApp := &cli.App{
		Name:  "netter",
		Usage: "social network API",
		Before: func(c *cli.Context) error {
			var err error
			if cfg, err = config.Load(); err != nil {
				return err
			}
			if err := config.InitLogger(cfg.Env); err != nil {
				return err
			}
			return config.InitDB(cfg)
		},
		After: func(c *cli.Context) error {
			closeResources(config.Logger)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start the http server and the outbox worker",
				Action: func(c *cli.Context) error {
					return serve(c.Context, cfg)
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update the database schema",
				Action: func(c *cli.Context) error {
					if err := dbadapter.Migrate(c.Context, config.DB); err != nil {
						return err
					}
					config.Logger.Info("Database migrations completed")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "fill the database with demo users, follows and posts",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "users", Value: 20, Usage: "number of users to create"},
					&cli.IntFlag{Name: "posts", Value: 5, Usage: "posts per user"},
				},
				Action: func(c *cli.Context) error {
					if err := dbadapter.Migrate(c.Context, config.DB); err != nil {
						return err
					}
					store := dbadapter.NewStore(config.DB)
					return seed(c.Context, config.Logger, store, c.Int("users"), c.Int("posts"))
				},
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		config.Logger.Fatal("netter failed", zap.Error(err))
	}
}

func serve(ctx context.Context, cfg config.Config) error {
	if err := dbadapter.Migrate(ctx, config.DB); err != nil {
		return err
	}
	config.Logger.Info("Database migrations completed")

	if err := config.InitRedis(ctx, cfg); err != nil {
		return err
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	store := dbadapter.NewStore(config.DB)
	r := httpapi.SetupRoutes(func() httpapi.Scope { return store.NewScope() }, config.Logger, cfg.Env)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	eg, groupCtx := errgroup.WithContext(ctx)

	if config.RedisClient != nil {
		publisher := redisadapter.NewEventPublisherRedis(config.RedisClient)
		worker := workers.NewOutboxWorker(store.Outbox(), publisher, cfg.OutboxBatchSize, cfg.OutboxPollInterval, config.Logger)
		eg.Go(func() error {
			worker.Run(groupCtx)
			return nil
		})
	}

	eg.Go(func() error {
		config.Logger.Info("App is running", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	eg.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		config.Logger.Info("Server stopping")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// closeResources closes the Redis and database connections.
func closeResources(logger *zap.Logger) {
	if config.RedisClient != nil {
		if err := config.RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}

	if config.DB != nil {
		sqlDB, err := config.DB.DB()
		if err != nil {
			logger.Error("Error getting raw DB", zap.Error(err))
			return
		}
		if err := sqlDB.Close(); err != nil {
			logger.Error("Error closing database connection", zap.Error(err))
		}
	}
	_ = logger.Sync()
}

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"syscall"
	"time"

	"github.com/USA-RedDragon/geodist-server/internal/cache"
	"github.com/USA-RedDragon/geodist-server/internal/config"
	"github.com/USA-RedDragon/geodist-server/internal/db"
	"github.com/USA-RedDragon/geodist-server/internal/metrics"
	"github.com/USA-RedDragon/geodist-server/internal/server"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/ztrue/shutdown"
	"golang.org/x/sync/errgroup"
)

func NewCommand(version, commit string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "geodist-server",
		Version: fmt.Sprintf("%s - %s", version, commit),
		Annotations: map[string]string{
			"version": version,
			"commit":  commit,
		},
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.RegisterFlags(cmd)
	cmd.AddCommand(newDistanceCommand())
	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	slog.Info("geodist-server", "version", cmd.Annotations["version"], "commit", cmd.Annotations["commit"])

	config, err := config.LoadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	err = config.Validate()
	if err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	sweepCtx, stopSweep := context.WithCancel(cmd.Context())
	defer stopSweep()

	var distanceCache cache.Cache = cache.Noop{}
	if config.Cache.Enabled {
		if config.Redis.Enabled {
			redis := connectRedis(config)
			defer redis.Close()
			if err := redis.Ping(cmd.Context()).Err(); err != nil {
				return fmt.Errorf("failed to connect to redis: %w", err)
			}
			distanceCache = cache.NewRedis(redis, config.Cache.TTL)
			slog.Info("Caching distances in Redis", "ttl", config.Cache.TTL)
		} else {
			memory := cache.NewMemory(config.Cache.TTL)
			go memory.Run(sweepCtx, config.Cache.TTL)
			distanceCache = memory
			slog.Info("Caching distances in memory", "ttl", config.Cache.TTL)
		}
	}

	db, err := db.MakeDB(config)
	if err != nil {
		return fmt.Errorf("failed to make database: %w", err)
	}
	slog.Info("Database connection established")

	slog.Info("Starting HTTP server")
	server := server.NewServer(config, db, distanceCache, metrics.NewMetrics(nil))
	err = server.Start()
	if err != nil {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	stop := func(_ os.Signal) {
		slog.Info("Shutting down")
		stopSweep()

		errGrp := errgroup.Group{}

		errGrp.Go(func() error {
			return server.Stop()
		})

		err := errGrp.Wait()
		if err != nil {
			slog.Error("Shutdown error", "error", err.Error())
		}
		slog.Info("Shutdown complete")
	}

	if cmd.Annotations["version"] == "testing" {
		doneChannel := make(chan struct{})
		go func() {
			slog.Info("Sleeping for 5 seconds")
			time.Sleep(5 * time.Second)
			slog.Info("Sending SIGTERM")
			stop(syscall.SIGTERM)
			doneChannel <- struct{}{}
		}()
		<-doneChannel
	} else {
		shutdown.AddWithParam(stop)
		shutdown.Listen(syscall.SIGINT, syscall.SIGKILL, syscall.SIGTERM, syscall.SIGQUIT)
	}

	return nil
}

func connectRedis(config *config.Config) redis.UniversalClient {
	if config.Redis.Sentinel.Enabled {
		return redis.NewFailoverClient(&redis.FailoverOptions{
			MasterName:       config.Redis.Sentinel.MasterName,
			SentinelAddrs:    config.Redis.Sentinel.Addresses,
			SentinelUsername: config.Redis.Sentinel.Username,
			SentinelPassword: config.Redis.Sentinel.Password,
			Password:         config.Redis.Password,
			Username:         config.Redis.Username,
			DB:               config.Redis.Database,
		})
	}
	return redis.NewClient(&redis.Options{
		Addr:     config.Redis.Address,
		Username: config.Redis.Username,
		Password: config.Redis.Password,
		DB:       config.Redis.Database,
	})
}

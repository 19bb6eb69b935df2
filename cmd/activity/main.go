// Command activity consumes catalog activity events from RabbitMQ and
// appends them to logs/activity.log.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/iliyamo/movie-catalog/internal/config"
	"github.com/iliyamo/movie-catalog/internal/logger"
	"github.com/iliyamo/movie-catalog/internal/queue"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		boot := logger.New("production", "info")
		boot.Fatal().Err(err).Msg("load config")
	}
	log := logger.New(cfg.Env, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := &queue.ActivityConsumer{
		URL:     cfg.AMQP.URL,
		Queue:   cfg.AMQP.Queue,
		LogPath: filepath.Join("logs", "activity.log"),
		Log:     log,
	}
	log.Info().Str("queue", c.Queue).Str("file", c.LogPath).Msg("activity consumer started")
	if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("activity consumer stopped")
	}
}

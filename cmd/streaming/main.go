package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/heridev/go-llm-server/internal/setup"
	"github.com/heridev/go-llm-server/internal/setup/logger"
	"github.com/heridev/go-llm-server/internal/stream"
	"github.com/heridev/go-llm-server/internal/stream/redis"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	_ = godotenv.Load()

	log := logger.New(os.Getenv("LOG_LEVEL"))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := setup.LoadConfig()

	deps, err := setup.Wire(ctx, cfg, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	if cfg.RedisAddr == "" {
		cfg.RedisAddr = "localhost:6379"
	}

	streamName := os.Getenv("GENERATE_STREAM")
	if streamName == "" {
		streamName = "generate-events"
	}
	resultStream := os.Getenv("GENERATE_RESULT_STREAM")
	if resultStream == "" {
		resultStream = "generate-results"
	}

	streamCfg := &stream.StreamConfig{
		Provider: os.Getenv("STREAM_PROVIDER"),
		RedisConfig: redis.NewRedisStreamConfig(
			cfg.RedisAddr,
			cfg.RedisPassword,
			streamName,
			resultStream,
			"generate-group",
			os.Getenv("HOSTNAME"),
		),
	}

	consumer, err := stream.NewStreamConsumer(ctx, streamCfg, deps.Executor, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create stream consumer")
	}

	if err := consumer.Setup(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to set up consumer group")
	}

	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("Consumer stopped with error")
	}

	log.Info().Msg("Consumer stopped")
}

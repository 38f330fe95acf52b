package setup

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/heridev/go-llm-server/internal/config"
	"github.com/heridev/go-llm-server/internal/executor"
	"github.com/heridev/go-llm-server/internal/llm"
	"github.com/heridev/go-llm-server/internal/llm/anthropic"
	"github.com/heridev/go-llm-server/internal/llm/bedrock"
	"github.com/heridev/go-llm-server/internal/ratelimit"
	red "github.com/heridev/go-llm-server/internal/redis"
	"github.com/rs/zerolog"
)

type Config struct {
	Port             string
	Provider         string
	AnthropicAPIKey  string
	AnthropicModelID string
	AWSRegion        string
	BedrockModelID   string
	RateLimitMax     int
	RateLimitWindow  time.Duration
	RedisAddr        string
	RedisPassword    string
}

type Dependencies struct {
	Executor *executor.Executor
	Limiter  ratelimit.Limiter
	Logger   *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		Port:             getEnv("PORT", "3000"),
		Provider:         getEnv("LLM_PROVIDER", "anthropic"),
		AnthropicAPIKey:  getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicModelID: getEnv("ANTHROPIC_MODEL_ID", ""),
		AWSRegion:        getEnv("AWS_REGION", "us-east-1"),
		BedrockModelID:   getEnv("BEDROCK_MODEL_ID", ""),
		RateLimitMax:     getEnvInt("RATE_LIMIT_MAX", 100),
		RateLimitWindow:  time.Duration(getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 900)) * time.Second,
		RedisAddr:        getEnv("REDIS_ADDR", ""),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
	}
}

func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	llmClient, err := createLLMClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	promptCfg, err := config.LoadPromptConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load prompt config: %w", err)
	}

	exec, err := executor.NewExecutor(llmClient, promptCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create executor: %w", err)
	}

	return &Dependencies{
		Executor: exec,
		Limiter:  createLimiter(ctx, cfg, logger),
		Logger:   logger,
	}, nil
}

func createLLMClient(ctx context.Context, cfg *Config) (llm.LLMClient, error) {
	switch cfg.Provider {
	case "bedrock":
		return bedrock.NewClient(ctx, cfg.AWSRegion, cfg.BedrockModelID)
	case "anthropic":
		return anthropic.NewClient(cfg.AnthropicAPIKey, cfg.AnthropicModelID)
	default:
		return anthropic.NewClient(cfg.AnthropicAPIKey, cfg.AnthropicModelID)
	}
}

// createLimiter prefers the Redis-backed limiter when REDIS_ADDR is set, so
// the budget is shared across replicas; otherwise counts in memory.
func createLimiter(ctx context.Context, cfg *Config, logger *zerolog.Logger) ratelimit.Limiter {
	if cfg.RedisAddr != "" {
		client, err := red.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, 3, logger)
		if err == nil {
			return ratelimit.NewRedisLimiter(client, cfg.RateLimitMax, cfg.RateLimitWindow)
		}
		logger.Warn().Err(err).Msg("Redis unavailable, using in-memory rate limiter")
	}

	return ratelimit.NewMemoryLimiter(cfg.RateLimitMax, cfg.RateLimitWindow)
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		value = defaultValue
	}

	return value
}

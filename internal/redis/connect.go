package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	dialTimeout  = 5 * time.Second
	readTimeout  = 3 * time.Second
	writeTimeout = 3 * time.Second
)

// ConnectRedis dials Redis and verifies the connection with a ping, backing
// off exponentially between attempts. Per-command retries after connect are
// left to the client defaults.
func ConnectRedis(ctx context.Context, addr string, password string, attempts int, logger *zerolog.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  dialTimeout,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	})

	var err error
	for i := range attempts {
		if i > 0 {
			backoff := time.Duration(1<<uint(i)) * time.Second
			logger.Info().Dur("backoff", backoff).Str("addr", addr).Msg("Retrying Redis connection")

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		err = client.Ping(ctx).Err()
		if err == nil {
			logger.Info().Str("addr", addr).Int("attempt", i+1).Msg("Connected to Redis")
			return client, nil
		}

		logger.Warn().Err(err).Str("addr", addr).Int("attempt", i+1).Int("attempts", attempts).Msg("Redis ping failed")
	}

	return nil, fmt.Errorf("redis unreachable at %s after %d attempts: %w", addr, attempts, err)
}

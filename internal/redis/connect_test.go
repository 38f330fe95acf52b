package redis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestConnectRedis_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	logger := zerolog.Nop()
	_, err := ConnectRedis(ctx, "127.0.0.1:1", "", 3, &logger)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestConnectRedis_UnreachableAddress(t *testing.T) {
	logger := zerolog.Nop()

	// Port 1 is never a Redis server, and a single attempt avoids backoff.
	_, err := ConnectRedis(context.Background(), "127.0.0.1:1", "", 1, &logger)
	if err == nil {
		t.Fatal("Expected an error for an unreachable address")
	}
	if !strings.Contains(err.Error(), "after 1 attempts") {
		t.Errorf("Expected attempt count in error, got %v", err)
	}
}

package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestMemoryLimiter_AllowsUpToLimit(t *testing.T) {
	limiter := NewMemoryLimiter(3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, _, err := limiter.Allow(ctx, "10.0.0.1")
		if err != nil {
			t.Fatalf("Allow failed: %v", err)
		}
		if !allowed {
			t.Fatalf("Request %d: expected allowed", i+1)
		}
	}

	allowed, retryAfter, err := limiter.Allow(ctx, "10.0.0.1")
	if err != nil {
		t.Fatalf("Allow failed: %v", err)
	}
	if allowed {
		t.Error("Expected request over limit denied")
	}
	if retryAfter <= 0 || retryAfter > time.Minute {
		t.Errorf("Expected retry duration within the window, got %v", retryAfter)
	}
}

func TestMemoryLimiter_KeysAreIndependent(t *testing.T) {
	limiter := NewMemoryLimiter(1, time.Minute)
	ctx := context.Background()

	if allowed, _, _ := limiter.Allow(ctx, "10.0.0.1"); !allowed {
		t.Fatal("Expected first request for key A allowed")
	}
	if allowed, _, _ := limiter.Allow(ctx, "10.0.0.2"); !allowed {
		t.Error("Expected first request for key B allowed")
	}
	if allowed, _, _ := limiter.Allow(ctx, "10.0.0.1"); allowed {
		t.Error("Expected second request for key A denied")
	}
}

func TestMemoryLimiter_WindowResets(t *testing.T) {
	limiter := NewMemoryLimiter(1, time.Minute)
	ctx := context.Background()

	now := time.Now()
	limiter.now = func() time.Time { return now }

	if allowed, _, _ := limiter.Allow(ctx, "10.0.0.1"); !allowed {
		t.Fatal("Expected first request allowed")
	}
	if allowed, _, _ := limiter.Allow(ctx, "10.0.0.1"); allowed {
		t.Fatal("Expected second request denied")
	}

	limiter.now = func() time.Time { return now.Add(61 * time.Second) }

	if allowed, _, _ := limiter.Allow(ctx, "10.0.0.1"); !allowed {
		t.Error("Expected request allowed after window reset")
	}
}

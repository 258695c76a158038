package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marketgo/storefront-service/config"
)

func TestConnectBoundedRetry(t *testing.T) {
	// Port 1 is never a mongod; each attempt fails fast on the dial.
	cfg := config.MongoConfig{
		URI:             "mongodb://127.0.0.1:1",
		Database:        "storefront",
		ConnectAttempts: 2,
		ConnectBackoff:  10 * time.Millisecond,
		Timeout:         200 * time.Millisecond,
	}

	start := time.Now()
	_, err := Connect(context.Background(), cfg, zap.NewNop())
	require.Error(t, err)
	require.Contains(t, err.Error(), "after 2 attempts")
	// Two bounded attempts plus one backoff, not an unbounded loop.
	require.Less(t, time.Since(start), 5*time.Second)
}

func TestConnectRespectsContext(t *testing.T) {
	cfg := config.MongoConfig{
		URI:             "mongodb://127.0.0.1:1",
		ConnectAttempts: 100,
		ConnectBackoff:  time.Hour,
		Timeout:         200 * time.Millisecond,
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := Connect(ctx, cfg, zap.NewNop())
	require.ErrorIs(t, err, context.Canceled)
}

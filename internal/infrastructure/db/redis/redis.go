// Package redis holds the Redis-backed pieces of the API: the connection
// setup below and the session store that keeps login tokens server-side.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Sessions are the only thing stored here, so a short ping bound is enough
// to decide the server is unreachable at boot.
const defaultPingTimeout = 5 * time.Second

// Config captures the settings for the session-store connection.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect opens the client that backs the session store and verifies the
// server is reachable before the router starts taking traffic.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// startup probes must not stall boot when Redis is unreachable
const pingTimeout = 2 * time.Second

// Client wraps the go-redis connection used by the rate limiter. The board
// treats Redis as optional: callers that receive a nil *Client run without it.
type Client struct {
	rdb *goredis.Client
}

func New(addr, password string, db int) *Client {
	opts := &goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &Client{rdb: goredis.NewClient(opts)}
}

// Ping checks connectivity with a bounded timeout.
func (c *Client) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return c.rdb.Ping(pingCtx).Err()
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

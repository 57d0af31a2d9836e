package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Options carries the connection settings for the login limiter's Redis.
// Zero timeouts fall back to conservative defaults.
type Options struct {
	Addr     string
	Password string
	DB       int

	DialTimeout time.Duration
	PingTimeout time.Duration
}

// Client wraps go-redis behind the small surface the fixed-window limiter
// needs.
type Client struct {
	rdb *goredis.Client

	pingTimeout time.Duration
}

func New(opts Options) *Client {
	dial := opts.DialTimeout
	if dial <= 0 {
		dial = 3 * time.Second
	}
	ping := opts.PingTimeout
	if ping <= 0 {
		ping = 2 * time.Second
	}
	return &Client{
		rdb: goredis.NewClient(&goredis.Options{
			Addr:        opts.Addr,
			Password:    opts.Password,
			DB:          opts.DB,
			DialTimeout: dial,
		}),
		pingTimeout: ping,
	}
}

// Ping verifies connectivity with a bounded timeout so a dead Redis cannot
// stall startup; the caller decides whether to run without rate limiting.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.pingTimeout)
	defer cancel()
	return c.rdb.Ping(ctx).Err()
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

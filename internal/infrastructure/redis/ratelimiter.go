package redis

import (
	"context"
	"fmt"
	"time"
)

// FixedWindowLimiter implements a fixed-window rate limiter on Redis:
// INCR key; if count == 1 then PEXPIRE key window.
// The key should already include identity and route.
type FixedWindowLimiter struct {
	client *Client
}

func NewFixedWindowLimiter(c *Client) *FixedWindowLimiter {
	return &FixedWindowLimiter{client: c}
}

type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration // 0 if allowed
	Count      int
}

// Allow returns whether a request is allowed for the given key and window.
// A nil limiter or disabled client allows everything (fail-open).
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (Decision, error) {
	if limit <= 0 {
		return Decision{Allowed: true, Limit: limit, Remaining: limit}, nil
	}
	if window <= 0 {
		window = time.Minute
	}
	if l == nil || l.client == nil {
		return Decision{Allowed: true, Limit: limit, Remaining: limit}, nil
	}

	// Lua to keep INCR + first-hit expire atomic; returns {count, ttl_ms}
	const lua = `
local c = redis.call("INCR", KEYS[1])
if c == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
return {c, ttl}
`
	res, err := l.client.rdb.Eval(ctx, lua, []string{key}, window.Milliseconds()).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("ratelimit redis eval: %w", err)
	}

	count, ttl, err := parseWindowReply(res)
	if err != nil {
		return Decision{}, err
	}

	d := Decision{
		Allowed:   count <= limit,
		Limit:     limit,
		Remaining: max(0, limit-count),
		Count:     count,
	}
	if !d.Allowed {
		d.RetryAfter = ttl
		if d.RetryAfter <= 0 {
			d.RetryAfter = window
		}
	}

	return d, nil
}

// parseWindowReply decodes the {count, ttl_ms} pair from the Lua script.
// A reply in any other shape, as a proxy or a server upgrade might produce,
// must surface as an error rather than panic on the request path.
func parseWindowReply(res any) (int, time.Duration, error) {
	arr, ok := res.([]any)
	if !ok || len(arr) != 2 {
		return 0, 0, fmt.Errorf("ratelimit redis eval: unexpected reply %T", res)
	}
	count, ok := arr[0].(int64)
	if !ok {
		return 0, 0, fmt.Errorf("ratelimit redis eval: unexpected count %T", arr[0])
	}
	ttlMs, ok := arr[1].(int64)
	if !ok {
		return 0, 0, fmt.Errorf("ratelimit redis eval: unexpected ttl %T", arr[1])
	}
	return int(count), time.Duration(ttlMs) * time.Millisecond, nil
}

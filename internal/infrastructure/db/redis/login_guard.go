package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	guardWindow      = 15 * time.Minute
	guardMaxFailures = 10
)

// LoginGuard counts failed logins per email in a sliding window and blocks
// further attempts once the limit is hit. Key format: login_fail:<email>
type LoginGuard struct {
	client *redis.Client
}

func NewLoginGuard(client *redis.Client) *LoginGuard {
	return &LoginGuard{client: client}
}

func (g *LoginGuard) Blocked(ctx context.Context, email string) (bool, error) {
	n, err := g.client.Get(ctx, g.key(email)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("login guard check: %w", err)
	}
	return n >= guardMaxFailures, nil
}

func (g *LoginGuard) RecordFailure(ctx context.Context, email string) error {
	key := g.key(email)
	n, err := g.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("login guard incr: %w", err)
	}
	if n == 1 {
		// first failure opens the window
		if err := g.client.Expire(ctx, key, guardWindow).Err(); err != nil {
			return fmt.Errorf("login guard expire: %w", err)
		}
	}
	return nil
}

func (g *LoginGuard) Reset(ctx context.Context, email string) error {
	return g.client.Del(ctx, g.key(email)).Err()
}

func (g *LoginGuard) key(email string) string {
	return "login_fail:" + email
}

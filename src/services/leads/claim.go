package leads

import (
	"context"
	"strings"
	"time"

	"Backend-Masons-Leads/src/models"

	"github.com/redis/go-redis/v9"
)

// ClaimGuard reserves a uniqueness value atomically so two concurrent
// submissions with the same value cannot both be appended.
type ClaimGuard interface {
	Claim(ctx context.Context, role models.UserType, value string) (bool, error)
	Release(ctx context.Context, role models.UserType, value string) error
}

type RedisClaims struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClaims builds a guard on SETNX. A zero ttl keeps claims forever.
func NewRedisClaims(client *redis.Client, ttl time.Duration) *RedisClaims {
	return &RedisClaims{client: client, ttl: ttl}
}

func (r *RedisClaims) Claim(ctx context.Context, role models.UserType, value string) (bool, error) {
	return r.client.SetNX(ctx, claimKey(role, value), time.Now().UTC().Format(time.RFC3339), r.ttl).Result()
}

func (r *RedisClaims) Release(ctx context.Context, role models.UserType, value string) error {
	return r.client.Del(ctx, claimKey(role, value)).Err()
}

func claimKey(role models.UserType, value string) string {
	return "lead:claim:" + string(role) + ":" + strings.ToLower(strings.TrimSpace(value))
}

package cache

import (
	"context"
	"encoding/json"
	"time"

	"recipe-api/entities"

	"github.com/redis/go-redis/v9"
)

const (
	tokenKeyPrefix = "authtoken:"
	userKeyPrefix  = "user:"

	// Cached auth state is short-lived; the database stays the source of truth.
	cacheTTL = 5 * time.Minute
)

// cachedToken is the serialized form of a token lookup.
type cachedToken struct {
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TokenCache is an optional redis read-through cache in front of token and
// user resolution. A nil client disables every operation, so callers never
// have to branch on whether redis is configured.
type TokenCache struct {
	client *redis.Client
}

// New returns a TokenCache backed by redis at addr, or a disabled cache when
// addr is empty.
func New(addr string) *TokenCache {
	if addr == "" {
		return &TokenCache{}
	}
	return &TokenCache{client: redis.NewClient(&redis.Options{Addr: addr})}
}

// Enabled reports whether a redis client is configured.
func (c *TokenCache) Enabled() bool { return c.client != nil }

// GetToken returns the cached user id and expiry for a token key.
func (c *TokenCache) GetToken(ctx context.Context, key string) (string, time.Time, bool) {
	if c.client == nil {
		return "", time.Time{}, false
	}

	data, err := c.client.Get(ctx, tokenKeyPrefix+key).Result()
	if err != nil {
		return "", time.Time{}, false
	}

	var ct cachedToken
	if err := json.Unmarshal([]byte(data), &ct); err != nil {
		return "", time.Time{}, false
	}
	return ct.UserID, ct.ExpiresAt, true
}

func (c *TokenCache) SetToken(ctx context.Context, key, userID string, expiresAt time.Time) error {
	if c.client == nil {
		return nil
	}

	data, err := json.Marshal(cachedToken{UserID: userID, ExpiresAt: expiresAt})
	if err != nil {
		return err
	}
	return c.client.Set(ctx, tokenKeyPrefix+key, data, cacheTTL).Err()
}

func (c *TokenCache) DeleteToken(ctx context.Context, key string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, tokenKeyPrefix+key).Err()
}

// GetUser returns the cached profile snapshot for a user id.
func (c *TokenCache) GetUser(ctx context.Context, id string) (*entities.User, bool) {
	if c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, userKeyPrefix+id).Result()
	if err != nil {
		return nil, false
	}

	var user entities.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, false
	}
	return &user, true
}

func (c *TokenCache) SetUser(ctx context.Context, user *entities.User) error {
	if c.client == nil {
		return nil
	}

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, userKeyPrefix+user.ID, data, cacheTTL).Err()
}

// InvalidateUser drops the cached snapshot after a profile change.
func (c *TokenCache) InvalidateUser(ctx context.Context, id string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, userKeyPrefix+id).Err()
}

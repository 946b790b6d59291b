package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/novarover/gps-logger/internal/types"
)

// fixTTL bounds how long a cached fix stays relevant
const fixTTL = 24 * time.Hour

// RedisClientInterface defines the Redis operations used by our client
type RedisClientInterface interface {
	Ping(ctx context.Context) *redis.StatusCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Close() error
}

// Client manages Redis connections and operations
type Client struct {
	client RedisClientInterface
}

// New creates a new Redis client
func New(addr string) (*Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "", // no password set
		DB:       0,  // use default DB
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{client: client}, nil
}

// NewWithClient creates a new Redis client with a custom RedisClientInterface (useful for testing)
func NewWithClient(client RedisClientInterface) *Client {
	return &Client{client: client}
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.client.Close()
}

// StoreLatestFix caches the most recent published fix. Consumers wanting the
// last known position read this key; the live stream stays silent while the
// receiver has no lock.
func (c *Client) StoreLatestFix(ctx context.Context, fix *types.Fix) error {
	data, err := json.Marshal(fix)
	if err != nil {
		return fmt.Errorf("failed to marshal fix: %w", err)
	}

	if err := c.client.Set(ctx, "fix:latest", data, fixTTL).Err(); err != nil {
		return err
	}
	key := fmt.Sprintf("fix:session:%s", fix.SessionID)
	return c.client.Set(ctx, key, data, fixTTL).Err()
}

// GetLatestFix retrieves the most recent cached fix; nil when nothing is cached
func (c *Client) GetLatestFix(ctx context.Context) (*types.Fix, error) {
	return c.getFix(ctx, "fix:latest")
}

// GetSessionFix retrieves the most recent cached fix for one decoder session
func (c *Client) GetSessionFix(ctx context.Context, sessionID string) (*types.Fix, error) {
	return c.getFix(ctx, fmt.Sprintf("fix:session:%s", sessionID))
}

// DeleteLatestFix removes the cached latest fix
func (c *Client) DeleteLatestFix(ctx context.Context) error {
	return c.client.Del(ctx, "fix:latest").Err()
}

func (c *Client) getFix(ctx context.Context, key string) (*types.Fix, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // No fix cached
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get fix data: %w", err)
	}

	var fix types.Fix
	if err := json.Unmarshal(data, &fix); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fix data: %w", err)
	}
	return &fix, nil
}

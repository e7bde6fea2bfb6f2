package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dajor/bewirtungsbeleg-sub002/pkg/config"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// ErrKeyNotFound is returned when a key is absent or already expired.
var ErrKeyNotFound = errors.New("key not found")

// operation timeout for individual commands so a slow backend cannot hang a
// request indefinitely
const commandTimeout = 3 * time.Second

// Client wraps redis client with additional functionality
type Client struct {
	client *redis.Client
}

// NewClient creates a new Redis client
func NewClient(cfg *config.Config) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result := rdb.Ping(ctx)
	if result.Err() != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", result.Err())
	}

	logger.Info("Connected to Redis successfully")

	return &Client{
		client: rdb,
	}, nil
}

// NewClientFromAddr creates a client for an already-running Redis instance.
func NewClientFromAddr(addr string) *Client {
	return &Client{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.client.Close()
}

// Set sets a key-value pair with expiration
func (c *Client) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	result := c.client.Set(ctx, key, data, expiration)
	if result.Err() != nil {
		return fmt.Errorf("failed to set key: %w", result.Err())
	}

	return nil
}

// Get gets a value by key
func (c *Client) Get(ctx context.Context, key string, dest interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	result := c.client.Get(ctx, key)
	if result.Err() != nil {
		if result.Err() == redis.Nil {
			return ErrKeyNotFound
		}
		return fmt.Errorf("failed to get key: %w", result.Err())
	}

	data, err := result.Bytes()
	if err != nil {
		return fmt.Errorf("failed to get bytes: %w", err)
	}

	err = json.Unmarshal(data, dest)
	if err != nil {
		return fmt.Errorf("failed to unmarshal data: %w", err)
	}

	return nil
}

// GetDel atomically gets a value by key and deletes it. This is the primitive
// behind single-use token consumption: under concurrent callers at most one
// observes the value.
func (c *Client) GetDel(ctx context.Context, key string, dest interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	result := c.client.GetDel(ctx, key)
	if result.Err() != nil {
		if result.Err() == redis.Nil {
			return ErrKeyNotFound
		}
		return fmt.Errorf("failed to get-del key: %w", result.Err())
	}

	data, err := result.Bytes()
	if err != nil {
		return fmt.Errorf("failed to get bytes: %w", err)
	}

	err = json.Unmarshal(data, dest)
	if err != nil {
		return fmt.Errorf("failed to unmarshal data: %w", err)
	}

	return nil
}

// Delete deletes a key
func (c *Client) Delete(ctx context.Context, keys ...string) error {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	result := c.client.Del(ctx, keys...)
	if result.Err() != nil {
		return fmt.Errorf("failed to delete keys: %w", result.Err())
	}

	return nil
}

// EvalScript runs a Lua script and returns its integer result
func (c *Client) EvalScript(ctx context.Context, script *redis.Script, keys []string, args ...interface{}) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	result, err := script.Run(ctx, c.client, keys, args...).Int()
	if err != nil {
		return 0, fmt.Errorf("failed to run script: %w", err)
	}
	return result, nil
}

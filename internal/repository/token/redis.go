package token

import (
	"context"
	"errors"
	"time"

	"github.com/dajor/bewirtungsbeleg-sub002/pkg/model"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/redis"
)

// redisStore implements Store on Redis with native TTL expiry.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed token store
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{
		client: client,
	}
}

// Put stores a record under its remaining TTL
func (s *redisStore) Put(ctx context.Context, rec *model.EmailToken, ttl time.Duration) (bool, error) {
	remaining := remainingTTL(rec.CreatedAt, ttl, time.Now())
	if remaining <= 0 {
		return false, nil
	}

	err := s.client.Set(ctx, tokenKey(rec.Token), rec, remaining)
	if err != nil {
		return false, err
	}

	return true, nil
}

// Get retrieves a record without consuming it
func (s *redisStore) Get(ctx context.Context, token string) (*model.EmailToken, error) {
	rec := &model.EmailToken{}
	err := s.client.Get(ctx, tokenKey(token), rec)
	if err != nil {
		if errors.Is(err, redis.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return rec, nil
}

// GetAndConsume retrieves and deletes a record atomically via GETDEL
func (s *redisStore) GetAndConsume(ctx context.Context, token string) (*model.EmailToken, error) {
	rec := &model.EmailToken{}
	err := s.client.GetDel(ctx, tokenKey(token), rec)
	if err != nil {
		if errors.Is(err, redis.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return rec, nil
}

// Delete removes a record; deleting an absent token succeeds
func (s *redisStore) Delete(ctx context.Context, token string) error {
	return s.client.Delete(ctx, tokenKey(token))
}

// PutActiveToken records the currently active token for (purpose, email)
func (s *redisStore) PutActiveToken(ctx context.Context, purpose model.TokenPurpose, email, token string, ttl time.Duration) error {
	return s.client.Set(ctx, byEmailKey(purpose, email), token, ttl)
}

// GetActiveToken resolves the active token for (purpose, email), "" if none
func (s *redisStore) GetActiveToken(ctx context.Context, purpose model.TokenPurpose, email string) (string, error) {
	var token string
	err := s.client.Get(ctx, byEmailKey(purpose, email), &token)
	if err != nil {
		if errors.Is(err, redis.ErrKeyNotFound) {
			return "", nil
		}
		return "", err
	}

	return token, nil
}

// DeleteActiveToken clears the secondary index entry for (purpose, email)
func (s *redisStore) DeleteActiveToken(ctx context.Context, purpose model.TokenPurpose, email string) error {
	return s.client.Delete(ctx, byEmailKey(purpose, email))
}

// Close is a no-op; the Redis client is owned by the application
func (s *redisStore) Close() error {
	return nil
}

package token

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dajor/bewirtungsbeleg-sub002/pkg/model"
)

// storage key prefixes, shared by all backends
const (
	tokenKeyPrefix   = "email_token:"
	byEmailKeyPrefix = "email_token_by_email:"
)

// Store persists email-token records with TTL semantics plus a secondary
// index from (purpose, email) to the currently active token.
//
// Absent and expired records are indistinguishable: lookups return (nil, nil)
// for both. Errors are reserved for backend failures.
type Store interface {
	// Put stores a record for ttl measured from the record's CreatedAt. It
	// returns false without error when the record is already past its TTL,
	// so a delayed write can never resurrect an expired token.
	Put(ctx context.Context, rec *model.EmailToken, ttl time.Duration) (bool, error)

	// Get is a non-consuming lookup.
	Get(ctx context.Context, token string) (*model.EmailToken, error)

	// GetAndConsume returns the record and deletes it in one atomic step:
	// under concurrent callers at most one receives the record.
	GetAndConsume(ctx context.Context, token string) (*model.EmailToken, error)

	// Delete removes a record. Idempotent: deleting an absent token is not
	// an error since the end state (token unusable) is reached either way.
	Delete(ctx context.Context, token string) error

	// secondary index operations; advisory only, the primary lookup by
	// token stays authoritative
	PutActiveToken(ctx context.Context, purpose model.TokenPurpose, email, token string, ttl time.Duration) error
	GetActiveToken(ctx context.Context, purpose model.TokenPurpose, email string) (string, error)
	DeleteActiveToken(ctx context.Context, purpose model.TokenPurpose, email string) error

	// Close releases backend resources.
	Close() error
}

func tokenKey(token string) string {
	return tokenKeyPrefix + token
}

func byEmailKey(purpose model.TokenPurpose, email string) string {
	return fmt.Sprintf("%s%s:%s", byEmailKeyPrefix, purpose, strings.ToLower(email))
}

// remainingTTL computes how much of ttl is left for a record created at
// createdAt. Zero or negative means the record is already expired.
func remainingTTL(createdAt time.Time, ttl time.Duration, now time.Time) time.Duration {
	return ttl - now.Sub(createdAt)
}

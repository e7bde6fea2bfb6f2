package token

import (
	"context"
	"fmt"
	"strings"
	"time"

	tokenRepo "github.com/dajor/bewirtungsbeleg-sub002/internal/repository/token"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/logger"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/model"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/utils"
)

const tokenBytes = 32

// Service defines the token service interface
type Service interface {
	// Issue creates and stores a fresh token for (purpose, email),
	// replacing any previously active one.
	Issue(ctx context.Context, purpose model.TokenPurpose, email string, profile *model.RegistrationProfile) (*model.EmailToken, error)

	// Validate checks a token against a purpose without consuming it.
	Validate(ctx context.Context, token string, purpose model.TokenPurpose) (*model.EmailToken, error)

	// Redeem is the fused validate-and-consume used by the magic-link flow:
	// the record is gone after the call whatever the outcome.
	Redeem(ctx context.Context, token string) (*model.EmailToken, error)

	// Consume finalizes the split flows (password reset, email verify):
	// validates, consumes and clears the secondary index in one call.
	Consume(ctx context.Context, token string, purpose model.TokenPurpose) (*model.EmailToken, error)
}

// tokenService provides the per-purpose validation policy on top of the
// generic token store.
type tokenService struct {
	store tokenRepo.Store
}

// NewTokenService creates a new token service instance.
func NewTokenService(store tokenRepo.Store) Service {
	return &tokenService{
		store: store,
	}
}

// Issue creates a token record and registers it in the secondary index
func (s *tokenService) Issue(ctx context.Context, purpose model.TokenPurpose, email string, profile *model.RegistrationProfile) (*model.EmailToken, error) {
	if !purpose.IsValid() {
		return nil, fmt.Errorf("unknown token purpose: %s", purpose)
	}

	email = sanitizeEmail(email)

	value, err := utils.GenerateToken(tokenBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	rec := &model.EmailToken{
		Token:     value,
		Email:     email,
		Purpose:   purpose,
		CreatedAt: time.Now(),
		Profile:   profile,
	}

	ttl := TTLFor(purpose)

	// at most one active token per (purpose, email): invalidate the
	// previous one before storing the replacement
	prev, err := s.store.GetActiveToken(ctx, purpose, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up active token: %w", err)
	}
	if prev != "" {
		err = s.store.Delete(ctx, prev)
		if err != nil {
			return nil, fmt.Errorf("failed to invalidate previous token: %w", err)
		}
	}

	ok, err := s.store.Put(ctx, rec, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("token rejected by store: already expired")
	}

	err = s.store.PutActiveToken(ctx, purpose, email, rec.Token, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to index token: %w", err)
	}

	logger.Infof("issued %s token for %s", purpose, email)

	return rec, nil
}

// Validate checks presence, purpose and expiry without consuming the record
func (s *tokenService) Validate(ctx context.Context, token string, purpose model.TokenPurpose) (*model.EmailToken, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrMissingToken
	}

	rec, err := s.store.Get(ctx, token)
	if err != nil {
		logger.Error(err, "token store lookup failed")
		return nil, fmt.Errorf("token lookup failed: %w", err)
	}

	return s.check(rec, purpose)
}

// Redeem consumes a magic-link token; validation is the redemption
func (s *tokenService) Redeem(ctx context.Context, token string) (*model.EmailToken, error) {
	return s.Consume(ctx, token, model.PurposeMagicLink)
}

// Consume atomically retrieves and deletes the record, then applies the
// purpose policy and clears the secondary index
func (s *tokenService) Consume(ctx context.Context, token string, purpose model.TokenPurpose) (*model.EmailToken, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrMissingToken
	}

	rec, err := s.store.GetAndConsume(ctx, token)
	if err != nil {
		logger.Error(err, "token store consume failed")
		return nil, fmt.Errorf("token consume failed: %w", err)
	}

	rec, err = s.check(rec, purpose)
	if err != nil {
		return nil, err
	}

	// the validator clears the index here because consumption and
	// validation are a single step on this path
	err = s.store.DeleteActiveToken(ctx, purpose, rec.Email)
	if err != nil {
		logger.Error(err, "failed to clear active token index")
	}

	logger.Infof("consumed %s token for %s", purpose, rec.Email)

	return rec, nil
}

// check applies the shared policy: present, matching purpose, within TTL
func (s *tokenService) check(rec *model.EmailToken, purpose model.TokenPurpose) (*model.EmailToken, error) {
	if rec == nil {
		return nil, ErrInvalidToken
	}

	if rec.Purpose != purpose {
		logger.Warnf("token purpose mismatch: got %s, want %s", rec.Purpose, purpose)
		return nil, ErrWrongTokenType
	}

	now := time.Now()
	if expired(rec, now) {
		logger.Infof("%s token expired for %s (age %s)", purpose, rec.Email, rec.Age(now).Round(time.Second))
		return nil, ErrTokenExpired
	}

	return rec, nil
}

// sanitizeEmail lowercases and trims an email address
func sanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

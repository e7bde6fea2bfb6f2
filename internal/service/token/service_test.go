package token

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	tokenRepo "github.com/dajor/bewirtungsbeleg-sub002/internal/repository/token"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/config"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/logger"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.InitLogger(&config.Config{Log: config.LogConfig{Level: "error"}})
	os.Exit(m.Run())
}

func newTestService(t *testing.T) (Service, tokenRepo.Store) {
	store, err := tokenRepo.NewFileStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})
	return NewTokenService(store), store
}

func TestIssueAndValidate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	rec, err := svc.Issue(ctx, model.PurposeMagicLink, "  User@Example.COM  ", nil)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "user@example.com", rec.Email)
	assert.NotEmpty(t, rec.Token)

	got, err := svc.Validate(ctx, rec.Token, model.PurposeMagicLink)
	require.NoError(t, err)
	assert.Equal(t, rec.Email, got.Email)

	// validation does not consume
	got, err = svc.Validate(ctx, rec.Token, model.PurposeMagicLink)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestIssueUnknownPurpose(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Issue(context.Background(), model.TokenPurpose("session"), "user@example.com", nil)
	assert.Error(t, err)
}

func TestIssueCarriesProfile(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	profile := &model.RegistrationProfile{FirstName: "Max", LastName: "Mustermann"}
	rec, err := svc.Issue(ctx, model.PurposeEmailVerify, "neu@example.com", profile)
	require.NoError(t, err)

	got, err := svc.Validate(ctx, rec.Token, model.PurposeEmailVerify)
	require.NoError(t, err)
	require.NotNil(t, got.Profile)
	assert.Equal(t, "Max", got.Profile.FirstName)
	assert.Equal(t, "Mustermann", got.Profile.LastName)
}

func TestValidateMissingToken(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Validate(ctx, "", model.PurposeMagicLink)
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = svc.Validate(ctx, "   ", model.PurposeMagicLink)
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = svc.Consume(ctx, "", model.PurposePasswordReset)
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestValidateUnknownToken(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Validate(context.Background(), "never-issued", model.PurposeMagicLink)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateWrongPurpose(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	rec, err := svc.Issue(ctx, model.PurposePasswordReset, "user@example.com", nil)
	require.NoError(t, err)

	_, err = svc.Validate(ctx, rec.Token, model.PurposeMagicLink)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	// the failed check did not consume the record
	got, err := svc.Validate(ctx, rec.Token, model.PurposePasswordReset)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestRedeemIsSingleUse(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	rec, err := svc.Issue(ctx, model.PurposeMagicLink, "user@example.com", nil)
	require.NoError(t, err)

	got, err := svc.Redeem(ctx, rec.Token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", got.Email)

	// a replayed link is indistinguishable from a token that never existed
	_, err = svc.Redeem(ctx, rec.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRedeemWrongPurposeStillConsumes(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	rec, err := svc.Issue(ctx, model.PurposePasswordReset, "user@example.com", nil)
	require.NoError(t, err)

	// redeeming is fused with consumption: the purpose check happens after
	// the record is already gone
	_, err = svc.Redeem(ctx, rec.Token)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	_, err = svc.Validate(ctx, rec.Token, model.PurposePasswordReset)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestConsumeClearsActiveToken(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	rec, err := svc.Issue(ctx, model.PurposePasswordReset, "user@example.com", nil)
	require.NoError(t, err)

	active, err := store.GetActiveToken(ctx, model.PurposePasswordReset, "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, rec.Token, active)

	_, err = svc.Consume(ctx, rec.Token, model.PurposePasswordReset)
	require.NoError(t, err)

	active, err = store.GetActiveToken(ctx, model.PurposePasswordReset, "user@example.com")
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestIssueReplacesPreviousToken(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Issue(ctx, model.PurposeMagicLink, "user@example.com", nil)
	require.NoError(t, err)

	second, err := svc.Issue(ctx, model.PurposeMagicLink, "user@example.com", nil)
	require.NoError(t, err)
	require.NotEqual(t, first.Token, second.Token)

	_, err = svc.Validate(ctx, first.Token, model.PurposeMagicLink)
	assert.ErrorIs(t, err, ErrInvalidToken)

	got, err := svc.Validate(ctx, second.Token, model.PurposeMagicLink)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestIssueDifferentPurposesCoexist(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	magic, err := svc.Issue(ctx, model.PurposeMagicLink, "user@example.com", nil)
	require.NoError(t, err)

	reset, err := svc.Issue(ctx, model.PurposePasswordReset, "user@example.com", nil)
	require.NoError(t, err)

	_, err = svc.Validate(ctx, magic.Token, model.PurposeMagicLink)
	assert.NoError(t, err)

	_, err = svc.Validate(ctx, reset.Token, model.PurposePasswordReset)
	assert.NoError(t, err)
}

func TestValidateExpiredByPolicy(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	// stored under a generous raw TTL so only the purpose policy decides
	rec := &model.EmailToken{
		Token:     "tok-old",
		Email:     "user@example.com",
		Purpose:   model.PurposeMagicLink,
		CreatedAt: time.Now().Add(-11 * time.Minute),
	}
	ok, err := store.Put(ctx, rec, time.Hour)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = svc.Validate(ctx, "tok-old", model.PurposeMagicLink)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateNearTTLBoundary(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	rec := &model.EmailToken{
		Token:     "tok-edge",
		Email:     "user@example.com",
		Purpose:   model.PurposeMagicLink,
		CreatedAt: time.Now().Add(-10 * time.Minute).Add(2 * time.Second),
	}
	ok, err := store.Put(ctx, rec, time.Hour)
	require.NoError(t, err)
	require.True(t, ok)

	got, err := svc.Validate(ctx, "tok-edge", model.PurposeMagicLink)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestTTLFor(t *testing.T) {
	assert.Equal(t, 10*time.Minute, TTLFor(model.PurposeMagicLink))
	assert.Equal(t, 30*time.Minute, TTLFor(model.PurposePasswordReset))
	assert.Equal(t, 24*time.Hour, TTLFor(model.PurposeEmailVerify))
	assert.Equal(t, 30*time.Minute, TTLFor(model.TokenPurpose("unknown")))
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, CodeMissingToken, ErrorCode(ErrMissingToken))
	assert.Equal(t, CodeInvalidToken, ErrorCode(ErrInvalidToken))
	assert.Equal(t, CodeTokenExpired, ErrorCode(ErrTokenExpired))
	assert.Equal(t, CodeWrongTokenType, ErrorCode(ErrWrongTokenType))
	assert.Equal(t, CodeVerificationFailed, ErrorCode(fmt.Errorf("backend down")))

	// wrapped sentinels still map to their code
	assert.Equal(t, CodeTokenExpired, ErrorCode(fmt.Errorf("check failed: %w", ErrTokenExpired)))
}

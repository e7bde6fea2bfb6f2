package token

import (
	"context"
	"testing"
	"time"

	"github.com/dajor/bewirtungsbeleg-sub002/pkg/model"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (Store, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClientFromAddr(mr.Addr())
	t.Cleanup(func() {
		_ = client.Close()
	})

	return NewRedisStore(client), mr
}

func TestRedisStorePutGet(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	rec := &model.EmailToken{
		Token:     "tok-1",
		Email:     "user@example.com",
		Purpose:   model.PurposeMagicLink,
		CreatedAt: time.Now(),
	}

	ok, err := store.Put(ctx, rec, 10*time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := store.Get(ctx, "tok-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec.Token, got.Token)
	assert.Equal(t, rec.Email, got.Email)
	assert.Equal(t, rec.Purpose, got.Purpose)
	assert.Nil(t, got.Profile)

	// non-consuming: a second lookup still sees the record
	got, err = store.Get(ctx, "tok-1")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestRedisStoreGetAbsent(t *testing.T) {
	store, _ := newTestRedisStore(t)

	got, err := store.Get(context.Background(), "no-such-token")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStoreProfileRoundTrip(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	rec := &model.EmailToken{
		Token:     "tok-profile",
		Email:     "neu@example.com",
		Purpose:   model.PurposeEmailVerify,
		CreatedAt: time.Now(),
		Profile: &model.RegistrationProfile{
			FirstName: "Max",
			LastName:  "Mustermann",
		},
	}

	ok, err := store.Put(ctx, rec, 24*time.Hour)
	require.NoError(t, err)
	require.True(t, ok)

	got, err := store.Get(ctx, "tok-profile")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.Profile)
	assert.Equal(t, "Max", got.Profile.FirstName)
	assert.Equal(t, "Mustermann", got.Profile.LastName)
}

func TestRedisStoreGetAndConsume(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	rec := &model.EmailToken{
		Token:     "tok-once",
		Email:     "user@example.com",
		Purpose:   model.PurposeMagicLink,
		CreatedAt: time.Now(),
	}

	ok, err := store.Put(ctx, rec, 10*time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	got, err := store.GetAndConsume(ctx, "tok-once")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "user@example.com", got.Email)

	// consumed: both consuming and plain lookups now miss
	got, err = store.GetAndConsume(ctx, "tok-once")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = store.Get(ctx, "tok-once")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStorePutRejectsExpiredRecord(t *testing.T) {
	store, _ := newTestRedisStore(t)

	rec := &model.EmailToken{
		Token:     "tok-old",
		Email:     "user@example.com",
		Purpose:   model.PurposeMagicLink,
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}

	ok, err := store.Put(context.Background(), rec, 10*time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := store.Get(context.Background(), "tok-old")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStoreExpiry(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()

	rec := &model.EmailToken{
		Token:     "tok-ttl",
		Email:     "user@example.com",
		Purpose:   model.PurposeMagicLink,
		CreatedAt: time.Now(),
	}

	ok, err := store.Put(ctx, rec, 10*time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(10*time.Minute + time.Second)

	got, err := store.Get(ctx, "tok-ttl")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStoreDeleteIdempotent(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	rec := &model.EmailToken{
		Token:     "tok-del",
		Email:     "user@example.com",
		Purpose:   model.PurposePasswordReset,
		CreatedAt: time.Now(),
	}

	ok, err := store.Put(ctx, rec, 30*time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, store.Delete(ctx, "tok-del"))
	require.NoError(t, store.Delete(ctx, "tok-del"))
	require.NoError(t, store.Delete(ctx, "never-existed"))
}

func TestRedisStoreActiveTokenIndex(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	err := store.PutActiveToken(ctx, model.PurposePasswordReset, "user@example.com", "tok-active", 30*time.Minute)
	require.NoError(t, err)

	got, err := store.GetActiveToken(ctx, model.PurposePasswordReset, "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, "tok-active", got)

	// the index key is case-insensitive on the email
	got, err = store.GetActiveToken(ctx, model.PurposePasswordReset, "User@Example.COM")
	require.NoError(t, err)
	assert.Equal(t, "tok-active", got)

	// purposes do not share index entries
	got, err = store.GetActiveToken(ctx, model.PurposeMagicLink, "user@example.com")
	require.NoError(t, err)
	assert.Empty(t, got)

	err = store.DeleteActiveToken(ctx, model.PurposePasswordReset, "user@example.com")
	require.NoError(t, err)

	got, err = store.GetActiveToken(ctx, model.PurposePasswordReset, "user@example.com")
	require.NoError(t, err)
	assert.Empty(t, got)
}

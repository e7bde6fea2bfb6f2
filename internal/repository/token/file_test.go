package token

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dajor/bewirtungsbeleg-sub002/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileStore(t *testing.T) Store {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func TestFileStorePutGet(t *testing.T) {
	store := newTestFileStore(t)
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
	assert.Equal(t, rec.Email, got.Email)
	assert.Equal(t, rec.Purpose, got.Purpose)

	got, err = store.Get(ctx, "no-such-token")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewFileStore(dir)
	require.NoError(t, err)

	rec := &model.EmailToken{
		Token:     "tok-persist",
		Email:     "user@example.com",
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
	require.NoError(t, store.Close())

	reopened, err := NewFileStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "tok-persist")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "user@example.com", got.Email)
	require.NotNil(t, got.Profile)
	assert.Equal(t, "Max", got.Profile.FirstName)
}

func TestFileStoreExpiredOnRead(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	ttl := 10 * time.Minute
	rec := &model.EmailToken{
		Token:     "tok-exp",
		Email:     "user@example.com",
		Purpose:   model.PurposeMagicLink,
		CreatedAt: time.Now().Add(-ttl).Add(30 * time.Millisecond),
	}

	ok, err := store.Put(ctx, rec, ttl)
	require.NoError(t, err)
	require.True(t, ok)

	time.Sleep(60 * time.Millisecond)

	got, err := store.Get(ctx, "tok-exp")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFileStorePutRejectsExpiredRecord(t *testing.T) {
	store := newTestFileStore(t)

	rec := &model.EmailToken{
		Token:     "tok-old",
		Email:     "user@example.com",
		Purpose:   model.PurposePasswordReset,
		CreatedAt: time.Now().Add(-time.Hour),
	}

	ok, err := store.Put(context.Background(), rec, 30*time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStoreConcurrentConsume(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	rec := &model.EmailToken{
		Token:     "tok-race",
		Email:     "user@example.com",
		Purpose:   model.PurposeMagicLink,
		CreatedAt: time.Now(),
	}

	ok, err := store.Put(ctx, rec, 10*time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	const callers = 16
	var wg sync.WaitGroup
	results := make(chan *model.EmailToken, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := store.GetAndConsume(ctx, "tok-race")
			assert.NoError(t, err)
			results <- got
		}()
	}
	wg.Wait()
	close(results)

	winners := 0
	for got := range results {
		if got != nil {
			winners++
		}
	}
	assert.Equal(t, 1, winners)
}

func TestFileStoreDeleteIdempotent(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	rec := &model.EmailToken{
		Token:     "tok-del",
		Email:     "user@example.com",
		Purpose:   model.PurposeMagicLink,
		CreatedAt: time.Now(),
	}

	ok, err := store.Put(ctx, rec, 10*time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, store.Delete(ctx, "tok-del"))
	require.NoError(t, store.Delete(ctx, "tok-del"))

	got, err := store.Get(ctx, "tok-del")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFileStoreActiveTokenIndex(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	err := store.PutActiveToken(ctx, model.PurposeMagicLink, "User@Example.com", "tok-active", 10*time.Minute)
	require.NoError(t, err)

	got, err := store.GetActiveToken(ctx, model.PurposeMagicLink, "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, "tok-active", got)

	err = store.DeleteActiveToken(ctx, model.PurposeMagicLink, "user@example.com")
	require.NoError(t, err)

	got, err = store.GetActiveToken(ctx, model.PurposeMagicLink, "user@example.com")
	require.NoError(t, err)
	assert.Empty(t, got)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cloud-vault/internal/adapter"
	"github.com/MKhiriev/go-cloud-vault/internal/auth"
	"github.com/MKhiriev/go-cloud-vault/internal/crypto"
	"github.com/MKhiriev/go-cloud-vault/models"
)

// fakeRemoteStore is an in-memory blob store with the same conditional-write
// semantics as the HTTP adapter: pushes must name the hash they observed,
// version hashes are opaque and server-issued.
type fakeRemoteStore struct {
	mu    sync.Mutex
	meta  []byte
	value []byte
	hash  string

	pushes  int
	pulls   int
	resets  int
	failPut bool
}

func (f *fakeRemoteStore) Push(_ context.Context, meta, value []byte, previousHash string, _ models.Token) (models.EncryptedValue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.pushes++
	if f.failPut {
		return models.EncryptedValue{}, adapter.ErrServerFailure
	}
	if previousHash != f.hash {
		return models.EncryptedValue{}, fmt.Errorf("known hash %q, got %q: %w", f.hash, previousHash, adapter.ErrVersionConflict)
	}

	f.meta = append([]byte(nil), meta...)
	f.value = append([]byte(nil), value...)
	f.hash = uuid.NewString()
	return models.EncryptedValue{Meta: f.meta, Value: f.value, Hash: f.hash}, nil
}

func (f *fakeRemoteStore) Pull(_ context.Context, _ models.Token) (models.EncryptedValue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.pulls++
	return models.EncryptedValue{Meta: f.meta, Value: f.value, Hash: f.hash}, nil
}

func (f *fakeRemoteStore) Reset(_ context.Context, _ models.Token) (models.EncryptedValue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.resets++
	f.meta, f.value = nil, nil
	f.hash = uuid.NewString()
	return models.EncryptedValue{Hash: f.hash}, nil
}

func (f *fakeRemoteStore) calls() (pushes, pulls, resets int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pushes, f.pulls, f.resets
}

// staticTokenProvider satisfies auth.TokenProvider without real signing.
type staticTokenProvider struct{}

func (staticTokenProvider) GetToken(_ context.Context, tc auth.TokenContext) (models.Token, error) {
	return models.Token{SignedString: "static-" + tc.Operation}, nil
}

func newTestCache(t *testing.T) (EntryCache, *fakeRemoteStore) {
	t.Helper()

	key, err := crypto.GenerateKeyPair()
	require.NoError(t, err)

	keys := models.KeyConfiguration{
		PrivateKey: key,
		Recipients: []models.PublicKey{key.Public()},
	}

	remote := &fakeRemoteStore{}
	manager, err := NewSyncManager(crypto.NewSignCryptService(), staticTokenProvider{}, remote, keys, "")
	require.NoError(t, err)

	return NewEntryCache(manager), remote
}

func syncedTestCache(t *testing.T) (EntryCache, *fakeRemoteStore) {
	t.Helper()

	cache, remote := newTestCache(t)
	require.NoError(t, cache.RetrieveCloudEntries(context.Background()))
	return cache, remote
}

// ── sync guard ───────────────────────────────────────────────────────────────

func TestEntryCache_OutOfSyncGuards(t *testing.T) {
	cache, remote := newTestCache(t)
	ctx := context.Background()

	_, err := cache.Retrieve("any")
	assert.ErrorIs(t, err, ErrCloudStorageOutOfSync)

	_, err = cache.RetrieveAll()
	assert.ErrorIs(t, err, ErrCloudStorageOutOfSync)

	_, err = cache.RetrieveMany([]string{"any"})
	assert.ErrorIs(t, err, ErrCloudStorageOutOfSync)

	_, err = cache.Exists("any")
	assert.ErrorIs(t, err, ErrCloudStorageOutOfSync)

	_, err = cache.Store(ctx, "any", []byte("data"), nil)
	assert.ErrorIs(t, err, ErrCloudStorageOutOfSync)

	_, err = cache.Update(ctx, "any", []byte("data"), nil)
	assert.ErrorIs(t, err, ErrCloudStorageOutOfSync)

	err = cache.Delete(ctx, "any")
	assert.ErrorIs(t, err, ErrCloudStorageOutOfSync)

	err = cache.UpdateRecipients(ctx, models.KeyRotation{})
	assert.ErrorIs(t, err, ErrCloudStorageOutOfSync)

	// Failing fast means failing locally.
	pushes, pulls, resets := remote.calls()
	assert.Zero(t, pushes)
	assert.Zero(t, pulls)
	assert.Zero(t, resets)
}

// ── store and retrieve ───────────────────────────────────────────────────────

func TestEntryCache_StoreAndRetrieve(t *testing.T) {
	cache, _ := syncedTestCache(t)
	ctx := context.Background()

	stored, err := cache.Store(ctx, "github-token", []byte("ghp_secret"), map[string]string{"scope": "repo"})
	require.NoError(t, err)
	assert.Equal(t, "github-token", stored.Name)
	assert.Equal(t, []byte("ghp_secret"), stored.Data)
	assert.Equal(t, "repo", stored.Meta["scope"])
	assert.False(t, stored.CreatedAt.IsZero())
	assert.Equal(t, stored.CreatedAt, stored.UpdatedAt)

	got, err := cache.Retrieve("github-token")
	require.NoError(t, err)
	assert.Equal(t, stored, got)

	exists, err := cache.Exists("github-token")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = cache.Exists("unknown")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = cache.Retrieve("unknown")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestEntryCache_StoreDuplicateName(t *testing.T) {
	cache, remote := syncedTestCache(t)
	ctx := context.Background()

	_, err := cache.Store(ctx, "entry", []byte("first"), nil)
	require.NoError(t, err)

	pushesBefore, _, _ := remote.calls()

	_, err = cache.Store(ctx, "entry", []byte("second"), nil)
	require.ErrorIs(t, err, ErrEntryAlreadyExists)

	// The rejected store never reached the remote.
	pushesAfter, _, _ := remote.calls()
	assert.Equal(t, pushesBefore, pushesAfter)

	got, err := cache.Retrieve("entry")
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), got.Data)
}

func TestEntryCache_StoreEmptyName(t *testing.T) {
	cache, _ := syncedTestCache(t)

	_, err := cache.Store(context.Background(), "", []byte("data"), nil)
	assert.ErrorIs(t, err, ErrInvalidEntry)
}

func TestEntryCache_StoreMany_AllOrNothing(t *testing.T) {
	cache, _ := syncedTestCache(t)
	ctx := context.Background()

	_, err := cache.Store(ctx, "taken", []byte("x"), nil)
	require.NoError(t, err)

	_, err = cache.StoreMany(ctx, []models.EntryRequest{
		{Name: "fresh", Data: []byte("a")},
		{Name: "taken", Data: []byte("b")},
	})
	require.ErrorIs(t, err, ErrEntryAlreadyExists)

	// The batch failed as a unit.
	_, err = cache.Retrieve("fresh")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

// ── update ───────────────────────────────────────────────────────────────────

func TestEntryCache_Update(t *testing.T) {
	cache, _ := syncedTestCache(t)
	ctx := context.Background()

	stored, err := cache.Store(ctx, "entry", []byte("v1"), map[string]string{"env": "dev"})
	require.NoError(t, err)

	updated, err := cache.Update(ctx, "entry", []byte("v2"), map[string]string{"env": "prod"})
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), updated.Data)
	assert.Equal(t, "prod", updated.Meta["env"])
	assert.Equal(t, stored.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(stored.UpdatedAt))

	got, err := cache.Retrieve("entry")
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestEntryCache_UpdateMissing(t *testing.T) {
	cache, _ := syncedTestCache(t)

	_, err := cache.Update(context.Background(), "ghost", []byte("data"), nil)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

// ── delete ───────────────────────────────────────────────────────────────────

func TestEntryCache_DeleteAndDeleteMany(t *testing.T) {
	cache, _ := syncedTestCache(t)
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		_, err := cache.Store(ctx, name, []byte(name), nil)
		require.NoError(t, err)
	}

	require.NoError(t, cache.Delete(ctx, "a"))
	_, err := cache.Retrieve("a")
	assert.ErrorIs(t, err, ErrEntryNotFound)

	// A batch with one unknown name deletes nothing.
	err = cache.DeleteMany(ctx, []string{"b", "ghost"})
	require.ErrorIs(t, err, ErrEntryNotFound)
	_, err = cache.Retrieve("b")
	require.NoError(t, err)

	require.NoError(t, cache.DeleteMany(ctx, []string{"b", "c"}))
	all, err := cache.RetrieveAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestEntryCache_DeleteAllFromNotSynced(t *testing.T) {
	cache, remote := newTestCache(t)
	ctx := context.Background()

	// DeleteAll is the one mutation allowed before a sync.
	require.NoError(t, cache.DeleteAll(ctx))

	_, _, resets := remote.calls()
	assert.Equal(t, 1, resets)

	// The reset round trip leaves the cache synced and empty.
	all, err := cache.RetrieveAll()
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = cache.Store(ctx, "after-reset", []byte("data"), nil)
	require.NoError(t, err)
}

// ── failure handling ─────────────────────────────────────────────────────────

func TestEntryCache_FailedPushLeavesStateUntouched(t *testing.T) {
	cache, remote := syncedTestCache(t)
	ctx := context.Background()

	_, err := cache.Store(ctx, "kept", []byte("v1"), nil)
	require.NoError(t, err)

	remote.failPut = true
	_, err = cache.Store(ctx, "lost", []byte("x"), nil)
	require.ErrorIs(t, err, adapter.ErrServerFailure)
	remote.failPut = false

	// The failed store left no trace; the cache still operates on the last
	// confirmed hash, so the next write goes through without conflict.
	_, err = cache.Retrieve("lost")
	assert.ErrorIs(t, err, ErrEntryNotFound)

	got, err := cache.Retrieve("kept")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), got.Data)

	_, err = cache.Store(ctx, "next", []byte("v2"), nil)
	require.NoError(t, err)
}

func TestEntryCache_ConcurrentWriterConflict(t *testing.T) {
	// Two caches sharing one remote: the second writer pushes against a
	// hash the first writer already replaced.
	key, err := crypto.GenerateKeyPair()
	require.NoError(t, err)
	keys := models.KeyConfiguration{PrivateKey: key, Recipients: []models.PublicKey{key.Public()}}

	remote := &fakeRemoteStore{}
	newCache := func() EntryCache {
		manager, err := NewSyncManager(crypto.NewSignCryptService(), staticTokenProvider{}, remote, keys, "")
		require.NoError(t, err)
		return NewEntryCache(manager)
	}

	ctx := context.Background()
	first, second := newCache(), newCache()
	require.NoError(t, first.RetrieveCloudEntries(ctx))
	require.NoError(t, second.RetrieveCloudEntries(ctx))

	_, err = first.Store(ctx, "winner", []byte("w"), nil)
	require.NoError(t, err)

	_, err = second.Store(ctx, "loser", []byte("l"), nil)
	require.ErrorIs(t, err, adapter.ErrVersionConflict)

	// A fresh sync picks up the winner's state and unblocks the loser.
	require.NoError(t, second.RetrieveCloudEntries(ctx))
	_, err = second.Retrieve("winner")
	require.NoError(t, err)
	_, err = second.Store(ctx, "loser", []byte("l"), nil)
	require.NoError(t, err)
}

// ── recipient rotation ───────────────────────────────────────────────────────

func TestEntryCache_UpdateRecipientsPreservesEntries(t *testing.T) {
	cache, _ := syncedTestCache(t)
	ctx := context.Background()

	stored, err := cache.Store(ctx, "kept", []byte("secret"), map[string]string{"k": "v"})
	require.NoError(t, err)

	newKey, err := crypto.GenerateKeyPair()
	require.NoError(t, err)
	teammate, err := crypto.GenerateKeyPair()
	require.NoError(t, err)

	rotation := models.KeyRotation{
		PrivateKey: models.ReplaceKey(newKey),
		Recipients: models.ReplaceRecipients([]models.PublicKey{newKey.Public(), teammate.Public()}),
	}
	require.NoError(t, cache.UpdateRecipients(ctx, rotation))

	got, err := cache.Retrieve("kept")
	require.NoError(t, err)
	assert.Equal(t, stored, got)

	// The cache stays writable under the rotated keys.
	_, err = cache.Store(ctx, "post-rotation", []byte("new"), nil)
	require.NoError(t, err)
}

// ── larger entry sets ────────────────────────────────────────────────────────

func TestEntryCache_ManyEntries(t *testing.T) {
	cache, _ := syncedTestCache(t)
	ctx := context.Background()

	_, err := cache.Store(ctx, "entry-000", []byte("single"), nil)
	require.NoError(t, err)

	batch := make([]models.EntryRequest, 0, 98)
	for i := 1; i <= 98; i++ {
		batch = append(batch, models.EntryRequest{
			Name: fmt.Sprintf("entry-%03d", i),
			Data: []byte(fmt.Sprintf("payload-%d", i)),
		})
	}
	stored, err := cache.StoreMany(ctx, batch)
	require.NoError(t, err)
	assert.Len(t, stored, 98)

	_, err = cache.Store(ctx, "entry-099", []byte("last"), nil)
	require.NoError(t, err)

	all, err := cache.RetrieveAll()
	require.NoError(t, err)
	require.Len(t, all, 100)
	// RetrieveAll orders by name.
	assert.Equal(t, "entry-000", all[0].Name)
	assert.Equal(t, "entry-099", all[99].Name)

	names := []string{"entry-007", "entry-042", "entry-099"}
	many, err := cache.RetrieveMany(names)
	require.NoError(t, err)
	require.Len(t, many, 3)
	for i, entry := range many {
		assert.Equal(t, names[i], entry.Name)
	}
}

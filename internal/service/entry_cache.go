// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-cloud-vault/models"
)

type entryCache struct {
	manager SyncManager

	// mu serializes whole operations, keeping the (synced, hash, entries)
	// triple consistent with the last confirmed remote state.
	mu      sync.Mutex
	synced  bool
	hash    string
	entries map[string]models.Entry
}

// NewEntryCache constructs an [EntryCache] in the not-synced state.
func NewEntryCache(manager SyncManager) EntryCache {
	return &entryCache{manager: manager}
}

func (c *entryCache) RetrieveCloudEntries(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	decrypted, err := c.manager.PullValue(ctx)
	if err != nil {
		return fmt.Errorf("pull cloud entries: %w", err)
	}

	entries, err := deserializeEntries(decrypted.Value)
	if err != nil {
		return fmt.Errorf("deserialize cloud entries: %w", err)
	}

	// Full refresh: anything staged locally but never pushed is discarded.
	c.synced = true
	c.hash = decrypted.Hash
	c.entries = entries
	return nil
}

func (c *entryCache) RetrieveAll() ([]models.Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.synced {
		return nil, ErrCloudStorageOutOfSync
	}

	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)

	all := make([]models.Entry, 0, len(names))
	for _, name := range names {
		all = append(all, copyEntry(c.entries[name]))
	}
	return all, nil
}

func (c *entryCache) Retrieve(name string) (models.Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.retrieveLocked(name)
}

func (c *entryCache) RetrieveMany(names []string) ([]models.Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	found := make([]models.Entry, 0, len(names))
	for _, name := range names {
		entry, err := c.retrieveLocked(name)
		if err != nil {
			return nil, err
		}
		found = append(found, entry)
	}
	return found, nil
}

func (c *entryCache) Exists(name string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.synced {
		return false, ErrCloudStorageOutOfSync
	}
	_, ok := c.entries[name]
	return ok, nil
}

func (c *entryCache) Store(ctx context.Context, name string, data []byte, meta map[string]string) (models.Entry, error) {
	stored, err := c.StoreMany(ctx, []models.EntryRequest{{Name: name, Data: data, Meta: meta}})
	if err != nil {
		return models.Entry{}, err
	}
	return stored[0], nil
}

func (c *entryCache) StoreMany(ctx context.Context, requests []models.EntryRequest) ([]models.Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.synced {
		return nil, ErrCloudStorageOutOfSync
	}

	now := time.Now().UTC()
	candidate := c.copyEntriesLocked()
	for _, request := range requests {
		if request.Name == "" {
			return nil, fmt.Errorf("%w: empty entry name", ErrInvalidEntry)
		}
		if _, taken := candidate[request.Name]; taken {
			return nil, fmt.Errorf("%w: %s", ErrEntryAlreadyExists, request.Name)
		}
		candidate[request.Name] = models.Entry{
			Name:      request.Name,
			Data:      append([]byte(nil), request.Data...),
			Meta:      copyMeta(request.Meta),
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	confirmed, err := c.pushLocked(ctx, candidate)
	if err != nil {
		return nil, err
	}

	stored := make([]models.Entry, 0, len(requests))
	for _, request := range requests {
		entry, ok := confirmed[request.Name]
		if !ok {
			return nil, fmt.Errorf("stored entry %q missing from confirmed response", request.Name)
		}
		stored = append(stored, copyEntry(entry))
	}
	return stored, nil
}

func (c *entryCache) Update(ctx context.Context, name string, data []byte, meta map[string]string) (models.Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.synced {
		return models.Entry{}, ErrCloudStorageOutOfSync
	}
	current, ok := c.entries[name]
	if !ok {
		return models.Entry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, name)
	}

	now := time.Now().UTC()
	if !now.After(current.UpdatedAt) {
		// The wall clock may not have advanced past the previous update.
		now = current.UpdatedAt.Add(time.Nanosecond)
	}

	updated := current
	updated.Data = append([]byte(nil), data...)
	updated.Meta = copyMeta(meta)
	updated.UpdatedAt = now

	candidate := c.copyEntriesLocked()
	candidate[name] = updated

	confirmed, err := c.pushLocked(ctx, candidate)
	if err != nil {
		return models.Entry{}, err
	}

	entry, ok := confirmed[name]
	if !ok {
		return models.Entry{}, fmt.Errorf("updated entry %q missing from confirmed response", name)
	}
	return copyEntry(entry), nil
}

func (c *entryCache) Delete(ctx context.Context, name string) error {
	return c.DeleteMany(ctx, []string{name})
}

func (c *entryCache) DeleteMany(ctx context.Context, names []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.synced {
		return ErrCloudStorageOutOfSync
	}
	for _, name := range names {
		if _, ok := c.entries[name]; !ok {
			return fmt.Errorf("%w: %s", ErrEntryNotFound, name)
		}
	}

	candidate := c.copyEntriesLocked()
	for _, name := range names {
		delete(candidate, name)
	}

	_, err := c.pushLocked(ctx, candidate)
	return err
}

func (c *entryCache) DeleteAll(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Usable from the not-synced state: the reset round trip itself
	// establishes a confirmed (empty) snapshot.
	decrypted, err := c.manager.ResetValue(ctx)
	if err != nil {
		return fmt.Errorf("reset cloud entries: %w", err)
	}

	c.synced = true
	c.hash = decrypted.Hash
	c.entries = make(map[string]models.Entry)
	return nil
}

func (c *entryCache) UpdateRecipients(ctx context.Context, rotation models.KeyRotation) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.synced {
		return ErrCloudStorageOutOfSync
	}

	plaintext, err := serializeEntries(c.entries)
	if err != nil {
		return fmt.Errorf("serialize entries: %w", err)
	}

	decrypted, err := c.manager.UpdateRecipientsWith(ctx, plaintext, c.hash, rotation)
	if err != nil {
		return fmt.Errorf("update recipients: %w", err)
	}

	confirmed, err := deserializeEntries(decrypted.Value)
	if err != nil {
		return fmt.Errorf("deserialize confirmed entries: %w", err)
	}

	c.entries = confirmed
	c.hash = decrypted.Hash
	return nil
}

func (c *entryCache) retrieveLocked(name string) (models.Entry, error) {
	if !c.synced {
		return models.Entry{}, ErrCloudStorageOutOfSync
	}
	entry, ok := c.entries[name]
	if !ok {
		return models.Entry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, name)
	}
	return copyEntry(entry), nil
}

// pushLocked serializes candidate, pushes it conditionally on the current
// hash and commits the server-confirmed result. The local snapshot is only
// touched on success; the server round trip, not the candidate, is the source
// of truth for the new state.
func (c *entryCache) pushLocked(ctx context.Context, candidate map[string]models.Entry) (map[string]models.Entry, error) {
	plaintext, err := serializeEntries(candidate)
	if err != nil {
		return nil, fmt.Errorf("serialize entries: %w", err)
	}

	decrypted, err := c.manager.PushValue(ctx, plaintext, c.hash)
	if err != nil {
		return nil, fmt.Errorf("push entries: %w", err)
	}

	confirmed, err := deserializeEntries(decrypted.Value)
	if err != nil {
		return nil, fmt.Errorf("deserialize confirmed entries: %w", err)
	}

	c.entries = confirmed
	c.hash = decrypted.Hash
	return confirmed, nil
}

func (c *entryCache) copyEntriesLocked() map[string]models.Entry {
	candidate := make(map[string]models.Entry, len(c.entries))
	for name, entry := range c.entries {
		candidate[name] = entry
	}
	return candidate
}

func copyEntry(entry models.Entry) models.Entry {
	out := entry
	out.Data = append([]byte(nil), entry.Data...)
	out.Meta = copyMeta(entry.Meta)
	return out
}

func copyMeta(meta map[string]string) map[string]string {
	if meta == nil {
		return nil
	}
	out := make(map[string]string, len(meta))
	for k, v := range meta {
		out[k] = v
	}
	return out
}

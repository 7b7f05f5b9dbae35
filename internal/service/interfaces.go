// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the two orchestration layers of the vault client:
// [SyncManager], which moves the encrypted blob between the local side and the
// remote store under optimistic concurrency control and tamper detection, and
// [EntryCache], the local named-entry cache whose state machine enforces
// "must sync before use" and reconciles itself from server-confirmed
// responses.
package service

import (
	"context"

	"github.com/MKhiriev/go-cloud-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncManager orchestrates push, pull, reset and recipient rotation against
// the crypto, token and remote-store collaborators. Every operation acquires
// a fresh access token scoped to the operation kind before touching the store
// and verifies response integrity before returning decrypted data.
type SyncManager interface {
	// PushValue encrypts plaintext under the current key configuration and
	// writes it conditionally on previousHash (empty = unconditional first
	// write). The store must echo the pushed bytes exactly; any mismatch
	// fails with [ErrTamperedServerResponse]. The verified response is
	// decrypted and returned.
	PushValue(ctx context.Context, plaintext []byte, previousHash string) (models.DecryptedValue, error)

	// PullValue fetches and decrypts the current blob. A never-written or
	// reset blob yields a DecryptedValue with IsEmpty set.
	PullValue(ctx context.Context) (models.DecryptedValue, error)

	// ResetValue clears the remote blob. The response must be empty apart
	// from the fresh version token, otherwise [ErrTamperedServerResponse].
	ResetValue(ctx context.Context) (models.DecryptedValue, error)

	// UpdateRecipients pulls the current blob under the old keys, then
	// re-encrypts it under the rotated configuration and pushes conditionally
	// on the pulled version token. The key swap happens only after the
	// pull+decrypt step succeeds; an empty remote blob returns immediately
	// with no swap and no further network call.
	UpdateRecipients(ctx context.Context, rotation models.KeyRotation) (models.DecryptedValue, error)

	// UpdateRecipientsWith is the non-pulling variant: the caller supplies
	// the authoritative plaintext and version token directly.
	UpdateRecipientsWith(ctx context.Context, plaintext []byte, previousHash string, rotation models.KeyRotation) (models.DecryptedValue, error)

	// KeyConfiguration returns the configuration currently in effect.
	KeyConfiguration() models.KeyConfiguration
}

// EntryCache is the local name→entry cache layered on top of [SyncManager].
//
// The cache starts not-synced; apart from DeleteAll, every operation fails
// with [ErrCloudStorageOutOfSync] until RetrieveCloudEntries or DeleteAll has
// succeeded. Mutating operations build a full candidate entry set, push it in
// one round trip and adopt the server-confirmed result; a failed push leaves
// the local snapshot untouched.
type EntryCache interface {
	// RetrieveCloudEntries pulls the remote blob and unconditionally replaces
	// the local snapshot with the deserialized result. This is a full
	// refresh, not a merge.
	RetrieveCloudEntries(ctx context.Context) error

	// RetrieveAll returns all entries of the current snapshot, sorted by name.
	RetrieveAll() ([]models.Entry, error)

	// Retrieve returns the named entry or [ErrEntryNotFound].
	Retrieve(name string) (models.Entry, error)

	// RetrieveMany returns the named entries in the order requested; every
	// name must exist.
	RetrieveMany(names []string) ([]models.Entry, error)

	// Exists reports whether the named entry is present in the snapshot.
	Exists(name string) (bool, error)

	// Store creates one new entry. The name must not be taken
	// ([ErrEntryAlreadyExists]); use Update for in-place modification.
	Store(ctx context.Context, name string, data []byte, meta map[string]string) (models.Entry, error)

	// StoreMany creates several entries in a single round trip.
	StoreMany(ctx context.Context, requests []models.EntryRequest) ([]models.Entry, error)

	// Update replaces the data and metadata of an existing entry, advancing
	// its modification time and preserving its creation time.
	Update(ctx context.Context, name string, data []byte, meta map[string]string) (models.Entry, error)

	// Delete removes one entry; DeleteMany removes several atomically with
	// respect to the single push round trip.
	Delete(ctx context.Context, name string) error
	DeleteMany(ctx context.Context, names []string) error

	// DeleteAll resets the remote blob and leaves an empty synced snapshot.
	// It is the only operation usable before a sync.
	DeleteAll(ctx context.Context) error

	// UpdateRecipients re-encrypts the current snapshot for a rotated
	// recipient set; entry contents are unchanged.
	UpdateRecipients(ctx context.Context, rotation models.KeyRotation) error
}

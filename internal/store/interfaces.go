// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the persistence layer of the blob server.
//
// Each identity owns exactly one blob row. Writes are conditional on the
// version hash the caller last observed, which is how concurrent clients
// sharing one vault detect that they lost a race.
package store

import (
	"context"

	"github.com/MKhiriev/go-cloud-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BlobRepository is the storage contract for versioned vault blobs.
type BlobRepository interface {
	// GetBlob returns the blob owned by identity. A missing row is not an
	// error: the returned blob has empty contents and an empty hash, which
	// is exactly the state a first-time writer expects.
	GetBlob(ctx context.Context, identity string) (models.Blob, error)

	// PutBlob stores meta and value for identity, conditional on
	// previousHash matching the stored version hash. An empty previousHash
	// is an insert-only write: it succeeds only when no row exists yet.
	// On success the row carries a fresh server-issued hash.
	// Returns ErrVersionConflict when the condition fails.
	PutBlob(ctx context.Context, identity string, meta, value []byte, previousHash string) (models.Blob, error)

	// ResetBlob unconditionally clears the blob owned by identity and
	// issues a fresh version hash. Resetting a missing row creates it
	// empty.
	ResetBlob(ctx context.Context, identity string) (models.Blob, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

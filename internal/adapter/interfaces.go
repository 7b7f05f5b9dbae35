// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to the
// remote blob store.
//
// The primary abstraction is [RemoteStore], which decouples the sync layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPRemoteStore]). Error values defined in errors.go are mapped from
// HTTP status codes by mapHTTPError so callers can use [errors.Is] for
// transport-agnostic handling (e.g. [ErrVersionConflict] for 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-cloud-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// RemoteStore holds exactly one versioned opaque blob per identity.
// Every call carries the access token issued for that specific operation;
// the identity is the token's subject.
type RemoteStore interface {
	// Push writes a new blob revision. previousHash is the version token the
	// write is conditional on; empty means "unconditional first write",
	// accepted only when no blob exists yet. The store echoes the accepted
	// meta/value bytes and the new version token. A mismatched previousHash
	// fails with [ErrVersionConflict].
	Push(ctx context.Context, meta, value []byte, previousHash string, token models.Token) (models.EncryptedValue, error)

	// Pull fetches the current blob revision. A never-written identity yields
	// an EncryptedValue with empty meta, value and hash.
	Pull(ctx context.Context, token models.Token) (models.EncryptedValue, error)

	// Reset clears the blob. The response has empty meta and value and
	// carries a fresh version token.
	Reset(ctx context.Context, token models.Token) (models.EncryptedValue, error)
}

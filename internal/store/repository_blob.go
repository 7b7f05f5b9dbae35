// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-cloud-vault/internal/logger"
	"github.com/MKhiriev/go-cloud-vault/models"
)

// blobRepository is the SQL-backed implementation of [BlobRepository]. It
// executes all blob operations against the "blobs" table using the embedded
// [*DB] connection; version hashes are uuids issued here, never by clients.
type blobRepository struct {
	*DB
	logger *logger.Logger
}

// NewBlobRepository constructs a [BlobRepository] backed by the provided
// database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewBlobRepository(db *DB, logger *logger.Logger) BlobRepository {
	return &blobRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *blobRepository) GetBlob(ctx context.Context, identity string) (models.Blob, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetBlobQuery(identity, r.placeholder())
	if err != nil {
		log.Err(err).
			Str("func", "blobRepository.GetBlob").
			Str("identity", identity).
			Msg("failed to create query")
		return models.Blob{}, err
	}

	var blob models.Blob
	scanErr := r.DB.QueryRowContext(ctx, query, args...).Scan(
		&blob.Identity,
		&blob.Meta,
		&blob.Value,
		&blob.Hash,
		&blob.UpdatedAt,
	)
	if errors.Is(scanErr, sql.ErrNoRows) {
		// Nothing stored yet. An empty hash tells the client its first
		// write must be unconditional.
		return models.Blob{Identity: identity}, nil
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "blobRepository.GetBlob").
			Str("identity", identity).
			Msg("failed to scan blob row")
		return models.Blob{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return blob, nil
}

func (r *blobRepository) PutBlob(ctx context.Context, identity string, meta, value []byte, previousHash string) (models.Blob, error) {
	log := logger.FromContext(ctx)

	newHash := uuid.NewString()
	now := time.Now().UTC()

	var query string
	var args []any
	var err error
	if previousHash == "" {
		query, args, err = buildInsertBlobQuery(identity, meta, value, newHash, now, r.placeholder())
	} else {
		query, args, err = buildUpdateBlobQuery(identity, meta, value, newHash, previousHash, now, r.placeholder())
	}
	if err != nil {
		log.Err(err).
			Str("func", "blobRepository.PutBlob").
			Str("identity", identity).
			Msg("failed to create query")
		return models.Blob{}, err
	}

	result, execErr := r.DB.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "blobRepository.PutBlob").
			Str("identity", identity).
			Str("pg_code", postgresError(execErr)).
			Msg("failed to execute conditional write")
		return models.Blob{}, fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	affected, affErr := result.RowsAffected()
	if affErr != nil {
		log.Err(affErr).
			Str("func", "blobRepository.PutBlob").
			Str("identity", identity).
			Msg("failed to read affected rows")
		return models.Blob{}, fmt.Errorf("%w: %w", ErrExecutingQuery, affErr)
	}
	if affected == 0 {
		log.Warn().
			Str("func", "blobRepository.PutBlob").
			Str("identity", identity).
			Str("previous_hash", previousHash).
			Msg("conditional write matched no rows")
		return models.Blob{}, ErrVersionConflict
	}

	log.Debug().
		Str("func", "blobRepository.PutBlob").
		Str("identity", identity).
		Str("hash", newHash).
		Int("value_size", len(value)).
		Msg("blob stored")

	return models.Blob{
		Identity:  identity,
		Meta:      meta,
		Value:     value,
		Hash:      newHash,
		UpdatedAt: now,
	}, nil
}

func (r *blobRepository) ResetBlob(ctx context.Context, identity string) (models.Blob, error) {
	log := logger.FromContext(ctx)

	newHash := uuid.NewString()
	now := time.Now().UTC()

	query, args, err := buildResetBlobQuery(identity, newHash, now, r.placeholder())
	if err != nil {
		log.Err(err).
			Str("func", "blobRepository.ResetBlob").
			Str("identity", identity).
			Msg("failed to create query")
		return models.Blob{}, err
	}

	if _, execErr := r.DB.ExecContext(ctx, query, args...); execErr != nil {
		log.Err(execErr).
			Str("func", "blobRepository.ResetBlob").
			Str("identity", identity).
			Str("pg_code", postgresError(execErr)).
			Msg("failed to execute reset")
		return models.Blob{}, fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	log.Info().
		Str("func", "blobRepository.ResetBlob").
		Str("identity", identity).
		Str("hash", newHash).
		Msg("blob reset")

	return models.Blob{
		Identity:  identity,
		Hash:      newHash,
		UpdatedAt: now,
	}, nil
}

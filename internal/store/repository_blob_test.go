package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cloud-vault/internal/config"
	"github.com/MKhiriev/go-cloud-vault/internal/logger"
)

func newMockRepository(t *testing.T) (BlobRepository, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := &DB{
		DB:     conn,
		engine: config.EnginePostgres,
		logger: logger.Nop(),
	}

	return NewBlobRepository(db, logger.Nop()), mock
}

func TestBlobRepository_GetBlob(t *testing.T) {
	repo, mock := newMockRepository(t)

	updatedAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT identity, meta, value, hash, updated_at FROM blobs").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"identity", "meta", "value", "hash", "updated_at"}).
			AddRow("alice", []byte("m"), []byte("v"), "hash-1", updatedAt))

	blob, err := repo.GetBlob(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", blob.Identity)
	assert.Equal(t, []byte("m"), blob.Meta)
	assert.Equal(t, []byte("v"), blob.Value)
	assert.Equal(t, "hash-1", blob.Hash)
	assert.Equal(t, updatedAt, blob.UpdatedAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlobRepository_GetBlob_MissingRowIsEmptyBlob(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("SELECT identity, meta, value, hash, updated_at FROM blobs").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"identity", "meta", "value", "hash", "updated_at"}))

	blob, err := repo.GetBlob(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", blob.Identity)
	assert.Empty(t, blob.Hash)
	assert.Empty(t, blob.Value)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlobRepository_PutBlob_FirstWriteInserts(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec("INSERT INTO blobs").
		WillReturnResult(sqlmock.NewResult(0, 1))

	blob, err := repo.PutBlob(context.Background(), "alice", []byte("m"), []byte("v"), "")
	require.NoError(t, err)
	assert.Equal(t, []byte("m"), blob.Meta)
	assert.Equal(t, []byte("v"), blob.Value)

	// The new version hash is server-issued.
	_, parseErr := uuid.Parse(blob.Hash)
	assert.NoError(t, parseErr)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlobRepository_PutBlob_FirstWriteLosesRace(t *testing.T) {
	repo, mock := newMockRepository(t)

	// Another writer created the row first: DO NOTHING swallows the insert.
	mock.ExpectExec("INSERT INTO blobs").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.PutBlob(context.Background(), "alice", []byte("m"), []byte("v"), "")
	assert.ErrorIs(t, err, ErrVersionConflict)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlobRepository_PutBlob_ConditionalUpdate(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec("UPDATE blobs SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	blob, err := repo.PutBlob(context.Background(), "alice", []byte("m2"), []byte("v2"), "hash-1")
	require.NoError(t, err)
	assert.NotEqual(t, "hash-1", blob.Hash)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlobRepository_PutBlob_StaleHash(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec("UPDATE blobs SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.PutBlob(context.Background(), "alice", []byte("m"), []byte("v"), "stale-hash")
	assert.ErrorIs(t, err, ErrVersionConflict)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlobRepository_PutBlob_ExecError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec("UPDATE blobs SET").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.PutBlob(context.Background(), "alice", []byte("m"), []byte("v"), "hash-1")
	assert.ErrorIs(t, err, ErrExecutingQuery)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlobRepository_ResetBlob(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec("INSERT INTO blobs").
		WillReturnResult(sqlmock.NewResult(0, 1))

	blob, err := repo.ResetBlob(context.Background(), "alice")
	require.NoError(t, err)
	assert.Empty(t, blob.Meta)
	assert.Empty(t, blob.Value)
	assert.NotEmpty(t, blob.Hash)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresErrorClassifier_UnrecognisedErrorsAreNonRetryable(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	assert.Equal(t, NonRetryable, classifier.Classify(nil))
	assert.Equal(t, NonRetryable, classifier.Classify(errors.New("plain error")))
}

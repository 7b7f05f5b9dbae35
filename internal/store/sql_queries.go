package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const blobsTable = "blobs"

var blobColumns = []string{"identity", "meta", "value", "hash", "updated_at"}

// buildGetBlobQuery selects the single blob row owned by identity.
func buildGetBlobQuery(identity string, ph sq.PlaceholderFormat) (string, []any, error) {
	query, args, err := sq.Select(blobColumns...).
		From(blobsTable).
		Where(sq.Eq{"identity": identity}).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildInsertBlobQuery inserts a new blob row. The ON CONFLICT DO NOTHING
// suffix makes a lost insert race observable as zero affected rows instead of
// a driver-specific constraint error; the syntax is shared by PostgreSQL and
// SQLite.
func buildInsertBlobQuery(identity string, meta, value []byte, hash string, now time.Time, ph sq.PlaceholderFormat) (string, []any, error) {
	query, args, err := sq.Insert(blobsTable).
		Columns(blobColumns...).
		Values(identity, meta, value, hash, now).
		Suffix("ON CONFLICT (identity) DO NOTHING").
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateBlobQuery replaces the blob contents conditional on the stored
// hash still being previousHash. Zero affected rows means the condition
// failed (or the row never existed).
func buildUpdateBlobQuery(identity string, meta, value []byte, newHash, previousHash string, now time.Time, ph sq.PlaceholderFormat) (string, []any, error) {
	query, args, err := sq.Update(blobsTable).
		Set("meta", meta).
		Set("value", value).
		Set("hash", newHash).
		Set("updated_at", now).
		Where(sq.Eq{"identity": identity, "hash": previousHash}).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildResetBlobQuery clears the blob owned by identity regardless of its
// current state, creating the row if it never existed.
func buildResetBlobQuery(identity, hash string, now time.Time, ph sq.PlaceholderFormat) (string, []any, error) {
	query, args, err := sq.Insert(blobsTable).
		Columns(blobColumns...).
		Values(identity, []byte{}, []byte{}, hash, now).
		Suffix("ON CONFLICT (identity) DO UPDATE SET meta = excluded.meta, value = excluded.value, hash = excluded.hash, updated_at = excluded.updated_at").
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

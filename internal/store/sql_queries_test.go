// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildGetBlobQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildGetBlobQuery("alice", sq.Dollar)
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 1)
	require.Equal(t, "alice", args[0])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from blobs")
	require.Contains(t, q, "where")
	require.Contains(t, q, "identity")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")

	// columns presence
	for _, col := range blobColumns {
		require.Contains(t, q, col)
	}
}

func Test_buildGetBlobQuery_SQLitePlaceholders(t *testing.T) {
	query, _, err := buildGetBlobQuery("alice", sq.Question)
	require.NoError(t, err)

	assert.Contains(t, query, "?")
	assert.NotContains(t, query, "$1")
}

func Test_buildInsertBlobQuery(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	query, args, err := buildInsertBlobQuery("alice", []byte("m"), []byte("v"), "hash-1", now, sq.Dollar)
	require.NoError(t, err)

	q := strings.ToUpper(query)
	assert.Contains(t, q, "INSERT INTO BLOBS")
	assert.Contains(t, q, "ON CONFLICT (IDENTITY) DO NOTHING")

	require.Len(t, args, 5)
	assert.Equal(t, "alice", args[0])
	assert.Equal(t, []byte("m"), args[1])
	assert.Equal(t, []byte("v"), args[2])
	assert.Equal(t, "hash-1", args[3])
	assert.Equal(t, now, args[4])
}

func Test_buildUpdateBlobQuery(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	query, args, err := buildUpdateBlobQuery("alice", []byte("m"), []byte("v"), "hash-2", "hash-1", now, sq.Dollar)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "update blobs")
	assert.Contains(t, q, "set")
	assert.Contains(t, q, "where")
	assert.Contains(t, q, "hash")
	assert.Contains(t, q, "identity")

	// set values first, then the condition pair
	require.Len(t, args, 6)
	assert.Contains(t, args, "hash-2")
	assert.Contains(t, args, "hash-1")
	assert.Contains(t, args, "alice")
}

func Test_buildResetBlobQuery(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	query, args, err := buildResetBlobQuery("alice", "fresh-hash", now, sq.Dollar)
	require.NoError(t, err)

	q := strings.ToUpper(query)
	assert.Contains(t, q, "INSERT INTO BLOBS")
	assert.Contains(t, q, "ON CONFLICT (IDENTITY) DO UPDATE SET")
	assert.Contains(t, q, "EXCLUDED.HASH")

	require.Len(t, args, 5)
	assert.Equal(t, "alice", args[0])
	assert.Equal(t, []byte{}, args[1])
	assert.Equal(t, []byte{}, args[2])
	assert.Equal(t, "fresh-hash", args[3])
}

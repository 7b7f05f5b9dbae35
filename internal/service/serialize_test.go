package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cloud-vault/models"
)

func TestSerializeEntries_RoundTrip(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	updated := created.Add(48 * time.Hour)

	entries := map[string]models.Entry{
		"github-token": {
			Name:      "github-token",
			Data:      []byte("ghp_secret"),
			Meta:      map[string]string{"scope": "repo"},
			CreatedAt: created,
			UpdatedAt: updated,
		},
		"db-password": {
			Name:      "db-password",
			Data:      []byte("hunter2"),
			CreatedAt: created,
			UpdatedAt: created,
		},
	}

	data, err := serializeEntries(entries)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	decoded, err := deserializeEntries(data)
	require.NoError(t, err)
	assert.Equal(t, entries, decoded)
}

func TestSerializeEntries_EmptySetEncodesToNil(t *testing.T) {
	data, err := serializeEntries(nil)
	require.NoError(t, err)
	assert.Nil(t, data)

	data, err = serializeEntries(map[string]models.Entry{})
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestSerializeEntries_DeterministicOrdering(t *testing.T) {
	entries := map[string]models.Entry{
		"zebra":  {Name: "zebra", Data: []byte("z")},
		"alpha":  {Name: "alpha", Data: []byte("a")},
		"middle": {Name: "middle", Data: []byte("m")},
	}

	first, err := serializeEntries(entries)
	require.NoError(t, err)

	// Map iteration order varies per run; the encoding must not.
	for i := 0; i < 10; i++ {
		again, err := serializeEntries(entries)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestDeserializeEntries_EmptyInput(t *testing.T) {
	decoded, err := deserializeEntries(nil)
	require.NoError(t, err)
	assert.Empty(t, decoded)

	decoded, err = deserializeEntries([]byte{})
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestDeserializeEntries_RejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "not json", data: []byte("not json at all")},
		{name: "duplicate names", data: []byte(`[{"name":"a","data":"eA=="},{"name":"a","data":"eQ=="}]`)},
		{name: "empty name", data: []byte(`[{"name":"","data":"eA=="}]`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := deserializeEntries(tt.data)
			assert.Error(t, err)
		})
	}
}

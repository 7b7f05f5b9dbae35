package service

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/MKhiriev/go-cloud-vault/models"
)

// serializeEntries encodes an entry set as the plaintext blob: a JSON array of
// entries sorted by name. The encoding is an internal contract between cache
// instances sharing one identity, not a public protocol. An empty set encodes
// to empty bytes.
func serializeEntries(entries map[string]models.Entry) ([]byte, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	records := make([]models.Entry, 0, len(entries))
	for _, name := range names {
		records = append(records, entries[name])
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("marshal entries: %w", err)
	}
	return data, nil
}

// deserializeEntries decodes the plaintext blob back into an entry set.
// Empty plaintext decodes to an empty set. Duplicate names make the blob
// ambiguous and are rejected.
func deserializeEntries(data []byte) (map[string]models.Entry, error) {
	entries := make(map[string]models.Entry)
	if len(data) == 0 {
		return entries, nil
	}

	var records []models.Entry
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("unmarshal entries: %w", err)
	}

	for _, record := range records {
		if record.Name == "" {
			return nil, fmt.Errorf("entry with empty name in blob")
		}
		if _, ok := entries[record.Name]; ok {
			return nil, fmt.Errorf("duplicate entry name %q in blob", record.Name)
		}
		entries[record.Name] = record
	}
	return entries, nil
}

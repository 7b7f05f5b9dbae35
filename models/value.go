package models

import "time"

// EncryptedValue is the remote blob exactly as the store returns it: the
// encryption header (Meta), the ciphertext (Value) and the server-issued
// version token (Hash). The cache layer never interprets Meta or Value.
type EncryptedValue struct {
	Meta  []byte `json:"meta"`
	Value []byte `json:"value"`
	Hash  string `json:"hash"`
}

// DecryptedValue is the result of a pull, push or reset after decryption and
// signature verification. Value holds the plaintext (the serialized entry set),
// Meta the encryption header it was carried under, Hash the version token of
// the revision it decodes. IsEmpty is set when the remote side holds no blob
// yet or the blob was just reset; Value and Meta are empty in that case and no
// decryption was attempted.
type DecryptedValue struct {
	Value   []byte
	Meta    []byte
	Hash    string
	IsEmpty bool
}

// Blob is the server-side record: one versioned opaque blob per identity.
type Blob struct {
	Identity  string
	Meta      []byte
	Value     []byte
	Hash      string
	UpdatedAt time.Time
}

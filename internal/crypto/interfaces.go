// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the end-to-end protection of the vault blob:
// sign-then-encrypt for a set of recipients on the way out, decrypt-then-verify
// on the way in. The sync layer depends only on the [Crypto] interface; the
// shipped implementation ([NewSignCryptService]) uses AES-256-GCM for the
// payload, NaCl box for per-recipient content-key wrapping and ed25519 for
// sender signatures.
package crypto

import (
	"github.com/MKhiriev/go-cloud-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// Crypto signs and encrypts plaintext for a recipient set, and decrypts and
// verifies blobs coming back from the remote store.
type Crypto interface {
	// Encrypt protects plaintext for the given recipients and signs it with
	// signingKey. It returns the encryption header (meta) and the ciphertext
	// (value) to be stored remotely. Returns an error if the recipient set is
	// empty or any cryptographic step fails.
	Encrypt(plaintext []byte, signingKey models.KeyPair, recipients []models.PublicKey) (meta, value []byte, err error)

	// Decrypt unwraps the content key addressed to key, decrypts the
	// ciphertext and verifies the sender signature against verifyWith.
	// The returned DecryptedValue carries the plaintext together with the
	// version token of encrypted. Returns an error if the blob is not
	// addressed to key, the signer is not in verifyWith, or verification of
	// the signature or authentication tag fails.
	Decrypt(encrypted models.EncryptedValue, key models.KeyPair, verifyWith []models.PublicKey) (models.DecryptedValue, error)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/curve25519"

	"github.com/MKhiriev/go-cloud-vault/models"
)

// Argon2id parameters per the OWASP (2024) recommendation: 1 iteration,
// 64 MiB memory, 4 threads. The derived block is split into the ed25519 seed
// and the curve25519 scalar.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 64
)

// GenerateKeyPair creates a fresh random vault identity key: an ed25519
// signing key plus a curve25519 key-agreement key. Returns an error if the
// OS CSPRNG read fails.
func GenerateKeyPair() (models.KeyPair, error) {
	verify, signing, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return models.KeyPair{}, fmt.Errorf("generate signing key: %w", err)
	}

	var scalar [32]byte
	if _, err = io.ReadFull(rand.Reader, scalar[:]); err != nil {
		return models.KeyPair{}, fmt.Errorf("generate wrap key: %w", err)
	}

	return assembleKeyPair(signing, verify, scalar), nil
}

// KeyPairFromPassword deterministically derives a vault identity key from a
// master password and a per-identity salt using Argon2id. The same password
// and salt always yield the same key pair, which lets a client re-derive its
// keys on every unlock instead of persisting them.
func KeyPairFromPassword(masterPassword string, salt []byte) models.KeyPair {
	block := argon2.IDKey([]byte(masterPassword), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	signing := ed25519.NewKeyFromSeed(block[:ed25519.SeedSize])
	verify := signing.Public().(ed25519.PublicKey)

	var scalar [32]byte
	copy(scalar[:], block[ed25519.SeedSize:])

	return assembleKeyPair(signing, verify, scalar)
}

func assembleKeyPair(signing ed25519.PrivateKey, verify ed25519.PublicKey, scalar [32]byte) models.KeyPair {
	var wrapPub [32]byte
	curve25519.ScalarBaseMult(&wrapPub, &scalar)

	return models.KeyPair{
		ID:         keyID(verify),
		SigningKey: signing,
		UnwrapKey:  scalar,
		VerifyKey:  verify,
		WrapKey:    wrapPub,
	}
}

// keyID derives a short stable identifier from the verification key.
func keyID(verify ed25519.PublicKey) string {
	sum := sha256.Sum256(verify)
	return hex.EncodeToString(sum[:8])
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/box"

	"github.com/MKhiriev/go-cloud-vault/models"
)

// wrappedKey is one recipient's copy of the content key, sealed with NaCl box
// under an ephemeral sender key.
type wrappedKey struct {
	Ephemeral []byte `json:"ephemeral"`
	Nonce     []byte `json:"nonce"`
	Sealed    []byte `json:"sealed"`
}

// header is the encryption header serialized into the blob's meta bytes.
// Keys maps recipient key IDs to their wrapped content key.
type header struct {
	Signer    string                `json:"signer"`
	Signature []byte                `json:"signature"`
	Nonce     []byte                `json:"nonce"`
	Keys      map[string]wrappedKey `json:"keys"`
}

// signCryptService is the private implementation of [Crypto].
type signCryptService struct{}

// NewSignCryptService constructs the default [Crypto] implementation.
func NewSignCryptService() Crypto {
	return &signCryptService{}
}

// Encrypt implements [Crypto]. The construction:
//
//  1. generate a random 256-bit content key;
//  2. encrypt plaintext with AES-256-GCM under the content key, a random
//     12-byte nonce recorded in the header: value = GCM(contentKey, plaintext);
//  3. for every recipient, seal the content key with box.Seal under a fresh
//     ephemeral key pair;
//  4. sign the ciphertext with the sender's ed25519 key; the signature and the
//     signer's key ID go into the header so the receiving side knows which
//     verification key to use.
func (s *signCryptService) Encrypt(plaintext []byte, signingKey models.KeyPair, recipients []models.PublicKey) ([]byte, []byte, error) {
	if len(recipients) == 0 {
		return nil, nil, ErrNoRecipients
	}

	contentKey := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, contentKey); err != nil {
		return nil, nil, fmt.Errorf("generate content key: %w", err)
	}

	block, err := aes.NewCipher(contentKey)
	if err != nil {
		return nil, nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, fmt.Errorf("create gcm: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, nil, fmt.Errorf("generate nonce: %w", err)
	}
	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)

	hdr := header{
		Signer:    signingKey.ID,
		Signature: ed25519.Sign(signingKey.SigningKey, ciphertext),
		Nonce:     nonce,
		Keys:      make(map[string]wrappedKey, len(recipients)),
	}

	for _, recipient := range recipients {
		ephPub, ephPriv, err := box.GenerateKey(rand.Reader)
		if err != nil {
			return nil, nil, fmt.Errorf("generate ephemeral key for %s: %w", recipient.ID, err)
		}
		var boxNonce [24]byte
		if _, err = io.ReadFull(rand.Reader, boxNonce[:]); err != nil {
			return nil, nil, fmt.Errorf("generate box nonce for %s: %w", recipient.ID, err)
		}

		recipientKey := recipient.WrapKey
		sealed := box.Seal(nil, contentKey, &boxNonce, &recipientKey, ephPriv)
		hdr.Keys[recipient.ID] = wrappedKey{
			Ephemeral: ephPub[:],
			Nonce:     boxNonce[:],
			Sealed:    sealed,
		}
	}

	meta, err := json.Marshal(hdr)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal header: %w", err)
	}

	return meta, ciphertext, nil
}

// Decrypt implements [Crypto]. Verification happens before any decryption:
// an unknown signer or a bad signature fails the whole operation even if the
// content key could be unwrapped.
func (s *signCryptService) Decrypt(encrypted models.EncryptedValue, key models.KeyPair, verifyWith []models.PublicKey) (models.DecryptedValue, error) {
	var hdr header
	if err := json.Unmarshal(encrypted.Meta, &hdr); err != nil {
		return models.DecryptedValue{}, fmt.Errorf("%w: %w", ErrMalformedHeader, err)
	}

	verifyKey, err := findVerifyKey(hdr.Signer, verifyWith)
	if err != nil {
		return models.DecryptedValue{}, err
	}
	if !ed25519.Verify(verifyKey, encrypted.Value, hdr.Signature) {
		return models.DecryptedValue{}, ErrInvalidSignature
	}

	wrapped, ok := hdr.Keys[key.ID]
	if !ok {
		return models.DecryptedValue{}, ErrNotForRecipient
	}
	if len(wrapped.Ephemeral) != 32 || len(wrapped.Nonce) != 24 {
		return models.DecryptedValue{}, ErrMalformedHeader
	}

	var ephPub [32]byte
	var boxNonce [24]byte
	copy(ephPub[:], wrapped.Ephemeral)
	copy(boxNonce[:], wrapped.Nonce)

	unwrapKey := key.UnwrapKey
	contentKey, ok := box.Open(nil, wrapped.Sealed, &boxNonce, &ephPub, &unwrapKey)
	if !ok {
		return models.DecryptedValue{}, fmt.Errorf("unwrap content key: authentication failed")
	}

	block, err := aes.NewCipher(contentKey)
	if err != nil {
		return models.DecryptedValue{}, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return models.DecryptedValue{}, fmt.Errorf("create gcm: %w", err)
	}
	if len(hdr.Nonce) != gcm.NonceSize() {
		return models.DecryptedValue{}, ErrMalformedHeader
	}

	plaintext, err := gcm.Open(nil, hdr.Nonce, encrypted.Value, nil)
	if err != nil {
		return models.DecryptedValue{}, fmt.Errorf("decrypt value: %w", err)
	}

	return models.DecryptedValue{
		Value: plaintext,
		Meta:  encrypted.Meta,
		Hash:  encrypted.Hash,
	}, nil
}

func findVerifyKey(signer string, verifyWith []models.PublicKey) (ed25519.PublicKey, error) {
	for _, pub := range verifyWith {
		if pub.ID == signer {
			return pub.VerifyKey, nil
		}
	}
	return nil, ErrUnknownSigner
}

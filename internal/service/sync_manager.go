// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-cloud-vault/internal/adapter"
	"github.com/MKhiriev/go-cloud-vault/internal/auth"
	"github.com/MKhiriev/go-cloud-vault/internal/crypto"
	"github.com/MKhiriev/go-cloud-vault/models"
)

// DefaultServiceID is the service identifier used in token contexts when the
// caller does not specify one.
const DefaultServiceID = "cloud-vault"

type syncManager struct {
	crypto  crypto.Crypto
	tokens  auth.TokenProvider
	remote  adapter.RemoteStore
	service string

	mu   sync.RWMutex
	keys models.KeyConfiguration
}

// NewSyncManager constructs a [SyncManager] operating under keys. The
// recipient set must not be empty. service identifies the blob store in token
// contexts; empty selects [DefaultServiceID].
func NewSyncManager(cryptoService crypto.Crypto, tokens auth.TokenProvider, remote adapter.RemoteStore, keys models.KeyConfiguration, service string) (SyncManager, error) {
	if len(keys.Recipients) == 0 {
		return nil, ErrEmptyRecipients
	}
	if service == "" {
		service = DefaultServiceID
	}
	return &syncManager{
		crypto:  cryptoService,
		tokens:  tokens,
		remote:  remote,
		service: service,
		keys:    keys,
	}, nil
}

func (m *syncManager) PushValue(ctx context.Context, plaintext []byte, previousHash string) (models.DecryptedValue, error) {
	return m.push(ctx, m.KeyConfiguration(), plaintext, previousHash)
}

func (m *syncManager) PullValue(ctx context.Context) (models.DecryptedValue, error) {
	token, err := m.tokens.GetToken(ctx, auth.TokenContext{Operation: auth.OperationGet, Service: m.service})
	if err != nil {
		return models.DecryptedValue{}, fmt.Errorf("get pull token: %w", err)
	}

	encrypted, err := m.remote.Pull(ctx, token)
	if err != nil {
		return models.DecryptedValue{}, fmt.Errorf("pull value: %w", err)
	}
	if len(encrypted.Value) == 0 {
		return models.DecryptedValue{Hash: encrypted.Hash, IsEmpty: true}, nil
	}

	keys := m.KeyConfiguration()
	decrypted, err := m.crypto.Decrypt(encrypted, keys.PrivateKey, keys.Recipients)
	if err != nil {
		return models.DecryptedValue{}, fmt.Errorf("decrypt pulled value: %w", err)
	}
	return decrypted, nil
}

func (m *syncManager) ResetValue(ctx context.Context) (models.DecryptedValue, error) {
	token, err := m.tokens.GetToken(ctx, auth.TokenContext{Operation: auth.OperationDelete, Service: m.service})
	if err != nil {
		return models.DecryptedValue{}, fmt.Errorf("get reset token: %w", err)
	}

	response, err := m.remote.Reset(ctx, token)
	if err != nil {
		return models.DecryptedValue{}, fmt.Errorf("reset value: %w", err)
	}
	// A reset response carrying data means the store did not honor the
	// destructive operation or returned stale/foreign bytes.
	if len(response.Meta) != 0 || len(response.Value) != 0 {
		return models.DecryptedValue{}, fmt.Errorf("reset response is not empty: %w", ErrTamperedServerResponse)
	}

	return models.DecryptedValue{Hash: response.Hash, IsEmpty: true}, nil
}

func (m *syncManager) UpdateRecipients(ctx context.Context, rotation models.KeyRotation) (models.DecryptedValue, error) {
	next := rotation.Apply(m.KeyConfiguration())
	if len(next.Recipients) == 0 {
		return models.DecryptedValue{}, ErrEmptyRecipients
	}

	// Pull and decrypt under the old configuration. A failure here must
	// leave the manager using the old keys.
	pulled, err := m.PullValue(ctx)
	if err != nil {
		return models.DecryptedValue{}, err
	}
	if pulled.IsEmpty {
		// Nothing to re-encrypt; swapping keys now would leave nothing
		// actually protected by them.
		return pulled, nil
	}

	m.swapKeys(next)
	return m.push(ctx, next, pulled.Value, pulled.Hash)
}

func (m *syncManager) UpdateRecipientsWith(ctx context.Context, plaintext []byte, previousHash string, rotation models.KeyRotation) (models.DecryptedValue, error) {
	next := rotation.Apply(m.KeyConfiguration())
	if len(next.Recipients) == 0 {
		return models.DecryptedValue{}, ErrEmptyRecipients
	}

	m.swapKeys(next)
	return m.push(ctx, next, plaintext, previousHash)
}

func (m *syncManager) KeyConfiguration() models.KeyConfiguration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.keys
}

func (m *syncManager) swapKeys(next models.KeyConfiguration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys = next
}

// push encrypts plaintext under keys, writes it conditionally on previousHash
// and verifies that the store echoed exactly the bytes it accepted before
// decrypting the response.
func (m *syncManager) push(ctx context.Context, keys models.KeyConfiguration, plaintext []byte, previousHash string) (models.DecryptedValue, error) {
	if len(keys.Recipients) == 0 {
		return models.DecryptedValue{}, ErrEmptyRecipients
	}

	token, err := m.tokens.GetToken(ctx, auth.TokenContext{Operation: auth.OperationPut, Service: m.service})
	if err != nil {
		return models.DecryptedValue{}, fmt.Errorf("get push token: %w", err)
	}

	meta, value, err := m.crypto.Encrypt(plaintext, keys.PrivateKey, keys.Recipients)
	if err != nil {
		return models.DecryptedValue{}, fmt.Errorf("encrypt value: %w", err)
	}

	response, err := m.remote.Push(ctx, meta, value, previousHash, token)
	if err != nil {
		return models.DecryptedValue{}, fmt.Errorf("push value: %w", err)
	}
	if !bytes.Equal(response.Meta, meta) || !bytes.Equal(response.Value, value) {
		return models.DecryptedValue{}, fmt.Errorf("push response differs from pushed data: %w", ErrTamperedServerResponse)
	}

	decrypted, err := m.crypto.Decrypt(response, keys.PrivateKey, keys.Recipients)
	if err != nil {
		return models.DecryptedValue{}, fmt.Errorf("decrypt pushed value: %w", err)
	}
	return decrypted, nil
}

package models

import "crypto/ed25519"

// PublicKey is the public half of a vault identity key: the ed25519
// verification key and the curve25519 key used to wrap content keys for this
// recipient. ID is a short stable identifier derived from the key material,
// used to locate the right wrapped key inside an encryption header.
type PublicKey struct {
	ID        string          `json:"id"`
	VerifyKey ed25519.PublicKey `json:"verify_key"`
	WrapKey   [32]byte        `json:"wrap_key"`
}

// KeyPair is the private half: the ed25519 signing key and the curve25519
// scalar used to unwrap content keys addressed to us.
type KeyPair struct {
	ID         string
	SigningKey ed25519.PrivateKey
	UnwrapKey  [32]byte

	// Public halves, kept alongside so a KeyPair is self-describing.
	VerifyKey ed25519.PublicKey
	WrapKey   [32]byte
}

// Public returns the shareable half of the pair.
func (k KeyPair) Public() PublicKey {
	return PublicKey{ID: k.ID, VerifyKey: k.VerifyKey, WrapKey: k.WrapKey}
}

// KeyConfiguration is the active key material of a sync manager: the local
// private key and the recipient set the blob is encrypted for. Values are
// treated as immutable; a manager replaces its configuration wholesale via an
// atomic swap, never by mutating fields of a live configuration.
type KeyConfiguration struct {
	PrivateKey KeyPair
	Recipients []PublicKey
}

// KeyOption selects between keeping the current private key and replacing it.
type KeyOption struct {
	Replace bool
	Key     KeyPair
}

// RecipientsOption selects between keeping the current recipient set and
// replacing it.
type RecipientsOption struct {
	Replace    bool
	Recipients []PublicKey
}

// ReplaceKey returns a KeyOption that installs key.
func ReplaceKey(key KeyPair) KeyOption {
	return KeyOption{Replace: true, Key: key}
}

// ReplaceRecipients returns a RecipientsOption that installs recipients.
func ReplaceRecipients(recipients []PublicKey) RecipientsOption {
	return RecipientsOption{Replace: true, Recipients: recipients}
}

// KeyRotation describes a recipient or private-key rotation. Each field is an
// explicit keep-or-replace option; the zero value rotates nothing.
type KeyRotation struct {
	PrivateKey KeyOption
	Recipients RecipientsOption
}

// Apply resolves the rotation against the current configuration and returns
// the configuration that should be in effect afterwards. current is not
// modified.
func (r KeyRotation) Apply(current KeyConfiguration) KeyConfiguration {
	next := KeyConfiguration{
		PrivateKey: current.PrivateKey,
		Recipients: current.Recipients,
	}
	if r.PrivateKey.Replace {
		next.PrivateKey = r.PrivateKey.Key
	}
	if r.Recipients.Replace {
		next.Recipients = append([]PublicKey(nil), r.Recipients.Recipients...)
	}
	return next
}

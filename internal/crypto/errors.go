package crypto

import "errors"

var (
	ErrNoRecipients     = errors.New("recipient set is empty")
	ErrNotForRecipient  = errors.New("blob is not addressed to this key")
	ErrUnknownSigner    = errors.New("signer is not in the verification set")
	ErrInvalidSignature = errors.New("signature verification failed")
	ErrMalformedHeader  = errors.New("malformed encryption header")
)

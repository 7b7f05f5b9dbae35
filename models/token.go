package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by vault access tokens. On top of the
// standard registered claims it records the blob operation the token was
// issued for ("put", "get" or "delete"); the server rejects a token whose
// operation claim does not match the requested endpoint.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Operation is the blob operation this token authorizes.
	Operation string `json:"op,omitempty"`
}

// Token wraps a JWT access token with convenience accessors.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [TokenClaims] for claim access. SignedString holds the compact
// serialized form (header.payload.signature) ready to be sent in an
// Authorization header. Identity caches the parsed "sub" claim.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization; only the compact string form is
	// meaningful outside the issuing process.
	*jwt.Token `json:"-"`

	TokenClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Identity is the vault identity extracted from the "sub" claim.
	Identity string `json:"-"`
}

// GetIdentity extracts the vault identity from the token's "sub" claim.
// Returns an error if the claim is missing or empty.
func (t *Token) GetIdentity() (string, error) {
	identity, err := t.GetSubject()
	if err != nil {
		return "", err
	}
	if identity == "" {
		return "", errors.New("empty subject in token")
	}
	return identity, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

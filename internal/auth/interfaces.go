// Package auth issues and validates the per-operation access tokens the
// remote blob store requires. Every sync operation acquires a fresh token
// scoped to the operation kind; caching and renewal policy, if any, is the
// provider's own business.
package auth

import (
	"context"

	"github.com/MKhiriev/go-cloud-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/token_provider_mock.go -package=mock

// Blob operations a token can be scoped to.
const (
	OperationPut    = "put"
	OperationGet    = "get"
	OperationDelete = "delete"
)

// TokenContext identifies what a token is requested for: the operation kind
// and the fixed service identifier of the blob store.
type TokenContext struct {
	Operation string
	Service   string
}

// TokenProvider issues an access token for the given operation context.
type TokenProvider interface {
	// GetToken returns a token authorizing one operation against the blob
	// store. Implementations must issue a token valid at the time of the
	// call; the sync layer requests a fresh one for every operation.
	GetToken(ctx context.Context, tokenContext TokenContext) (models.Token, error)
}

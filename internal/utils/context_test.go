package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetIdentityFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), IdentityCtxKey, "alice")

	identity, ok := GetIdentityFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "alice", identity)
}

func TestGetIdentityFromContext_Missing(t *testing.T) {
	_, ok := GetIdentityFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetIdentityFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), IdentityCtxKey, 42)

	_, ok := GetIdentityFromContext(ctx)
	assert.False(t, ok)
}

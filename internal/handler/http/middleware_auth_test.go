package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-cloud-vault/internal/auth"
)

func TestAuth_MissingAuthorizationHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _ := newTestRouter(t, ctrl)

	recorder := doRequest(t, router, http.MethodGet, "", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuth_MalformedBearerToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _ := newTestRouter(t, ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/blob", nil)
	req.Header.Set("Authorization", "Bearer")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuth_TokenSignedWithWrongKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _ := newTestRouter(t, ctrl)

	provider, err := auth.NewJWTTokenProvider(auth.JWTProviderConfig{
		Identity: testIdentity,
		Issuer:   testIssuer,
		SignKey:  "a-different-key",
	})
	assert.NoError(t, err)
	token, err := provider.GetToken(context.Background(), auth.TokenContext{Operation: auth.OperationGet})
	assert.NoError(t, err)

	recorder := doRequest(t, router, http.MethodGet, token.SignedString, nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuth_TokenFromWrongIssuer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _ := newTestRouter(t, ctrl)

	provider, err := auth.NewJWTTokenProvider(auth.JWTProviderConfig{
		Identity: testIdentity,
		Issuer:   "someone-else",
		SignKey:  testSignKey,
	})
	assert.NoError(t, err)
	token, err := provider.GetToken(context.Background(), auth.TokenContext{Operation: auth.OperationGet})
	assert.NoError(t, err)

	recorder := doRequest(t, router, http.MethodGet, token.SignedString, nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuth_OperationScopeEnforced(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		operation string
	}{
		{name: "get token cannot push", method: http.MethodPut, operation: auth.OperationGet},
		{name: "put token cannot pull", method: http.MethodGet, operation: auth.OperationPut},
		{name: "get token cannot reset", method: http.MethodDelete, operation: auth.OperationGet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// the repository must never be reached with a mis-scoped token
			router, _ := newTestRouter(t, ctrl)

			recorder := doRequest(t, router, tt.method, issueToken(t, tt.operation), []byte(`{"value":"dg=="}`))
			assert.Equal(t, http.StatusForbidden, recorder.Code)
		})
	}
}

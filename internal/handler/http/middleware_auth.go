package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-cloud-vault/internal/auth"
	"github.com/MKhiriev/go-cloud-vault/internal/logger"
	"github.com/MKhiriev/go-cloud-vault/internal/utils"
)

// methodOperations maps HTTP methods of the blob API to the operation claim
// a token must carry to use them.
var methodOperations = map[string]string{
	http.MethodGet:    auth.OperationGet,
	http.MethodPut:    auth.OperationPut,
	http.MethodDelete: auth.OperationDelete,
}

// auth is an HTTP middleware enforcing JWT-based, operation-scoped
// authentication.
//
// It extracts the bearer token from the "Authorization" header, validates the
// signature and issuer, and checks that the token's operation claim matches
// the HTTP method of the request. On success the token's subject is stored in
// the request context under [utils.IdentityCtxKey].
//
// The middleware rejects requests with:
//   - 401 Unauthorized when the header is absent, malformed, or the token is
//     invalid or expired;
//   - 403 Forbidden when the token is valid but scoped to a different
//     operation;
//   - 405 Method Not Allowed for methods the blob API does not define.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := auth.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		token, err := auth.ValidateAndParseToken(tokenString, h.signKey, h.issuer)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		requiredOperation, known := methodOperations[r.Method]
		if !known {
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		if token.Operation != requiredOperation {
			log.Warn().
				Str("token_operation", token.Operation).
				Str("required_operation", requiredOperation).
				Msg(ErrOperationNotPermitted.Error())
			http.Error(w, ErrOperationNotPermitted.Error(), http.StatusForbidden)
			return
		}

		// Store the authenticated identity in the context so downstream
		// handlers can retrieve it without re-parsing the token.
		ctx := context.WithValue(r.Context(), utils.IdentityCtxKey, token.Identity)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

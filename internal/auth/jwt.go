package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-cloud-vault/models"
)

// JWTProviderConfig carries the parameters of the HMAC-SHA256 token provider.
type JWTProviderConfig struct {
	// Identity is the vault identity placed in the "sub" claim.
	Identity string
	// Issuer is the "iss" claim and must match the blob server's expectation.
	Issuer string
	// SignKey is the shared HMAC secret.
	SignKey string
	// TokenDuration is how long an issued token stays valid. Tokens are
	// short-lived since one is issued per operation.
	TokenDuration time.Duration
}

type jwtTokenProvider struct {
	cfg JWTProviderConfig
}

// NewJWTTokenProvider constructs a [TokenProvider] issuing HMAC-SHA256 JWTs.
// Returns an error if the identity, issuer or sign key is empty.
func NewJWTTokenProvider(cfg JWTProviderConfig) (TokenProvider, error) {
	if cfg.Identity == "" || cfg.Issuer == "" || cfg.SignKey == "" {
		return nil, errors.New("invalid params for JWT token provider")
	}
	if cfg.TokenDuration <= 0 {
		cfg.TokenDuration = time.Minute
	}
	return &jwtTokenProvider{cfg: cfg}, nil
}

// GetToken implements [TokenProvider]. The issued token carries the standard
// iss/sub/iat/exp claims plus the "op" claim from tokenContext.
func (p *jwtTokenProvider) GetToken(_ context.Context, tokenContext TokenContext) (models.Token, error) {
	if tokenContext.Operation == "" {
		return models.Token{}, errors.New("empty operation in token context")
	}

	now := time.Now()
	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.cfg.Issuer,
			Subject:   p.cfg.Identity,
			Audience:  jwt.ClaimStrings{tokenContext.Service},
			ExpiresAt: jwt.NewNumericDate(now.Add(p.cfg.TokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Operation: tokenContext.Operation,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(p.cfg.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("sign JWT token: %w", err)
	}

	return models.Token{
		Token:        token,
		TokenClaims:  claims,
		SignedString: signed,
		Identity:     p.cfg.Identity,
	}, nil
}

// ValidateAndParseToken validates tokenString (signature, issuer, expiry) and
// extracts its claims. Used by the blob server's auth middleware.
func ValidateAndParseToken(tokenString, signKey, issuer string) (models.Token, error) {
	parsed := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(*jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("validate and parse token: %w", err)
	}

	identity, err := parsed.GetIdentity()
	if err != nil {
		return models.Token{}, fmt.Errorf("get subject from token: %w", err)
	}

	parsed.Token = token
	parsed.Identity = identity
	return *parsed, nil
}

// ParseBearerToken extracts the token from an Authorization header value of
// the form "Bearer <token>".
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrUnsupportedDBEngine indicates a Storage.DB.Engine value other
	// than "postgres" or "sqlite".
	ErrUnsupportedDBEngine = errors.New("unsupported database engine")
	// ErrInvalidAdapterConfigs indicates invalid client transport settings
	// (for example, missing server URL or zero request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key, issuer, or identity).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)

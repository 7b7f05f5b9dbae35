// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the cross-source invariants of the merged config. Most
// required-field checks live on the binary-specific views, since the server
// and the client need different subsets.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Engine {
	case "", EnginePostgres, EngineSQLite:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedDBEngine, cfg.Storage.DB.Engine)
	}
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.ServerURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.Identity == "" || cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

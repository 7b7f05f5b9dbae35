package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cloud-vault/internal/adapter"
	"github.com/MKhiriev/go-cloud-vault/internal/auth"
	"github.com/MKhiriev/go-cloud-vault/internal/config"
	"github.com/MKhiriev/go-cloud-vault/internal/crypto"
	"github.com/MKhiriev/go-cloud-vault/internal/logger"
	"github.com/MKhiriev/go-cloud-vault/internal/service"
	"github.com/MKhiriev/go-cloud-vault/internal/tui"
	"github.com/MKhiriev/go-cloud-vault/models"
)

// App is the interactive vault client. It owns the long-lived collaborators
// (transport, token provider) and re-derives key material on every unlock.
type App struct {
	cfg *config.ClientConfig
	log *logger.Logger
	ui  *tui.TUI

	remote adapter.RemoteStore
	tokens auth.TokenProvider
}

// NewApp wires the client application from its configuration.
func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	remote := adapter.NewHTTPRemoteStore(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.ServerURL,
		Timeout: cfg.Adapter.RequestTimeout,
	})

	tokens, err := auth.NewJWTTokenProvider(auth.JWTProviderConfig{
		Identity:      cfg.App.Identity,
		Issuer:        cfg.App.TokenIssuer,
		SignKey:       cfg.App.TokenSignKey,
		TokenDuration: cfg.App.TokenDuration,
	})
	if err != nil {
		return nil, fmt.Errorf("create token provider: %w", err)
	}

	app := &App{cfg: cfg, log: log, remote: remote, tokens: tokens}

	ui, err := tui.New(app.openVault, app.rekey, log)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}
	app.ui = ui

	return app, nil
}

// Run drives the unlock/browse/lock cycle until the user quits.
func (a *App) Run() error {
	ctx := context.Background()

	for {
		cache, err := a.ui.UnlockFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return fmt.Errorf("unlock vault: %w", err)
		}

		locked, err := a.ui.MainLoop(ctx, cache)
		if err != nil {
			return fmt.Errorf("vault session: %w", err)
		}
		if !locked {
			return nil
		}

		a.log.Info().Str("func", "*App.Run").Msg("vault locked, returning to unlock screen")
	}
}

// openVault derives the vault keys from the master password and performs the
// initial sync. The identity doubles as the key derivation salt, so two
// identities with the same password still get distinct keys.
func (a *App) openVault(ctx context.Context, masterPassword string) (service.EntryCache, error) {
	pair := crypto.KeyPairFromPassword(masterPassword, []byte(a.cfg.App.Identity))

	manager, err := service.NewSyncManager(
		crypto.NewSignCryptService(),
		a.tokens,
		a.remote,
		models.KeyConfiguration{
			PrivateKey: pair,
			Recipients: []models.PublicKey{pair.Public()},
		},
		service.DefaultServiceID,
	)
	if err != nil {
		return nil, fmt.Errorf("create sync manager: %w", err)
	}

	cache := service.NewEntryCache(manager)
	if err = cache.RetrieveCloudEntries(ctx); err != nil {
		return nil, fmt.Errorf("sync vault: %w", err)
	}

	return cache, nil
}

// rekey builds the rotation that moves the vault to keys derived from a new
// master password.
func (a *App) rekey(masterPassword string) models.KeyRotation {
	pair := crypto.KeyPairFromPassword(masterPassword, []byte(a.cfg.App.Identity))

	return models.KeyRotation{
		PrivateKey: models.ReplaceKey(pair),
		Recipients: models.ReplaceRecipients([]models.PublicKey{pair.Public()}),
	}
}

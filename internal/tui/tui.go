package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-cloud-vault/internal/logger"
	"github.com/MKhiriev/go-cloud-vault/internal/service"
	"github.com/MKhiriev/go-cloud-vault/models"
)

// VaultOpener derives the vault keys from the master password, builds the
// entry cache and performs the initial sync. A wrong password surfaces as a
// decryption error from the sync step.
type VaultOpener func(ctx context.Context, masterPassword string) (service.EntryCache, error)

// RekeyFunc turns a new master password into the key rotation that
// re-encrypts the vault for the keys derived from it.
type RekeyFunc func(masterPassword string) models.KeyRotation

// TUI drives the terminal client.
type TUI struct {
	open  VaultOpener
	rekey RekeyFunc
	log   *logger.Logger
}

func New(open VaultOpener, rekey RekeyFunc, log *logger.Logger) (*TUI, error) {
	return &TUI{open: open, rekey: rekey, log: log}, nil
}

// UnlockFlow runs the unlock screen until the vault opens or the user quits.
func (t *TUI) UnlockFlow(ctx context.Context) (service.EntryCache, error) {
	model := newUnlockModel(ctx, t.open)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return nil, runErr
	}

	result, ok := finalModel.(unlockModel)
	if !ok {
		return nil, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return nil, ErrUserQuit
	}

	return result.cache, nil
}

// MainLoop runs the entry browser over an opened vault. It reports whether
// the user locked the vault (true) or quit the program (false).
func (t *TUI) MainLoop(ctx context.Context, cache service.EntryCache) (locked bool, err error) {
	model := newMainLoopModel(ctx, cache, t.rekey)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.locked, nil
}

package tui

import "errors"

// ErrUserQuit is returned by UnlockFlow when the user exits the program
// instead of opening the vault.
var ErrUserQuit = errors.New("user quit")

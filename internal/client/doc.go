// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the remote store adapter, token provider, crypto service and entry
// cache into the terminal UI and owns the unlock/lock lifecycle: the vault
// keys exist only between a successful unlock and the next lock, re-derived
// from the master password every time.
package client

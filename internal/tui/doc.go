// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive terminal client for the vault.
//
// The flow is two Bubble Tea programs run one after another: an unlock screen
// that derives the vault keys from the master password and opens the entry
// cache, and a main loop that browses, creates, edits and deletes entries.
// Locking the vault returns to the unlock screen; quitting exits the process.
package tui

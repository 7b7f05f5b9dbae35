// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-cloud-vault/internal/service"
)

// unlockModel is the Bubble Tea model for the unlock screen. It renders a
// single masked password input and dispatches an async open command on
// submission. Opening the vault includes the initial sync, so a wrong master
// password shows up here as a failed unlock rather than corrupt entries later.
type unlockModel struct {
	ctx  context.Context
	open VaultOpener

	input      textinput.Model
	submitting bool
	errMsg     string

	cache      service.EntryCache
	quitByUser bool
}

func newUnlockModel(ctx context.Context, open VaultOpener) unlockModel {
	input := textinput.New()
	input.Placeholder = "master password"
	input.CharLimit = 256
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return unlockModel{ctx: ctx, open: open, input: input}
}

func (m unlockModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m unlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(vaultOpenedMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = result.err.Error()
			return m, nil
		}
		m.cache = result.cache
		return m, tea.Quit
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "ctrl+c", "esc":
			m.quitByUser = true
			return m, tea.Quit
		case "enter":
			if m.submitting {
				return m, nil
			}

			password := m.input.Value()
			if strings.TrimSpace(password) == "" {
				m.errMsg = "master password is required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdOpen(password)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m unlockModel) View() string {
	var b strings.Builder
	b.WriteString("Master password │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Opening vault...]\n")
	} else {
		b.WriteString("\n[Unlock]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("UNLOCK VAULT", strings.TrimRight(b.String(), "\n"), "enter: unlock │ esc: quit")
}

func (m unlockModel) cmdOpen(password string) tea.Cmd {
	ctx := m.ctx
	open := m.open

	return func() tea.Msg {
		cache, err := open(ctx, password)
		return vaultOpenedMsg{cache: cache, err: err}
	}
}

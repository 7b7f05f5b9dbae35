// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-cloud-vault/internal/service"
	"github.com/MKhiriev/go-cloud-vault/models"
)

// metaNoteKey is the entry metadata key the note field is stored under.
const metaNoteKey = "note"

type mainMode int

const (
	modeList mainMode = iota
	modeDetail
	modeForm
	modeRotate
	modeConfirmDelete
)

// mainLoopModel is the Bubble Tea model of the opened vault: a flat entry
// list with a detail view, a create/edit form, a master password change form
// and a delete confirmation. One model holds all modes, mirroring how a
// single vault session moves between them.
type mainLoopModel struct {
	ctx   context.Context
	cache service.EntryCache
	rekey RekeyFunc

	mode    mainMode
	entries []models.Entry
	idx     int
	loading bool
	syncing bool
	spinner spinner.Model
	status  string
	errMsg  string

	revealSecret bool

	// Create/edit form. editing distinguishes the two, since an edit keeps
	// the entry name fixed.
	formInputs [2]textinput.Model
	formNote   textarea.Model
	formFocus  int
	editing    bool
	saving     bool

	rotateInputs [2]textinput.Model
	rotateFocus  int
	rotating     bool

	locked bool
}

func newMainLoopModel(ctx context.Context, cache service.EntryCache, rekey RekeyFunc) mainLoopModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return mainLoopModel{
		ctx:     ctx,
		cache:   cache,
		rekey:   rekey,
		spinner: s,
		loading: true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadEntries()
}

func (m mainLoopModel) current() (models.Entry, bool) {
	if len(m.entries) == 0 || m.idx < 0 || m.idx >= len(m.entries) {
		return models.Entry{}, false
	}
	return m.entries[m.idx], true
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case entriesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.entries = msg.entries
		if m.idx >= len(m.entries) {
			m.idx = len(m.entries) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case syncDoneMsg:
		m.syncing = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("sync failed: %v", msg.err)
			return m, nil
		}
		m.status = "Synced"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadEntries()
	case entrySavedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("save failed: %v", msg.err)
			return m, nil
		}
		m.mode = modeList
		if m.editing {
			m.status = "Entry updated"
		} else {
			m.status = "Entry added"
		}
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadEntries()
	case entryDeletedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("delete failed: %v", msg.err)
			return m, nil
		}
		m.status = "Entry deleted"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadEntries()
	case rotateDoneMsg:
		m.rotating = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("password change failed: %v", msg.err)
			return m, nil
		}
		m.mode = modeList
		m.status = "Master password changed"
		m.errMsg = ""
		return m, nil
	case spinner.TickMsg:
		if !m.syncing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeRotate:
			return m.updateRotate(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modeForm:
		return m.updateForm(msg)
	case modeRotate:
		return m.updateRotate(msg)
	case modeConfirmDelete:
		return m.updateConfirmDelete(keyMsg)
	case modeDetail:
		return m.updateDetail(keyMsg)
	default:
		return m.updateList(keyMsg)
	}
}

func (m mainLoopModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.lock):
		m.locked = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.entries)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.newEntry):
		m.startForm(models.Entry{}, false)
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.sync):
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		m.status = "Syncing..."
		m.errMsg = ""
		return m, tea.Batch(m.cmdSync(), m.spinner.Tick)
	case key.Matches(keyMsg, keys.enter):
		if _, ok := m.current(); !ok {
			m.status = "No entries"
			return m, nil
		}
		m.revealSecret = false
		m.mode = modeDetail
	case key.Matches(keyMsg, keys.edit):
		entry, ok := m.current()
		if !ok {
			m.status = "No entries"
			return m, nil
		}
		m.startForm(entry, true)
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.delete):
		if _, ok := m.current(); !ok {
			m.status = "No entries"
			return m, nil
		}
		m.mode = modeConfirmDelete
	case key.Matches(keyMsg, keys.rotate):
		m.startRotate()
		return m, textinput.Blink
	}

	return m, nil
}

func (m mainLoopModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entry, ok := m.current()
	if !ok {
		m.mode = modeList
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.mode = modeList
		m.revealSecret = false
	case key.Matches(keyMsg, keys.reveal):
		m.revealSecret = !m.revealSecret
	case key.Matches(keyMsg, keys.copy):
		if err := clipboard.WriteAll(string(entry.Data)); err != nil {
			m.errMsg = fmt.Sprintf("copy failed: %v", err)
			return m, nil
		}
		m.status = "Copied to clipboard"
	case key.Matches(keyMsg, keys.edit):
		m.mode = modeList
		m.revealSecret = false
		m.startForm(entry, true)
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.delete):
		m.mode = modeConfirmDelete
		m.revealSecret = false
	}

	return m, nil
}

func (m mainLoopModel) updateConfirmDelete(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entry, ok := m.current()
	if !ok {
		m.mode = modeList
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.yes):
		m.mode = modeList
		return m, m.cmdDelete(entry.Name)
	case key.Matches(keyMsg, keys.no):
		m.mode = modeList
	}

	return m, nil
}

func (m *mainLoopModel) startForm(entry models.Entry, editing bool) {
	name := textinput.New()
	name.Placeholder = "name"
	name.CharLimit = 128
	name.Width = 40

	secret := textinput.New()
	secret.Placeholder = "secret value"
	secret.CharLimit = 1024
	secret.Width = 40
	secret.EchoMode = textinput.EchoPassword
	secret.EchoCharacter = '*'

	note := textarea.New()
	note.Placeholder = "note (optional)"
	note.SetWidth(42)
	note.SetHeight(3)

	if editing {
		name.SetValue(entry.Name)
		secret.SetValue(string(entry.Data))
		note.SetValue(entry.Meta[metaNoteKey])
		// The name is the entry identity, so edits keep it fixed and start
		// on the secret field.
		secret.Focus()
		m.formFocus = 1
	} else {
		name.Focus()
		m.formFocus = 0
	}

	m.formInputs = [2]textinput.Model{name, secret}
	m.formNote = note
	m.editing = editing
	m.saving = false
	m.mode = modeForm
	m.errMsg = ""
}

func (m mainLoopModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch keyMsg.String() {
		case "esc":
			m.mode = modeList
			m.errMsg = ""
			return m, nil
		case "tab":
			m.formMove(1)
			return m, nil
		case "shift+tab":
			m.formMove(-1)
			return m, nil
		case "enter":
			// Enter inside the note area inserts a newline; everywhere else
			// it submits.
			if m.formFocus != 2 {
				return m.submitForm()
			}
		}
	}

	var cmd tea.Cmd
	if m.formFocus == 2 {
		m.formNote, cmd = m.formNote.Update(msg)
	} else {
		m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	}
	return m, cmd
}

func (m *mainLoopModel) formMove(delta int) {
	if m.formFocus == 2 {
		m.formNote.Blur()
	} else {
		m.formInputs[m.formFocus].Blur()
	}

	fields := 3
	m.formFocus = (m.formFocus + delta + fields) % fields
	if m.editing && m.formFocus == 0 {
		m.formFocus = (m.formFocus + delta + fields) % fields
	}

	if m.formFocus == 2 {
		m.formNote.Focus()
	} else {
		m.formInputs[m.formFocus].Focus()
	}
}

func (m mainLoopModel) submitForm() (tea.Model, tea.Cmd) {
	if m.saving {
		return m, nil
	}

	name := strings.TrimSpace(m.formInputs[0].Value())
	secret := m.formInputs[1].Value()
	if name == "" {
		m.errMsg = "name is required"
		return m, nil
	}
	if secret == "" {
		m.errMsg = "secret value is required"
		return m, nil
	}

	var meta map[string]string
	if note := strings.TrimSpace(m.formNote.Value()); note != "" {
		meta = map[string]string{metaNoteKey: note}
	}

	m.errMsg = ""
	m.saving = true
	return m, m.cmdSave(name, []byte(secret), meta)
}

func (m *mainLoopModel) startRotate() {
	newPass := textinput.New()
	newPass.Placeholder = "new master password"
	newPass.CharLimit = 256
	newPass.Width = 40
	newPass.EchoMode = textinput.EchoPassword
	newPass.EchoCharacter = '*'
	newPass.Focus()

	repeat := textinput.New()
	repeat.Placeholder = "repeat new master password"
	repeat.CharLimit = 256
	repeat.Width = 40
	repeat.EchoMode = textinput.EchoPassword
	repeat.EchoCharacter = '*'

	m.rotateInputs = [2]textinput.Model{newPass, repeat}
	m.rotateFocus = 0
	m.rotating = false
	m.mode = modeRotate
	m.errMsg = ""
}

func (m mainLoopModel) updateRotate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch keyMsg.String() {
		case "esc":
			m.mode = modeList
			m.errMsg = ""
			return m, nil
		case "tab", "shift+tab":
			m.rotateInputs[m.rotateFocus].Blur()
			m.rotateFocus = (m.rotateFocus + 1) % len(m.rotateInputs)
			m.rotateInputs[m.rotateFocus].Focus()
			return m, nil
		case "enter":
			if m.rotating {
				return m, nil
			}

			newPass := m.rotateInputs[0].Value()
			if strings.TrimSpace(newPass) == "" {
				m.errMsg = "new master password is required"
				return m, nil
			}
			if newPass != m.rotateInputs[1].Value() {
				m.errMsg = "passwords do not match"
				return m, nil
			}

			m.errMsg = ""
			m.rotating = true
			return m, m.cmdRotate(newPass)
		}
	}

	var cmd tea.Cmd
	m.rotateInputs[m.rotateFocus], cmd = m.rotateInputs[m.rotateFocus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) cmdLoadEntries() tea.Cmd {
	cache := m.cache
	return func() tea.Msg {
		entries, err := cache.RetrieveAll()
		return entriesLoadedMsg{entries: entries, err: err}
	}
}

func (m mainLoopModel) cmdSync() tea.Cmd {
	ctx := m.ctx
	cache := m.cache
	return func() tea.Msg {
		return syncDoneMsg{err: cache.RetrieveCloudEntries(ctx)}
	}
}

func (m mainLoopModel) cmdSave(name string, data []byte, meta map[string]string) tea.Cmd {
	ctx := m.ctx
	cache := m.cache
	editing := m.editing
	return func() tea.Msg {
		var err error
		if editing {
			_, err = cache.Update(ctx, name, data, meta)
		} else {
			_, err = cache.Store(ctx, name, data, meta)
		}
		return entrySavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdDelete(name string) tea.Cmd {
	ctx := m.ctx
	cache := m.cache
	return func() tea.Msg {
		return entryDeletedMsg{err: cache.Delete(ctx, name)}
	}
}

func (m mainLoopModel) cmdRotate(newPassword string) tea.Cmd {
	ctx := m.ctx
	cache := m.cache
	rekey := m.rekey
	return func() tea.Msg {
		return rotateDoneMsg{err: cache.UpdateRecipients(ctx, rekey(newPassword))}
	}
}

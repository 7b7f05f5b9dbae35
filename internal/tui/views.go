package tui

import (
	"fmt"
	"strings"
)

func (m mainLoopModel) View() string {
	switch m.mode {
	case modeDetail:
		return m.viewDetail()
	case modeForm:
		return m.viewForm()
	case modeRotate:
		return m.viewRotate()
	case modeConfirmDelete:
		return m.viewConfirmDelete()
	default:
		return m.viewList()
	}
}

func (m mainLoopModel) viewList() string {
	title := "CLOUD VAULT"
	if m.syncing {
		title += "  " + m.spinner.View()
	}

	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.entries) == 0:
		b.WriteString("Vault is empty\n")
	default:
		for i, entry := range m.entries {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(cursor)
			b.WriteString(fitText(entry.Name, 48))
			b.WriteString("\n")
		}
	}

	m.appendStatus(&b)

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"enter: open │ n: new │ e: edit │ d: delete │ s: sync │ ctrl+p: change password │ l: lock │ q: quit")
}

func (m mainLoopModel) viewDetail() string {
	entry, ok := m.current()
	if !ok {
		return m.viewList()
	}

	secret := strings.Repeat("*", 8)
	if m.revealSecret {
		secret = string(entry.Data)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Name    │ %s\n", entry.Name))
	b.WriteString(fmt.Sprintf("Secret  │ %s\n", secret))
	if note, hasNote := entry.Meta[metaNoteKey]; hasNote {
		b.WriteString(fmt.Sprintf("Note    │ %s\n", fitText(note, 60)))
	}
	b.WriteString(fmt.Sprintf("Created │ %s\n", entry.CreatedAt.Local().Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("Updated │ %s\n", entry.UpdatedAt.Local().Format("2006-01-02 15:04")))

	m.appendStatus(&b)

	return renderPage("ENTRY", strings.TrimRight(b.String(), "\n"),
		"space: reveal │ c: copy │ e: edit │ d: delete │ esc: back")
}

func (m mainLoopModel) viewForm() string {
	title := "NEW ENTRY"
	if m.editing {
		title = "EDIT ENTRY"
	}

	var b strings.Builder
	b.WriteString("Name    │ [")
	b.WriteString(m.formInputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Secret  │ [")
	b.WriteString(m.formInputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Note    │\n")
	b.WriteString(m.formNote.View())
	b.WriteString("\n")

	if m.saving {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	m.appendStatus(&b)

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"tab: next field │ enter: save │ esc: cancel")
}

func (m mainLoopModel) viewRotate() string {
	var b strings.Builder
	b.WriteString("New password    │ [")
	b.WriteString(m.rotateInputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Repeat password │ [")
	b.WriteString(m.rotateInputs[1].View())
	b.WriteString("]\n")

	if m.rotating {
		b.WriteString("\n[Re-encrypting vault...]\n")
	} else {
		b.WriteString("\n[Change password]\n")
	}

	m.appendStatus(&b)

	return renderPage("CHANGE MASTER PASSWORD", strings.TrimRight(b.String(), "\n"),
		"tab: next field │ enter: confirm │ esc: cancel")
}

func (m mainLoopModel) viewConfirmDelete() string {
	entry, _ := m.current()

	data := fmt.Sprintf("Delete entry %q?", entry.Name)
	return renderPage("CONFIRM", data, "y: delete │ n/esc: cancel")
}

func (m mainLoopModel) appendStatus(b *strings.Builder) {
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}
}

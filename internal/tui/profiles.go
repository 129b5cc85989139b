// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/snap-desk/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type profilesModel struct {
	items   []models.SnapConfig
	idx     int
	loading bool
}

func (m profilesModel) current() (models.SnapConfig, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.SnapConfig{}, false
	}
	return m.items[m.idx], true
}

func (m profilesModel) View(selectedID, status string) string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading...")
	case len(m.items) == 0:
		b.WriteString("No profiles yet. Press n to add one.")
	default:
		b.WriteString(fmt.Sprintf("  %-24s │ %-16s │ %s\n", "Name", "Merchant ID", "Base URL"))
		for i, p := range m.items {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			mark := " "
			if p.ID == selectedID {
				mark = "*"
			}
			b.WriteString(fmt.Sprintf("%s%s%-24s │ %-16s │ %s\n", cursor, mark,
				fitText(p.Name, 24), fitText(p.MerchantID, 16), fitText(p.BaseURL, 40)))
		}
	}

	if status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(status))
	}

	return renderPage("PROFILES", strings.TrimRight(b.String(), "\n"),
		"enter: select │ n: new │ d: delete │ r: reload │ esc: back")
}

func (m appModel) updateProfiles(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.up):
		if m.profiles.idx > 0 {
			m.profiles.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.profiles.idx < len(m.profiles.items)-1 {
			m.profiles.idx++
		}
	case key.Matches(keyMsg, keys.reload):
		m.profiles.loading = true
		return m, m.cmdLoadProfiles()
	case key.Matches(keyMsg, keys.newItem):
		return m.open(screenProfileForm)
	case key.Matches(keyMsg, keys.enter):
		if p, ok := m.profiles.current(); ok {
			return m, m.cmdSelectProfile(p.ID)
		}
	case key.Matches(keyMsg, keys.delete):
		if p, ok := m.profiles.current(); ok {
			m.showConfirm = true
			m.confirm = confirmModel{name: p.Name}
			m.pendingDelete = p.ID
		}
	}

	return m, nil
}

// applyProfiles replaces the list and re-derives the selection from it.
func (m *appModel) applyProfiles(list models.ProfileList) {
	m.profiles.items = list.Snap
	if m.profiles.idx >= len(m.profiles.items) {
		m.profiles.idx = len(m.profiles.items) - 1
	}
	if m.profiles.idx < 0 {
		m.profiles.idx = 0
	}

	m.selected = nil
	for _, p := range list.Snap {
		if p.ID == list.SelectedID {
			m.selected = &p
			break
		}
	}
}

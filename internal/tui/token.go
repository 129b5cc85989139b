// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/snap-desk/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type tokenModel struct {
	value   string
	loading bool
}

func (m tokenModel) View(profile *models.SnapConfig, status string) string {
	var b strings.Builder
	if profile != nil {
		b.WriteString("Profile: ")
		b.WriteString(profile.Name)
		b.WriteString("\n\n")
	}

	switch {
	case m.loading:
		b.WriteString("Requesting token...")
	case m.value != "":
		b.WriteString("Access token:\n")
		b.WriteString(m.value)
	}

	if status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(status))
	}

	return renderPage("ACCESS TOKEN B2B", b.String(), "c: copy │ r: refresh │ esc: back │ v: about")
}

func (m appModel) updateToken(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.reload):
		if m.selected == nil || m.token.loading {
			return m, nil
		}
		m.token.loading = true
		return m, m.cmdAccessTokenB2B(m.selected.ID)
	case key.Matches(keyMsg, keys.copy):
		if m.token.value != "" {
			return m, m.cmdCopyToClipboard(m.token.value)
		}
	}

	return m, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/snap-desk/internal/app"
	"github.com/MKhiriev/snap-desk/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type menuItem struct {
	title        string
	target       screen
	needsProfile bool
}

type menuModel struct {
	items []menuItem
	idx   int
}

func newMenuModel() menuModel {
	return menuModel{
		items: []menuItem{
			{title: "Greet", target: screenGreet},
			{title: "Profiles", target: screenProfiles},
			{title: "Access token B2B", target: screenToken, needsProfile: true},
			{title: "Access token B2B2C", target: screenB2B2C, needsProfile: true},
			{title: "Generate QR MPM", target: screenQrForm, needsProfile: true},
		},
	}
}

func (m menuModel) View(selected *models.SnapConfig, status string) string {
	var b strings.Builder

	b.WriteString("Profile: ")
	if selected != nil {
		b.WriteString(selected.Name)
		b.WriteString(" (")
		b.WriteString(selected.MerchantID)
		b.WriteString(")")
	} else {
		b.WriteString("none")
	}
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %d  %s\n", cursor, i+1, item.title))
	}

	if status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(status))
	}

	return renderPage("SNAPDESK", strings.TrimRight(b.String(), "\n"), "enter: open │ ↑/↓: navigate │ v: about")
}

func (m appModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.menu.idx > 0 {
			m.menu.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.menu.idx < len(m.menu.items)-1 {
			m.menu.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		item := m.menu.items[m.menu.idx]
		if item.needsProfile && m.selected == nil {
			m.showErrorf(app.MsgNoProfileSelected)
			return m, nil
		}
		return m.open(item.target)
	}

	return m, nil
}

// open switches to target and starts whatever the screen needs on entry.
func (m appModel) open(target screen) (tea.Model, tea.Cmd) {
	m.currentScreen = target

	switch target {
	case screenGreet:
		m.greet = newGreetModel()
		return m, textinput.Blink
	case screenProfiles:
		m.profiles.loading = true
		return m, m.cmdLoadProfiles()
	case screenProfileForm:
		m.profileForm = newProfileFormModel()
		return m, textinput.Blink
	case screenToken:
		m.token = tokenModel{loading: true}
		return m, m.cmdAccessTokenB2B(m.selected.ID)
	case screenB2B2C:
		m.b2b2c = newB2B2CModel()
		return m, textinput.Blink
	case screenQrForm:
		m.qrForm = newQrFormModel()
		return m, textinput.Blink
	}

	return m, nil
}

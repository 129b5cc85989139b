// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/snap-desk/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// b2b2cModel exchanges an authorization code, or a refresh token when
// isAuthCode is off, for a customer access token.
type b2b2cModel struct {
	input      textinput.Model
	isAuthCode bool
	result     *models.AccessTokenB2B2CResponse
	submitting bool
}

func newB2B2CModel() b2b2cModel {
	input := textinput.New()
	input.Placeholder = "authorization code"
	input.Width = 50
	input.Focus()

	return b2b2cModel{input: input, isAuthCode: true}
}

func (m b2b2cModel) View(status string) string {
	var b strings.Builder

	grant := "Refresh token"
	if m.isAuthCode {
		grant = "Auth code    "
	}
	b.WriteString(grant)
	b.WriteString(" │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	switch {
	case m.submitting:
		b.WriteString("\n[Requesting...]\n")
	case m.result != nil:
		b.WriteString("\nAccess token:  ")
		b.WriteString(m.result.AccessToken)
		b.WriteString("\nRefresh token: ")
		b.WriteString(valueOrNA(m.result.RefreshToken))
		b.WriteString("\n")
	}

	if status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(status))
	}

	return renderPage("ACCESS TOKEN B2B2C", strings.TrimRight(b.String(), "\n"),
		"enter: request │ ctrl+t: code/refresh │ ctrl+s: copy token │ esc: back")
}

func (m appModel) updateB2B2C(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenMenu
			return m, nil
		case key.Matches(keyMsg, keys.toggle):
			m.b2b2c.isAuthCode = !m.b2b2c.isAuthCode
			if m.b2b2c.isAuthCode {
				m.b2b2c.input.Placeholder = "authorization code"
			} else {
				m.b2b2c.input.Placeholder = "refresh token"
			}
			return m, nil
		case key.Matches(keyMsg, keys.submit):
			if m.b2b2c.result != nil {
				return m, m.cmdCopyToClipboard(m.b2b2c.result.AccessToken)
			}
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.b2b2c.submitting || m.selected == nil {
				return m, nil
			}
			m.b2b2c.submitting = true
			return m, m.cmdAccessTokenB2B2C(m.selected.ID, strings.TrimSpace(m.b2b2c.input.Value()), m.b2b2c.isAuthCode)
		}
	}

	var cmd tea.Cmd
	m.b2b2c.input, cmd = m.b2b2c.input.Update(msg)
	return m, cmd
}

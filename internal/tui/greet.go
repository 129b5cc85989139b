// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type greetModel struct {
	input      textinput.Model
	message    string
	submitting bool
}

func newGreetModel() greetModel {
	input := textinput.New()
	input.Placeholder = "name"
	input.CharLimit = 64
	input.Width = 40
	input.Focus()

	return greetModel{input: input}
}

func (m greetModel) View() string {
	var b strings.Builder
	b.WriteString("Name │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Greeting...]\n")
	} else if m.message != "" {
		b.WriteString("\n")
		b.WriteString(m.message)
		b.WriteString("\n")
	}

	return renderPage("GREET", strings.TrimRight(b.String(), "\n"), "enter: greet │ esc: back")
}

func (m appModel) updateGreet(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenMenu
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.greet.submitting {
				return m, nil
			}
			m.greet.submitting = true
			return m, m.cmdGreet(m.greet.input.Value())
		}
	}

	var cmd tea.Cmd
	m.greet.input, cmd = m.greet.input.Update(msg)
	return m, cmd
}

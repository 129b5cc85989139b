// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/snap-desk/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	qrFieldReferenceNo = iota
	qrFieldCallbackURL
	qrFieldAmount
)

type qrFormModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newQrFormModel() qrFormModel {
	inputs := make([]textinput.Model, 3)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[qrFieldReferenceNo].Placeholder = "generated when empty"
	inputs[qrFieldCallbackURL].Placeholder = "https://merchant.example.com/notify"
	inputs[qrFieldAmount].Placeholder = "0 for an open amount"
	inputs[qrFieldReferenceNo].Focus()

	return qrFormModel{inputs: inputs}
}

func (m *qrFormModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *qrFormModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

// toRequest parses the form. An empty amount means an open-amount QR.
func (m qrFormModel) toRequest(profileID string) (models.QrRequest, bool) {
	req := models.QrRequest{
		ProfileID:   profileID,
		ReferenceNo: strings.TrimSpace(m.inputs[qrFieldReferenceNo].Value()),
		CallbackURL: strings.TrimSpace(m.inputs[qrFieldCallbackURL].Value()),
	}

	raw := strings.TrimSpace(m.inputs[qrFieldAmount].Value())
	if raw == "" {
		return req, true
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil || amount < 0 {
		return req, false
	}
	req.Amount = amount
	return req, true
}

func (m qrFormModel) View() string {
	var b strings.Builder
	b.WriteString("Reference no │ [")
	b.WriteString(m.inputs[qrFieldReferenceNo].View())
	b.WriteString("]\n")
	b.WriteString("Callback URL │ [")
	b.WriteString(m.inputs[qrFieldCallbackURL].View())
	b.WriteString("]\n")
	b.WriteString("Amount (IDR) │ [")
	b.WriteString(m.inputs[qrFieldAmount].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Generating...]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("GENERATE QR MPM", strings.TrimRight(b.String(), "\n"),
		"tab: next field │ enter: generate │ esc: back")
}

func (m appModel) updateQrForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenMenu
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.qrForm.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.qrForm.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.qrForm.submitting || m.selected == nil {
				return m, nil
			}
			req, ok := m.qrForm.toRequest(m.selected.ID)
			if !ok {
				m.qrForm.errMsg = "amount must be a non-negative number"
				return m, nil
			}
			m.qrForm.errMsg = ""
			m.qrForm.submitting = true
			return m, m.cmdGenerateQR(req)
		}
	}

	var cmd tea.Cmd
	m.qrForm.inputs[m.qrForm.focus], cmd = m.qrForm.inputs[m.qrForm.focus].Update(msg)
	return m, cmd
}

type qrResultModel struct {
	resp models.QrMPMGenerateResponse
}

func (m qrResultModel) View(status string) string {
	var b strings.Builder
	b.WriteString("Response code:  ")
	b.WriteString(valueOrNA(m.resp.ResponseCode))
	b.WriteString("\nMessage:        ")
	b.WriteString(valueOrNA(m.resp.ResponseMessage))
	b.WriteString("\nReference no:   ")
	b.WriteString(valueOrNA(m.resp.PartnerReferenceNo))
	b.WriteString("\n\nQR content:\n")
	b.WriteString(m.resp.QrContent)

	if status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(status))
	}

	return renderPage("QR MPM", b.String(), "c: copy QR content │ esc: back │ v: about")
}

func (m appModel) updateQrResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.copy):
		if m.qrResult.resp.QrContent != "" {
			return m, m.cmdCopyToClipboard(m.qrResult.resp.QrContent)
		}
	}

	return m, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/snap-desk/internal/app"
	"github.com/MKhiriev/snap-desk/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenMenu screen = iota
	screenGreet
	screenProfiles
	screenProfileForm
	screenToken
	screenB2B2C
	screenQrForm
	screenQrResult
)

// appModel is the root model:
// 1) keeps the active screen and the selected profile
// 2) handles ctrl+c, the error overlay, the delete confirmation and the
// about window
// 3) turns command results into screen updates
// 4) delegates key input to the active screen
type appModel struct {
	ctx       context.Context
	invoker   Invoker
	copy      func(string) error
	buildInfo models.AppBuildInfo
	info      *models.AppInfo

	currentScreen screen
	menu          menuModel
	greet         greetModel
	profiles      profilesModel
	profileForm   profileFormModel
	token         tokenModel
	b2b2c         b2b2cModel
	qrForm        qrFormModel
	qrResult      qrResultModel

	selected      *models.SnapConfig
	status        string
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
	showBuildInfo bool
}

func newAppModel(ctx context.Context, invoker Invoker, buildInfo models.AppBuildInfo, copyFn func(string) error) appModel {
	return appModel{
		ctx:           ctx,
		invoker:       invoker,
		copy:          copyFn,
		buildInfo:     buildInfo,
		currentScreen: screenMenu,
		menu:          newMenuModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.cmdAppInfo(), m.cmdLoadProfiles())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				id := m.pendingDelete
				m.pendingDelete = ""
				if id == "" {
					return m, nil
				}
				return m, m.cmdRemoveProfile(id)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if key.Matches(msg, keys.buildInfo) && m.acceptsHotkeys() {
			m.showBuildInfo = true
			return m, nil
		}
	case appInfoMsg:
		if msg.err == nil {
			m.info = &msg.info
		}
		return m, nil
	case greetedMsg:
		m.greet.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.greet.message = msg.message
		return m, nil
	case profilesLoadedMsg:
		m.profiles.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.applyProfiles(msg.list)
		return m, nil
	case profileSavedMsg:
		m.profileForm.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.status = "profile " + msg.profile.Name + " added"
		m.currentScreen = screenProfiles
		m.profiles.loading = true
		return m, tea.Batch(m.cmdLoadProfiles(), cmdClearStatus())
	case profileDeletedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.applyProfiles(msg.list)
		return m, nil
	case profileSelectedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.selected = &msg.profile
		m.status = "profile " + msg.profile.Name + " selected"
		return m, cmdClearStatus()
	case tokenMsg:
		m.token.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.token.value = msg.token
		return m, nil
	case b2b2cMsg:
		m.b2b2c.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.b2b2c.result = &msg.resp
		return m, nil
	case qrGeneratedMsg:
		m.qrForm.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.qrResult = qrResultModel{resp: msg.resp}
		m.currentScreen = screenQrResult
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.status = app.MsgCopiedToClipboard
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenMenu:
		return m.updateMenu(msg)
	case screenGreet:
		return m.updateGreet(msg)
	case screenProfiles:
		return m.updateProfiles(msg)
	case screenProfileForm:
		return m.updateProfileForm(msg)
	case screenToken:
		return m.updateToken(msg)
	case screenB2B2C:
		return m.updateB2B2C(msg)
	case screenQrForm:
		return m.updateQrForm(msg)
	case screenQrResult:
		return m.updateQrResult(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo, m.info))
	}

	var body string
	switch m.currentScreen {
	case screenMenu:
		body = m.menu.View(m.selected, m.status)
	case screenGreet:
		body = m.greet.View()
	case screenProfiles:
		selectedID := ""
		if m.selected != nil {
			selectedID = m.selected.ID
		}
		body = m.profiles.View(selectedID, m.status)
	case screenProfileForm:
		body = m.profileForm.View()
	case screenToken:
		body = m.token.View(m.selected, m.status)
	case screenB2B2C:
		body = m.b2b2c.View(m.status)
	case screenQrForm:
		body = m.qrForm.View()
	case screenQrResult:
		body = m.qrResult.View(m.status)
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

// acceptsHotkeys reports whether single-letter hotkeys are free, i.e. the
// active screen has no text input.
func (m appModel) acceptsHotkeys() bool {
	switch m.currentScreen {
	case screenMenu, screenProfiles, screenToken, screenQrResult:
		return true
	default:
		return false
	}
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

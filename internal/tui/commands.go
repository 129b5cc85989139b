// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"time"

	"github.com/MKhiriev/snap-desk/internal/handler"
	"github.com/MKhiriev/snap-desk/models"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 2 * time.Second

func (m appModel) cmdAppInfo() tea.Cmd {
	ctx, invoker := m.ctx, m.invoker
	return func() tea.Msg {
		var info models.AppInfo
		err := invoker.Invoke(ctx, handler.CommandAppInfo, nil, &info)
		return appInfoMsg{info: info, err: err}
	}
}

func (m appModel) cmdGreet(name string) tea.Cmd {
	ctx, invoker := m.ctx, m.invoker
	return func() tea.Msg {
		var message string
		err := invoker.Invoke(ctx, handler.CommandGreet, handler.GreetArgs{Name: name}, &message)
		return greetedMsg{message: message, err: err}
	}
}

func (m appModel) cmdLoadProfiles() tea.Cmd {
	ctx, invoker := m.ctx, m.invoker
	return func() tea.Msg {
		var list models.ProfileList
		err := invoker.Invoke(ctx, handler.CommandLoadConfig, nil, &list)
		return profilesLoadedMsg{list: list, err: err}
	}
}

func (m appModel) cmdAddProfile(profile models.SnapConfig) tea.Cmd {
	ctx, invoker := m.ctx, m.invoker
	return func() tea.Msg {
		var saved models.SnapConfig
		err := invoker.Invoke(ctx, handler.CommandAddSnapConfig, profile, &saved)
		return profileSavedMsg{profile: saved, err: err}
	}
}

func (m appModel) cmdRemoveProfile(id string) tea.Cmd {
	ctx, invoker := m.ctx, m.invoker
	return func() tea.Msg {
		var list models.ProfileList
		err := invoker.Invoke(ctx, handler.CommandRemoveSnapConfig, handler.IDArgs{ID: id}, &list)
		return profileDeletedMsg{list: list, err: err}
	}
}

func (m appModel) cmdSelectProfile(id string) tea.Cmd {
	ctx, invoker := m.ctx, m.invoker
	return func() tea.Msg {
		var profile models.SnapConfig
		err := invoker.Invoke(ctx, handler.CommandSelectSnapConfig, handler.IDArgs{ID: id}, &profile)
		return profileSelectedMsg{profile: profile, err: err}
	}
}

func (m appModel) cmdAccessTokenB2B(profileID string) tea.Cmd {
	ctx, invoker := m.ctx, m.invoker
	return func() tea.Msg {
		var token string
		err := invoker.Invoke(ctx, handler.CommandAccessTokenB2B, handler.ProfileArgs{ProfileID: profileID}, &token)
		return tokenMsg{token: token, err: err}
	}
}

func (m appModel) cmdAccessTokenB2B2C(profileID, data string, isAuthCode bool) tea.Cmd {
	ctx, invoker := m.ctx, m.invoker
	return func() tea.Msg {
		var resp models.AccessTokenB2B2CResponse
		err := invoker.Invoke(ctx, handler.CommandAccessTokenB2B2C, handler.B2B2CArgs{
			ProfileID:  profileID,
			Data:       data,
			IsAuthCode: isAuthCode,
		}, &resp)
		return b2b2cMsg{resp: resp, err: err}
	}
}

func (m appModel) cmdGenerateQR(req models.QrRequest) tea.Cmd {
	ctx, invoker := m.ctx, m.invoker
	return func() tea.Msg {
		var resp models.QrMPMGenerateResponse
		err := invoker.Invoke(ctx, handler.CommandQrMPMGenerate, req, &resp)
		return qrGeneratedMsg{resp: resp, err: err}
	}
}

func (m appModel) cmdCopyToClipboard(text string) tea.Cmd {
	copyFn := m.copy
	return func() tea.Msg {
		if err := copyFn(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

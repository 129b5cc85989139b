// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/snap-desk/models"

type appInfoMsg struct {
	info models.AppInfo
	err  error
}

type greetedMsg struct {
	message string
	err     error
}

type profilesLoadedMsg struct {
	list models.ProfileList
	err  error
}

type profileSavedMsg struct {
	profile models.SnapConfig
	err     error
}

type profileDeletedMsg struct {
	list models.ProfileList
	err  error
}

type profileSelectedMsg struct {
	profile models.SnapConfig
	err     error
}

type tokenMsg struct {
	token string
	err   error
}

type b2b2cMsg struct {
	resp models.AccessTokenB2B2CResponse
	err  error
}

type qrGeneratedMsg struct {
	resp models.QrMPMGenerateResponse
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/snap-desk/models"
)

// renderBuildInfoWindow prefers the app_info result and falls back to the
// linker-provided build info while it is not loaded.
func renderBuildInfoWindow(build models.AppBuildInfo, info *models.AppInfo) string {
	version, date, commit := build.BuildVersion(), build.BuildDate(), build.BuildCommit()
	identifier, configDir := "", ""
	if info != nil {
		version, date, commit = info.Version, info.Date, info.Commit
		identifier, configDir = info.Identifier, info.ConfigDir
	}

	var b strings.Builder

	b.WriteString("Application: SnapDesk\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(version))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(valueOrNA(date))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(commit))
	b.WriteString("\n")
	b.WriteString("Identifier: ")
	b.WriteString(valueOrNA(identifier))
	b.WriteString("\n")
	b.WriteString("Config dir: ")
	b.WriteString(valueOrNA(configDir))

	return renderPage("ABOUT", b.String(), "esc: back")
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type confirmModel struct {
	name string
}

func (m confirmModel) View() string {
	return overlayBoxStyle.Render("Delete profile \"" + m.name + "\"?\n\ny yes  n no")
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/snap-desk/internal/logger"
	"github.com/MKhiriev/snap-desk/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// Invoker runs a named command. args is JSON-encoded; the result is decoded
// into out when out is non-nil.
type Invoker interface {
	Invoke(ctx context.Context, name string, args any, out any) error
}

type TUI struct {
	invoker   Invoker
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(invoker Invoker, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		invoker:   invoker,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run shows the UI until the user quits with ctrl+c or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.invoker, t.buildInfo, clipboard.WriteAll)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
		t.logger.Debug().Err(err).Msg("ui stopped by context")
		return ctx.Err()
	}
	if err != nil {
		return err
	}

	t.logger.Info().Msg("ui closed by user")
	return nil
}

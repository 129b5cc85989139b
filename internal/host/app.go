// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package host

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/snap-desk/internal/appdir"
	"github.com/MKhiriev/snap-desk/internal/ipc"
	"github.com/MKhiriev/snap-desk/internal/logger"
	"github.com/MKhiriev/snap-desk/internal/workers"
)

// App is a built application ready to [App.Run].
type App struct {
	dispatcher *ipc.Dispatcher
	hooks      []SetupHook
	plugins    []Plugin
	workers    *workers.Workers

	mu        sync.RWMutex
	configDir string

	logger *logger.Logger
}

// ConfigDir returns the provisioned configuration directory, or "" before
// provisioning.
func (a *App) ConfigDir() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.configDir
}

// SetConfigDir records the provisioned configuration directory.
func (a *App) SetConfigDir(dir string) {
	a.mu.Lock()
	a.configDir = dir
	a.mu.Unlock()
}

func (a *App) Dispatcher() *ipc.Dispatcher {
	return a.dispatcher
}

// AddWorker schedules a background worker. Setup hooks use it for workers
// that depend on the config directory.
func (a *App) AddWorker(w workers.Worker) {
	a.workers.Add(w)
}

// Run performs startup and blocks until ui returns. A worker failure cancels
// the UI's context; the returned error joins the UI and worker errors.
func (a *App) Run(ctx context.Context, ui Runner) error {
	if ui == nil {
		return ErrNoUI
	}

	for i, hook := range a.hooks {
		if err := hook(ctx, a); err != nil {
			a.logger.Debug().Int("hook", i).Err(err).Msg("setup hook failed")
			return fmt.Errorf("%w: %w", ErrSetupFailed, err)
		}
	}

	for _, p := range a.plugins {
		if err := p.Init(a.ConfigDir(), a.dispatcher); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrPluginInit, p.Name(), err)
		}
		a.logger.Debug().Str("plugin", p.Name()).Msg("plugin initialised")
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	workersDone := make(chan error, 1)
	go func() {
		err := a.workers.Run(runCtx)
		if err != nil {
			a.logger.Err(err).Msg("background worker failed")
			cancel()
		}
		workersDone <- err
	}()

	uiErr := ui.Run(runCtx)
	cancel()
	workerErr := <-workersDone

	if errors.Is(uiErr, context.Canceled) {
		uiErr = nil
	}
	return errors.Join(uiErr, workerErr)
}

// ProvisionConfigDir returns the setup hook that provisions the application
// configuration directory and records it on the app.
func ProvisionConfigDir(p *appdir.Provisioner) SetupHook {
	return func(ctx context.Context, app *App) error {
		dir, err := p.Provision()
		if err != nil {
			return err
		}
		app.SetConfigDir(dir)
		return nil
	}
}

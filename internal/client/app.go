// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/snap-desk/internal/adapter"
	"github.com/MKhiriev/snap-desk/internal/appdir"
	"github.com/MKhiriev/snap-desk/internal/config"
	"github.com/MKhiriev/snap-desk/internal/crypto"
	"github.com/MKhiriev/snap-desk/internal/handler"
	"github.com/MKhiriev/snap-desk/internal/host"
	"github.com/MKhiriev/snap-desk/internal/ipc"
	"github.com/MKhiriev/snap-desk/internal/logger"
	"github.com/MKhiriev/snap-desk/internal/plugins/fs"
	"github.com/MKhiriev/snap-desk/internal/plugins/opener"
	"github.com/MKhiriev/snap-desk/internal/service"
	"github.com/MKhiriev/snap-desk/internal/store"
	"github.com/MKhiriev/snap-desk/internal/tui"
	"github.com/MKhiriev/snap-desk/models"
	"github.com/spf13/afero"
)

// UIFactory builds the foreground UI on top of an invoker bound to the
// application's dispatcher.
type UIFactory func(invoker tui.Invoker) host.Runner

type App struct {
	host *host.App
	ui   host.Runner

	logger *logger.Logger
}

// NewApp builds the desktop application with the terminal UI.
func NewApp(cfg *config.ClientConfig, build models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	return newApp(cfg, build, logger, appdir.NewProvisioner(
		appdir.NewXDGResolver(cfg.App.Identifier, cfg.App.ConfigDir),
		appdir.WithLogger(logger),
	), func(invoker tui.Invoker) host.Runner {
		return tui.New(invoker, build, logger)
	})
}

func newApp(cfg *config.ClientConfig, build models.AppBuildInfo, logger *logger.Logger,
	provisioner *appdir.Provisioner, newUI UIFactory) (*App, error) {
	hostApp, err := host.NewBuilder(logger).
		Setup(host.ProvisionConfigDir(provisioner)).
		Setup(setupServices(cfg, build, logger)).
		Plugin(fs.New(afero.NewOsFs(), logger)).
		Plugin(opener.New(logger)).
		Invoke(handler.CommandGreet, handler.Greet(service.NewGreeterService())).
		Build()
	if err != nil {
		return nil, fmt.Errorf("build host application: %w", err)
	}

	return &App{
		host:   hostApp,
		ui:     newUI(ipc.NewLocalInvoker(hostApp.Dispatcher())),
		logger: logger,
	}, nil
}

// Run blocks until the UI exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	return a.host.Run(ctx, a.ui)
}

// setupServices builds everything that lives in the provisioned config
// directory and registers its commands and workers.
func setupServices(cfg *config.ClientConfig, build models.AppBuildInfo, logger *logger.Logger) host.SetupHook {
	return func(ctx context.Context, app *host.App) error {
		dir := app.ConfigDir()

		repo := store.NewFileProfileRepository(dir, logger)
		snapAdapter := adapter.NewHTTPSnapAdapter(cfg.Adapter, crypto.NewSigner(), logger)

		services, err := service.NewServices(cfg, build, repo, snapAdapter, dir, logger)
		if err != nil {
			return fmt.Errorf("create services: %w", err)
		}
		if err = handler.NewHandler(services, logger).Register(app.Dispatcher()); err != nil {
			return fmt.Errorf("register commands: %w", err)
		}

		app.AddWorker(store.NewWatcher(filepath.Join(dir, store.ConfigFileName), store.DefaultDebounce, func() {
			if _, err := services.ProfileService.Refresh(ctx); err != nil {
				logger.Err(err).Msg("reloading profiles after external change")
				return
			}
			logger.Info().Msg("profiles reloaded after external change")
		}, logger))

		if cfg.IPC.Address != "" {
			app.AddWorker(ipc.NewServer(cfg.IPC.Address, app.Dispatcher(), logger))
		}

		return nil
	}
}

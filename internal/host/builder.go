// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package host

import (
	"context"
	"errors"

	"github.com/MKhiriev/snap-desk/internal/ipc"
	"github.com/MKhiriev/snap-desk/internal/logger"
	"github.com/MKhiriev/snap-desk/internal/workers"
)

// SetupHook runs once at startup, before plugins and the UI.
type SetupHook func(ctx context.Context, app *App) error

// Plugin contributes commands once the config directory is known.
type Plugin interface {
	Name() string
	Init(configDir string, dispatcher *ipc.Dispatcher) error
}

// Runner is the foreground UI. Run returns when the user quits or ctx is
// cancelled.
type Runner interface {
	Run(ctx context.Context) error
}

type command struct {
	name    string
	handler ipc.Handler
}

// Builder assembles an [App].
type Builder struct {
	hooks    []SetupHook
	plugins  []Plugin
	commands []command
	workers  []workers.Worker

	logger *logger.Logger
}

func NewBuilder(logger *logger.Logger) *Builder {
	return &Builder{logger: logger}
}

func (b *Builder) Setup(hook SetupHook) *Builder {
	b.hooks = append(b.hooks, hook)
	return b
}

func (b *Builder) Plugin(p Plugin) *Builder {
	b.plugins = append(b.plugins, p)
	return b
}

// Invoke registers a command available from the start.
func (b *Builder) Invoke(name string, handler ipc.Handler) *Builder {
	b.commands = append(b.commands, command{name: name, handler: handler})
	return b
}

func (b *Builder) Worker(w workers.Worker) *Builder {
	b.workers = append(b.workers, w)
	return b
}

// Build registers the builder's commands on a fresh dispatcher. Duplicate
// command names are reported together.
func (b *Builder) Build() (*App, error) {
	dispatcher := ipc.NewDispatcher(b.logger)

	var errs []error
	for _, c := range b.commands {
		errs = append(errs, dispatcher.Register(c.name, c.handler))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return &App{
		dispatcher: dispatcher,
		hooks:      b.hooks,
		plugins:    b.plugins,
		workers:    workers.NewWorkers(b.workers...),
		logger:     b.logger,
	}, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package opener opens URLs with the platform's default handler.
package opener

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/MKhiriev/snap-desk/internal/ipc"
	"github.com/MKhiriev/snap-desk/internal/logger"
)

const CommandOpenURL = "plugin:opener|open_url"

var ErrUnsupportedScheme = errors.New("only http, https and mailto URLs can be opened")

var allowedSchemes = map[string]bool{"http": true, "https": true, "mailto": true}

// URLArgs is the argument of [CommandOpenURL].
type URLArgs struct {
	URL string `json:"url"`
}

// Launcher starts an external program without waiting for it to finish.
type Launcher func(name string, args ...string) error

type Plugin struct {
	goos   string
	launch Launcher

	logger *logger.Logger
}

// New returns the opener plugin for the current OS.
func New(logger *logger.Logger) *Plugin {
	return &Plugin{goos: runtime.GOOS, launch: startDetached, logger: logger}
}

func (p *Plugin) Name() string {
	return "opener"
}

func (p *Plugin) Init(configDir string, dispatcher *ipc.Dispatcher) error {
	return dispatcher.Register(CommandOpenURL, ipc.Typed(p.openURL))
}

func (p *Plugin) openURL(ctx context.Context, args URLArgs) (struct{}, error) {
	u, err := url.Parse(args.URL)
	if err != nil {
		return struct{}{}, fmt.Errorf("%w: %v", ipc.ErrInvalidArgs, err)
	}
	if !allowedSchemes[u.Scheme] {
		return struct{}{}, fmt.Errorf("%w: %w", ipc.ErrInvalidArgs, ErrUnsupportedScheme)
	}

	name, cmdArgs := openerCommand(p.goos, u.String())
	p.logger.Debug().Str("url", u.Redacted()).Str("opener", name).Msg("opening url")

	if err = p.launch(name, cmdArgs...); err != nil {
		return struct{}{}, fmt.Errorf("open %s: %w", u.Redacted(), err)
	}
	return struct{}{}, nil
}

func openerCommand(goos, target string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{target}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}
	default:
		return "xdg-open", []string{target}
	}
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

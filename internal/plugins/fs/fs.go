// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fs exposes text-file commands confined to the application
// configuration directory.
package fs

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/snap-desk/internal/ipc"
	"github.com/MKhiriev/snap-desk/internal/logger"
	"github.com/spf13/afero"
)

// Command names.
const (
	CommandExists        = "plugin:fs|exists"
	CommandReadTextFile  = "plugin:fs|read_text_file"
	CommandWriteTextFile = "plugin:fs|write_text_file"
)

const fileMode = 0o600

// ErrOutsideBaseDir is returned for paths that escape the config directory.
var ErrOutsideBaseDir = errors.New("path is outside the app config directory")

// PathArgs addresses a file relative to the config directory.
type PathArgs struct {
	Path string `json:"path"`
}

// WriteArgs is the argument of [CommandWriteTextFile].
type WriteArgs struct {
	Path     string `json:"path"`
	Contents string `json:"contents"`
}

type Plugin struct {
	base afero.Fs
	fs   afero.Fs

	logger *logger.Logger
}

// New returns the fs plugin over the OS filesystem. base replaces it when
// non-nil.
func New(base afero.Fs, logger *logger.Logger) *Plugin {
	if base == nil {
		base = afero.NewOsFs()
	}
	return &Plugin{base: base, logger: logger}
}

func (p *Plugin) Name() string {
	return "fs"
}

// Init confines the plugin to configDir and registers its commands.
func (p *Plugin) Init(configDir string, dispatcher *ipc.Dispatcher) error {
	p.fs = afero.NewBasePathFs(p.base, configDir)

	return errors.Join(
		dispatcher.Register(CommandExists, ipc.Typed(p.exists)),
		dispatcher.Register(CommandReadTextFile, ipc.Typed(p.readTextFile)),
		dispatcher.Register(CommandWriteTextFile, ipc.Typed(p.writeTextFile)),
	)
}

func (p *Plugin) exists(ctx context.Context, args PathArgs) (bool, error) {
	path, err := cleanPath(args.Path)
	if err != nil {
		return false, err
	}
	return afero.Exists(p.fs, path)
}

func (p *Plugin) readTextFile(ctx context.Context, args PathArgs) (string, error) {
	path, err := cleanPath(args.Path)
	if err != nil {
		return "", err
	}

	data, err := afero.ReadFile(p.fs, path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args.Path, err)
	}
	return string(data), nil
}

func (p *Plugin) writeTextFile(ctx context.Context, args WriteArgs) (struct{}, error) {
	path, err := cleanPath(args.Path)
	if err != nil {
		return struct{}{}, err
	}

	if err = afero.WriteFile(p.fs, path, []byte(args.Contents), fileMode); err != nil {
		return struct{}{}, fmt.Errorf("write %s: %w", args.Path, err)
	}

	p.logger.Debug().Str("path", path).Int("size", len(args.Contents)).Msg("text file written")
	return struct{}{}, nil
}

// cleanPath rejects empty, absolute and escaping paths before they reach the
// base-path filesystem.
func cleanPath(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("%w: empty path", ipc.ErrInvalidArgs)
	}
	if filepath.IsAbs(raw) {
		return "", fmt.Errorf("%w: %w", ipc.ErrInvalidArgs, ErrOutsideBaseDir)
	}

	clean := filepath.Clean(raw)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %w", ipc.ErrInvalidArgs, ErrOutsideBaseDir)
	}
	return clean, nil
}

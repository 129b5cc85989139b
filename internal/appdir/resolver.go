// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package appdir

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Resolver yields the absolute path of the application configuration
// directory.
type Resolver interface {
	ConfigDir() (string, error)
}

// ResolverFunc adapts a function to [Resolver].
type ResolverFunc func() (string, error)

// ConfigDir calls f.
func (f ResolverFunc) ConfigDir() (string, error) {
	return f()
}

// XDGResolver resolves <config home>/<Identifier>, where config home follows
// the platform convention: $XDG_CONFIG_HOME or ~/.config on Linux,
// ~/Library/Application Support on macOS and %LOCALAPPDATA% on Windows.
// A non-empty Override replaces the whole result.
type XDGResolver struct {
	Identifier string
	Override   string
}

// NewXDGResolver returns a resolver for identifier. override may be empty.
func NewXDGResolver(identifier, override string) *XDGResolver {
	return &XDGResolver{Identifier: identifier, Override: override}
}

func (r *XDGResolver) ConfigDir() (string, error) {
	if r.Override != "" {
		abs, err := filepath.Abs(r.Override)
		if err != nil {
			return "", fmt.Errorf("resolving config dir override: %w", err)
		}
		return abs, nil
	}

	if strings.TrimSpace(r.Identifier) == "" {
		return "", ErrEmptyIdentifier
	}

	home := xdg.ConfigHome
	if home == "" {
		return "", ErrNoConfigHome
	}

	return filepath.Join(home, r.Identifier), nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package appdir

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/MKhiriev/snap-desk/internal/logger"
	"github.com/spf13/afero"
)

const dirPerm os.FileMode = 0o755

// Provisioner ensures the application configuration directory exists.
type Provisioner struct {
	fs       afero.Fs
	resolver Resolver
	out      io.Writer

	logger *logger.Logger
}

// Option customises a [Provisioner].
type Option func(*Provisioner)

// WithFs replaces the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(p *Provisioner) {
		p.fs = fs
	}
}

// WithOutput replaces os.Stdout as the diagnostic stream receiving the
// resolved path.
func WithOutput(w io.Writer) Option {
	return func(p *Provisioner) {
		p.out = w
	}
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(l *logger.Logger) Option {
	return func(p *Provisioner) {
		p.logger = l
	}
}

// NewProvisioner returns a provisioner backed by the OS filesystem that
// writes diagnostics to os.Stdout.
func NewProvisioner(resolver Resolver, opts ...Option) *Provisioner {
	p := &Provisioner{
		fs:       afero.NewOsFs(),
		resolver: resolver,
		out:      os.Stdout,
		logger:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Provision resolves the configuration directory, reports it on the
// diagnostic stream and creates it when missing. The parent directory must
// already exist. It returns the resolved path.
//
// Resolution failures return *PathResolutionError before any filesystem
// access. Creation failures return *DirectoryCreationError.
func (p *Provisioner) Provision() (string, error) {
	path, err := p.resolver.ConfigDir()
	if err != nil {
		return "", &PathResolutionError{Message: err.Error()}
	}

	fmt.Fprintf(p.out, "config dir: %s\n", path)
	p.logger.Info().Str("path", path).Msg("config dir resolved")

	// Stat errors other than "not exist" count as absent; Mkdir then decides.
	exists, _ := afero.Exists(p.fs, path)
	if exists {
		return path, nil
	}

	if err = p.fs.Mkdir(path, dirPerm); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return path, nil
		}
		p.logger.Debug().Err(err).Str("path", path).Msg("mkdir config dir")
		return "", &DirectoryCreationError{}
	}

	p.logger.Info().Str("path", path).Msg("config dir created")
	return path, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists SNAP merchant profiles in config.json inside the
// application configuration directory.
package store

import (
	"context"

	"github.com/MKhiriev/snap-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ConfigFileName is the profile file inside the app config directory.
const ConfigFileName = "config.json"

// ProfileRepository reads and writes the profile list.
type ProfileRepository interface {
	// Load returns the stored configuration. A missing file yields an empty
	// configuration; an empty file yields [ErrConfigEmpty].
	Load(ctx context.Context) (models.Config, error)

	// Save replaces the file atomically with cfg encoded as two-space
	// indented JSON.
	Save(ctx context.Context, cfg models.Config) error

	// Add appends profile. Returns [ErrProfileExists] if the id is taken.
	Add(ctx context.Context, profile models.SnapConfig) error

	// Remove deletes the profile with id. Returns [ErrProfileNotFound] if
	// there is none.
	Remove(ctx context.Context, id string) error

	// Get returns the profile with id or [ErrProfileNotFound].
	Get(ctx context.Context, id string) (models.SnapConfig, error)

	// Path returns the absolute location of the backing file.
	Path() string
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/MKhiriev/snap-desk/internal/logger"
	"github.com/MKhiriev/snap-desk/models"
	"github.com/google/renameio/v2"
)

const configFileMode = 0o600

type fileProfileRepository struct {
	path string

	// serialises read-modify-write cycles of Add and Remove
	mu sync.Mutex

	logger *logger.Logger
}

// NewFileProfileRepository returns a [ProfileRepository] backed by
// dir/config.json. The directory must already exist; it is provisioned at
// startup.
func NewFileProfileRepository(dir string, logger *logger.Logger) ProfileRepository {
	return &fileProfileRepository{
		path:   filepath.Join(dir, ConfigFileName),
		logger: logger,
	}
}

func (r *fileProfileRepository) Path() string {
	return r.path
}

func (r *fileProfileRepository) Load(ctx context.Context) (models.Config, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.Config{Snap: []models.SnapConfig{}}, nil
		}
		return models.Config{}, fmt.Errorf("read config file: %w", err)
	}
	if len(data) == 0 {
		return models.Config{}, ErrConfigEmpty
	}

	var cfg models.Config
	if err = json.Unmarshal(data, &cfg); err != nil {
		return models.Config{}, fmt.Errorf("decode config file: %w", err)
	}
	if cfg.Snap == nil {
		cfg.Snap = []models.SnapConfig{}
	}

	return cfg, nil
}

func (r *fileProfileRepository) Save(ctx context.Context, cfg models.Config) error {
	if cfg.Snap == nil {
		cfg.Snap = []models.SnapConfig{}
	}

	payload, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config file: %w", err)
	}

	if err = renameio.WriteFile(r.path, payload, configFileMode); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	r.logger.Debug().Str("path", r.path).Int("profiles", len(cfg.Snap)).Msg("config saved")
	return nil
}

func (r *fileProfileRepository) Add(ctx context.Context, profile models.SnapConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cfg, err := r.Load(ctx)
	if err != nil {
		return err
	}
	if _, ok := cfg.Find(profile.ID); ok {
		return fmt.Errorf("%w: %s", ErrProfileExists, profile.ID)
	}

	cfg.Snap = append(cfg.Snap, profile)
	return r.Save(ctx, cfg)
}

func (r *fileProfileRepository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cfg, err := r.Load(ctx)
	if err != nil {
		return err
	}

	idx := slices.IndexFunc(cfg.Snap, func(p models.SnapConfig) bool { return p.ID == id })
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, id)
	}

	cfg.Snap = slices.Delete(cfg.Snap, idx, idx+1)
	return r.Save(ctx, cfg)
}

func (r *fileProfileRepository) Get(ctx context.Context, id string) (models.SnapConfig, error) {
	cfg, err := r.Load(ctx)
	if err != nil {
		return models.SnapConfig{}, err
	}

	profile, ok := cfg.Find(id)
	if !ok {
		return models.SnapConfig{}, fmt.Errorf("%w: %s", ErrProfileNotFound, id)
	}
	return profile, nil
}

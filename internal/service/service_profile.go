// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/snap-desk/internal/logger"
	"github.com/MKhiriev/snap-desk/internal/store"
	"github.com/MKhiriev/snap-desk/internal/validators"
	"github.com/MKhiriev/snap-desk/models"
)

// IDGenerator issues identifiers for new profiles.
type IDGenerator interface {
	Generate() string
}

type profileService struct {
	repo      store.ProfileRepository
	validator validators.Validator
	ids       IDGenerator

	mu       sync.RWMutex
	selected *models.SnapConfig

	logger *logger.Logger
}

func NewProfileService(repo store.ProfileRepository, validator validators.Validator, ids IDGenerator, logger *logger.Logger) ProfileService {
	return &profileService{
		repo:      repo,
		validator: validator,
		ids:       ids,
		logger:    logger,
	}
}

func (s *profileService) List(ctx context.Context) (models.Config, error) {
	return s.repo.Load(ctx)
}

func (s *profileService) Add(ctx context.Context, profile models.SnapConfig) (models.SnapConfig, error) {
	if err := s.validator.Validate(ctx, profile); err != nil {
		return models.SnapConfig{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if profile.ID == "" {
		profile.ID = s.ids.Generate()
	}

	if err := s.repo.Add(ctx, profile); err != nil {
		return models.SnapConfig{}, fmt.Errorf("add profile: %w", err)
	}

	s.logger.Info().Str("profile_id", profile.ID).Str("name", profile.Name).Msg("profile added")
	return profile, nil
}

func (s *profileService) Remove(ctx context.Context, id string) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		return fmt.Errorf("remove profile: %w", err)
	}

	s.mu.Lock()
	if s.selected != nil && s.selected.ID == id {
		s.selected = nil
	}
	s.mu.Unlock()

	s.logger.Info().Str("profile_id", id).Msg("profile removed")
	return nil
}

func (s *profileService) Select(ctx context.Context, id string) (models.SnapConfig, error) {
	profile, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.SnapConfig{}, err
	}

	s.mu.Lock()
	s.selected = &profile
	s.mu.Unlock()

	return profile, nil
}

func (s *profileService) Selected() (models.SnapConfig, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selected == nil {
		return models.SnapConfig{}, false
	}
	return *s.selected, true
}

func (s *profileService) Refresh(ctx context.Context) (models.Config, error) {
	cfg, err := s.repo.Load(ctx)
	if err != nil {
		return models.Config{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == nil {
		return cfg, nil
	}
	if profile, ok := cfg.Find(s.selected.ID); ok {
		s.selected = &profile
	} else {
		s.logger.Debug().Str("profile_id", s.selected.ID).Msg("selected profile vanished, clearing selection")
		s.selected = nil
	}

	return cfg, nil
}

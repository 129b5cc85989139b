// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"context"

	"github.com/MKhiriev/snap-desk/models"
)

func (h *Handler) loadConfig(ctx context.Context, _ struct{}) (models.ProfileList, error) {
	cfg, err := h.services.ProfileService.Refresh(ctx)
	if err != nil {
		return models.ProfileList{}, h.mapError(CommandLoadConfig, err)
	}
	return h.profileList(cfg), nil
}

func (h *Handler) addSnapConfig(ctx context.Context, profile models.SnapConfig) (models.SnapConfig, error) {
	added, err := h.services.ProfileService.Add(ctx, profile)
	if err != nil {
		return models.SnapConfig{}, h.mapError(CommandAddSnapConfig, err)
	}
	return added, nil
}

func (h *Handler) removeSnapConfig(ctx context.Context, args IDArgs) (models.ProfileList, error) {
	if err := h.services.ProfileService.Remove(ctx, args.ID); err != nil {
		return models.ProfileList{}, h.mapError(CommandRemoveSnapConfig, err)
	}

	cfg, err := h.services.ProfileService.List(ctx)
	if err != nil {
		return models.ProfileList{}, h.mapError(CommandRemoveSnapConfig, err)
	}
	return h.profileList(cfg), nil
}

func (h *Handler) selectSnapConfig(ctx context.Context, args IDArgs) (models.SnapConfig, error) {
	profile, err := h.services.ProfileService.Select(ctx, args.ID)
	if err != nil {
		return models.SnapConfig{}, h.mapError(CommandSelectSnapConfig, err)
	}
	return profile, nil
}

func (h *Handler) profileList(cfg models.Config) models.ProfileList {
	list := models.ProfileList{Snap: cfg.Snap}
	if list.Snap == nil {
		list.Snap = []models.SnapConfig{}
	}
	if selected, ok := h.services.ProfileService.Selected(); ok {
		list.SelectedID = selected.ID
	}
	return list
}

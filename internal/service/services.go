// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/snap-desk/internal/adapter"
	"github.com/MKhiriev/snap-desk/internal/config"
	"github.com/MKhiriev/snap-desk/internal/logger"
	"github.com/MKhiriev/snap-desk/internal/store"
	"github.com/MKhiriev/snap-desk/internal/utils"
	"github.com/MKhiriev/snap-desk/internal/validators"
	"github.com/MKhiriev/snap-desk/models"
)

// Services groups the services that depend on the provisioned config
// directory.
type Services struct {
	ProfileService ProfileService
	SnapService    SnapService
	AppInfoService AppInfoService
}

// NewServices wires the services on top of the profile repository of the
// provisioned config directory.
func NewServices(cfg *config.ClientConfig, build models.AppBuildInfo, repo store.ProfileRepository,
	snapAdapter adapter.SnapAdapter, configDir string, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(build, cfg.App, configDir)
	if err != nil {
		return nil, err
	}

	validator := validators.NewSnapConfigValidator()

	return &Services{
		ProfileService: NewProfileService(repo, validator, utils.NewUUIDGenerator(), logger),
		SnapService:    NewSnapService(repo, snapAdapter, validator, logger),
		AppInfoService: appInfo,
	}, nil
}

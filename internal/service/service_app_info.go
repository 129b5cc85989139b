// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/snap-desk/internal/config"
	"github.com/MKhiriev/snap-desk/models"
)

type appInfoService struct {
	info models.AppInfo
}

// NewAppInfoService returns an [AppInfoService] for the given build and the
// provisioned configuration directory.
func NewAppInfoService(build models.AppBuildInfo, app config.ClientApp, configDir string) (AppInfoService, error) {
	if configDir == "" {
		return nil, ErrEmptyConfigDir
	}

	return &appInfoService{
		info: models.AppInfo{
			Version:    build.BuildVersion(),
			Date:       build.BuildDate(),
			Commit:     build.BuildCommit(),
			Identifier: app.Identifier,
			ConfigDir:  configDir,
		},
	}, nil
}

func (s *appInfoService) AppInfo(ctx context.Context) models.AppInfo {
	return s.info
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the application logic behind every command: greeting,
// merchant profile management and SNAP calls with access-token caching.
package service

import (
	"context"

	"github.com/MKhiriev/snap-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// GreeterService builds greeting messages.
type GreeterService interface {
	// Greet returns "Hello, <name>! You've been greeted!". Every input,
	// including the empty string, is accepted.
	Greet(name string) string
}

// ProfileService manages merchant profiles and the current selection.
type ProfileService interface {
	// List returns all stored profiles.
	List(ctx context.Context) (models.Config, error)

	// Add validates profile, assigns an id when it has none and stores it.
	Add(ctx context.Context, profile models.SnapConfig) (models.SnapConfig, error)

	// Remove deletes the profile; removing the selected profile clears the
	// selection.
	Remove(ctx context.Context, id string) error

	// Select marks the profile with id as current.
	Select(ctx context.Context, id string) (models.SnapConfig, error)

	// Selected returns the current profile, if any.
	Selected() (models.SnapConfig, bool)

	// Refresh reloads the profile file and drops a selection whose profile
	// no longer exists.
	Refresh(ctx context.Context) (models.Config, error)
}

// SnapService performs SNAP calls on behalf of a stored profile.
type SnapService interface {
	// AccessTokenB2B returns a B2B access token, reusing a cached one until
	// shortly before it expires.
	AccessTokenB2B(ctx context.Context, profileID string) (string, error)

	// AccessTokenB2B2C exchanges an authorization code or refresh token.
	AccessTokenB2B2C(ctx context.Context, profileID, grant string, isAuthCode bool) (models.AccessTokenB2B2CResponse, error)

	// GenerateQR obtains a B2B token and creates a QR MPM payload.
	GenerateQR(ctx context.Context, req models.QrRequest) (models.QrMPMGenerateResponse, error)
}

// AppInfoService describes the running application.
type AppInfoService interface {
	AppInfo(ctx context.Context) models.AppInfo
}

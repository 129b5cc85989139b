// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrConfigEmpty is returned when config.json exists but has no content.
	ErrConfigEmpty = errors.New("config file is empty or not found")

	ErrProfileNotFound = errors.New("snap profile not found")
	ErrProfileExists   = errors.New("snap profile already exists")
)

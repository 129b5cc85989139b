// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrNoProfileSelected   = errors.New("no snap profile selected")
	ErrEmptyConfigDir      = errors.New("config directory is not specified")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrInvalidAppConfigs is returned when the application identifier is
	// missing or unusable as a directory name.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidAdapterConfigs is returned when adapter timeouts or QR
	// settings are missing or negative.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")

	// ErrInvalidIPCConfigs is returned when the IPC address is not a
	// loopback host:port.
	ErrInvalidIPCConfigs = errors.New("invalid ipc configuration")

	// ErrInvalidLogConfigs is returned when the log level is unknown.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)

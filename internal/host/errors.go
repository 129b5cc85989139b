// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package host

import "errors"

var (
	// ErrSetupFailed wraps the error of the first failing setup hook.
	ErrSetupFailed = errors.New("application setup failed")

	ErrPluginInit = errors.New("plugin initialisation failed")
	ErrNoUI       = errors.New("no UI to run")
)

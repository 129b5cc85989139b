// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package appdir resolves the application configuration directory following
// the platform convention and provisions it once at startup.
//
// Resolution is delegated to a [Resolver] so the host environment (or a test)
// decides where the directory lives. [Provisioner] then ensures the directory
// exists, creating it non-recursively when missing. Failures are reported as
// [*PathResolutionError] or [*DirectoryCreationError]; both are fatal for
// application startup.
package appdir

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package host is the application shell: it collects setup hooks, plugins,
// commands and background workers, runs the hooks before anything is
// interactive, and then drives the UI.
//
// Startup order:
//
//  1. setup hooks, in registration order; the first failure aborts with
//     [ErrSetupFailed] and nothing else starts
//  2. plugins, which may rely on the config directory set by the hooks
//  3. background workers and the UI, concurrently; the UI returning stops
//     the workers
package host

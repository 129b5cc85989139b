// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the SnapDesk desktop process.
//
// It wires config directory provisioning, the profile store, services,
// commands, plugins and background workers onto a host application and runs
// the terminal UI in the foreground.
package client

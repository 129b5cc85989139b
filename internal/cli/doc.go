// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements snapctl, a command-line client that invokes
// commands on a running SnapDesk process through its loopback IPC server.
package cli

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the SnapDesk terminal UI on Bubble Tea.
//
// The UI holds no application state of its own beyond what is on screen:
// every action is a named command sent through an [Invoker], which is either
// the in-process dispatcher or a client of the loopback IPC server.
package tui

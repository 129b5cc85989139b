// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// SnapDesk command handlers and the terminal UI.
//
// All Msg* constants are human-readable message strings that are written into
// command errors, log entries or UI notices to describe the outcome of an
// operation. Keeping them in one place ensures consistent wording.
package app

const (
	// MsgInvalidDataProvided is returned when command arguments cannot be
	// decoded or fail validation (e.g. missing required profile fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalError is logged when a command fails for a reason the user
	// cannot resolve.
	MsgInternalError = "internal error"

	// MsgProfileNotFound is returned when a command references a profile id
	// that is not present in config.json.
	MsgProfileNotFound = "snap profile not found"

	// MsgProfileExists is returned when a new profile reuses an existing id.
	MsgProfileExists = "snap profile already exists"

	// MsgNoProfileSelected is shown when a SNAP action is requested before a
	// profile has been selected.
	MsgNoProfileSelected = "select a snap profile first"

	// MsgConfigEmpty is returned when config.json exists but is empty.
	MsgConfigEmpty = "config file is empty or not found"

	// MsgSnapRequestFailed is logged when the SNAP provider answers with a
	// non-2xx status.
	MsgSnapRequestFailed = "snap request failed"

	// MsgCopiedToClipboard is shown after a value has been copied.
	MsgCopiedToClipboard = "copied to clipboard"
)

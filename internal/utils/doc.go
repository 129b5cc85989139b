// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared across the application:
// the SNAP timestamp format, unverified JWT expiry inspection, JSON response
// writing, the resty-backed HTTP client and identifier generation.
package utils

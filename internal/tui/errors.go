// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/snap-desk/internal/ipc"
)

// humanizeError turns command errors into overlay text.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var remote *ipc.RemoteError
	if errors.As(err, &remote) {
		return remote.Message
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "SnapDesk core is unavailable"
	}

	return err.Error()
}

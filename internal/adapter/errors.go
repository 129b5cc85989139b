// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrRequestFailed is wrapped by every [*SnapError].
	ErrRequestFailed = errors.New("snap request failed")

	ErrInvalidBaseURL = errors.New("invalid base url")
)

const unknownErrorMessage = "An unknown error occurred"

// Operation prefixes used in error messages.
const (
	opAccessTokenB2B   = "failed to get access token B2B"
	opAccessTokenB2B2C = "failed to get access token B2B2C"
	opGenerateQrMPM    = "failed to generate QR MPM"
)

// SnapError is a non-2xx response from a SNAP provider.
type SnapError struct {
	Op              string
	StatusCode      int
	ResponseCode    string
	ResponseMessage string
}

func (e *SnapError) Error() string {
	msg := e.ResponseMessage
	if msg == "" {
		msg = unknownErrorMessage
	}
	return fmt.Sprintf("%s: %s", e.Op, msg)
}

func (e *SnapError) Unwrap() error {
	return ErrRequestFailed
}

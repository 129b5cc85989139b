// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ipc

import (
	"errors"
	"fmt"
)

var (
	ErrCommandExists  = errors.New("command already registered")
	ErrUnknownCommand = errors.New("unknown command")

	// ErrInvalidArgs is returned (wrapped) when arguments cannot be decoded
	// into the shape a command expects.
	ErrInvalidArgs = errors.New("invalid command arguments")
)

// RemoteError is a command failure reported by a [Server] that does not map
// to one of the package sentinels.
type RemoteError struct {
	Command    string
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("command %s failed: %s", e.Command, e.Message)
}

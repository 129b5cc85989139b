// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package appdir

import "errors"

const creationFailedMessage = "creating app config directory failed"

var (
	// ErrPathResolution matches any *PathResolutionError via errors.Is.
	ErrPathResolution = errors.New("app config directory resolution failed")

	// ErrDirectoryCreation matches any *DirectoryCreationError via errors.Is.
	ErrDirectoryCreation = errors.New(creationFailedMessage)

	// ErrEmptyIdentifier is returned by resolvers when no application
	// identifier is configured.
	ErrEmptyIdentifier = errors.New("empty application identifier")

	// ErrNoConfigHome is returned when the platform reports no configuration
	// home directory.
	ErrNoConfigHome = errors.New("platform config home is unknown")
)

// PathResolutionError reports that the host environment could not determine
// the configuration directory. Message carries the underlying cause.
type PathResolutionError struct {
	Message string
}

func (e *PathResolutionError) Error() string {
	return e.Message
}

func (e *PathResolutionError) Is(target error) bool {
	return target == ErrPathResolution
}

// DirectoryCreationError reports that the configuration directory could not
// be created. The OS error is not retained.
type DirectoryCreationError struct{}

func (e *DirectoryCreationError) Error() string {
	return creationFailedMessage
}

func (e *DirectoryCreationError) Is(target error) bool {
	return target == ErrDirectoryCreation
}

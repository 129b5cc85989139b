// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package appdir

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXDGResolver_UsesConfigHome(t *testing.T) {
	home := t.TempDir()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", home)
	xdg.Reload()

	path, err := NewXDGResolver("com.snapdesk.app", "").ConfigDir()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "com.snapdesk.app"), path)
}

func TestXDGResolver_Override(t *testing.T) {
	override := t.TempDir()

	path, err := NewXDGResolver("", override).ConfigDir()

	require.NoError(t, err)
	assert.Equal(t, override, path)
}

func TestXDGResolver_RelativeOverrideIsAbsolute(t *testing.T) {
	path, err := NewXDGResolver("com.snapdesk.app", "relative/dir").ConfigDir()

	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path))
}

func TestXDGResolver_EmptyIdentifier(t *testing.T) {
	_, err := NewXDGResolver("  ", "").ConfigDir()

	assert.ErrorIs(t, err, ErrEmptyIdentifier)
}

func TestResolverFunc(t *testing.T) {
	want := errors.New("boom")
	_, err := ResolverFunc(func() (string, error) { return "", want }).ConfigDir()

	assert.ErrorIs(t, err, want)
}

func TestErrors_Messages(t *testing.T) {
	assert.Equal(t, "no home", (&PathResolutionError{Message: "no home"}).Error())
	assert.Equal(t, "creating app config directory failed", (&DirectoryCreationError{}).Error())
	assert.NotErrorIs(t, &DirectoryCreationError{}, ErrPathResolution)
	assert.NotErrorIs(t, &PathResolutionError{}, ErrDirectoryCreation)
}

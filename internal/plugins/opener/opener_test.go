// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package opener

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/MKhiriev/snap-desk/internal/ipc"
	"github.com/MKhiriev/snap-desk/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type launchCall struct {
	name string
	args []string
}

func setup(t *testing.T, goos string, launchErr error) (*ipc.Dispatcher, *[]launchCall) {
	t.Helper()
	var calls []launchCall

	p := New(logger.Nop())
	p.goos = goos
	p.launch = func(name string, args ...string) error {
		calls = append(calls, launchCall{name: name, args: args})
		return launchErr
	}

	d := ipc.NewDispatcher(logger.Nop())
	require.NoError(t, p.Init("", d))
	return d, &calls
}

func open(d *ipc.Dispatcher, url string) error {
	raw, _ := json.Marshal(URLArgs{URL: url})
	_, err := d.Invoke(context.Background(), CommandOpenURL, raw)
	return err
}

func TestOpenURL_PlatformCommands(t *testing.T) {
	tests := []struct {
		goos string
		want launchCall
	}{
		{"linux", launchCall{"xdg-open", []string{"https://example.com"}}},
		{"freebsd", launchCall{"xdg-open", []string{"https://example.com"}}},
		{"darwin", launchCall{"open", []string{"https://example.com"}}},
		{"windows", launchCall{"rundll32", []string{"url.dll,FileProtocolHandler", "https://example.com"}}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			d, calls := setup(t, tt.goos, nil)

			require.NoError(t, open(d, "https://example.com"))
			require.Len(t, *calls, 1)
			assert.Equal(t, tt.want, (*calls)[0])
		})
	}
}

func TestOpenURL_AllowedSchemes(t *testing.T) {
	d, calls := setup(t, "linux", nil)

	for _, u := range []string{"http://a.example", "https://a.example", "mailto:dev@example.com"} {
		assert.NoError(t, open(d, u))
	}
	assert.Len(t, *calls, 3)
}

func TestOpenURL_RejectedSchemes(t *testing.T) {
	d, calls := setup(t, "linux", nil)

	for _, u := range []string{"file:///etc/passwd", "javascript:alert(1)", "", "relative/path"} {
		err := open(d, u)
		assert.ErrorIs(t, err, ipc.ErrInvalidArgs, u)
	}
	assert.Empty(t, *calls)
}

func TestOpenURL_LaunchError(t *testing.T) {
	launchErr := errors.New("xdg-open not found")
	d, _ := setup(t, "linux", launchErr)

	err := open(d, "https://example.com")

	assert.ErrorIs(t, err, launchErr)
	assert.NotErrorIs(t, err, ipc.ErrInvalidArgs)
}

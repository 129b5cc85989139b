// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the application identity and config directory override.
	App App `envPrefix:"APP_"`

	// Adapter holds settings of the SNAP HTTP adapter.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// IPC holds settings of the optional loopback command server.
	IPC IPC `envPrefix:"IPC_"`

	// Log holds logging destination and level.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App groups application-level settings.
type App struct {
	// Identifier is the reverse-DNS application id. The configuration
	// directory is <platform config home>/<Identifier>.
	Identifier string `env:"IDENTIFIER"`

	// ConfigDir, when set, replaces the platform-resolved configuration
	// directory entirely.
	ConfigDir string `env:"CONFIG_DIR"`
}

// Adapter groups settings of the SNAP provider adapter.
type Adapter struct {
	// RequestTimeout bounds every outgoing SNAP request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// QRValidity is added to the current time to build validityPeriod of
	// fixed-amount QR codes.
	QRValidity time.Duration `env:"QR_VALIDITY"`

	// TerminalID is sent as terminalId in QR requests.
	TerminalID string `env:"TERMINAL_ID"`
}

// IPC groups settings of the loopback command server.
type IPC struct {
	// Address is a host:port to listen on. Empty disables the server.
	Address string `env:"ADDRESS"`
}

// Log groups logging settings.
type Log struct {
	// File is the log file path. Empty places "logs" next to the executable.
	File string `env:"FILE"`

	// Level is a zerolog level name.
	Level string `env:"LEVEL"`
}

// Default values applied after all sources are merged.
const (
	DefaultIdentifier     = "com.snapdesk.app"
	DefaultRequestTimeout = 30 * time.Second
	DefaultQRValidity     = 48 * time.Hour
	DefaultTerminalID     = "Info Terminal"
	DefaultLogLevel       = "debug"
)

// Defaults returns the configuration used for fields no source has set.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{Identifier: DefaultIdentifier},
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
			QRValidity:     DefaultQRValidity,
			TerminalID:     DefaultTerminalID,
		},
		Log: Log{Level: DefaultLogLevel},
	}
}

// GetStructuredConfig assembles the configuration from the process
// environment, os.Args, and the optional JSON file.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}

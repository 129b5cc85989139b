// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp is the application identity seen by the desktop process.
type ClientApp struct {
	Identifier string
	ConfigDir  string
}

// ClientAdapter configures the SNAP adapter.
type ClientAdapter struct {
	RequestTimeout time.Duration
	QRValidity     time.Duration
	TerminalID     string
}

// ClientIPC configures the loopback command server.
type ClientIPC struct {
	Address string
}

// ClientLog configures the client logger.
type ClientLog struct {
	File  string
	Level string
}

// ClientConfig is the validated projection of [StructuredConfig] consumed by
// cmd/snapdesk.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	IPC     ClientIPC
	Log     ClientLog
}

// GetClientConfig loads the structured configuration and projects it into a
// validated [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Identifier: cfg.App.Identifier,
			ConfigDir:  cfg.App.ConfigDir,
		},
		Adapter: ClientAdapter{
			RequestTimeout: cfg.Adapter.RequestTimeout,
			QRValidity:     cfg.Adapter.QRValidity,
			TerminalID:     cfg.Adapter.TerminalID,
		},
		IPC: ClientIPC{
			Address: cfg.IPC.Address,
		},
		Log: ClientLog{
			File:  cfg.Log.File,
			Level: cfg.Log.Level,
		},
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}

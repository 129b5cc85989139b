// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"strings"

	"github.com/rs/zerolog"
)

func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	id := strings.TrimSpace(cfg.App.Identifier)
	if id == "" || strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return ErrInvalidAppConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.QRValidity < 0 || cfg.Adapter.TerminalID == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.IPC.Address != "" && !isLoopback(cfg.IPC.Address) {
		return ErrInvalidIPCConfigs
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			return ErrInvalidLogConfigs
		}
	}

	return nil
}

// isLoopback reports whether address is host:port with a loopback host.
func isLoopback(address string) bool {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return false
	}
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

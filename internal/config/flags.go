// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a host:port pair usable as a flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args into a partial [StructuredConfig]. Unset flags
// leave zero values so that other sources win during the merge.
func parseFlags(args []string) (*StructuredConfig, error) {
	var ipcAddress NetAddress
	var identifier string
	var configDir string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var qrValidity time.Duration
	var terminalID string
	var logFile string
	var logLevel string

	fs := flag.NewFlagSet("snapdesk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&ipcAddress, "ipc-address", "IPC server address host:port")
	fs.StringVar(&identifier, "identifier", "", "Application identifier")
	fs.StringVar(&configDir, "config-dir", "", "Application config directory override")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "SNAP request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&qrValidity, "qr-validity", 0, "Validity of fixed-amount QR codes (e.g., 48h)")
	fs.StringVar(&terminalID, "terminal-id", "", "Terminal ID sent with QR requests")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Identifier: identifier,
			ConfigDir:  configDir,
		},
		Adapter: Adapter{
			RequestTimeout: requestTimeout,
			QRValidity:     qrValidity,
			TerminalID:     terminalID,
		},
		IPC: IPC{
			Address: ipcAddress.String(),
		},
		Log: Log{
			File:  logFile,
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set implements flag.Value. Only localhost and IP literals are accepted.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

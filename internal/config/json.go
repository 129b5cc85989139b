// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case JSON keys
// and JSON-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		Identifier string `json:"identifier"`
		ConfigDir  string `json:"config_dir"`
	} `json:"app,omitempty"`

	Adapter struct {
		RequestTimeout Duration `json:"request_timeout"`
		QRValidity     Duration `json:"qr_validity"`
		TerminalID     string   `json:"terminal_id"`
	} `json:"adapter,omitempty"`

	IPC struct {
		Address string `json:"address"`
	} `json:"ipc,omitempty"`

	Log struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Identifier: jsonCfg.App.Identifier,
			ConfigDir:  jsonCfg.App.ConfigDir,
		},
		Adapter: Adapter{
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			QRValidity:     time.Duration(jsonCfg.Adapter.QRValidity),
			TerminalID:     jsonCfg.Adapter.TerminalID,
		},
		IPC: IPC{
			Address: jsonCfg.IPC.Address,
		},
		Log: Log{
			File:  jsonCfg.Log.File,
			Level: jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}

// Duration is a time.Duration that unmarshals from either a duration string
// ("30s") or a number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

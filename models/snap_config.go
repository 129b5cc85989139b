// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SnapConfig is a single merchant profile used to sign and send SNAP
// requests. Profiles are persisted in config.json inside the application
// configuration directory and are shared with the presentation layer, so the
// JSON keys must stay stable.
type SnapConfig struct {
	// ID uniquely identifies the profile inside config.json.
	ID string `json:"id"`

	// Name is a human-readable label shown in the UI.
	Name string `json:"name"`

	// MerchantID is sent as X-CLIENT-KEY for token requests and as
	// X-PARTNER-ID for transactional requests.
	MerchantID string `json:"merchantID"`

	// SecretKey is the client secret used for HMAC-SHA512 symmetric
	// signatures.
	SecretKey string `json:"secretKey"`

	// PrivateKey is the PEM-encoded RSA private key used for the asymmetric
	// access-token signature.
	PrivateKey string `json:"privateKey"`

	// BaseURL is the SNAP provider host, e.g. https://sandbox.example.com.
	BaseURL string `json:"baseURL"`
}

// Config is the root document of config.json.
type Config struct {
	Snap []SnapConfig `json:"snap"`
}

// Find returns the profile with the given id.
func (c Config) Find(id string) (SnapConfig, bool) {
	for _, snap := range c.Snap {
		if snap.ID == id {
			return snap, true
		}
	}
	return SnapConfig{}, false
}

// ProfileList is config.json as seen by the presentation layer, together with
// the id of the currently selected profile.
type ProfileList struct {
	Snap       []SnapConfig `json:"snap"`
	SelectedID string       `json:"selectedId,omitempty"`
}

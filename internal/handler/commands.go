// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

const (
	CommandGreet            = "greet"
	CommandLoadConfig       = "load_config"
	CommandAddSnapConfig    = "add_snap_config"
	CommandRemoveSnapConfig = "remove_snap_config"
	CommandSelectSnapConfig = "select_snap_config"
	CommandAccessTokenB2B   = "access_token_b2b"
	CommandAccessTokenB2B2C = "access_token_b2b2c"
	CommandQrMPMGenerate    = "qr_mpm_generate"
	CommandAppInfo          = "app_info"
)

// GreetArgs are the arguments of the greet command.
type GreetArgs struct {
	Name string `json:"name"`
}

// IDArgs identify a profile.
type IDArgs struct {
	ID string `json:"id"`
}

// ProfileArgs select the profile a SNAP call is made for.
type ProfileArgs struct {
	ProfileID string `json:"profileId"`
}

// B2B2CArgs carry an authorization code or a refresh token in Data.
type B2B2CArgs struct {
	ProfileID  string `json:"profileId"`
	Data       string `json:"data"`
	IsAuthCode bool   `json:"isAuthCode"`
}

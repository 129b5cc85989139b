// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler exposes the services as named commands on an
// [ipc.Dispatcher].
//
// Commands and their arguments:
//
//	greet                {"name": string}                                  -> string
//	load_config          none                                              -> ProfileList
//	add_snap_config      SnapConfig                                        -> SnapConfig
//	remove_snap_config   {"id": string}                                    -> ProfileList
//	select_snap_config   {"id": string}                                    -> SnapConfig
//	access_token_b2b     {"profileId": string}                             -> string
//	access_token_b2b2c   {"profileId": string, "data": string, "isAuthCode": bool}
//	                                                                       -> AccessTokenB2B2CResponse
//	qr_mpm_generate      QrRequest                                         -> QrMPMGenerateResponse
//	app_info             none                                              -> AppInfo
//
// Validation failures and unknown profile ids are reported wrapped in
// [ipc.ErrInvalidArgs].
package handler

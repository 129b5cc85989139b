// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ipc carries commands from the presentation layer to the Go core.
//
// Commands are named handlers registered on a [Dispatcher] and invoked with
// JSON-encoded arguments. The terminal UI calls the dispatcher in-process
// through [LocalInvoker]; other front-ends reach the same dispatcher over the
// loopback HTTP [Server] with [Client]:
//
//	POST /ipc/{command}   body: JSON args   -> 200 result | 400 | 404 | 500 {"error": "..."}
//	GET  /ipc/                              -> 200 ["greet", ...]
package ipc

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it is persisted or sent to a
// SNAP provider.
//
// Validators are type-switched: one [Validator] may accept several model
// types, and callers may restrict a check to named fields, e.g.
//
//	err := v.Validate(ctx, profile, validators.FieldBaseURL)
package validators

import "context"

// Validator validates the provided input, optionally restricted to the named
// fields. Unknown types return [ErrUnsupportedType]; unknown fields return
// [ErrUnknownField].
type Validator interface {
	Validate(context.Context, any, ...string) error
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName         = errors.New("profile name is required")
	ErrEmptyMerchantID   = errors.New("merchant ID is required")
	ErrEmptySecretKey    = errors.New("secret key is required")
	ErrInvalidPrivateKey = errors.New("private key must be an RSA key in PEM form")
	ErrInvalidBaseURL    = errors.New("base URL must be an absolute http or https URL")
	ErrEmptyProfileID    = errors.New("profile ID is required")
	ErrInvalidCallback   = errors.New("callback URL must be an absolute http or https URL")
	ErrNegativeAmount    = errors.New("amount cannot be negative")
)

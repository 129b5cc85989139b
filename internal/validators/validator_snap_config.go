// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/url"
	"strings"

	"github.com/MKhiriev/snap-desk/internal/crypto"
	"github.com/MKhiriev/snap-desk/models"
)

const (
	FieldName        = "name"
	FieldMerchantID  = "merchant_id"
	FieldSecretKey   = "secret_key"
	FieldPrivateKey  = "private_key"
	FieldBaseURL     = "base_url"
	FieldProfileID   = "profile_id"
	FieldCallbackURL = "callback_url"
	FieldAmount      = "amount"
)

// SnapConfigValidator checks merchant profiles before they are stored and QR
// requests before they reach the provider.
type SnapConfigValidator struct {
}

func NewSnapConfigValidator() Validator {
	return &SnapConfigValidator{}
}

func (v *SnapConfigValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SnapConfig:
		return v.validateSnapConfig(ctx, value, fields...)
	case *models.SnapConfig:
		return v.validateSnapConfig(ctx, *value, fields...)

	case models.QrRequest:
		return v.validateQrRequest(ctx, value, fields...)
	case *models.QrRequest:
		return v.validateQrRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SnapConfigValidator) validateSnapConfig(ctx context.Context, cfg models.SnapConfig, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldMerchantID, FieldSecretKey, FieldPrivateKey, FieldBaseURL}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(cfg.Name) == "" {
				return ErrEmptyName
			}
		case FieldMerchantID:
			if strings.TrimSpace(cfg.MerchantID) == "" {
				return ErrEmptyMerchantID
			}
		case FieldSecretKey:
			if cfg.SecretKey == "" {
				return ErrEmptySecretKey
			}
		case FieldPrivateKey:
			if _, err := crypto.ParseRSAPrivateKey(cfg.PrivateKey); err != nil {
				return ErrInvalidPrivateKey
			}
		case FieldBaseURL:
			if !isHTTPURL(cfg.BaseURL) {
				return ErrInvalidBaseURL
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SnapConfigValidator) validateQrRequest(ctx context.Context, req models.QrRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProfileID, FieldCallbackURL, FieldAmount}
	}

	for _, f := range fields {
		switch f {
		case FieldProfileID:
			if req.ProfileID == "" {
				return ErrEmptyProfileID
			}
		case FieldCallbackURL:
			if !isHTTPURL(req.CallbackURL) {
				return ErrInvalidCallback
			}
		case FieldAmount:
			if req.Amount < 0 {
				return ErrNegativeAmount
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

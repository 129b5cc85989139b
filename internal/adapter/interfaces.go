// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to SNAP (Standar Nasional Open API Pembayaran)
// providers over HTTP.
//
// The primary abstraction is [SnapAdapter], which decouples the service layer
// from signing, header conventions and the wire format. The only
// implementation is the resty-backed [NewHTTPSnapAdapter].
//
// Non-2xx responses are mapped by mapSnapError to [*SnapError], which wraps
// [ErrRequestFailed] so that callers can use [errors.Is] and still read the
// provider's responseCode via [errors.As].
package adapter

import (
	"context"

	"github.com/MKhiriev/snap-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/snap_adapter_mock.go -package=mock

// Endpoint paths relative to a profile's base URL.
const (
	AccessTokenB2BPath   = "/openapi/v1.0/access-token/b2b"
	AccessTokenB2B2CPath = "/openapi/v1.0/access-token/b2b2c"
	QrMPMGeneratePath    = "/openapi/v1.0/qr/qr-mpm-generate"
)

// SnapAdapter defines the SNAP operations used by the application. Every call
// takes the merchant profile explicitly: base URL and keys differ per profile.
type SnapAdapter interface {
	// AccessTokenB2B requests a client-credentials token, signing
	// merchantID|timestamp with the profile's RSA private key.
	AccessTokenB2B(ctx context.Context, profile models.SnapConfig) (models.AccessTokenB2BResponse, error)

	// AccessTokenB2B2C exchanges an authorization code (isAuthCode) or a
	// refresh token for a customer-bound token.
	AccessTokenB2B2C(ctx context.Context, profile models.SnapConfig, grant string, isAuthCode bool) (models.AccessTokenB2B2CResponse, error)

	// GenerateQrMPM creates a merchant-presented QRIS payload. The request is
	// signed symmetrically with the profile's secret key over accessToken and
	// the body hash.
	GenerateQrMPM(ctx context.Context, profile models.SnapConfig, accessToken string, qr QrParams) (models.QrMPMGenerateResponse, error)
}

// QrParams are the caller-supplied parts of a QR MPM request. Amount <= 0
// produces an open-amount QR without a validity period.
type QrParams struct {
	ReferenceNo string
	CallbackURL string
	Amount      float64
}

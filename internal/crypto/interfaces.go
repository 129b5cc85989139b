// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the request signatures required by SNAP
// providers.
//
// Access-token requests are signed asymmetrically:
//
//	stringToSign = clientKey + "|" + timestamp
//	X-SIGNATURE  = base64(RSA-PKCS1v15(SHA-256(stringToSign)))
//
// Transactional requests are signed symmetrically:
//
//	stringToSign = METHOD + ":" + path + ":" + accessToken + ":" + hex(SHA-256(minified body)) + ":" + timestamp
//	X-SIGNATURE  = base64(HMAC-SHA512(clientSecret, stringToSign))
package crypto

// Signer produces SNAP request signatures. It holds no key material; keys are
// passed per call because every merchant profile carries its own.
type Signer interface {
	// AsymmetricSign signs clientKey|timestamp with the PEM-encoded RSA
	// private key and returns the standard base64 signature.
	AsymmetricSign(clientKey, timestamp, privateKeyPEM string) (string, error)

	// SymmetricSign returns base64(HMAC-SHA512(secret, data)).
	SymmetricSign(data, secret string) string

	// PayloadHash returns the lowercase hex SHA-256 of the minified JSON
	// body.
	PayloadHash(body []byte) (string, error)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto"
	"crypto/hmac"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/x509"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidPrivateKey is returned when the PEM block is missing or
	// cannot be parsed as PKCS#1 or PKCS#8.
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrUnsupportedKeyType is returned for PKCS#8 keys that are not RSA.
	ErrUnsupportedKeyType = errors.New("unsupported private key type")
)

// signer is the default implementation of [Signer].
type signer struct{}

// NewSigner returns the default [Signer].
func NewSigner() Signer {
	return &signer{}
}

// AsymmetricSign implements [Signer].
func (s *signer) AsymmetricSign(clientKey, timestamp, privateKeyPEM string) (string, error) {
	key, err := ParseRSAPrivateKey(privateKeyPEM)
	if err != nil {
		return "", err
	}

	digest := sha256.Sum256([]byte(clientKey + "|" + timestamp))
	sig, err := rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA256, digest[:])
	if err != nil {
		return "", fmt.Errorf("rsa sign: %w", err)
	}

	return base64.StdEncoding.EncodeToString(sig), nil
}

// SymmetricSign implements [Signer].
func (s *signer) SymmetricSign(data, secret string) string {
	h := hmac.New(sha512.New, []byte(secret))
	h.Write([]byte(data))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// PayloadHash implements [Signer].
func (s *signer) PayloadHash(body []byte) (string, error) {
	var compact bytes.Buffer
	if err := json.Compact(&compact, body); err != nil {
		return "", fmt.Errorf("minify payload: %w", err)
	}

	sum := sha256.Sum256(compact.Bytes())
	return hex.EncodeToString(sum[:]), nil
}

// StringToSign builds the symmetric string-to-sign of a transactional
// request.
func StringToSign(method, path, accessToken, payloadHash, timestamp string) string {
	return strings.Join([]string{strings.ToUpper(method), path, accessToken, payloadHash, timestamp}, ":")
}

// ParseRSAPrivateKey decodes a PEM private key in PKCS#1 ("RSA PRIVATE KEY")
// or PKCS#8 ("PRIVATE KEY") form.
func ParseRSAPrivateKey(privateKeyPEM string) (*rsa.PrivateKey, error) {
	block, _ := pemDecode(privateKeyPEM)
	if block == nil {
		return nil, ErrInvalidPrivateKey
	}

	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}

	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, ErrUnsupportedKeyType
	}
	return key, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Grant types accepted by the B2B and B2B2C access-token endpoints.
const (
	GrantTypeClientCredentials = "client_credentials"
	GrantTypeAuthorizationCode = "AUTHORIZATION_CODE"
	GrantTypeRefreshToken      = "REFRESH_TOKEN"
)

// SnapErrorResponse is the body returned by a SNAP provider for any non-2xx
// response.
type SnapErrorResponse struct {
	ResponseCode    string `json:"responseCode"`
	ResponseMessage string `json:"responseMessage"`
}

// AccessTokenB2BRequest is the body of POST /openapi/v1.0/access-token/b2b.
type AccessTokenB2BRequest struct {
	GrantType      string         `json:"grantType"`
	AdditionalInfo map[string]any `json:"additionalInfo"`
}

// AccessTokenB2BResponse is the successful response of the B2B token endpoint.
type AccessTokenB2BResponse struct {
	ResponseCode    string `json:"responseCode"`
	ResponseMessage string `json:"responseMessage"`
	AccessToken     string `json:"accessToken"`
	TokenType       string `json:"tokenType"`
	ExpiresIn       int64  `json:"expiresIn"`
}

// AccessTokenB2B2CRequest is the body of POST /openapi/v1.0/access-token/b2b2c.
// Exactly one of AuthCode and RefreshToken is set, depending on GrantType.
type AccessTokenB2B2CRequest struct {
	GrantType      string         `json:"grantType"`
	AuthCode       string         `json:"authCode,omitempty"`
	RefreshToken   string         `json:"refreshToken,omitempty"`
	AdditionalInfo map[string]any `json:"additionalInfo"`
}

// AccessTokenB2B2CResponse is the successful response of the B2B2C token
// endpoint.
type AccessTokenB2B2CResponse struct {
	ResponseCode    string `json:"responseCode"`
	ResponseMessage string `json:"responseMessage"`
	AccessToken     string `json:"accessToken"`
	TokenType       string `json:"tokenType"`
	ExpiresIn       int64  `json:"expiresIn"`
	RefreshToken    string `json:"refreshToken"`
}

// QrMpmAmount is the optional fixed amount of a merchant-presented QR.
type QrMpmAmount struct {
	Currency string `json:"currency"`
	Value    string `json:"value"`
}

// QrMpmURLParam describes a notification callback attached to a QR.
type QrMpmURLParam struct {
	URL        string `json:"url"`
	Type       string `json:"type"`
	IsDeeplink string `json:"isDeeplink"`
}

// QrMpmAdditional carries provider-specific options of a QR request.
type QrMpmAdditional struct {
	AdditionalLabel string          `json:"additionalLabel"`
	RequestQrURL    string          `json:"requestQrUrl"`
	RequestQrImage  string          `json:"requestQrImage"`
	URLParam        []QrMpmURLParam `json:"urlParam"`
}

// QrMPMGenerateRequest is the body of POST /openapi/v1.0/qr/qr-mpm-generate.
// Field order matters: the body is hashed as serialised, so it follows the
// key order SNAP providers expect.
type QrMPMGenerateRequest struct {
	PartnerReferenceNo string          `json:"partnerReferenceNo"`
	TerminalID         string          `json:"terminalId"`
	AdditionalInfo     QrMpmAdditional `json:"additionalInfo"`
	Amount             *QrMpmAmount    `json:"amount,omitempty"`
	ValidityPeriod     string          `json:"validityPeriod,omitempty"`
}

// QrMPMGenerateResponse is the successful response of the QR MPM endpoint.
type QrMPMGenerateResponse struct {
	ResponseCode       string `json:"responseCode"`
	ResponseMessage    string `json:"responseMessage"`
	PartnerReferenceNo string `json:"partnerReferenceNo"`
	QrContent          string `json:"qrContent"`
}

// QrRequest is what the UI supplies to generate a QR for a profile.
type QrRequest struct {
	ProfileID   string  `json:"profileId"`
	ReferenceNo string  `json:"referenceNo"`
	CallbackURL string  `json:"callbackUrl"`
	Amount      float64 `json:"amount,omitempty"`
}

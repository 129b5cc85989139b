// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/snap-desk/internal/config"
	"github.com/MKhiriev/snap-desk/internal/crypto"
	"github.com/MKhiriev/snap-desk/internal/logger"
	"github.com/MKhiriev/snap-desk/internal/utils"
	"github.com/MKhiriev/snap-desk/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const (
	channelIDQRIS   = "QRIS"
	currencyIDR     = "IDR"
	urlParamPay     = "PAY_NOTIFY"
	flagNo          = "N"
	additionalLabel = "Additional Label"
)

type httpSnapAdapter struct {
	client *utils.HTTPClient
	signer crypto.Signer

	terminalID string
	qrValidity time.Duration

	now        func() time.Time
	externalID func() string

	logger *logger.Logger
}

// NewHTTPSnapAdapter constructs the resty implementation of [SnapAdapter].
// adapterCfg supplies the request timeout, the terminal id sent with QR
// requests and the validity period of fixed-amount QRs.
func NewHTTPSnapAdapter(adapterCfg config.ClientAdapter, signer crypto.Signer, logger *logger.Logger) SnapAdapter {
	return &httpSnapAdapter{
		client:     utils.NewHTTPClient(adapterCfg.RequestTimeout),
		signer:     signer,
		terminalID: adapterCfg.TerminalID,
		qrValidity: adapterCfg.QRValidity,
		now:        time.Now,
		externalID: uuid.NewString,
		logger:     logger,
	}
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidBaseURL)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: address must include http(s) scheme and host", ErrInvalidBaseURL)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// AccessTokenB2B implements [SnapAdapter]. It POSTs
// {"grantType":"client_credentials","additionalInfo":{}} to the B2B endpoint.
func (h *httpSnapAdapter) AccessTokenB2B(ctx context.Context, profile models.SnapConfig) (models.AccessTokenB2BResponse, error) {
	body := models.AccessTokenB2BRequest{
		GrantType:      models.GrantTypeClientCredentials,
		AdditionalInfo: map[string]any{},
	}

	var out models.AccessTokenB2BResponse
	if err := h.tokenRequest(ctx, opAccessTokenB2B, AccessTokenB2BPath, profile, body, &out); err != nil {
		return models.AccessTokenB2BResponse{}, err
	}
	return out, nil
}

// AccessTokenB2B2C implements [SnapAdapter].
func (h *httpSnapAdapter) AccessTokenB2B2C(ctx context.Context, profile models.SnapConfig, grant string, isAuthCode bool) (models.AccessTokenB2B2CResponse, error) {
	body := models.AccessTokenB2B2CRequest{
		GrantType:      models.GrantTypeRefreshToken,
		AdditionalInfo: map[string]any{},
	}
	if isAuthCode {
		body.GrantType = models.GrantTypeAuthorizationCode
		body.AuthCode = grant
	} else {
		body.RefreshToken = grant
	}

	var out models.AccessTokenB2B2CResponse
	if err := h.tokenRequest(ctx, opAccessTokenB2B2C, AccessTokenB2B2CPath, profile, body, &out); err != nil {
		return models.AccessTokenB2B2CResponse{}, err
	}
	return out, nil
}

// GenerateQrMPM implements [SnapAdapter]. The body is marshalled once and the
// same bytes are hashed and sent.
func (h *httpSnapAdapter) GenerateQrMPM(ctx context.Context, profile models.SnapConfig, accessToken string, qr QrParams) (models.QrMPMGenerateResponse, error) {
	baseURL, err := normalizeBaseURL(profile.BaseURL)
	if err != nil {
		return models.QrMPMGenerateResponse{}, fmt.Errorf("%s: %w", opGenerateQrMPM, err)
	}

	now := h.now()
	payload, err := encodePayload(h.qrPayload(qr, now))
	if err != nil {
		return models.QrMPMGenerateResponse{}, fmt.Errorf("%s: encode payload: %w", opGenerateQrMPM, err)
	}
	payloadHash, err := h.signer.PayloadHash(payload)
	if err != nil {
		return models.QrMPMGenerateResponse{}, fmt.Errorf("%s: %w", opGenerateQrMPM, err)
	}

	timestamp := utils.SnapTimestamp(now)
	stringToSign := crypto.StringToSign("POST", QrMPMGeneratePath, accessToken, payloadHash, timestamp)
	externalID := h.externalID()

	h.logger.Debug().
		Str("profile_id", profile.ID).
		Str("reference_no", qr.ReferenceNo).
		Str("external_id", externalID).
		Msg("generating QR MPM")

	var out models.QrMPMGenerateResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+accessToken).
		SetHeader("X-PARTNER-ID", profile.MerchantID).
		SetHeader("X-TIMESTAMP", timestamp).
		SetHeader("X-SIGNATURE", h.signer.SymmetricSign(stringToSign, profile.SecretKey)).
		SetHeader("X-EXTERNAL-ID", externalID).
		SetHeader("CHANNEL-ID", channelIDQRIS).
		SetBody(payload).
		Post(baseURL + QrMPMGeneratePath)
	if err != nil {
		return models.QrMPMGenerateResponse{}, fmt.Errorf("%s: %w", opGenerateQrMPM, err)
	}
	if err = mapSnapError(opGenerateQrMPM, resp); err != nil {
		return models.QrMPMGenerateResponse{}, err
	}
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.QrMPMGenerateResponse{}, fmt.Errorf("%s: decode response: %w", opGenerateQrMPM, err)
	}

	return out, nil
}

// encodePayload serialises v without HTML escaping; the signed body must
// carry query strings of callback URLs verbatim.
func encodePayload(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func (h *httpSnapAdapter) qrPayload(qr QrParams, now time.Time) models.QrMPMGenerateRequest {
	payload := models.QrMPMGenerateRequest{
		PartnerReferenceNo: qr.ReferenceNo,
		TerminalID:         h.terminalID,
		AdditionalInfo: models.QrMpmAdditional{
			AdditionalLabel: additionalLabel,
			RequestQrURL:    flagNo,
			RequestQrImage:  flagNo,
			URLParam: []models.QrMpmURLParam{
				{URL: qr.CallbackURL, Type: urlParamPay, IsDeeplink: flagNo},
			},
		},
	}

	if qr.Amount > 0 {
		payload.Amount = &models.QrMpmAmount{
			Currency: currencyIDR,
			Value:    fmt.Sprintf("%.2f", qr.Amount),
		}
		if h.qrValidity > 0 {
			payload.ValidityPeriod = utils.SnapTimestamp(now.Add(h.qrValidity))
		}
	}

	return payload
}

// tokenRequest performs an asymmetrically signed access-token request and
// decodes the successful response into out.
func (h *httpSnapAdapter) tokenRequest(ctx context.Context, op, path string, profile models.SnapConfig, body, out any) error {
	baseURL, err := normalizeBaseURL(profile.BaseURL)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	timestamp := utils.SnapTimestamp(h.now())
	signature, err := h.signer.AsymmetricSign(profile.MerchantID, timestamp, profile.PrivateKey)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	h.logger.Debug().
		Str("profile_id", profile.ID).
		Str("path", path).
		Msg("requesting access token")

	resp, err := h.signedTokenRequest(ctx, profile.MerchantID, timestamp, signature).
		SetBody(body).
		Post(baseURL + path)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = mapSnapError(op, resp); err != nil {
		return err
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}

	return nil
}

func (h *httpSnapAdapter) signedTokenRequest(ctx context.Context, clientKey, timestamp, signature string) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("X-CLIENT-KEY", clientKey).
		SetHeader("X-TIMESTAMP", timestamp).
		SetHeader("X-SIGNATURE", signature)
}

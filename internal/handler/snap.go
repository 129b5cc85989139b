// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"context"

	"github.com/MKhiriev/snap-desk/models"
)

func (h *Handler) accessTokenB2B(ctx context.Context, args ProfileArgs) (string, error) {
	token, err := h.services.SnapService.AccessTokenB2B(ctx, args.ProfileID)
	if err != nil {
		return "", h.mapError(CommandAccessTokenB2B, err)
	}
	return token, nil
}

func (h *Handler) accessTokenB2B2C(ctx context.Context, args B2B2CArgs) (models.AccessTokenB2B2CResponse, error) {
	resp, err := h.services.SnapService.AccessTokenB2B2C(ctx, args.ProfileID, args.Data, args.IsAuthCode)
	if err != nil {
		return models.AccessTokenB2B2CResponse{}, h.mapError(CommandAccessTokenB2B2C, err)
	}
	return resp, nil
}

func (h *Handler) qrMPMGenerate(ctx context.Context, req models.QrRequest) (models.QrMPMGenerateResponse, error) {
	resp, err := h.services.SnapService.GenerateQR(ctx, req)
	if err != nil {
		return models.QrMPMGenerateResponse{}, h.mapError(CommandQrMPMGenerate, err)
	}
	return resp, nil
}

func (h *Handler) appInfo(ctx context.Context, _ struct{}) (models.AppInfo, error) {
	return h.services.AppInfoService.AppInfo(ctx), nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/snap-desk/internal/adapter"
	"github.com/MKhiriev/snap-desk/internal/logger"
	"github.com/MKhiriev/snap-desk/internal/store"
	"github.com/MKhiriev/snap-desk/internal/utils"
	"github.com/MKhiriev/snap-desk/internal/validators"
	"github.com/MKhiriev/snap-desk/models"
)

// tokenExpirySkew is subtracted from a token's lifetime so that a cached
// token is never sent in its last seconds.
const tokenExpirySkew = 10 * time.Second

type cachedToken struct {
	token     string
	expiresAt time.Time
}

type snapService struct {
	repo      store.ProfileRepository
	adapter   adapter.SnapAdapter
	validator validators.Validator

	mu     sync.Mutex
	tokens map[string]cachedToken

	now func() time.Time

	logger *logger.Logger
}

func NewSnapService(repo store.ProfileRepository, snapAdapter adapter.SnapAdapter, validator validators.Validator, logger *logger.Logger) SnapService {
	return &snapService{
		repo:      repo,
		adapter:   snapAdapter,
		validator: validator,
		tokens:    make(map[string]cachedToken),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *snapService) AccessTokenB2B(ctx context.Context, profileID string) (string, error) {
	profile, err := s.profile(ctx, profileID)
	if err != nil {
		return "", err
	}
	return s.tokenB2B(ctx, profile)
}

func (s *snapService) AccessTokenB2B2C(ctx context.Context, profileID, grant string, isAuthCode bool) (models.AccessTokenB2B2CResponse, error) {
	if grant == "" {
		return models.AccessTokenB2B2CResponse{}, fmt.Errorf("%w: empty grant", ErrInvalidDataProvided)
	}

	profile, err := s.profile(ctx, profileID)
	if err != nil {
		return models.AccessTokenB2B2CResponse{}, err
	}

	return s.adapter.AccessTokenB2B2C(ctx, profile, grant, isAuthCode)
}

func (s *snapService) GenerateQR(ctx context.Context, req models.QrRequest) (models.QrMPMGenerateResponse, error) {
	// selection is checked before field validation so a missing profile
	// reads the same as for the token commands
	if req.ProfileID == "" {
		return models.QrMPMGenerateResponse{}, ErrNoProfileSelected
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.QrMPMGenerateResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	profile, err := s.profile(ctx, req.ProfileID)
	if err != nil {
		return models.QrMPMGenerateResponse{}, err
	}

	params := adapter.QrParams{
		ReferenceNo: req.ReferenceNo,
		CallbackURL: req.CallbackURL,
		Amount:      req.Amount,
	}
	if params.ReferenceNo == "" {
		params.ReferenceNo = utils.SnapReferenceNo(s.now())
	}

	token, err := s.tokenB2B(ctx, profile)
	if err != nil {
		return models.QrMPMGenerateResponse{}, err
	}

	resp, err := s.adapter.GenerateQrMPM(ctx, profile, token, params)
	if isUnauthorized(err) {
		// the provider revoked a token we still considered valid
		s.logger.Debug().Str("profile_id", profile.ID).Msg("cached token rejected, requesting a new one")
		s.forget(profile)

		if token, err = s.tokenB2B(ctx, profile); err != nil {
			return models.QrMPMGenerateResponse{}, err
		}
		resp, err = s.adapter.GenerateQrMPM(ctx, profile, token, params)
	}
	if err != nil {
		return models.QrMPMGenerateResponse{}, err
	}

	return resp, nil
}

func (s *snapService) profile(ctx context.Context, id string) (models.SnapConfig, error) {
	if id == "" {
		return models.SnapConfig{}, ErrNoProfileSelected
	}
	return s.repo.Get(ctx, id)
}

func (s *snapService) tokenB2B(ctx context.Context, profile models.SnapConfig) (string, error) {
	key := cacheKey(profile)
	now := s.now()

	s.mu.Lock()
	cached, ok := s.tokens[key]
	s.mu.Unlock()
	if ok && now.Before(cached.expiresAt) {
		return cached.token, nil
	}

	resp, err := s.adapter.AccessTokenB2B(ctx, profile)
	if err != nil {
		return "", err
	}

	if expiresAt, ok := tokenExpiresAt(resp, now); ok {
		s.mu.Lock()
		s.tokens[key] = cachedToken{token: resp.AccessToken, expiresAt: expiresAt}
		s.mu.Unlock()
	}

	return resp.AccessToken, nil
}

func (s *snapService) forget(profile models.SnapConfig) {
	s.mu.Lock()
	delete(s.tokens, cacheKey(profile))
	s.mu.Unlock()
}

// tokenExpiresAt prefers the expiresIn field and falls back to the exp claim
// of JWT tokens. Tokens with neither are not cached.
func tokenExpiresAt(resp models.AccessTokenB2BResponse, now time.Time) (time.Time, bool) {
	if resp.ExpiresIn > 0 {
		return now.Add(time.Duration(resp.ExpiresIn)*time.Second - tokenExpirySkew), true
	}

	exp, err := utils.TokenExpiry(resp.AccessToken)
	if err != nil {
		return time.Time{}, false
	}
	return exp.Add(-tokenExpirySkew), true
}

// cacheKey ties a token to the credentials that obtained it, so editing a
// profile by hand invalidates its token.
func cacheKey(profile models.SnapConfig) string {
	return profile.ID + "|" + profile.MerchantID + "|" + profile.BaseURL
}

func isUnauthorized(err error) bool {
	var snapErr *adapter.SnapError
	return errors.As(err, &snapErr) && snapErr.StatusCode == http.StatusUnauthorized
}

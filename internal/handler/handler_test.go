// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/MKhiriev/snap-desk/internal/adapter"
	"github.com/MKhiriev/snap-desk/internal/ipc"
	"github.com/MKhiriev/snap-desk/internal/logger"
	"github.com/MKhiriev/snap-desk/internal/mock"
	"github.com/MKhiriev/snap-desk/internal/service"
	"github.com/MKhiriev/snap-desk/internal/store"
	"github.com/MKhiriev/snap-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	profiles *mock.MockProfileService
	snap     *mock.MockSnapService
	appInfo  *mock.MockAppInfoService
	d        *ipc.Dispatcher
}

func newTestDeps(t *testing.T) testDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	deps := testDeps{
		profiles: mock.NewMockProfileService(ctrl),
		snap:     mock.NewMockSnapService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
		d:        ipc.NewDispatcher(logger.Nop()),
	}
	services := &service.Services{
		ProfileService: deps.profiles,
		SnapService:    deps.snap,
		AppInfoService: deps.appInfo,
	}
	require.NoError(t, NewHandler(services, logger.Nop()).Register(deps.d))
	return deps
}

func invoke(t *testing.T, d *ipc.Dispatcher, name, args string) (any, error) {
	t.Helper()
	return d.Invoke(context.Background(), name, json.RawMessage(args))
}

func TestRegister_AllCommands(t *testing.T) {
	deps := newTestDeps(t)

	assert.Equal(t, []string{
		CommandAccessTokenB2B,
		CommandAccessTokenB2B2C,
		CommandAddSnapConfig,
		CommandAppInfo,
		CommandLoadConfig,
		CommandQrMPMGenerate,
		CommandRemoveSnapConfig,
		CommandSelectSnapConfig,
	}, deps.d.Commands())
}

func TestRegister_Twice(t *testing.T) {
	deps := newTestDeps(t)

	err := NewHandler(&service.Services{}, logger.Nop()).Register(deps.d)

	assert.ErrorIs(t, err, ipc.ErrCommandExists)
}

func TestGreet(t *testing.T) {
	ctrl := gomock.NewController(t)
	greeter := mock.NewMockGreeterService(ctrl)
	greeter.EXPECT().Greet("World").Return("Hello, World! You've been greeted!")

	got, err := Greet(greeter)(context.Background(), json.RawMessage(`{"name":"World"}`))

	require.NoError(t, err)
	assert.Equal(t, "Hello, World! You've been greeted!", got)
}

func TestGreet_RealService(t *testing.T) {
	tests := []struct {
		name string
		args string
		want string
	}{
		{name: "named", args: `{"name":"World"}`, want: "Hello, World! You've been greeted!"},
		{name: "empty name", args: `{"name":""}`, want: "Hello, ! You've been greeted!"},
		{name: "no args", args: ``, want: "Hello, ! You've been greeted!"},
	}

	h := Greet(service.NewGreeterService())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h(context.Background(), json.RawMessage(tt.args))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGreet_InvalidArgs(t *testing.T) {
	_, err := Greet(service.NewGreeterService())(context.Background(), json.RawMessage(`{"name":1}`))

	assert.ErrorIs(t, err, ipc.ErrInvalidArgs)
}

func TestLoadConfig(t *testing.T) {
	deps := newTestDeps(t)
	cfg := models.Config{Snap: []models.SnapConfig{{ID: "a"}, {ID: "b"}}}
	deps.profiles.EXPECT().Refresh(gomock.Any()).Return(cfg, nil)
	deps.profiles.EXPECT().Selected().Return(models.SnapConfig{ID: "b"}, true)

	got, err := invoke(t, deps.d, CommandLoadConfig, ``)

	require.NoError(t, err)
	assert.Equal(t, models.ProfileList{Snap: cfg.Snap, SelectedID: "b"}, got)
}

func TestLoadConfig_EmptyConfigHasEmptySlice(t *testing.T) {
	deps := newTestDeps(t)
	deps.profiles.EXPECT().Refresh(gomock.Any()).Return(models.Config{}, nil)
	deps.profiles.EXPECT().Selected().Return(models.SnapConfig{}, false)

	got, err := invoke(t, deps.d, CommandLoadConfig, `null`)

	require.NoError(t, err)
	list := got.(models.ProfileList)
	assert.NotNil(t, list.Snap)
	assert.Empty(t, list.Snap)
	assert.Empty(t, list.SelectedID)
}

func TestLoadConfig_EmptyFile(t *testing.T) {
	deps := newTestDeps(t)
	deps.profiles.EXPECT().Refresh(gomock.Any()).Return(models.Config{}, store.ErrConfigEmpty)

	_, err := invoke(t, deps.d, CommandLoadConfig, ``)

	assert.ErrorIs(t, err, store.ErrConfigEmpty)
	assert.NotErrorIs(t, err, ipc.ErrInvalidArgs)
}

func TestAddSnapConfig(t *testing.T) {
	deps := newTestDeps(t)
	in := models.SnapConfig{Name: "Sandbox", MerchantID: "M1"}
	out := in
	out.ID = "generated"
	deps.profiles.EXPECT().Add(gomock.Any(), in).Return(out, nil)

	got, err := invoke(t, deps.d, CommandAddSnapConfig, `{"name":"Sandbox","merchantID":"M1"}`)

	require.NoError(t, err)
	assert.Equal(t, out, got)
}

func TestAddSnapConfig_ErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		invalidArgs bool
	}{
		{name: "validation", err: service.ErrInvalidDataProvided, invalidArgs: true},
		{name: "duplicate", err: store.ErrProfileExists, invalidArgs: true},
		{name: "io", err: errors.New("disk full"), invalidArgs: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := newTestDeps(t)
			deps.profiles.EXPECT().Add(gomock.Any(), gomock.Any()).Return(models.SnapConfig{}, tt.err)

			_, err := invoke(t, deps.d, CommandAddSnapConfig, `{}`)

			require.ErrorIs(t, err, tt.err)
			assert.Equal(t, tt.invalidArgs, errors.Is(err, ipc.ErrInvalidArgs))
		})
	}
}

func TestRemoveSnapConfig(t *testing.T) {
	deps := newTestDeps(t)
	left := models.Config{Snap: []models.SnapConfig{{ID: "b"}}}
	gomock.InOrder(
		deps.profiles.EXPECT().Remove(gomock.Any(), "a").Return(nil),
		deps.profiles.EXPECT().List(gomock.Any()).Return(left, nil),
		deps.profiles.EXPECT().Selected().Return(models.SnapConfig{}, false),
	)

	got, err := invoke(t, deps.d, CommandRemoveSnapConfig, `{"id":"a"}`)

	require.NoError(t, err)
	assert.Equal(t, models.ProfileList{Snap: left.Snap}, got)
}

func TestRemoveSnapConfig_NotFound(t *testing.T) {
	deps := newTestDeps(t)
	deps.profiles.EXPECT().Remove(gomock.Any(), "zz").Return(store.ErrProfileNotFound)

	_, err := invoke(t, deps.d, CommandRemoveSnapConfig, `{"id":"zz"}`)

	assert.ErrorIs(t, err, ipc.ErrInvalidArgs)
	assert.ErrorIs(t, err, store.ErrProfileNotFound)
}

func TestSelectSnapConfig(t *testing.T) {
	deps := newTestDeps(t)
	profile := models.SnapConfig{ID: "a", Name: "A"}
	deps.profiles.EXPECT().Select(gomock.Any(), "a").Return(profile, nil)

	got, err := invoke(t, deps.d, CommandSelectSnapConfig, `{"id":"a"}`)

	require.NoError(t, err)
	assert.Equal(t, profile, got)
}

func TestAccessTokenB2B(t *testing.T) {
	deps := newTestDeps(t)
	deps.snap.EXPECT().AccessTokenB2B(gomock.Any(), "a").Return("tok", nil)

	got, err := invoke(t, deps.d, CommandAccessTokenB2B, `{"profileId":"a"}`)

	require.NoError(t, err)
	assert.Equal(t, "tok", got)
}

func TestAccessTokenB2B_NoProfileSelected(t *testing.T) {
	deps := newTestDeps(t)
	deps.snap.EXPECT().AccessTokenB2B(gomock.Any(), "").Return("", service.ErrNoProfileSelected)

	_, err := invoke(t, deps.d, CommandAccessTokenB2B, `{}`)

	assert.ErrorIs(t, err, ipc.ErrInvalidArgs)
}

func TestAccessTokenB2B_SnapErrorPassesThrough(t *testing.T) {
	deps := newTestDeps(t)
	snapErr := &adapter.SnapError{Op: "failed to get access token B2B", StatusCode: 401, ResponseMessage: "Unauthorized. Signature"}
	deps.snap.EXPECT().AccessTokenB2B(gomock.Any(), "a").Return("", snapErr)

	_, err := invoke(t, deps.d, CommandAccessTokenB2B, `{"profileId":"a"}`)

	var got *adapter.SnapError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, "failed to get access token B2B: Unauthorized. Signature", err.Error())
	assert.NotErrorIs(t, err, ipc.ErrInvalidArgs)
}

func TestAccessTokenB2B2C(t *testing.T) {
	deps := newTestDeps(t)
	resp := models.AccessTokenB2B2CResponse{AccessToken: "user-tok", RefreshToken: "r"}
	deps.snap.EXPECT().AccessTokenB2B2C(gomock.Any(), "a", "code-1", true).Return(resp, nil)

	got, err := invoke(t, deps.d, CommandAccessTokenB2B2C, `{"profileId":"a","data":"code-1","isAuthCode":true}`)

	require.NoError(t, err)
	assert.Equal(t, resp, got)
}

func TestQrMPMGenerate(t *testing.T) {
	deps := newTestDeps(t)
	req := models.QrRequest{ProfileID: "a", ReferenceNo: "R1", CallbackURL: "https://cb", Amount: 10000}
	resp := models.QrMPMGenerateResponse{ResponseCode: "2004700", QrContent: "000201"}
	deps.snap.EXPECT().GenerateQR(gomock.Any(), req).Return(resp, nil)

	got, err := invoke(t, deps.d, CommandQrMPMGenerate,
		`{"profileId":"a","referenceNo":"R1","callbackUrl":"https://cb","amount":10000}`)

	require.NoError(t, err)
	assert.Equal(t, resp, got)
}

func TestQrMPMGenerate_BadArgs(t *testing.T) {
	deps := newTestDeps(t)

	_, err := invoke(t, deps.d, CommandQrMPMGenerate, `{"amount":"ten"}`)

	assert.ErrorIs(t, err, ipc.ErrInvalidArgs)
}

func TestAppInfo(t *testing.T) {
	deps := newTestDeps(t)
	info := models.AppInfo{Version: "1.0.0", Identifier: "com.snapdesk.app", ConfigDir: "/cfg"}
	deps.appInfo.EXPECT().AppInfo(gomock.Any()).Return(info)

	got, err := invoke(t, deps.d, CommandAppInfo, ``)

	require.NoError(t, err)
	assert.Equal(t, info, got)
}

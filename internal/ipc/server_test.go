// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ipc

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/snap-desk/internal/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	d := NewDispatcher(logger.Nop())
	require.NoError(t, d.Register("greet", greetHandler()))
	require.NoError(t, d.Register("fail", func(context.Context, json.RawMessage) (any, error) {
		return nil, errors.New("provider unavailable")
	}))
	require.NoError(t, d.Register("panic", func(context.Context, json.RawMessage) (any, error) {
		panic("boom")
	}))
	return NewServer("127.0.0.1:0", d, logger.Nop())
}

func serve(s *Server, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	return rr
}

func TestServer_Invoke(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "success",
			path:       "/ipc/greet",
			body:       `{"name":"Ann"}`,
			wantStatus: http.StatusOK,
			wantBody:   `"Hello, Ann! You've been greeted!"`,
		},
		{
			name:       "empty body",
			path:       "/ipc/greet",
			wantStatus: http.StatusOK,
			wantBody:   `"Hello, ! You've been greeted!"`,
		},
		{
			name:       "unknown command",
			path:       "/ipc/nope",
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"unknown command: nope"}`,
		},
		{
			name:       "malformed args",
			path:       "/ipc/greet",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "handler error",
			path:       "/ipc/fail",
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"provider unavailable"}`,
		},
		{
			name:       "handler panic is recovered",
			path:       "/ipc/panic",
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(newTestServer(t), http.MethodPost, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestServer_RejectsBrowserRequests(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		origin      string
		wantStatus  int
	}{
		{
			name:        "cross-origin simple request",
			contentType: "text/plain",
			origin:      "https://evil.example",
			wantStatus:  http.StatusForbidden,
		},
		{
			name:        "cross-origin json request",
			contentType: "application/json",
			origin:      "https://evil.example",
			wantStatus:  http.StatusForbidden,
		},
		{
			name:        "plain text body",
			contentType: "text/plain",
			wantStatus:  http.StatusUnsupportedMediaType,
		},
		{
			name:        "form body",
			contentType: "application/x-www-form-urlencoded",
			wantStatus:  http.StatusUnsupportedMediaType,
		},
		{
			name:        "json with charset",
			contentType: "application/json; charset=utf-8",
			wantStatus:  http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			d := NewDispatcher(logger.Nop())
			require.NoError(t, d.Register("plugin:fs|write_text_file", func(context.Context, json.RawMessage) (any, error) {
				called = true
				return struct{}{}, nil
			}))
			s := NewServer("127.0.0.1:0", d, logger.Nop())

			req := httptest.NewRequest(http.MethodPost, "/ipc/plugin:fs%7Cwrite_text_file",
				strings.NewReader(`{"path":"config.json","contents":"{}"}`))
			req.Header.Set("Content-Type", tt.contentType)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rr := httptest.NewRecorder()
			s.Handler().ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, called)
		})
	}
}

func TestServer_ArgsTooLarge(t *testing.T) {
	body := `{"name":"` + strings.Repeat("a", maxArgsBytes) + `"}`

	rr := serve(newTestServer(t), http.MethodPost, "/ipc/greet", body)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.Contains(t, rr.Body.String(), "request body exceeds")
}

func TestServer_ListCommands(t *testing.T) {
	rr := serve(newTestServer(t), http.MethodGet, "/ipc/", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `["fail","greet","panic"]`, rr.Body.String())
}

func TestServer_MethodNotAllowed(t *testing.T) {
	rr := serve(newTestServer(t), http.MethodGet, "/ipc/greet", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestServer_TraceIDHeader(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/ipc/greet", nil)
	req.Header.Set(traceIDHeader, "trace-1")
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	assert.Equal(t, "trace-1", rr.Header().Get(traceIDHeader))

	rr = serve(s, http.MethodPost, "/ipc/greet", "")
	_, err := uuid.Parse(rr.Header().Get(traceIDHeader))
	assert.NoError(t, err, "generated trace id must be a UUID")
}

func TestServer_Run_StopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	s := newTestServer(t)
	s.address = addr

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- s.Run(ctx) }()

	client := NewClient(addr, time.Second)
	require.Eventually(t, func() bool {
		_, err := client.Commands(context.Background())
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)
	client.client.GetClient().CloseIdleConnections()

	cancel()
	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestServer_Run_ListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	s := newTestServer(t)
	s.address = ln.Addr().String()

	err = s.Run(context.Background())

	assert.Error(t, err)
}

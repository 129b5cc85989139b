// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ipc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/snap-desk/internal/logger"
	"github.com/MKhiriev/snap-desk/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	shutdownTimeout = 5 * time.Second
	maxArgsBytes    = 1 << 20
)

// Server exposes a [Dispatcher] over HTTP on a loopback address.
type Server struct {
	address    string
	dispatcher *Dispatcher

	logger *logger.Logger
}

func NewServer(address string, dispatcher *Dispatcher, logger *logger.Logger) *Server {
	return &Server{
		address:    address,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Handler returns the chi router serving the command routes.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.withTraceID)
	router.Use(s.withLogging)
	router.Use(s.rejectCrossOrigin)

	router.Route("/ipc", func(r chi.Router) {
		r.Get("/", s.listCommands)
		r.With(middleware.AllowContentType("application/json")).Post("/{command}", s.invoke)
	})

	return router
}

// Run listens on the configured address and serves until ctx is cancelled,
// then shuts down gracefully. It implements the workers.Worker contract.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("ipc listen on %s: %w", s.address, err)
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()
	s.logger.Info().Str("address", ln.Addr().String()).Msg("ipc server started")

	select {
	case err = <-errc:
		return fmt.Errorf("ipc serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("ipc shutdown: %w", err)
	}
	if err = <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("ipc serve: %w", err)
	}

	s.logger.Info().Msg("ipc server stopped")
	return nil
}

func (s *Server) listCommands(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, s.dispatcher.Commands(), http.StatusOK)
}

func (s *Server) invoke(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "command")
	log := logger.FromRequest(r)

	args, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxArgsBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Warn().Str("command", name).Int64("limit", tooLarge.Limit).Msg("command arguments too large")
			_, _ = utils.WriteError(w, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit), http.StatusRequestEntityTooLarge)
			return
		}
		_, _ = utils.WriteError(w, "error reading request body", http.StatusBadRequest)
		return
	}

	result, err := s.dispatcher.Invoke(r.Context(), name, json.RawMessage(args))
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("command", name).Int("status", status).Msg("command failed")
		_, _ = utils.WriteError(w, err.Error(), status)
		return
	}

	if _, err = utils.WriteJSON(w, result, http.StatusOK); err != nil {
		log.Err(err).Str("command", name).Msg("error writing command result")
	}
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, ErrUnknownCommand):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidArgs):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

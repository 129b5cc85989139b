// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"context"
	"errors"

	"github.com/MKhiriev/snap-desk/internal/ipc"
	"github.com/MKhiriev/snap-desk/internal/logger"
	"github.com/MKhiriev/snap-desk/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("command handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Register binds every service-backed command to d.
func (h *Handler) Register(d *ipc.Dispatcher) error {
	commands := map[string]ipc.Handler{
		CommandLoadConfig:       ipc.Typed(h.loadConfig),
		CommandAddSnapConfig:    ipc.Typed(h.addSnapConfig),
		CommandRemoveSnapConfig: ipc.Typed(h.removeSnapConfig),
		CommandSelectSnapConfig: ipc.Typed(h.selectSnapConfig),
		CommandAccessTokenB2B:   ipc.Typed(h.accessTokenB2B),
		CommandAccessTokenB2B2C: ipc.Typed(h.accessTokenB2B2C),
		CommandQrMPMGenerate:    ipc.Typed(h.qrMPMGenerate),
		CommandAppInfo:          ipc.Typed(h.appInfo),
	}

	var errs []error
	for name, cmd := range commands {
		errs = append(errs, d.Register(name, cmd))
	}
	return errors.Join(errs...)
}

// Greet returns the greet command. It needs no config directory and is
// registered with the host builder directly.
func Greet(greeter service.GreeterService) ipc.Handler {
	return ipc.Typed(func(ctx context.Context, args GreetArgs) (string, error) {
		return greeter.Greet(args.Name), nil
	})
}

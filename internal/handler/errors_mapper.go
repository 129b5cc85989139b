// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/snap-desk/internal/adapter"
	"github.com/MKhiriev/snap-desk/internal/app"
	"github.com/MKhiriev/snap-desk/internal/ipc"
	"github.com/MKhiriev/snap-desk/internal/service"
	"github.com/MKhiriev/snap-desk/internal/store"
)

// mapError logs err and converts caller mistakes into ipc.ErrInvalidArgs so
// the IPC server answers them with 400.
func (h *Handler) mapError(command string, err error) error {
	log := h.logger.With().Str("command", command).Logger()

	var snapErr *adapter.SnapError
	switch {
	case errors.Is(err, ipc.ErrInvalidArgs):
		log.Err(err).Msg(app.MsgInvalidDataProvided)
		return err
	case errors.Is(err, service.ErrInvalidDataProvided):
		log.Err(err).Msg(app.MsgInvalidDataProvided)
		return fmt.Errorf("%w: %w", ipc.ErrInvalidArgs, err)
	case errors.Is(err, store.ErrProfileNotFound):
		log.Err(err).Msg(app.MsgProfileNotFound)
		return fmt.Errorf("%w: %w", ipc.ErrInvalidArgs, err)
	case errors.Is(err, service.ErrNoProfileSelected):
		log.Err(err).Msg(app.MsgNoProfileSelected)
		return fmt.Errorf("%w: %w", ipc.ErrInvalidArgs, err)
	case errors.Is(err, store.ErrProfileExists):
		log.Err(err).Msg(app.MsgProfileExists)
		return fmt.Errorf("%w: %w", ipc.ErrInvalidArgs, err)
	case errors.Is(err, store.ErrConfigEmpty):
		log.Err(err).Msg(app.MsgConfigEmpty)
		return err
	case errors.As(err, &snapErr):
		log.Err(err).Int("status", snapErr.StatusCode).
			Str("responseCode", snapErr.ResponseCode).Msg(app.MsgSnapRequestFailed)
		return err
	default:
		log.Err(err).Msg(app.MsgInternalError)
		return err
	}
}

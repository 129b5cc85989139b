// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ipc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/snap-desk/internal/logger"
)

// Handler executes one command. args is the raw JSON argument object and may
// be empty.
type Handler func(ctx context.Context, args json.RawMessage) (any, error)

// Dispatcher routes commands by name. It is safe for concurrent use.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string]Handler

	logger *logger.Logger
}

func NewDispatcher(logger *logger.Logger) *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string]Handler),
		logger:   logger,
	}
}

// Register binds name to h. Names are unique.
func (d *Dispatcher) Register(name string, h Handler) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.handlers[name]; ok {
		return fmt.Errorf("%w: %s", ErrCommandExists, name)
	}
	d.handlers[name] = h

	d.logger.Debug().Str("command", name).Msg("command registered")
	return nil
}

// Invoke runs the command registered under name.
func (d *Dispatcher) Invoke(ctx context.Context, name string, args json.RawMessage) (any, error) {
	d.mu.RLock()
	h, ok := d.handlers[name]
	d.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	return h(ctx, args)
}

// Commands returns the registered command names in lexical order.
func (d *Dispatcher) Commands() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Decode unmarshals args into T. Empty or null args yield the zero T so that
// commands without arguments can be invoked with no body.
func Decode[T any](args json.RawMessage) (T, error) {
	var v T
	trimmed := bytes.TrimSpace(args)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return v, nil
	}

	if err := json.Unmarshal(trimmed, &v); err != nil {
		return v, fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}
	return v, nil
}

// Typed adapts a function taking decoded arguments into a [Handler].
func Typed[A, R any](fn func(ctx context.Context, args A) (R, error)) Handler {
	return func(ctx context.Context, raw json.RawMessage) (any, error) {
		args, err := Decode[A](raw)
		if err != nil {
			return nil, err
		}
		return fn(ctx, args)
	}
}

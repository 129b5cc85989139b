// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ipc

import (
	"context"
	"encoding/json"
	"fmt"
)

// LocalInvoker calls a [Dispatcher] in-process with the same JSON round trip
// a remote [Client] performs, so both behave identically for the caller.
type LocalInvoker struct {
	dispatcher *Dispatcher
}

func NewLocalInvoker(dispatcher *Dispatcher) *LocalInvoker {
	return &LocalInvoker{dispatcher: dispatcher}
}

func (l *LocalInvoker) Invoke(ctx context.Context, name string, args any, out any) error {
	var raw json.RawMessage
	if args != nil {
		b, err := json.Marshal(args)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
		}
		raw = b
	}

	result, err := l.dispatcher.Invoke(ctx, name, raw)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}

	b, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode %s result: %w", name, err)
	}
	if err = json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode %s result: %w", name, err)
	}
	return nil
}

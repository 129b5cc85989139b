// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ipc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/snap-desk/internal/utils"
)

// Client invokes commands on a remote [Server].
type Client struct {
	client *utils.HTTPClient
}

// NewClient returns a Client for the server listening on address
// (host:port).
func NewClient(address string, timeout time.Duration) *Client {
	c := utils.NewHTTPClient(timeout)
	c.SetBaseURL("http://" + strings.TrimPrefix(address, "http://"))
	return &Client{client: c}
}

// Invoke sends args as the JSON body of command name and decodes the result
// into out. out may be nil when the result is not needed.
func (c *Client) Invoke(ctx context.Context, name string, args any, out any) error {
	req := c.client.R().SetContext(ctx)
	if args != nil {
		req.SetBody(args)
	}

	resp, err := req.Post("/ipc/" + url.PathEscape(name))
	if err != nil {
		return fmt.Errorf("invoke %s: %w", name, err)
	}

	if resp.StatusCode() != http.StatusOK {
		var body utils.ErrorBody
		_ = json.Unmarshal(resp.Body(), &body)
		if body.Error == "" {
			body.Error = http.StatusText(resp.StatusCode())
		}

		switch resp.StatusCode() {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
		case http.StatusBadRequest:
			return fmt.Errorf("%w: %s", ErrInvalidArgs, body.Error)
		default:
			return &RemoteError{Command: name, StatusCode: resp.StatusCode(), Message: body.Error}
		}
	}

	if out == nil {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s result: %w", name, err)
	}
	return nil
}

// Commands lists the commands registered on the server.
func (c *Client) Commands(ctx context.Context) ([]string, error) {
	var names []string
	resp, err := c.client.R().SetContext(ctx).Get("/ipc/")
	if err != nil {
		return nil, fmt.Errorf("list commands: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("list commands: unexpected status %d", resp.StatusCode())
	}
	if err = json.Unmarshal(resp.Body(), &names); err != nil {
		return nil, fmt.Errorf("decode command list: %w", err)
	}
	return names, nil
}

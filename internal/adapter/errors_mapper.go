// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/snap-desk/models"
	"github.com/go-resty/resty/v2"
)

// mapSnapError returns nil for 2xx responses. Otherwise the body is decoded as
// [models.SnapErrorResponse]; an undecodable body leaves the message empty so
// the unknown-error text is reported.
func mapSnapError(op string, resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var body models.SnapErrorResponse
	_ = json.Unmarshal(resp.Body(), &body)

	return &SnapError{
		Op:              op,
		StatusCode:      resp.StatusCode(),
		ResponseCode:    body.ResponseCode,
		ResponseMessage: body.ResponseMessage,
	}
}

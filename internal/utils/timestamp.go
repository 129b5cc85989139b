// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "time"

// SnapTimestampLayout is the X-TIMESTAMP format: local time with a numeric
// zone offset and no fractional seconds.
const SnapTimestampLayout = "2006-01-02T15:04:05-07:00"

// SnapTimestamp formats t for the X-TIMESTAMP header.
func SnapTimestamp(t time.Time) string {
	return t.Format(SnapTimestampLayout)
}

// SnapReferenceNo derives a partner reference number from t when the caller
// supplies none.
func SnapReferenceNo(t time.Time) string {
	return t.Format("20060102150405")
}

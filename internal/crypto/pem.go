// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/pem"
	"strings"
)

// pemDecode tolerates keys pasted into a single-line form field, where the
// newlines were turned into literal "\n" sequences.
func pemDecode(value string) (*pem.Block, []byte) {
	value = strings.TrimSpace(value)
	if !strings.Contains(value, "\n") && strings.Contains(value, `\n`) {
		value = strings.ReplaceAll(value, `\n`, "\n")
	}
	return pem.Decode([]byte(value))
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// SessionTokenBytes is the entropy of a session token. The birthday bound on
// a 256-bit space makes collisions negligible, so tokens are not checked for
// uniqueness at generation time.
const SessionTokenBytes = 32

// GenerateSessionToken draws 32 bytes from a cryptographically secure RNG and
// encodes them as URL-safe base64 without padding.
func GenerateSessionToken() (string, error) {
	bytes := make([]byte, SessionTokenBytes)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("generating session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

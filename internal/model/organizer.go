// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Organizer is the tenant that owns events and analytics. It shares its ID
// with the User it belongs to (one-to-one).
type Organizer struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Logo    *string `json:"logo"`
	Website *string `json:"website"`
}

// Category is read-only reference data shared across organizers.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

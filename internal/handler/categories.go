// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"
)

// ListCategories handles GET /api/categories. The list is shared reference
// data and comes through the read-through cache.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		slog.Error("failed to list categories", "error", err)
		WriteInternalError(w, "Failed to list categories")
		return
	}

	WriteSuccess(w, categories, &Meta{Total: int64(len(categories))})
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/eventdeck/eventdeck/internal/model"
	"github.com/eventdeck/eventdeck/internal/store"
)

const categoriesKey = "categories"

// Categories is a read-through cache over the category list. Categories only
// change with migrations, so a generous TTL is fine.
type Categories struct {
	cache   Cache
	queries *store.Queries
	ttl     time.Duration
}

// NewCategories creates a read-through category cache.
func NewCategories(c Cache, queries *store.Queries, ttl time.Duration) *Categories {
	return &Categories{cache: c, queries: queries, ttl: ttl}
}

// List returns all categories, from cache when possible. Cache failures fall
// back to the database and are logged, never surfaced.
func (c *Categories) List(ctx context.Context) ([]model.Category, error) {
	if data, err := c.cache.Get(ctx, categoriesKey); err == nil {
		var categories []model.Category
		if err := json.Unmarshal(data, &categories); err == nil {
			return categories, nil
		}
		// Corrupt entry: drop it and reload from the database.
		_ = c.cache.Delete(ctx, categoriesKey)
	}

	categories, err := c.queries.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(categories); err == nil {
		if err := c.cache.Set(ctx, categoriesKey, data, c.ttl); err != nil {
			slog.Warn("failed to cache categories", "error", err)
		}
	}
	return categories, nil
}

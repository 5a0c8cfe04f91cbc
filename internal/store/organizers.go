// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"

	"github.com/eventdeck/eventdeck/internal/model"
)

// GetOrganizer fetches an organizer profile. The organizer ID equals the
// owning user's ID.
func (q *Queries) GetOrganizer(ctx context.Context, id int64) (model.Organizer, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT id, name, logo, website FROM organizers WHERE id = ?`,
		id,
	)

	var o model.Organizer
	err := row.Scan(&o.ID, &o.Name, &o.Logo, &o.Website)
	return o, err
}

// CreateOrganizer inserts an organizer profile with an explicit ID.
func (q *Queries) CreateOrganizer(ctx context.Context, arg model.Organizer) (model.Organizer, error) {
	row := q.db.QueryRowContext(ctx,
		`INSERT INTO organizers (id, name, logo, website)
		 VALUES (?, ?, ?, ?)
		 RETURNING id, name, logo, website`,
		arg.ID, arg.Name, arg.Logo, arg.Website,
	)

	var o model.Organizer
	err := row.Scan(&o.ID, &o.Name, &o.Logo, &o.Website)
	return o, err
}

// UpdateOrganizer replaces an organizer profile by ID.
func (q *Queries) UpdateOrganizer(ctx context.Context, arg model.Organizer) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE organizers SET name = ?, logo = ?, website = ? WHERE id = ?`,
		arg.Name, arg.Logo, arg.Website, arg.ID,
	)
	return err
}

// DeleteOrganizer removes an organizer profile.
func (q *Queries) DeleteOrganizer(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM organizers WHERE id = ?`, id)
	return err
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CreateAuditEntryParams holds the fields for CreateAuditEntry.
type CreateAuditEntryParams struct {
	Level    string
	Category string
	Message  string
	Metadata string
}

// CreateAuditEntry records an audit row with a generated UUID key and returns
// the new ID.
func (q *Queries) CreateAuditEntry(ctx context.Context, arg CreateAuditEntryParams) (string, error) {
	id := uuid.New().String()
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO audit_log (id, level, category, message, metadata)
		 VALUES (?, ?, ?, ?, ?)`,
		id, arg.Level, arg.Category, arg.Message, arg.Metadata,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// DeleteAuditEntriesBefore prunes audit rows older than the cutoff and
// returns the number removed.
func (q *Queries) DeleteAuditEntriesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := q.db.ExecContext(ctx,
		`DELETE FROM audit_log WHERE created_at < ?`,
		cutoff.UTC().Format(timestampLayout),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// CountAuditEntries returns the number of audit rows.
func (q *Queries) CountAuditEntries(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM audit_log`).Scan(&n)
	return n, err
}

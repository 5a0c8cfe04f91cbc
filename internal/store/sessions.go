// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"

	"github.com/eventdeck/eventdeck/internal/model"
)

// CreateSessionParams holds the fields for CreateSession.
type CreateSessionParams struct {
	UserID int64
	Token  string
}

// CreateSession inserts a new session row. Sessions have no expiration; they
// are valid until deleted at logout.
func (q *Queries) CreateSession(ctx context.Context, arg CreateSessionParams) (model.Session, error) {
	row := q.db.QueryRowContext(ctx,
		`INSERT INTO sessions (user_id, token)
		 VALUES (?, ?)
		 RETURNING id, user_id, token`,
		arg.UserID, arg.Token,
	)

	var s model.Session
	err := row.Scan(&s.ID, &s.UserID, &s.Token)
	return s, err
}

// GetSessionByToken fetches a session by its token. Returns sql.ErrNoRows
// when the token is unknown.
func (q *Queries) GetSessionByToken(ctx context.Context, token string) (model.Session, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT id, user_id, token FROM sessions WHERE token = ?`,
		token,
	)

	var s model.Session
	err := row.Scan(&s.ID, &s.UserID, &s.Token)
	return s, err
}

// DeleteSession removes a session by token.
func (q *Queries) DeleteSession(ctx context.Context, token string) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = ?`, token)
	return err
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"

	"github.com/eventdeck/eventdeck/internal/model"
)

// Sub-resource accessors. Each entity belongs to exactly one event and is
// managed through the event's detail-editing flow: list by event, bulk
// create, bulk update. Per-item deletes are not exposed; rows go away with
// their parent event (ON DELETE CASCADE).
//
// The bulk helpers apply items one by one against whatever handle the
// Queries is bound to. Run them through WithTx for all-or-nothing semantics.
// Updates match on both id and event_id, so an ID pointing into another
// event's rows updates nothing.

// ListAgenda returns an event's agenda items.
func (q *Queries) ListAgenda(ctx context.Context, eventID int64) ([]model.Agenda, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, event_id, start_time, title, speaker FROM agendas WHERE event_id = ?`,
		eventID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Agenda
	for rows.Next() {
		var a model.Agenda
		if err := rows.Scan(&a.ID, &a.EventID, &a.StartTime, &a.Title, &a.Speaker); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

// CreateAgenda inserts one agenda item and returns the stored row.
func (q *Queries) CreateAgenda(ctx context.Context, arg model.Agenda) (model.Agenda, error) {
	row := q.db.QueryRowContext(ctx,
		`INSERT INTO agendas (event_id, start_time, title, speaker)
		 VALUES (?, ?, ?, ?)
		 RETURNING id, event_id, start_time, title, speaker`,
		arg.EventID, arg.StartTime, arg.Title, arg.Speaker,
	)

	var a model.Agenda
	err := row.Scan(&a.ID, &a.EventID, &a.StartTime, &a.Title, &a.Speaker)
	return a, err
}

// UpdateAgenda replaces one agenda item by ID within its event's scope.
func (q *Queries) UpdateAgenda(ctx context.Context, arg model.Agenda) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE agendas SET start_time = ?, title = ?, speaker = ? WHERE id = ? AND event_id = ?`,
		arg.StartTime, arg.Title, arg.Speaker, arg.ID, arg.EventID,
	)
	return err
}

// CreateAgendaItems inserts agenda items one by one.
func (q *Queries) CreateAgendaItems(ctx context.Context, items []model.Agenda) ([]model.Agenda, error) {
	created := make([]model.Agenda, 0, len(items))
	for _, item := range items {
		a, err := q.CreateAgenda(ctx, item)
		if err != nil {
			return nil, err
		}
		created = append(created, a)
	}
	return created, nil
}

// UpdateAgendaItems updates agenda items one by one.
func (q *Queries) UpdateAgendaItems(ctx context.Context, items []model.Agenda) error {
	for _, item := range items {
		if err := q.UpdateAgenda(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

// ListSpeakers returns an event's speakers.
func (q *Queries) ListSpeakers(ctx context.Context, eventID int64) ([]model.Speaker, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, event_id, name, bio, photo FROM speakers WHERE event_id = ?`,
		eventID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Speaker
	for rows.Next() {
		var s model.Speaker
		if err := rows.Scan(&s.ID, &s.EventID, &s.Name, &s.Bio, &s.Photo); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

// CreateSpeaker inserts one speaker and returns the stored row.
func (q *Queries) CreateSpeaker(ctx context.Context, arg model.Speaker) (model.Speaker, error) {
	row := q.db.QueryRowContext(ctx,
		`INSERT INTO speakers (event_id, name, bio, photo)
		 VALUES (?, ?, ?, ?)
		 RETURNING id, event_id, name, bio, photo`,
		arg.EventID, arg.Name, arg.Bio, arg.Photo,
	)

	var s model.Speaker
	err := row.Scan(&s.ID, &s.EventID, &s.Name, &s.Bio, &s.Photo)
	return s, err
}

// UpdateSpeaker replaces one speaker by ID within its event's scope.
func (q *Queries) UpdateSpeaker(ctx context.Context, arg model.Speaker) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE speakers SET name = ?, bio = ?, photo = ? WHERE id = ? AND event_id = ?`,
		arg.Name, arg.Bio, arg.Photo, arg.ID, arg.EventID,
	)
	return err
}

// CreateSpeakers inserts speakers one by one.
func (q *Queries) CreateSpeakers(ctx context.Context, items []model.Speaker) ([]model.Speaker, error) {
	created := make([]model.Speaker, 0, len(items))
	for _, item := range items {
		s, err := q.CreateSpeaker(ctx, item)
		if err != nil {
			return nil, err
		}
		created = append(created, s)
	}
	return created, nil
}

// UpdateSpeakers updates speakers one by one.
func (q *Queries) UpdateSpeakers(ctx context.Context, items []model.Speaker) error {
	for _, item := range items {
		if err := q.UpdateSpeaker(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

// ListFaqs returns an event's FAQs.
func (q *Queries) ListFaqs(ctx context.Context, eventID int64) ([]model.Faq, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, event_id, question, answer FROM faqs WHERE event_id = ?`,
		eventID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Faq
	for rows.Next() {
		var f model.Faq
		if err := rows.Scan(&f.ID, &f.EventID, &f.Question, &f.Answer); err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	return items, rows.Err()
}

// CreateFaq inserts one FAQ and returns the stored row.
func (q *Queries) CreateFaq(ctx context.Context, arg model.Faq) (model.Faq, error) {
	row := q.db.QueryRowContext(ctx,
		`INSERT INTO faqs (event_id, question, answer)
		 VALUES (?, ?, ?)
		 RETURNING id, event_id, question, answer`,
		arg.EventID, arg.Question, arg.Answer,
	)

	var f model.Faq
	err := row.Scan(&f.ID, &f.EventID, &f.Question, &f.Answer)
	return f, err
}

// UpdateFaq replaces one FAQ by ID within its event's scope.
func (q *Queries) UpdateFaq(ctx context.Context, arg model.Faq) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE faqs SET question = ?, answer = ? WHERE id = ? AND event_id = ?`,
		arg.Question, arg.Answer, arg.ID, arg.EventID,
	)
	return err
}

// CreateFaqs inserts FAQs one by one.
func (q *Queries) CreateFaqs(ctx context.Context, items []model.Faq) ([]model.Faq, error) {
	created := make([]model.Faq, 0, len(items))
	for _, item := range items {
		f, err := q.CreateFaq(ctx, item)
		if err != nil {
			return nil, err
		}
		created = append(created, f)
	}
	return created, nil
}

// UpdateFaqs updates FAQs one by one.
func (q *Queries) UpdateFaqs(ctx context.Context, items []model.Faq) error {
	for _, item := range items {
		if err := q.UpdateFaq(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

// ListAttachments returns an event's attachments.
func (q *Queries) ListAttachments(ctx context.Context, eventID int64) ([]model.Attachment, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, event_id, name, url FROM attachments WHERE event_id = ?`,
		eventID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Attachment
	for rows.Next() {
		var a model.Attachment
		if err := rows.Scan(&a.ID, &a.EventID, &a.Name, &a.URL); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

// CreateAttachment inserts one attachment and returns the stored row.
func (q *Queries) CreateAttachment(ctx context.Context, arg model.Attachment) (model.Attachment, error) {
	row := q.db.QueryRowContext(ctx,
		`INSERT INTO attachments (event_id, name, url)
		 VALUES (?, ?, ?)
		 RETURNING id, event_id, name, url`,
		arg.EventID, arg.Name, arg.URL,
	)

	var a model.Attachment
	err := row.Scan(&a.ID, &a.EventID, &a.Name, &a.URL)
	return a, err
}

// UpdateAttachment replaces one attachment by ID within its event's scope.
func (q *Queries) UpdateAttachment(ctx context.Context, arg model.Attachment) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE attachments SET name = ?, url = ? WHERE id = ? AND event_id = ?`,
		arg.Name, arg.URL, arg.ID, arg.EventID,
	)
	return err
}

// CreateAttachments inserts attachments one by one.
func (q *Queries) CreateAttachments(ctx context.Context, items []model.Attachment) ([]model.Attachment, error) {
	created := make([]model.Attachment, 0, len(items))
	for _, item := range items {
		a, err := q.CreateAttachment(ctx, item)
		if err != nil {
			return nil, err
		}
		created = append(created, a)
	}
	return created, nil
}

// UpdateAttachments updates attachments one by one.
func (q *Queries) UpdateAttachments(ctx context.Context, items []model.Attachment) error {
	for _, item := range items {
		if err := q.UpdateAttachment(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

// ListComments returns an event's comments.
func (q *Queries) ListComments(ctx context.Context, eventID int64) ([]model.Comment, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, event_id, message FROM comments WHERE event_id = ?`,
		eventID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Comment
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.EventID, &c.Message); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// CreateComment inserts one comment and returns the stored row.
func (q *Queries) CreateComment(ctx context.Context, arg model.Comment) (model.Comment, error) {
	row := q.db.QueryRowContext(ctx,
		`INSERT INTO comments (event_id, message)
		 VALUES (?, ?)
		 RETURNING id, event_id, message`,
		arg.EventID, arg.Message,
	)

	var c model.Comment
	err := row.Scan(&c.ID, &c.EventID, &c.Message)
	return c, err
}

// UpdateComment replaces one comment by ID within its event's scope.
func (q *Queries) UpdateComment(ctx context.Context, arg model.Comment) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE comments SET message = ? WHERE id = ? AND event_id = ?`,
		arg.Message, arg.ID, arg.EventID,
	)
	return err
}

// CreateComments inserts comments one by one.
func (q *Queries) CreateComments(ctx context.Context, items []model.Comment) ([]model.Comment, error) {
	created := make([]model.Comment, 0, len(items))
	for _, item := range items {
		c, err := q.CreateComment(ctx, item)
		if err != nil {
			return nil, err
		}
		created = append(created, c)
	}
	return created, nil
}

// UpdateComments updates comments one by one.
func (q *Queries) UpdateComments(ctx context.Context, items []model.Comment) error {
	for _, item := range items {
		if err := q.UpdateComment(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

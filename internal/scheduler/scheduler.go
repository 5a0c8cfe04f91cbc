// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package scheduler

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/eventdeck/eventdeck/internal/store"
)

// Scheduler runs periodic maintenance jobs.
type Scheduler struct {
	db            *sql.DB
	cron          *cron.Cron
	logger        *slog.Logger
	auditRetained time.Duration
}

// New creates a new scheduler instance. retentionDays controls how long
// audit log rows are kept.
func New(db *sql.DB, logger *slog.Logger, retentionDays int) *Scheduler {
	return &Scheduler{
		db:            db,
		cron:          cron.New(),
		logger:        logger,
		auditRetained: time.Duration(retentionDays) * 24 * time.Hour,
	}
}

// Start begins the scheduler with a nightly audit log pruning job.
func (s *Scheduler) Start() error {
	// Prune at 03:00 every day
	_, err := s.cron.AddFunc("0 3 * * *", func() {
		if err := s.pruneAuditLog(); err != nil {
			s.logger.Error("failed to prune audit log", "error", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop gracefully stops the scheduler.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// pruneAuditLog deletes audit rows older than the retention window.
func (s *Scheduler) pruneAuditLog() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cutoff := time.Now().Add(-s.auditRetained)
	pruned, err := store.New(s.db).DeleteAuditEntriesBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	if pruned > 0 {
		s.logger.Info("pruned audit log", "rows", pruned, "cutoff", cutoff.Format(time.RFC3339))
	}
	return nil
}

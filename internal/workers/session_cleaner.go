// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
)

// SessionCleaner periodically deletes expired session rows.
//
// A failed purge is logged and retried on the next tick; it never stops the
// worker.
type SessionCleaner struct {
	purger   SessionPurger
	interval time.Duration

	logger *logger.Logger
}

func NewSessionCleaner(purger SessionPurger, cfg config.Workers, logger *logger.Logger) *SessionCleaner {
	interval := cfg.SessionCleanupInterval
	if interval <= 0 {
		interval = config.DefaultSessionCleanupInterval
	}

	return &SessionCleaner{
		purger:   purger,
		interval: interval,
		logger:   logger,
	}
}

func (c *SessionCleaner) Run(ctx context.Context) error {
	c.logger.Info().Dur("interval", c.interval).Msg("session cleaner started")

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("session cleaner stopped")
			return nil
		case <-ticker.C:
			c.purge(ctx)
		}
	}
}

func (c *SessionCleaner) purge(ctx context.Context) {
	deleted, err := c.purger.PurgeExpired(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		c.logger.Err(err).Msg("error purging expired sessions")
		return
	}

	if deleted > 0 {
		c.logger.Info().Int64("deleted", deleted).Msg("expired sessions purged")
	}
}

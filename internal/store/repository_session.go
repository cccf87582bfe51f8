// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

// sessionRepository stores session rows in the "sessions" table.
type sessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertSessionQuery(s.builder, session)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.SaveSession").Msg("failed to create query")
		return err
	}

	if _, err = s.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SaveSession").
			Str("class", s.classify(err).String()).
			Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (s *sessionRepository) FindSessionByID(ctx context.Context, id string) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindSessionQuery(s.builder, id)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.FindSessionByID").Msg("failed to create query")
		return models.Session{}, err
	}

	var (
		session models.Session
		userID  sql.NullInt64
	)
	err = s.QueryRowContext(ctx, query, args...).
		Scan(&session.ID, &userID, &session.ExpiresAt, &session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		if s.classify(err) == NotFound {
			return models.Session{}, ErrSessionNotFound
		}
		log.Err(err).Str("func", "sessionRepository.FindSessionByID").Msg("failed to scan session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	session.UserID = userID.Int64

	return session, nil
}

// DeleteSession removes the row with id. Deleting a missing row is not an error.
func (s *sessionRepository) DeleteSession(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSessionQuery(s.builder, id)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.DeleteSession").Msg("failed to create query")
		return err
	}

	if _, err = s.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sessionRepository.DeleteSession").Msg("failed to delete session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (s *sessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteExpiredSessionsQuery(s.builder, now)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.DeleteExpiredSessions").Msg("failed to create query")
		return 0, err
	}

	res, err := s.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.DeleteExpiredSessions").Msg("failed to delete expired sessions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return deleted, nil
}

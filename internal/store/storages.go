package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
)

// Storages groups all repositories that share one database connection.
type Storages struct {
	UserRepository    UserRepository
	PostRepository    PostRepository
	SessionRepository SessionRepository

	db *DB
}

// NewStorages connects to the database named by cfg, applies pending
// migrations and builds every repository on top of the connection.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	logger.Info().Str("dialect", db.Dialect()).Msg("migrations applied")

	return newStorages(db, logger), nil
}

func newStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		PostRepository:    NewPostRepository(db, logger),
		SessionRepository: NewSessionRepository(db, logger),
		db:                db,
	}
}

// Ping verifies the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/migrations"
)

// DB wraps a *sql.DB with the dialect-specific pieces every repository
// needs: a statement builder with the right placeholder format and an
// error classifier for the driver in use.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	dialect            string
	builder            sq.StatementBuilderType
}

// NewConnect opens the database named by cfg.DSN with the matching driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case config.IsPostgresDSN(cfg.DSN):
		return NewConnectPostgres(ctx, cfg, log)
	case config.IsSQLiteDSN(cfg.DSN):
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, ErrUnsupportedDSN
	}
}

// Migrate applies the embedded migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect returns the goose dialect name of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return classifyCommon(err)
	}
	return db.errorClassificator.Classify(err)
}

// buildQuery renders b into SQL, wrapping failures with ErrBuildingSQLQuery.
func buildQuery(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

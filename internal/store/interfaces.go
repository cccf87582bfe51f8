package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists blog accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// PostRepository persists posts and their comments.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	FindPostByID(ctx context.Context, postID int64) (models.Post, error)
	FindAllPosts(ctx context.Context) ([]models.Post, error)
	AddComment(ctx context.Context, comment models.Comment) (models.Comment, error)
}

// SessionRepository persists server-side session records.
type SessionRepository interface {
	// SaveSession inserts the session or updates the row with the same id.
	SaveSession(ctx context.Context, session models.Session) error
	FindSessionByID(ctx context.Context, id string) (models.Session, error)
	DeleteSession(ctx context.Context, id string) error
	// DeleteExpiredSessions removes every session that expired at or before
	// now and returns how many rows were removed.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// ErrorClassificator maps driver errors onto an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-blog/models"
)

// runRepositoryScenario drives every repository through a realistic
// sequence against a migrated database.
func runRepositoryScenario(t *testing.T, s *Storages) {
	t.Helper()
	ctx := testContext()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	// users
	ann, err := s.UserRepository.CreateUser(ctx, models.User{Username: "ann", Password: "hash", CreatedAt: base})
	require.NoError(t, err)
	require.Positive(t, ann.UserID)

	_, err = s.UserRepository.CreateUser(ctx, models.User{Username: "ann", Password: "other", CreatedAt: base})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)

	found, err := s.UserRepository.FindUserByUsername(ctx, "ann")
	require.NoError(t, err)
	assert.Equal(t, ann.UserID, found.UserID)
	assert.Equal(t, "hash", found.Password)

	_, err = s.UserRepository.FindUserByUsername(ctx, "Ann")
	assert.ErrorIs(t, err, ErrNoUserWasFound)

	_, err = s.UserRepository.FindUserByID(ctx, ann.UserID+100)
	assert.ErrorIs(t, err, ErrNoUserWasFound)

	// posts and comments
	older, err := s.PostRepository.CreatePost(ctx, models.Post{Title: "older", Content: "a", Author: "ann", Date: base})
	require.NoError(t, err)
	newer, err := s.PostRepository.CreatePost(ctx, models.Post{Title: "newer", Content: "b", Author: "bob", Date: base.Add(time.Hour)})
	require.NoError(t, err)

	_, err = s.PostRepository.AddComment(ctx, models.Comment{PostID: older.PostID, Body: "first", Author: "ann", Date: base.Add(time.Minute)})
	require.NoError(t, err)
	_, err = s.PostRepository.AddComment(ctx, models.Comment{PostID: older.PostID, Body: "second", Author: "bob", Date: base.Add(2 * time.Minute)})
	require.NoError(t, err)

	_, err = s.PostRepository.AddComment(ctx, models.Comment{PostID: newer.PostID + 100, Body: "lost", Date: base})
	assert.ErrorIs(t, err, ErrPostNotFound)

	posts, err := s.PostRepository.FindAllPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "newer", posts[0].Title)
	assert.Equal(t, "older", posts[1].Title)
	assert.NotNil(t, posts[0].Comments)
	assert.Empty(t, posts[0].Comments)
	require.Len(t, posts[1].Comments, 2)
	assert.Equal(t, "first", posts[1].Comments[0].Body)
	assert.Equal(t, "second", posts[1].Comments[1].Body)
	assert.True(t, posts[1].Date.Equal(base))

	one, err := s.PostRepository.FindPostByID(ctx, older.PostID)
	require.NoError(t, err)
	assert.Len(t, one.Comments, 2)

	_, err = s.PostRepository.FindPostByID(ctx, newer.PostID+100)
	assert.ErrorIs(t, err, ErrPostNotFound)

	// sessions
	anon := models.Session{ID: "anon", ExpiresAt: base.Add(time.Hour), CreatedAt: base, UpdatedAt: base}
	require.NoError(t, s.SessionRepository.SaveSession(ctx, anon))

	authed := models.Session{ID: "anon", UserID: ann.UserID, ExpiresAt: base.Add(3 * time.Hour), CreatedAt: base, UpdatedAt: base.Add(time.Minute)}
	require.NoError(t, s.SessionRepository.SaveSession(ctx, authed))

	loaded, err := s.SessionRepository.FindSessionByID(ctx, "anon")
	require.NoError(t, err)
	assert.Equal(t, ann.UserID, loaded.UserID)
	assert.True(t, loaded.ExpiresAt.Equal(base.Add(3*time.Hour)))

	stale := models.Session{ID: "stale", ExpiresAt: base, CreatedAt: base, UpdatedAt: base}
	require.NoError(t, s.SessionRepository.SaveSession(ctx, stale))

	purged, err := s.SessionRepository.DeleteExpiredSessions(ctx, base.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	_, err = s.SessionRepository.FindSessionByID(ctx, "stale")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	require.NoError(t, s.SessionRepository.DeleteSession(ctx, "anon"))
	require.NoError(t, s.SessionRepository.DeleteSession(ctx, "anon"))
	_, err = s.SessionRepository.FindSessionByID(ctx, "anon")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

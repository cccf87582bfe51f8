// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-blog/models"
)

var (
	userColumns    = []string{"user_id", "username", "password", "created_at"}
	postColumns    = []string{"post_id", "title", "content", "author", "date"}
	commentColumns = []string{"comment_id", "post_id", "body", "author", "date"}
	sessionColumns = []string{"id", "user_id", "expires_at", "created_at", "updated_at"}
)

const upsertSessionSuffix = `ON CONFLICT (id) DO UPDATE SET
		user_id = excluded.user_id,
		expires_at = excluded.expires_at,
		updated_at = excluded.updated_at`

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return buildQuery(b.Insert(user.TableName()).
		Columns("username", "password", "created_at").
		Values(user.Username, user.Password, user.CreatedAt.UTC()).
		Suffix("RETURNING user_id"))
}

func buildFindUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return buildQuery(b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where))
}

func buildCreatePostQuery(b sq.StatementBuilderType, post models.Post) (string, []any, error) {
	return buildQuery(b.Insert(post.TableName()).
		Columns("title", "content", "author", "date").
		Values(post.Title, post.Content, post.Author, post.Date.UTC()).
		Suffix("RETURNING post_id"))
}

// buildSelectPostsQuery selects posts newest first; postIDs narrows the
// result when non-empty.
func buildSelectPostsQuery(b sq.StatementBuilderType, postIDs ...int64) (string, []any, error) {
	query := b.Select(postColumns...).
		From(models.Post{}.TableName()).
		OrderBy("date DESC", "post_id DESC")

	if len(postIDs) > 0 {
		query = query.Where(sq.Eq{"post_id": postIDs})
	}

	return buildQuery(query)
}

func buildPostExistsQuery(b sq.StatementBuilderType, postID int64) (string, []any, error) {
	return buildQuery(b.Select("post_id").
		From(models.Post{}.TableName()).
		Where(sq.Eq{"post_id": postID}))
}

// buildSelectCommentsQuery selects the comments of postIDs oldest first.
func buildSelectCommentsQuery(b sq.StatementBuilderType, postIDs []int64) (string, []any, error) {
	return buildQuery(b.Select(commentColumns...).
		From(models.Comment{}.TableName()).
		Where(sq.Eq{"post_id": postIDs}).
		OrderBy("post_id", "date ASC", "comment_id ASC"))
}

func buildCreateCommentQuery(b sq.StatementBuilderType, comment models.Comment) (string, []any, error) {
	return buildQuery(b.Insert(comment.TableName()).
		Columns("post_id", "body", "author", "date").
		Values(comment.PostID, comment.Body, comment.Author, comment.Date.UTC()).
		Suffix("RETURNING comment_id"))
}

func buildUpsertSessionQuery(b sq.StatementBuilderType, session models.Session) (string, []any, error) {
	return buildQuery(b.Insert("sessions").
		Columns(sessionColumns...).
		Values(
			session.ID,
			nullableUserID(session.UserID),
			session.ExpiresAt.UTC(),
			session.CreatedAt.UTC(),
			session.UpdatedAt.UTC(),
		).
		Suffix(upsertSessionSuffix))
}

func buildFindSessionQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return buildQuery(b.Select(sessionColumns...).
		From("sessions").
		Where(sq.Eq{"id": id}))
}

func buildDeleteSessionQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return buildQuery(b.Delete("sessions").Where(sq.Eq{"id": id}))
}

func buildDeleteExpiredSessionsQuery(b sq.StatementBuilderType, now time.Time) (string, []any, error) {
	return buildQuery(b.Delete("sessions").Where(sq.LtOrEq{"expires_at": now.UTC()}))
}

func nullableUserID(userID int64) any {
	if userID <= 0 {
		return nil
	}
	return userID
}

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

// postRepository is the SQL-backed implementation of [PostRepository].
// Posts and comments live in separate tables; reads load the posts first
// and then all of their comments with one IN query.
type postRepository struct {
	*DB
	logger *logger.Logger
}

// NewPostRepository constructs a [PostRepository] backed by db.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		DB:     db,
		logger: logger,
	}
}

// CreatePost inserts post and returns it with its database id and an
// empty comment list. Comments carried by post are not stored.
func (p *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreatePostQuery(p.builder, post)
	if err != nil {
		log.Err(err).Str("func", "postRepository.CreatePost").Msg("failed to create query")
		return models.Post{}, err
	}

	if err = p.QueryRowContext(ctx, query, args...).Scan(&post.PostID); err != nil {
		log.Err(err).Str("func", "postRepository.CreatePost").Msg("failed to insert post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	post.Comments = []models.Comment{}

	return post, nil
}

// FindPostByID returns one post with its comments, or [ErrPostNotFound].
func (p *postRepository) FindPostByID(ctx context.Context, postID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	posts, err := p.selectPosts(ctx, "postRepository.FindPostByID", postID)
	if err != nil {
		return models.Post{}, err
	}
	if len(posts) == 0 {
		log.Debug().Str("func", "postRepository.FindPostByID").Int64("post_id", postID).Msg("post not found")
		return models.Post{}, ErrPostNotFound
	}

	return posts[0], nil
}

// FindAllPosts returns every post ordered by date descending (ties by id
// descending), each with its comments ordered by date ascending.
func (p *postRepository) FindAllPosts(ctx context.Context) ([]models.Post, error) {
	return p.selectPosts(ctx, "postRepository.FindAllPosts")
}

// AddComment inserts comment and returns it with its database id.
// A comment on a missing post yields [ErrPostNotFound].
func (p *postRepository) AddComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	if err := p.postExists(ctx, comment.PostID); err != nil {
		return models.Comment{}, err
	}

	query, args, err := buildCreateCommentQuery(p.builder, comment)
	if err != nil {
		log.Err(err).Str("func", "postRepository.AddComment").Msg("failed to create query")
		return models.Comment{}, err
	}

	if err = p.QueryRowContext(ctx, query, args...).Scan(&comment.CommentID); err != nil {
		log.Err(err).
			Str("func", "postRepository.AddComment").
			Int64("post_id", comment.PostID).
			Msg("failed to insert comment")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return comment, nil
}

func (p *postRepository) postExists(ctx context.Context, postID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildPostExistsQuery(p.builder, postID)
	if err != nil {
		log.Err(err).Str("func", "postRepository.postExists").Msg("failed to create query")
		return err
	}

	var found int64
	if err = p.QueryRowContext(ctx, query, args...).Scan(&found); err != nil {
		if p.classify(err) == NotFound {
			log.Debug().Str("func", "postRepository.postExists").Int64("post_id", postID).Msg("post not found")
			return ErrPostNotFound
		}
		log.Err(err).Str("func", "postRepository.postExists").Int64("post_id", postID).Msg("failed to look up post")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (p *postRepository) selectPosts(ctx context.Context, funcName string, postIDs ...int64) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPostsQuery(p.builder, postIDs...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to create query")
		return nil, err
	}

	rows, err := p.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query for posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, 16)
	for rows.Next() {
		post := models.Post{Comments: []models.Comment{}}
		if err := rows.Scan(&post.PostID, &post.Title, &post.Content, &post.Author, &post.Date); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(posts) == 0 {
		return posts, nil
	}

	if err := p.attachComments(ctx, funcName, posts); err != nil {
		return nil, err
	}

	return posts, nil
}

// attachComments loads the comments of posts and appends each one to its
// owning post in query order.
func (p *postRepository) attachComments(ctx context.Context, funcName string, posts []models.Post) error {
	log := logger.FromContext(ctx)

	ids := make([]int64, 0, len(posts))
	index := make(map[int64]int, len(posts))
	for i, post := range posts {
		ids = append(ids, post.PostID)
		index[post.PostID] = i
	}

	query, args, err := buildSelectCommentsQuery(p.builder, ids)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to create comments query")
		return err
	}

	rows, err := p.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query for comments")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.CommentID, &c.PostID, &c.Body, &c.Author, &c.Date); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan comment row")
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if i, ok := index[c.PostID]; ok {
			posts[i].Comments = append(posts[i].Comments, c)
		}
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during comment rows iteration")
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nil
}

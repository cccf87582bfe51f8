package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

type postService struct {
	postRepository store.PostRepository
	now            func() time.Time
	logger         *logger.Logger
}

func NewPostService(postRepository store.PostRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		now:            time.Now,
		logger:         logger,
	}
}

// ListPosts returns every post newest first, each with its comments.
func (p *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := p.postRepository.FindAllPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing posts failed: %w", err)
	}
	return posts, nil
}

func (p *postService) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	post, err := p.postRepository.FindPostByID(ctx, postID)
	if err != nil {
		return models.Post{}, fmt.Errorf("getting post failed: %w", err)
	}
	return post, nil
}

// CreatePost stores post, assigning the current time when Date is zero.
func (p *postService) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	if post.Date.IsZero() {
		post.Date = p.now()
	}
	post.Comments = nil

	created, err := p.postRepository.CreatePost(ctx, post)
	if err != nil {
		return models.Post{}, fmt.Errorf("creating post failed: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("post_id", created.PostID).Msg("post created")
	return created, nil
}

// AddComment stores comment dated now.
func (p *postService) AddComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	comment.Date = p.now()

	created, err := p.postRepository.AddComment(ctx, comment)
	if err != nil {
		return models.Comment{}, fmt.Errorf("adding comment failed: %w", err)
	}
	return created, nil
}

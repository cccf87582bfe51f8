package service

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -destination=../mock/service_mock.go -package=mock github.com/MKhiriev/go-blog/internal/service AuthService,PostService,AppInfoService

type AuthService interface {
	// RegisterUser hashes the password and stores a new account.
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	// Authenticate verifies credentials and returns the matching user.
	Authenticate(ctx context.Context, credentials models.Credentials) (models.User, error)
	// FindUserByID re-fetches the user a session points at.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

type PostService interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, postID int64) (models.Post, error)
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	AddComment(ctx context.Context, comment models.Comment) (models.Comment, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// PostServiceWrapper defines middleware composition for PostService.
type PostServiceWrapper interface {
	Wrap(PostService) PostService
}

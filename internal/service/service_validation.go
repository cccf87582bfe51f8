package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

// AuthValidationService validates signup input before it reaches the
// wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewSignupValidator(),
	}
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, fmt.Errorf("error during signup validation: %w", err)
	}

	user, err := v.inner.RegisterUser(ctx, credentials)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		// bcrypt rejects passwords over 72 bytes
		return models.User{}, fmt.Errorf("error during signup validation: %w", models.ValidationErrors{
			{Field: validators.FieldPassword, Message: "Password is too long"},
		})
	}
	return user, err
}

func (v *AuthValidationService) Authenticate(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return v.inner.Authenticate(ctx, credentials)
}

func (v *AuthValidationService) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return v.inner.FindUserByID(ctx, userID)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}

// PostValidationService validates comments before they reach the wrapped
// PostService.
type PostValidationService struct {
	inner     PostService
	validator validators.Validator
}

func NewPostValidationService() PostServiceWrapper {
	return &PostValidationService{
		validator: validators.NewCommentValidator(),
	}
}

func (v *PostValidationService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return v.inner.ListPosts(ctx)
}

func (v *PostValidationService) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	return v.inner.GetPost(ctx, postID)
}

func (v *PostValidationService) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	return v.inner.CreatePost(ctx, post)
}

func (v *PostValidationService) AddComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	if err := v.validator.Validate(ctx, comment); err != nil {
		return models.Comment{}, fmt.Errorf("error during comment validation: %w", err)
	}
	return v.inner.AddComment(ctx, comment)
}

func (v *PostValidationService) Wrap(wrapped PostService) PostService {
	v.inner = wrapped
	return v
}

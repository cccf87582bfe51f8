package validators

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

var commentChains = []Chain{
	{
		Field: FieldBody,
		Rules: []Rule{
			Required("Comment is required"),
			MaxLength(MaxCommentLength, "Comment must be no more than 2000 characters"),
		},
	},
}

// CommentValidator checks a comment before it is stored.
type CommentValidator struct{}

func NewCommentValidator() Validator {
	return &CommentValidator{}
}

func (v *CommentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Comment:
		return check(commentChains, map[string]string{FieldBody: value.Body}, fields...)
	case *models.Comment:
		return check(commentChains, map[string]string{FieldBody: value.Body}, fields...)
	default:
		return ErrUnsupportedType
	}
}

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/internal/view"
	"github.com/MKhiriev/go-blog/models"
)

// home lists every post, newest first.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.PostService.ListPosts(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, view.PageIndex, view.Page{Posts: posts})
}

func (h *Handler) showPost(w http.ResponseWriter, r *http.Request) {
	postID, err := postIDFromRequest(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	post, err := h.services.PostService.GetPost(r.Context(), postID)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, view.PagePost, view.Page{Title: post.Title, Post: post})
}

// addComment attaches a comment by the current user to a post.
func (h *Handler) addComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	postID, err := postIDFromRequest(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	user, _ := utils.GetUserFromContext(ctx)
	comment := models.Comment{
		PostID: postID,
		Body:   r.PostFormValue(validators.FieldBody),
		Author: user.Username,
	}

	saved, err := h.services.PostService.AddComment(ctx, comment)
	if err != nil {
		var validationErrors models.ValidationErrors
		if !errors.As(err, &validationErrors) {
			h.renderError(w, r, err)
			return
		}

		log.Info().Err(err).Int64("post_id", postID).Msg("comment rejected")
		post, err := h.services.PostService.GetPost(ctx, postID)
		if err != nil {
			h.renderError(w, r, err)
			return
		}
		h.renderInvalid(w, r, http.StatusBadRequest, view.PagePost, view.Page{
			Title:  post.Title,
			Post:   post,
			Form:   map[string]string{validators.FieldBody: comment.Body},
			Errors: validationErrors,
		})
		return
	}

	log.Info().Int64("post_id", postID).Int64("comment_id", saved.CommentID).Msg("comment added")
	http.Redirect(w, r, postPath(postID), http.StatusFound)
}

func postIDFromRequest(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "postID")
	postID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || postID <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPostID, raw)
	}
	return postID, nil
}

func postPath(postID int64) string {
	return "/posts/" + strconv.FormatInt(postID, 10)
}

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/session"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
)

// withSession loads the request's session and resolves it to a user.
//
// A client without a session gets one saved on this response. A session
// pointing at a user that no longer exists is treated as anonymous. On
// success the user is stored in the request context under [utils.UserCtxKey].
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		sess, err := h.sessions.Get(r, h.cookieName)
		if err != nil {
			h.renderError(w, r, fmt.Errorf("%w: %w", ErrLoadingSession, err))
			return
		}

		if sess.IsNew {
			if err := sess.Save(r, w); err != nil {
				h.renderError(w, r, fmt.Errorf("%w: %w", ErrSavingSession, err))
				return
			}
		}

		ctx := r.Context()
		userID := session.UserID(sess)
		if userID > 0 {
			user, err := h.services.AuthService.FindUserByID(ctx, userID)
			switch {
			case err == nil:
				ctx = utils.WithUser(ctx, user)
			case errors.Is(err, store.ErrNoUserWasFound):
				log.Debug().Int64("user_id", userID).Msg("session user no longer exists")
			default:
				h.renderError(w, r, err)
				return
			}
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAuth redirects anonymous requests to the login page.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetUserFromContext(r.Context()); !ok {
			logger.FromRequest(r).Debug().Str("uri", r.RequestURI).Msg("anonymous request to a protected route")
			http.Redirect(w, r, loginPath, http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}

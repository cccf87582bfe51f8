package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/session"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/internal/view"
	"github.com/MKhiriev/go-blog/models"
)

const (
	homePath  = "/"
	loginPath = "/login"
)

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageLogin, view.Page{Title: "Log in"})
}

func (h *Handler) signupPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageSignup, view.Page{Title: "Sign up"})
}

// login verifies the submitted credentials. Failure redirects back to the
// form without a message so usernames cannot be probed.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, err := h.services.AuthService.Authenticate(ctx, credentialsFromForm(r))
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			log.Info().Msg("login failed")
			http.Redirect(w, r, loginPath, http.StatusFound)
			return
		}
		h.renderError(w, r, err)
		return
	}

	if err := h.establishSession(w, r, user); err != nil {
		h.renderError(w, r, err)
		return
	}

	log.Info().Int64("user_id", user.UserID).Msg("user logged in")
	http.Redirect(w, r, homePath, http.StatusFound)
}

// signup registers a new account and logs it in.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	credentials := credentialsFromForm(r)
	form := map[string]string{validators.FieldUsername: credentials.Username}

	user, err := h.services.AuthService.RegisterUser(ctx, credentials)
	if err != nil {
		var validationErrors models.ValidationErrors
		switch {
		case errors.As(err, &validationErrors):
			log.Info().Err(err).Msg("signup rejected")
			h.renderInvalid(w, r, http.StatusBadRequest, view.PageSignup, view.Page{Title: "Sign up", Form: form, Errors: validationErrors})
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Info().Str("username", credentials.Username).Msg("username already taken")
			h.renderInvalid(w, r, http.StatusConflict, view.PageSignup, view.Page{
				Title: "Sign up",
				Form:  form,
				Errors: models.ValidationErrors{
					{Field: validators.FieldUsername, Message: "Username is already taken"},
				},
			})
		default:
			h.renderError(w, r, err)
		}
		return
	}

	if err := h.establishSession(w, r, user); err != nil {
		h.renderError(w, r, err)
		return
	}

	log.Info().Int64("user_id", user.UserID).Msg("user signed up")
	http.Redirect(w, r, homePath, http.StatusFound)
}

// logout deletes the session row and expires the cookie.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Get(r, h.cookieName)
	if err != nil {
		h.renderError(w, r, fmt.Errorf("%w: %w", ErrLoadingSession, err))
		return
	}

	session.Clear(sess)
	if err := sess.Save(r, w); err != nil {
		h.renderError(w, r, fmt.Errorf("%w: %w", ErrSavingSession, err))
		return
	}

	http.Redirect(w, r, homePath, http.StatusFound)
}

// establishSession binds user to a freshly issued session id.
func (h *Handler) establishSession(w http.ResponseWriter, r *http.Request, user models.User) error {
	sess, err := h.sessions.Get(r, h.cookieName)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoadingSession, err)
	}

	if err := h.sessions.Renew(r.Context(), sess); err != nil {
		return fmt.Errorf("%w: %w", ErrSavingSession, err)
	}

	session.SetUserID(sess, user.UserID)
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("%w: %w", ErrSavingSession, err)
	}
	return nil
}

func credentialsFromForm(r *http.Request) models.Credentials {
	return models.Credentials{
		Username: r.PostFormValue(validators.FieldUsername),
		Password: r.PostFormValue(validators.FieldPassword),
	}
}

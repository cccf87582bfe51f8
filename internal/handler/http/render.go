package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/view"
	"github.com/MKhiriev/go-blog/models"
)

type validationResponse struct {
	Errors models.ValidationErrors `json:"errors"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// render writes page with the current user attached.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data view.Page) {
	if user, ok := utils.GetUserFromContext(r.Context()); ok {
		data.User = &user
	}

	if err := h.view.Render(w, status, page, data); err != nil {
		log := logger.FromRequest(r)
		log.Err(err).Str("page", page).Msg("error rendering page")
		if errors.Is(err, view.ErrExecutingTemplate) || errors.Is(err, view.ErrUnknownPage) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}
}

// renderInvalid answers a rejected form either as JSON or by re-rendering
// the form page with field messages.
func (h *Handler) renderInvalid(w http.ResponseWriter, r *http.Request, status int, page string, data view.Page) {
	if utils.WantsJSON(r) {
		if _, err := utils.WriteJSON(w, validationResponse{Errors: data.Errors}, status); err != nil {
			logger.FromRequest(r).Err(err).Msg("error writing validation response")
		}
		return
	}

	h.render(w, r, status, page, data)
}

// renderError maps err to a status and writes a generic error page. Server
// errors are logged with their detail, which never reaches the client.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	message := http.StatusText(status)
	if utils.WantsJSON(r) {
		if _, err := utils.WriteJSON(w, errorResponse{Error: message}, status); err != nil {
			log.Err(err).Msg("error writing error response")
		}
		return
	}

	h.render(w, r, status, view.PageError, view.Page{Title: message, Status: status, Message: message})
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.renderStatus(w, r, http.StatusNotFound)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.renderStatus(w, r, http.StatusMethodNotAllowed)
}

func (h *Handler) renderStatus(w http.ResponseWriter, r *http.Request, status int) {
	message := http.StatusText(status)
	h.render(w, r, status, view.PageError, view.Page{Title: message, Status: status, Message: message})
}

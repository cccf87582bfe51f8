package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	// probes, no session is created for them
	router.Get("/healthz", h.healthz)
	router.Get("/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.withSession)

		r.Get("/", h.home)
		r.Get("/login", h.loginPage)
		r.Post("/login", h.login)
		r.Get("/signup", h.signupPage)
		r.Post("/signup", h.signup)
		r.Post("/logout", h.logout)
		r.Get("/posts/{postID}", h.showPost)

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)
			r.Post("/posts/{postID}/comments", h.addComment)
		})
	})

	return router
}

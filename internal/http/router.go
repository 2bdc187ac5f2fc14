package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/depositflow/depositflow/internal/auth"
	"github.com/depositflow/depositflow/internal/http/admin"
	"github.com/depositflow/depositflow/internal/http/application"
	"github.com/depositflow/depositflow/internal/http/offer"
	"github.com/depositflow/depositflow/internal/http/profile"
	"github.com/depositflow/depositflow/internal/http/session"
)

func New(
	authSvc *auth.Service,
	sessionV1 *session.Handler,
	applicationV1 *application.Handler,
	offerV1 *offer.Handler,
	profileV1 *profile.Handler,
	adminV1 *admin.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", sessionV1.Routes)

		r.Group(func(r chi.Router) {
			r.Use(authSvc.Middleware)
			r.Use(middleware.AllowContentType("application/json"))

			r.Route("/applications", applicationV1.Routes)
			r.Route("/offers", offerV1.Routes)
			r.Route("/profile", profileV1.Routes)
			r.Route("/admin", adminV1.Routes)
		})
	})

	return router
}

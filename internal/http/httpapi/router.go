package httpapi

import (
	"net/http"

	"paintpreview/internal/http/handlers"
	appmw "paintpreview/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(app *handlers.App) http.Handler {
	r := chi.NewRouter()

	r.Use(
		appmw.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		appmw.Logger(app.Logger),
	)

	r.Get("/v1/healthz", app.Health)
	r.Get("/v1/stats", app.StatsSummary)

	r.Route("/v1/previews", func(r chi.Router) {
		r.Post("/", app.PreviewsGenerate)
		r.Get("/{id}", app.PreviewResult)
		r.Get("/{id}/status", app.PreviewStatus)
	})

	return r
}

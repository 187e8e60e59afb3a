package http

import (
	"net/http"

	_ "github.com/MKhiriev/cidr-viewer/docs"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withCORS)
	router.Use(h.withMetrics)

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Post("/api/analyze", h.analyze)
		r.Post("/api/validate", h.validate)
		r.Get("/api/health", h.health)
		r.Get("/api/version", h.getServerVersion)

		r.Get("/app-config.json", h.getAppConfig)

		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/swagger/index.html", http.StatusFound)
		})
	})

	// promhttp negotiates compression on its own
	router.Handle("/metrics", h.metrics.handler())

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

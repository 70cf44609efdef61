package site

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

// Routes builds the full router. The generic page route is registered last
// so the specific routes win.
func (h *Handler) Routes() *chi.Mux {
	r := chi.NewRouter()

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	})

	r.Use(corsMiddleware.Handler)
	r.Use(RealIPMiddleware)
	r.Use(middleware.Logger)
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middleware.Recoverer)

	r.Get("/", h.Home)
	r.Get("/blog", h.BlogIndex)
	r.Get("/blog/{slug}", h.BlogShow)
	r.Get("/artists", h.ArtistsIndex)
	r.Get("/artists/{slug}", h.ArtistShow)
	r.Get("/contact", h.ContactPage)
	r.Post("/api/contact", h.ContactSubmit)
	r.Get("/privacy-policy", h.MarkdownPage("privacy-policy", "Privacy Policy"))
	r.Get("/sitemap.xml", h.Sitemap)
	r.Get("/robots.txt", h.Robots)

	fileServer := http.FileServer(http.Dir(h.cfg.AssetsDir))
	r.Handle("/assets/*", http.StripPrefix("/assets", fileServer))

	r.Get("/{slug}", h.Page)
	r.NotFound(h.NotFound)

	return r
}

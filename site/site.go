// Package site holds the HTTP route handlers. Each handler follows the same
// shape: fetch the documents the page needs, bail out with a 404 when the
// content is missing, then compose the page out of render components.
package site

import (
	"log"
	"net/http"
	"strings"

	"boogie/config"
	"boogie/content"
	"boogie/render"

	g "github.com/maragudk/gomponents"
	"gorm.io/gorm"
)

type Handler struct {
	cfg      config.Config
	store    *content.Store
	renderer render.Renderer
	site     render.Site

	// nil unless a contact store DSN is configured.
	contactDB *gorm.DB
}

func NewHandler(cfg config.Config, store *content.Store, contactDB *gorm.DB) *Handler {
	return &Handler{
		cfg:       cfg,
		store:     store,
		renderer:  render.Renderer{Env: cfg.Environment},
		site:      render.Site{Name: cfg.SiteName, PublicURL: cfg.PublicURL, AnalyticsID: cfg.AnalyticsID},
		contactDB: contactDB,
	}
}

// render writes a composed page. Render errors at this point mean the
// response is already partially written, so they are only logged.
func (h *Handler) render(w http.ResponseWriter, status int, node g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := node.Render(w); err != nil {
		log.Printf("render error: %v", err)
	}
}

func (h *Handler) page(w http.ResponseWriter, title, description string, head []g.Node, children ...g.Node) {
	h.render(w, http.StatusOK, render.Layout(render.LayoutProps{
		Site:        h.site,
		Title:       title,
		Description: description,
		Head:        head,
	}, children...))
}

// serverError is the catch-all for upstream fetch failures.
func (h *Handler) serverError(w http.ResponseWriter, err error) {
	log.Printf("handler error: %v", err)
	http.Error(w, "Something went wrong. Please try again later.", http.StatusInternalServerError)
}

// NotFound renders the layout-wrapped 404 page. Registered both as the
// router's NotFound handler and used by handlers whose document is missing.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusNotFound, render.Layout(render.LayoutProps{
		Site:  h.site,
		Title: "Page Not Found",
	}, render.NotFoundMessage()))
}

// RealIPMiddleware restores the client address from proxy headers so the
// rate limiter keys on the visitor, not the proxy.
func RealIPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			if i := strings.IndexByte(fwd, ','); i >= 0 {
				fwd = fwd[:i]
			}
			r.RemoteAddr = strings.TrimSpace(fwd)
		} else if real := r.Header.Get("X-Real-IP"); real != "" {
			r.RemoteAddr = real
		}
		next.ServeHTTP(w, r)
	})
}

package site

import (
	"encoding/xml"
	"fmt"
	"log"
	"net/http"
	"time"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Sitemap enumerates the static routes plus one entry per published page
// and active artist.
func (h *Handler) Sitemap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	base := h.cfg.PublicURL
	today := time.Now().Format("2006-01-02")

	urls := []sitemapURL{
		{Loc: base, LastMod: today, ChangeFreq: "weekly", Priority: "1.0"},
		{Loc: base + "/blog", LastMod: today, ChangeFreq: "weekly", Priority: "0.8"},
		{Loc: base + "/artists", LastMod: today, ChangeFreq: "weekly", Priority: "0.8"},
		{Loc: base + "/contact", LastMod: today, ChangeFreq: "monthly", Priority: "0.6"},
	}

	pages, err := h.store.GetAllPages(ctx)
	if err != nil {
		h.serverError(w, err)
		return
	}
	for _, p := range pages {
		priority := "0.7"
		if p.Slug.Current == "about" {
			priority = "0.9"
		}
		lastMod := today
		if !p.PublishedAt.IsZero() {
			lastMod = p.PublishedAt.Format("2006-01-02")
		}
		urls = append(urls, sitemapURL{
			Loc:        base + "/" + p.Slug.Current,
			LastMod:    lastMod,
			ChangeFreq: "monthly",
			Priority:   priority,
		})
	}

	artists, err := h.store.GetAllArtists(ctx)
	if err != nil {
		h.serverError(w, err)
		return
	}
	for _, a := range artists {
		urls = append(urls, sitemapURL{
			Loc:        base + "/artists/" + a.Slug.Current,
			LastMod:    today,
			ChangeFreq: "weekly",
			Priority:   "0.7",
		})
	}

	posts, err := h.store.GetAllPosts(ctx)
	if err != nil {
		h.serverError(w, err)
		return
	}
	for _, p := range posts {
		urls = append(urls, sitemapURL{
			Loc:        base + "/blog/" + p.Slug.Current,
			LastMod:    p.PublishedAt.Format("2006-01-02"),
			ChangeFreq: "monthly",
			Priority:   "0.7",
		})
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	fmt.Fprint(w, xml.Header)
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	err = enc.Encode(sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	})
	if err != nil {
		log.Printf("encode sitemap: %v", err)
	}
}

// Robots allows everything and points crawlers at the sitemap.
func (h *Handler) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", h.cfg.PublicURL)
}

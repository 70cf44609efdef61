package site

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"boogie/render"

	"github.com/go-chi/chi/v5"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

const homePostCount = 3

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	featured, err := h.store.GetFeaturedArtists(ctx)
	if err != nil {
		h.serverError(w, err)
		return
	}
	posts, err := h.store.GetAllPosts(ctx)
	if err != nil {
		h.serverError(w, err)
		return
	}
	if len(posts) > homePostCount {
		posts = posts[:homePostCount]
	}

	var artistSection g.Node
	if len(featured) > 0 {
		artistSection = Section(Class("featured-artists"),
			H2(g.Text("Artists")),
			Div(Class("artist-grid"),
				g.Group(g.Map(featured, render.ArtistCard)),
			),
			P(A(Href("/artists"), g.Text("All artists →"))),
		)
	}
	var postSection g.Node
	if len(posts) > 0 {
		postSection = Section(Class("latest-posts"),
			H2(g.Text("Latest from the blog")),
			Div(Class("post-grid"),
				g.Group(g.Map(posts, render.PostCard)),
			),
			P(A(Href("/blog"), g.Text("All posts →"))),
		)
	}

	h.page(w, "", "Music production, artist management and a collective of artists.", nil,
		Section(Class("hero hero-home"),
			Div(Class("hero-content"),
				H1(g.Text(h.site.Name)),
				P(Class("hero-subheadline"), g.Text("A collective for music production and artist management.")),
				A(Href("/artists"), Class("btn btn-primary"), g.Text("Meet the artists")),
			),
		),
		artistSection,
		postSection,
	)
}

func (h *Handler) BlogIndex(w http.ResponseWriter, r *http.Request) {
	posts, err := h.store.GetAllPosts(r.Context())
	if err != nil {
		h.serverError(w, err)
		return
	}

	var body g.Node
	if len(posts) == 0 {
		body = P(Class("muted"), g.Text("No posts yet. Check back soon."))
	} else {
		body = Div(Class("post-grid"),
			g.Group(g.Map(posts, render.PostCard)),
		)
	}

	h.page(w, "Blog", "News and stories from the collective.", nil,
		H1(g.Text("Blog")),
		body,
	)
}

func (h *Handler) BlogShow(w http.ResponseWriter, r *http.Request) {
	post, err := h.store.GetPostBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.serverError(w, err)
		return
	}
	if post == nil {
		h.NotFound(w, r)
		return
	}

	title, description := post.Title, post.Excerpt
	if post.SEO != nil {
		if post.SEO.MetaTitle != "" {
			title = post.SEO.MetaTitle
		}
		if post.SEO.MetaDescription != "" {
			description = post.SEO.MetaDescription
		}
	}

	var mainImage g.Node
	if url := post.MainImage.URL(); url != "" {
		mainImage = Div(Class("post-main-image"), Img(Src(url), Alt(post.Title)))
	}

	h.page(w, title, description, []g.Node{h.site.ArticleSchema(post)},
		Article(Class("post"),
			H1(g.Text(post.Title)),
			Div(Class("post-meta"),
				Span(Class("post-date"), g.Text(post.PublishedAt.Format("January 2, 2006"))),
				render.Byline(post.Author),
			),
			render.CategoryChips(post.Categories),
			mainImage,
			Div(Class("prose"), h.renderer.RichText(post.Body)),
		),
	)
}

func (h *Handler) ArtistsIndex(w http.ResponseWriter, r *http.Request) {
	artists, err := h.store.GetAllArtists(r.Context())
	if err != nil {
		h.serverError(w, err)
		return
	}

	var body g.Node
	if len(artists) == 0 {
		body = P(Class("muted"), g.Text("No artists to show yet."))
	} else {
		body = Div(Class("artist-grid"),
			g.Group(g.Map(artists, render.ArtistCard)),
		)
	}

	h.page(w, "Artists", "The artists of the collective.", nil,
		H1(g.Text("Artists")),
		body,
	)
}

func (h *Handler) ArtistShow(w http.ResponseWriter, r *http.Request) {
	artist, err := h.store.GetArtistBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.serverError(w, err)
		return
	}
	if artist == nil {
		h.NotFound(w, r)
		return
	}

	title, description := artist.DisplayName(), artist.ShortBio
	if artist.SEO != nil {
		if artist.SEO.MetaTitle != "" {
			title = artist.SEO.MetaTitle
		}
		if artist.SEO.MetaDescription != "" {
			description = artist.SEO.MetaDescription
		}
	}

	var cover g.Node
	if url := artist.CoverImage.URL(); url != "" {
		cover = Div(Class("artist-cover"), Img(Src(url), Alt(artist.DisplayName())))
	}
	var profile g.Node
	if url := artist.ProfileImage.URL(); url != "" {
		profile = Div(Class("artist-profile-image"), Img(Src(url), Alt(artist.DisplayName())))
	}
	var samples g.Node
	if len(artist.MusicSamples) > 0 {
		samples = Section(Class("music-samples"),
			H2(g.Text("Listen")),
			g.Group(g.Map(artist.MusicSamples, render.MusicSampleEmbed)),
		)
	}

	h.page(w, title, description, []g.Node{h.site.MusicGroupSchema(artist)},
		cover,
		Article(Class("artist"),
			profile,
			H1(g.Text(artist.DisplayName())),
			g.If(artist.Role != "", P(Class("artist-role"), g.Text(artist.Role))),
			g.If(artist.ShortBio != "", P(Class("artist-bio"), g.Text(artist.ShortBio))),
			render.SocialLinks(artist.SocialLinks),
			g.If(len(artist.FullBio) > 0, Div(Class("prose"), h.renderer.RichText(artist.FullBio))),
			samples,
			render.ArtistGallery(artist.Gallery),
			g.If(len(artist.CustomContent) > 0, Div(Class("custom-content"), h.renderer.RichText(artist.CustomContent))),
		),
	)
}

// Page serves /{slug}: the generic CMS page route. The state machine is
// fetch, 404 when missing or unpublished, hero if present, content if
// present, sections if present, empty-state when nothing rendered.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	page, err := h.store.GetPageBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.serverError(w, err)
		return
	}
	if page == nil {
		h.NotFound(w, r)
		return
	}

	title, description := page.Title, ""
	if page.SEO != nil {
		if page.SEO.MetaTitle != "" {
			title = page.SEO.MetaTitle
		}
		description = page.SEO.MetaDescription
	}

	var parts []g.Node
	parts = append(parts, render.HeroSection(page.HeroSection, page.Title))
	if page.HeroSection == nil {
		parts = append(parts, H1(g.Text(page.Title)))
	}
	if len(page.Content) > 0 {
		parts = append(parts, Div(Class("prose"), h.renderer.RichText(page.Content)))
	}
	if len(page.Sections) > 0 {
		parts = append(parts, h.renderer.Sections(page.Sections))
	}
	if !page.HasContent() {
		parts = append(parts, render.EmptyState())
	}

	h.page(w, title, description, nil, parts...)
}

// MarkdownPage serves a page backed by a markdown file under the content
// directory, for pages that never change through the CMS (privacy policy).
func (h *Handler) MarkdownPage(name, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		src, err := os.ReadFile(filepath.Join(h.cfg.ContentDir, name+".md"))
		if err != nil {
			if os.IsNotExist(err) {
				h.NotFound(w, r)
				return
			}
			h.serverError(w, fmt.Errorf("read markdown page %s: %w", name, err))
			return
		}

		extensions := parser.CommonExtensions | parser.AutoHeadingIDs
		p := parser.NewWithExtensions(extensions)
		doc := p.Parse(src)

		opts := mdhtml.RendererOptions{Flags: mdhtml.CommonFlags | mdhtml.HrefTargetBlank}
		rendered := markdown.Render(doc, mdhtml.NewRenderer(opts))

		h.page(w, title, "", nil,
			Div(Class("prose"), g.Raw(string(rendered))),
		)
	}
}

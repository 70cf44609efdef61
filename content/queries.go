package content

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"boogie/cms"
	"boogie/constants"

	"github.com/gosimple/slug"
)

// Store is the query layer. It fetches whole document types from the CMS,
// keeps each snapshot for the revalidation window, and does filtering,
// sorting and reference inlining in-process. Reads only; the CMS studio owns
// all writes.
type Store struct {
	fetcher cms.Fetcher
	ttl     time.Duration

	mu    sync.Mutex
	cache map[string]cacheEntry

	now func() time.Time
}

type cacheEntry struct {
	docs      any
	expiresAt time.Time
}

func NewStore(fetcher cms.Fetcher) *Store {
	return &Store{
		fetcher: fetcher,
		ttl:     constants.REVALIDATE_WINDOW,
		cache:   make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func (s *Store) cached(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.cache[key]
	if !ok || s.now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.docs, true
}

func (s *Store) store(key string, docs any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[key] = cacheEntry{docs: docs, expiresAt: s.now().Add(s.ttl)}
}

// listDocuments fetches every document of one type, serving the cached
// snapshot while it is fresh.
func listDocuments[T any](ctx context.Context, s *Store, docType string) ([]T, error) {
	if v, ok := s.cached(docType); ok {
		return v.([]T), nil
	}
	var docs []T
	query := fmt.Sprintf("*[_type == %q]", docType)
	if err := s.fetcher.Fetch(ctx, query, &docs); err != nil {
		return nil, fmt.Errorf("fetch %s documents: %w", docType, err)
	}
	s.store(docType, docs)
	return docs, nil
}

// validSlug requires a present, URL-safe slug. Documents that fail this
// never reach a route handler.
func validSlug(s Slug) bool {
	return s.Current != "" && slug.IsSlug(s.Current)
}

// ---- Posts ----

func (s *Store) authorIndex(ctx context.Context) (map[string]Author, error) {
	authors, err := listDocuments[Author](ctx, s, "author")
	if err != nil {
		return nil, err
	}
	byID := make(map[string]Author, len(authors))
	for _, a := range authors {
		byID[a.ID] = a
	}
	return byID, nil
}

func (s *Store) categoryIndex(ctx context.Context) (map[string]Category, error) {
	categories, err := listDocuments[Category](ctx, s, "category")
	if err != nil {
		return nil, err
	}
	byID := make(map[string]Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}
	return byID, nil
}

// posts returns all usable posts with author and categories inlined, newest
// first. Posts without a title or a URL-safe slug are dropped here.
func (s *Store) posts(ctx context.Context) ([]Post, error) {
	raw, err := listDocuments[Post](ctx, s, "post")
	if err != nil {
		return nil, err
	}
	authors, err := s.authorIndex(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.categoryIndex(ctx)
	if err != nil {
		return nil, err
	}

	posts := make([]Post, 0, len(raw))
	for _, p := range raw {
		if p.Title == "" || !validSlug(p.Slug) {
			continue
		}
		if p.AuthorRef != nil {
			if a, ok := authors[p.AuthorRef.Ref]; ok {
				author := a
				p.Author = &author
			}
		}
		for _, ref := range p.CategoryRef {
			if c, ok := categories[ref.Ref]; ok {
				p.Categories = append(p.Categories, c)
			}
		}
		posts = append(posts, p)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishedAt.After(posts[j].PublishedAt)
	})
	return posts, nil
}

func (s *Store) GetAllPosts(ctx context.Context) ([]Post, error) {
	return s.posts(ctx)
}

// GetPostBySlug returns nil, nil when no post matches; absence is a valid
// result, not an error.
func (s *Store) GetPostBySlug(ctx context.Context, postSlug string) (*Post, error) {
	posts, err := s.posts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].Slug.Current == postSlug {
			return &posts[i], nil
		}
	}
	return nil, nil
}

func (s *Store) GetPostsByCategory(ctx context.Context, categorySlug string) ([]Post, error) {
	posts, err := s.posts(ctx)
	if err != nil {
		return nil, err
	}
	var matched []Post
	for _, p := range posts {
		for _, c := range p.Categories {
			if c.Slug.Current == categorySlug {
				matched = append(matched, p)
				break
			}
		}
	}
	return matched, nil
}

func (s *Store) GetAllAuthors(ctx context.Context) ([]Author, error) {
	authors, err := listDocuments[Author](ctx, s, "author")
	if err != nil {
		return nil, err
	}
	sort.SliceStable(authors, func(i, j int) bool {
		return strings.ToLower(authors[i].Name) < strings.ToLower(authors[j].Name)
	})
	return authors, nil
}

func (s *Store) GetAllCategories(ctx context.Context) ([]Category, error) {
	categories, err := listDocuments[Category](ctx, s, "category")
	if err != nil {
		return nil, err
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return strings.ToLower(categories[i].Title) < strings.ToLower(categories[j].Title)
	})
	return categories, nil
}

// ---- Artists ----

// activeArtists drops inactive artists and anything without a usable name
// or slug.
func (s *Store) activeArtists(ctx context.Context) ([]Artist, error) {
	raw, err := listDocuments[Artist](ctx, s, "artist")
	if err != nil {
		return nil, err
	}
	artists := make([]Artist, 0, len(raw))
	for _, a := range raw {
		if !a.IsActive || a.Name == "" || !validSlug(a.Slug) {
			continue
		}
		artists = append(artists, a)
	}
	return artists, nil
}

// sortOrderLess orders by explicit sort order ascending with unset orders
// last, then by name.
func sortOrderLess(a, b Artist) bool {
	switch {
	case a.SortOrder != nil && b.SortOrder != nil && *a.SortOrder != *b.SortOrder:
		return *a.SortOrder < *b.SortOrder
	case a.SortOrder != nil && b.SortOrder == nil:
		return true
	case a.SortOrder == nil && b.SortOrder != nil:
		return false
	}
	return strings.ToLower(a.Name) < strings.ToLower(b.Name)
}

// GetAllArtists returns active artists ordered featured first, then by
// explicit sort order, then name.
func (s *Store) GetAllArtists(ctx context.Context) ([]Artist, error) {
	artists, err := s.activeArtists(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(artists, func(i, j int) bool {
		if artists[i].Featured != artists[j].Featured {
			return artists[i].Featured
		}
		return sortOrderLess(artists[i], artists[j])
	})
	return artists, nil
}

// GetFeaturedArtists returns at most MAX_FEATURED_ARTISTS active featured
// artists, by sort order then name.
func (s *Store) GetFeaturedArtists(ctx context.Context) ([]Artist, error) {
	artists, err := s.activeArtists(ctx)
	if err != nil {
		return nil, err
	}
	featured := make([]Artist, 0, constants.MAX_FEATURED_ARTISTS)
	for _, a := range artists {
		if a.Featured {
			featured = append(featured, a)
		}
	}
	sort.SliceStable(featured, func(i, j int) bool {
		return sortOrderLess(featured[i], featured[j])
	})
	if len(featured) > constants.MAX_FEATURED_ARTISTS {
		featured = featured[:constants.MAX_FEATURED_ARTISTS]
	}
	return featured, nil
}

// GetArtistBySlug returns nil, nil for unknown or inactive artists.
func (s *Store) GetArtistBySlug(ctx context.Context, artistSlug string) (*Artist, error) {
	artists, err := s.activeArtists(ctx)
	if err != nil {
		return nil, err
	}
	for i := range artists {
		if artists[i].Slug.Current == artistSlug {
			return &artists[i], nil
		}
	}
	return nil, nil
}

// ---- Pages ----

// publishedPages enforces the publish gate uniformly: unpublished pages are
// invisible everywhere, including the sitemap.
func (s *Store) publishedPages(ctx context.Context) ([]Page, error) {
	raw, err := listDocuments[Page](ctx, s, "page")
	if err != nil {
		return nil, err
	}
	pages := make([]Page, 0, len(raw))
	for _, p := range raw {
		if !p.IsPublished || p.Title == "" || !validSlug(p.Slug) {
			continue
		}
		pages = append(pages, p)
	}
	sort.SliceStable(pages, func(i, j int) bool {
		return pages[i].PublishedAt.After(pages[j].PublishedAt)
	})
	return pages, nil
}

func (s *Store) GetAllPages(ctx context.Context) ([]Page, error) {
	return s.publishedPages(ctx)
}

// GetPageBySlug resolves a page by slug, falling back to the page-type
// lookup so /about finds the page typed "about" even when its slug differs.
// Returns nil, nil when nothing matches.
func (s *Store) GetPageBySlug(ctx context.Context, pageSlug string) (*Page, error) {
	pages, err := s.publishedPages(ctx)
	if err != nil {
		return nil, err
	}
	for i := range pages {
		if pages[i].Slug.Current == pageSlug {
			return &pages[i], nil
		}
	}
	for i := range pages {
		if pages[i].PageType != "" && pages[i].PageType != "custom" && pages[i].PageType == pageSlug {
			return &pages[i], nil
		}
	}
	return nil, nil
}

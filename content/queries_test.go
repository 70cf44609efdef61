package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"
)

// stubFetcher serves canned JSON documents per document type and counts
// fetches so cache behavior is observable.
type stubFetcher struct {
	docs    map[string]string
	fetches map[string]int
	err     error
}

func newStubFetcher() *stubFetcher {
	return &stubFetcher{docs: map[string]string{}, fetches: map[string]int{}}
}

func (f *stubFetcher) Fetch(ctx context.Context, query string, out any) error {
	if f.err != nil {
		return f.err
	}
	start := strings.Index(query, `"`)
	end := strings.LastIndex(query, `"`)
	docType := query[start+1 : end]
	f.fetches[docType]++
	raw, ok := f.docs[docType]
	if !ok {
		raw = "[]"
	}
	return json.Unmarshal([]byte(raw), out)
}

func artistDoc(name, slugVal string, featured, active bool, sortOrder int) string {
	return fmt.Sprintf(`{"_id":%q,"name":%q,"slug":{"current":%q},"featured":%t,"isActive":%t,"sortOrder":%d}`,
		"artist-"+slugVal, name, slugVal, featured, active, sortOrder)
}

func TestGetFeaturedArtistsCap(t *testing.T) {
	f := newStubFetcher()
	var docs []string
	for i := 0; i < 7; i++ {
		docs = append(docs, artistDoc(fmt.Sprintf("Artist %d", i), fmt.Sprintf("artist-%d", i), true, true, i))
	}
	f.docs["artist"] = "[" + strings.Join(docs, ",") + "]"

	store := NewStore(f)
	featured, err := store.GetFeaturedArtists(context.Background())
	if err != nil {
		t.Fatalf("GetFeaturedArtists: %v", err)
	}
	if len(featured) != 4 {
		t.Fatalf("got %d featured artists, want 4", len(featured))
	}
	if featured[0].Name != "Artist 0" {
		t.Errorf("got %q first, want sort order ascending", featured[0].Name)
	}
}

func TestInactiveArtistsExcluded(t *testing.T) {
	f := newStubFetcher()
	f.docs["artist"] = "[" + strings.Join([]string{
		artistDoc("Ghost", "ghost", true, false, 1),
		artistDoc("Alive", "alive", true, true, 2),
	}, ",") + "]"

	store := NewStore(f)
	ctx := context.Background()

	all, err := store.GetAllArtists(ctx)
	if err != nil {
		t.Fatalf("GetAllArtists: %v", err)
	}
	for _, a := range all {
		if a.Slug.Current == "ghost" {
			t.Error("inactive artist present in GetAllArtists")
		}
	}

	featured, err := store.GetFeaturedArtists(ctx)
	if err != nil {
		t.Fatalf("GetFeaturedArtists: %v", err)
	}
	for _, a := range featured {
		if a.Slug.Current == "ghost" {
			t.Error("inactive artist present in GetFeaturedArtists")
		}
	}

	ghost, err := store.GetArtistBySlug(ctx, "ghost")
	if err != nil {
		t.Fatalf("GetArtistBySlug: %v", err)
	}
	if ghost != nil {
		t.Error("GetArtistBySlug returned an inactive artist")
	}
}

func TestArtistOrdering(t *testing.T) {
	f := newStubFetcher()
	f.docs["artist"] = "[" + strings.Join([]string{
		// Unfeatured but first by sort order; featured ones must still lead.
		artistDoc("Aardvark", "aardvark", false, true, 0),
		artistDoc("Zed", "zed", true, true, 2),
		artistDoc("Mid", "mid", true, true, 1),
	}, ",") + "]"

	store := NewStore(f)
	all, err := store.GetAllArtists(context.Background())
	if err != nil {
		t.Fatalf("GetAllArtists: %v", err)
	}
	got := make([]string, len(all))
	for i, a := range all {
		got[i] = a.Slug.Current
	}
	want := []string{"mid", "zed", "aardvark"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestPostsMissingSlugDropped(t *testing.T) {
	f := newStubFetcher()
	f.docs["post"] = `[
		{"_id":"p1","title":"No Slug","publishedAt":"2025-01-01T00:00:00Z"},
		{"_id":"p2","title":"Bad Slug","slug":{"current":"Not A Slug!"},"publishedAt":"2025-01-02T00:00:00Z"},
		{"_id":"p3","title":"Good","slug":{"current":"good"},"publishedAt":"2025-01-03T00:00:00Z"}
	]`

	store := NewStore(f)
	posts, err := store.GetAllPosts(context.Background())
	if err != nil {
		t.Fatalf("GetAllPosts: %v", err)
	}
	if len(posts) != 1 || posts[0].Slug.Current != "good" {
		t.Fatalf("got %d posts, want only the one with a valid slug", len(posts))
	}
}

func TestGetPostBySlugInlinesReferences(t *testing.T) {
	f := newStubFetcher()
	f.docs["post"] = `[{
		"_id":"p1","title":"Hello World","slug":{"current":"hello-world"},
		"publishedAt":"2025-06-01T00:00:00Z",
		"author":{"_ref":"author-1"},
		"categories":[{"_ref":"cat-1"},{"_ref":"cat-missing"}]
	}]`
	f.docs["author"] = `[{"_id":"author-1","name":"Casey","slug":{"current":"casey"}}]`
	f.docs["category"] = `[{"_id":"cat-1","title":"News","slug":{"current":"news"}}]`

	store := NewStore(f)
	post, err := store.GetPostBySlug(context.Background(), "hello-world")
	if err != nil {
		t.Fatalf("GetPostBySlug: %v", err)
	}
	if post == nil {
		t.Fatal("post not found")
	}
	if post.Author == nil || post.Author.Name != "Casey" {
		t.Errorf("author not inlined: %+v", post.Author)
	}
	if len(post.Categories) != 1 || post.Categories[0].Title != "News" {
		t.Errorf("categories = %+v, want only the resolvable reference", post.Categories)
	}
}

func TestGetPostBySlugMissingIsNil(t *testing.T) {
	store := NewStore(newStubFetcher())
	post, err := store.GetPostBySlug(context.Background(), "nope")
	if err != nil {
		t.Fatalf("GetPostBySlug: %v", err)
	}
	if post != nil {
		t.Fatalf("got %+v, want nil for a missing slug", post)
	}
}

func TestPostsSortedNewestFirst(t *testing.T) {
	f := newStubFetcher()
	f.docs["post"] = `[
		{"_id":"p1","title":"Old","slug":{"current":"old"},"publishedAt":"2024-01-01T00:00:00Z"},
		{"_id":"p2","title":"New","slug":{"current":"new"},"publishedAt":"2025-01-01T00:00:00Z"}
	]`
	store := NewStore(f)
	posts, err := store.GetAllPosts(context.Background())
	if err != nil {
		t.Fatalf("GetAllPosts: %v", err)
	}
	if posts[0].Slug.Current != "new" {
		t.Errorf("first post = %q, want newest first", posts[0].Slug.Current)
	}
}

func TestGetPostsByCategory(t *testing.T) {
	f := newStubFetcher()
	f.docs["post"] = `[
		{"_id":"p1","title":"Tagged","slug":{"current":"tagged"},"publishedAt":"2025-01-01T00:00:00Z","categories":[{"_ref":"cat-1"}]},
		{"_id":"p2","title":"Untagged","slug":{"current":"untagged"},"publishedAt":"2025-01-02T00:00:00Z"}
	]`
	f.docs["category"] = `[{"_id":"cat-1","title":"News","slug":{"current":"news"}}]`

	store := NewStore(f)
	posts, err := store.GetPostsByCategory(context.Background(), "news")
	if err != nil {
		t.Fatalf("GetPostsByCategory: %v", err)
	}
	if len(posts) != 1 || posts[0].Slug.Current != "tagged" {
		t.Fatalf("got %+v, want only the tagged post", posts)
	}
}

func TestPagePublishGate(t *testing.T) {
	f := newStubFetcher()
	f.docs["page"] = `[
		{"_id":"pg1","title":"About","slug":{"current":"about"},"pageType":"about","isPublished":true},
		{"_id":"pg2","title":"Draft","slug":{"current":"draft"},"pageType":"custom","isPublished":false}
	]`

	store := NewStore(f)
	ctx := context.Background()

	page, err := store.GetPageBySlug(ctx, "draft")
	if err != nil {
		t.Fatalf("GetPageBySlug: %v", err)
	}
	if page != nil {
		t.Error("unpublished page resolved")
	}

	pages, err := store.GetAllPages(ctx)
	if err != nil {
		t.Fatalf("GetAllPages: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("got %d pages, want 1 published", len(pages))
	}
}

func TestGetPageBySlugFallsBackToPageType(t *testing.T) {
	f := newStubFetcher()
	f.docs["page"] = `[
		{"_id":"pg1","title":"Our Story","slug":{"current":"our-story"},"pageType":"about","isPublished":true}
	]`

	store := NewStore(f)
	page, err := store.GetPageBySlug(context.Background(), "about")
	if err != nil {
		t.Fatalf("GetPageBySlug: %v", err)
	}
	if page == nil || page.Title != "Our Story" {
		t.Fatalf("got %+v, want the page typed about", page)
	}
}

func TestSnapshotServedWithinWindow(t *testing.T) {
	f := newStubFetcher()
	f.docs["artist"] = "[" + artistDoc("One", "one", false, true, 1) + "]"

	store := NewStore(f)
	now := time.Now()
	store.now = func() time.Time { return now }
	ctx := context.Background()

	if _, err := store.GetAllArtists(ctx); err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	if _, err := store.GetAllArtists(ctx); err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if f.fetches["artist"] != 1 {
		t.Errorf("fetched %d times within the window, want 1", f.fetches["artist"])
	}

	// Past the window the snapshot is stale and fetched again.
	now = now.Add(store.ttl + time.Second)
	if _, err := store.GetAllArtists(ctx); err != nil {
		t.Fatalf("third fetch: %v", err)
	}
	if f.fetches["artist"] != 2 {
		t.Errorf("fetched %d times after expiry, want 2", f.fetches["artist"])
	}
}

func TestFetchErrorPropagates(t *testing.T) {
	f := newStubFetcher()
	f.err = fmt.Errorf("cms unreachable")
	store := NewStore(f)
	if _, err := store.GetAllPosts(context.Background()); err == nil {
		t.Fatal("expected an error when the cms is unreachable")
	}
}

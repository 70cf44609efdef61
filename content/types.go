// Package content defines the document and object types authored in the CMS
// and the read-only query layer that fetches them. The shape mirrors the CMS
// schema field-for-field; field names in json tags are a stable API shared
// with the authoring studio.
package content

import "time"

// Slug is the CMS slug object. Only the current value matters to us.
type Slug struct {
	Current string `json:"current"`
}

// Asset is the resolved image asset metadata.
type Asset struct {
	ID  string `json:"_id"`
	URL string `json:"url"`
}

// Image is an image field with optional alt text and caption.
type Image struct {
	Asset   *Asset `json:"asset"`
	Alt     string `json:"alt"`
	Caption string `json:"caption"`
}

// URL returns the asset URL, or "" when the image has no resolved asset.
func (i *Image) URL() string {
	if i == nil || i.Asset == nil {
		return ""
	}
	return i.Asset.URL
}

// Reference is an unresolved pointer to another document. The query layer
// inlines these by id lookup.
type Reference struct {
	Ref string `json:"_ref"`
}

type SEO struct {
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
	OGImage         *Image `json:"ogImage"`
}

// SocialLinks is the fixed set of platforms the schema knows about. All
// optional; authors fill in what applies.
type SocialLinks struct {
	Website    string `json:"website"`
	Spotify    string `json:"spotify"`
	Soundcloud string `json:"soundcloud"`
	Bandcamp   string `json:"bandcamp"`
	Youtube    string `json:"youtube"`
	Instagram  string `json:"instagram"`
	Twitter    string `json:"twitter"`
	Facebook   string `json:"facebook"`
	Linkedin   string `json:"linkedin"`
}

// URLs returns the non-empty links, for JSON-LD sameAs lists.
func (s SocialLinks) URLs() []string {
	all := []string{
		s.Website, s.Spotify, s.Soundcloud, s.Bandcamp,
		s.Youtube, s.Instagram, s.Twitter, s.Facebook, s.Linkedin,
	}
	urls := make([]string, 0, len(all))
	for _, u := range all {
		if u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

type Post struct {
	ID          string      `json:"_id"`
	Title       string      `json:"title"`
	Slug        Slug        `json:"slug"`
	AuthorRef   *Reference  `json:"author"`
	MainImage   *Image      `json:"mainImage"`
	CategoryRef []Reference `json:"categories"`
	PublishedAt time.Time   `json:"publishedAt"`
	Body        RichText    `json:"body"`
	Excerpt     string      `json:"excerpt"`
	SEO         *SEO        `json:"seo"`

	// Inlined by the query layer; never part of the wire document.
	Author     *Author    `json:"-"`
	Categories []Category `json:"-"`
}

type Author struct {
	ID          string      `json:"_id"`
	Name        string      `json:"name"`
	Slug        Slug        `json:"slug"`
	Image       *Image      `json:"image"`
	Bio         RichText    `json:"bio"`
	Email       string      `json:"email"`
	SocialLinks SocialLinks `json:"socialLinks"`
}

type Category struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Slug        Slug   `json:"slug"`
	Description string `json:"description"`
	Color       *Color `json:"color"`
}

type Color struct {
	Hex string `json:"hex"`
}

type MusicSample struct {
	Title       string `json:"title"`
	EmbedURL    string `json:"embedUrl"`
	Description string `json:"description"`
}

type Artist struct {
	ID            string        `json:"_id"`
	Name          string        `json:"name"`
	Slug          Slug          `json:"slug"`
	StageName     string        `json:"stageName"`
	Role          string        `json:"role"`
	ProfileImage  *Image        `json:"profileImage"`
	CoverImage    *Image        `json:"coverImage"`
	ShortBio      string        `json:"shortBio"`
	FullBio       RichText      `json:"fullBio"`
	SocialLinks   SocialLinks   `json:"socialLinks"`
	MusicSamples  []MusicSample `json:"musicSamples"`
	Gallery       []Image       `json:"gallery"`
	CustomContent RichText      `json:"customContent"`
	Featured      bool          `json:"featured"`
	SortOrder     *int          `json:"sortOrder"`
	IsActive      bool          `json:"isActive"`
	SEO           *SEO          `json:"seo"`
}

// DisplayName prefers the stage name when set.
func (a *Artist) DisplayName() string {
	if a.StageName != "" {
		return a.StageName
	}
	return a.Name
}

type CTA struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

type Hero struct {
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
	HeroImage   *Image `json:"heroImage"`
	CTAButton   *CTA   `json:"ctaButton"`
}

type Page struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Slug        Slug      `json:"slug"`
	PageType    string    `json:"pageType"`
	HeroSection *Hero     `json:"heroSection"`
	Content     RichText  `json:"content"`
	Sections    []Section `json:"sections"`
	SEO         *SEO      `json:"seo"`
	PublishedAt time.Time `json:"publishedAt"`
	IsPublished bool      `json:"isPublished"`
}

// HasContent reports whether the page would render anything beyond its
// title. Pages that fail this get the empty-state placeholder.
func (p *Page) HasContent() bool {
	return len(p.Content) > 0 || len(p.Sections) > 0
}

// Section is one entry of a page's ordered section list. The set of section
// types is closed; Type selects which of the remaining fields apply.
type Section struct {
	Type  string `json:"_type"`
	Key   string `json:"_key"`
	Title string `json:"title"`

	// textSection
	Content RichText `json:"content"`

	// imageGallery
	Layout string  `json:"layout"`
	Images []Image `json:"images"`

	// teamSection
	Members []TeamMember `json:"members"`

	// contactSection
	ContactInfo     *ContactInfo `json:"contactInfo"`
	ShowContactForm bool         `json:"showContactForm"`

	// servicesSection
	Services []Service `json:"services"`
}

type TeamMember struct {
	Name        string      `json:"name"`
	Role        string      `json:"role"`
	Bio         string      `json:"bio"`
	Image       *Image      `json:"image"`
	SocialLinks SocialLinks `json:"socialLinks"`
}

type ContactInfo struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type Service struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Icon        *Image   `json:"icon"`
	Features    []string `json:"features"`
}

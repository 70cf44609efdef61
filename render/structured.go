package render

import (
	"encoding/json"

	"boogie/content"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

// Site identity passed down from config for layouts and structured data.
type Site struct {
	Name        string
	PublicURL   string
	AnalyticsID string
}

// jsonLD serializes a schema.org object into a script tag. A marshal
// failure just drops the tag; structured data is never worth a 500.
func jsonLD(v any) g.Node {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return Script(Type("application/ld+json"), g.Raw(string(data)))
}

func (s Site) OrganizationSchema() g.Node {
	return jsonLD(map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Organization",
		"name":        s.Name,
		"url":         s.PublicURL,
		"description": "Professional music production and artist management services",
		"contactPoint": map[string]any{
			"@type":       "ContactPoint",
			"contactType": "customer service",
			"url":         s.PublicURL + "/contact",
		},
	})
}

func (s Site) WebsiteSchema() g.Node {
	return jsonLD(map[string]any{
		"@context":   "https://schema.org",
		"@type":      "WebSite",
		"name":       s.Name,
		"url":        s.PublicURL,
		"inLanguage": "en-US",
	})
}

// MusicGroupSchema describes an artist on their detail page.
func (s Site) MusicGroupSchema(a *content.Artist) g.Node {
	if a == nil {
		return nil
	}
	v := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "MusicGroup",
		"name":        a.DisplayName(),
		"url":         s.PublicURL + "/artists/" + a.Slug.Current,
		"recordLabel": s.Name,
	}
	if a.ShortBio != "" {
		v["description"] = a.ShortBio
	}
	if url := a.ProfileImage.URL(); url != "" {
		v["image"] = url
	}
	if links := a.SocialLinks.URLs(); len(links) > 0 {
		v["sameAs"] = links
	}
	return jsonLD(v)
}

// ArticleSchema describes a blog post on its detail page.
func (s Site) ArticleSchema(p *content.Post) g.Node {
	if p == nil {
		return nil
	}
	v := map[string]any{
		"@context":      "https://schema.org",
		"@type":         "Article",
		"headline":      p.Title,
		"url":           s.PublicURL + "/blog/" + p.Slug.Current,
		"datePublished": p.PublishedAt,
	}
	if p.Excerpt != "" {
		v["description"] = p.Excerpt
	}
	if url := p.MainImage.URL(); url != "" {
		v["image"] = url
	}
	if p.Author != nil {
		v["author"] = map[string]any{
			"@type": "Person",
			"name":  p.Author.Name,
		}
	}
	return jsonLD(v)
}

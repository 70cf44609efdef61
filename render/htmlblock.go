package render

import (
	"strings"

	"boogie/content"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
	"github.com/microcosm-cc/bluemonday"
)

// HTMLBlock injects author-provided markup. With sanitization on (the
// default) the markup is filtered through bluemonday; with it off the markup
// goes in verbatim. That is the trusted-author escape hatch: only CMS
// authors can create these blocks, never site visitors.
func (r Renderer) HTMLBlock(h *content.HTMLBlock) g.Node {
	if !h.VisibleIn(r.Env) {
		return nil
	}
	if strings.TrimSpace(h.HTMLContent) == "" {
		return Div(Class("html-block"),
			P(Class("html-block-empty"), g.Text("No HTML content provided")),
		)
	}

	markup := h.HTMLContent
	if h.Sanitize() {
		markup = sanitizePolicy(h.AllowedTags).Sanitize(markup)
	}

	wrapper := []g.Node{Class(strings.TrimSpace("html-block " + h.CSSClasses))}
	if h.InlineStyles != "" {
		wrapper = append(wrapper, Style(h.InlineStyles))
	}
	wrapper = append(wrapper, g.Raw(markup))
	return Div(wrapper...)
}

// sanitizePolicy builds the bluemonday policy for a block. An empty
// allow-list falls back to the stock user-generated-content policy; an
// explicit list allows exactly those elements plus the attributes they need
// to be useful.
func sanitizePolicy(allowedTags []string) *bluemonday.Policy {
	if len(allowedTags) == 0 {
		return bluemonday.UGCPolicy()
	}

	p := bluemonday.NewPolicy()
	p.AllowStandardURLs()
	p.AllowAttrs("class").Globally()

	for _, entry := range allowedTags {
		// The authoring UI stores grouped values such as "h1,h2,h3".
		for _, tag := range strings.Split(entry, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			p.AllowElements(tag)
			switch tag {
			case "a":
				p.AllowAttrs("href", "title", "target", "rel").OnElements("a")
			case "img":
				p.AllowAttrs("src", "alt", "width", "height").OnElements("img")
			case "iframe", "video", "audio":
				p.AllowAttrs("src", "width", "height", "allow", "controls", "frameborder").OnElements(tag)
			case "input", "textarea", "button", "select", "option", "form":
				p.AllowAttrs("type", "name", "value", "placeholder", "action", "method").OnElements(tag)
			}
		}
	}
	return p
}

package content

import "encoding/json"

// Block type discriminator values for CustomBlock. Anything else is rendered
// as an unknown-block placeholder.
const (
	BlockCallout          = "callout"
	BlockValuesGrid       = "valuesGrid"
	BlockTwoColumn        = "twoColumn"
	BlockThreeColumn      = "threeColumn"
	BlockFeatureBox       = "featureBox"
	BlockQuoteSection     = "quoteSection"
	BlockImageTextOverlay = "imageTextOverlay"
	BlockStatsSection     = "statsSection"
	BlockCustomHTML       = "customHtml"
)

// CustomBlock is a discriminated union: BlockType selects which of the
// shared fields are meaningful. Grid and column layouts read Items, the
// overlay reads BackgroundImage, the customHtml variant reads the HTML
// fields, and so on.
type CustomBlock struct {
	BlockType   string      `json:"blockType"`
	Title       string      `json:"title"`
	Subtitle    string      `json:"subtitle"`
	Content     RichText    `json:"content"`
	ColorScheme string      `json:"colorScheme"`
	Alignment   string      `json:"alignment"`
	Items       []BlockItem `json:"items"`
	Background  *Image      `json:"backgroundImage"`
	CTAButton   *CTAButton  `json:"ctaButton"`
	Spacing     string      `json:"spacing"`

	// customHtml variant fields, shared with HTMLBlock.
	HTMLContent  string   `json:"htmlContent"`
	SanitizeHTML *bool    `json:"sanitizeHtml"`
	AllowedTags  []string `json:"allowedTags"`
	CSSClasses   string   `json:"cssClasses"`
	InlineStyles string   `json:"inlineStyles"`
	Environment  string   `json:"environment"`
}

// AsHTMLBlock projects the customHtml fields into an HTMLBlock so both
// spellings share one renderer.
func (b *CustomBlock) AsHTMLBlock() *HTMLBlock {
	return &HTMLBlock{
		Title:        b.Title,
		HTMLContent:  b.HTMLContent,
		SanitizeHTML: b.SanitizeHTML,
		AllowedTags:  b.AllowedTags,
		CSSClasses:   b.CSSClasses,
		InlineStyles: b.InlineStyles,
		Environment:  b.Environment,
	}
}

type BlockItem struct {
	Title   string    `json:"title"`
	Content RichText  `json:"content"`
	Icon    string    `json:"icon"`
	Image   *Image    `json:"image"`
	Link    *ItemLink `json:"link"`
}

type ItemLink struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

type CTAButton struct {
	Text  string `json:"text"`
	URL   string `json:"url"`
	Style string `json:"style"`
}

// HTMLBlock carries author-provided markup. Sanitization defaults to on;
// turning it off injects the markup verbatim, which is acceptable only
// because authoring is restricted to trusted CMS users. Never feed this
// from end-user input.
type HTMLBlock struct {
	Title        string   `json:"title"`
	HTMLContent  string   `json:"htmlContent"`
	SanitizeHTML *bool    `json:"sanitizeHtml"`
	AllowedTags  []string `json:"allowedTags"`
	CSSClasses   string   `json:"cssClasses"`
	InlineStyles string   `json:"inlineStyles"`
	Environment  string   `json:"environment"`
}

// Sanitize reports whether the block should be run through the sanitizer.
// The schema default is true, so an absent flag sanitizes.
func (h *HTMLBlock) Sanitize() bool {
	return h.SanitizeHTML == nil || *h.SanitizeHTML
}

// VisibleIn reports whether the block should render in the given environment
// ("development" or "production"). An absent or "all" setting always shows.
func (h *HTMLBlock) VisibleIn(env string) bool {
	switch h.Environment {
	case "", "all":
		return true
	default:
		return h.Environment == env
	}
}

// RichText is the block content array: a flat sequence of typed nodes.
type RichText []Node

// Node is one rich text node. Type selects which fields are populated;
// unknown types keep only Type and Key and render as nothing.
type Node struct {
	Type string
	Key  string

	// _type == "block"
	Style    string
	ListItem string
	Level    int
	Children []Span
	MarkDefs []MarkDef

	// _type == "image"
	Image *Image

	// _type == "codeBlock"
	Language string
	Code     string

	// _type == "customBlock"
	Block *CustomBlock

	// _type == "htmlBlock"
	HTML *HTMLBlock
}

type Span struct {
	Type  string   `json:"_type"`
	Text  string   `json:"text"`
	Marks []string `json:"marks"`
}

type MarkDef struct {
	Key   string `json:"_key"`
	Type  string `json:"_type"`
	Href  string `json:"href"`
	Blank bool   `json:"blank"`
}

// UnmarshalJSON decodes the node head, then the variant payload. A node of
// an unknown type is kept (so renderers can skip it per node) instead of
// failing the whole document.
func (n *Node) UnmarshalJSON(data []byte) error {
	var head struct {
		Type string `json:"_type"`
		Key  string `json:"_key"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	n.Type = head.Type
	n.Key = head.Key

	switch head.Type {
	case "block":
		var b struct {
			Style    string    `json:"style"`
			ListItem string    `json:"listItem"`
			Level    int       `json:"level"`
			Children []Span    `json:"children"`
			MarkDefs []MarkDef `json:"markDefs"`
		}
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		n.Style = b.Style
		n.ListItem = b.ListItem
		n.Level = b.Level
		n.Children = b.Children
		n.MarkDefs = b.MarkDefs
	case "image":
		var img Image
		if err := json.Unmarshal(data, &img); err != nil {
			return err
		}
		n.Image = &img
	case "codeBlock":
		var cb struct {
			Language string `json:"language"`
			Code     string `json:"code"`
		}
		if err := json.Unmarshal(data, &cb); err != nil {
			return err
		}
		n.Language = cb.Language
		n.Code = cb.Code
	case "customBlock":
		var b CustomBlock
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		n.Block = &b
	case "htmlBlock":
		var h HTMLBlock
		if err := json.Unmarshal(data, &h); err != nil {
			return err
		}
		n.HTML = &h
	}
	return nil
}

package render

import (
	"boogie/content"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

func schemeClass(scheme string) string {
	switch scheme {
	case "lightBlue":
		return "scheme-light-blue"
	case "lightGray":
		return "scheme-light-gray"
	case "dark":
		return "scheme-dark"
	case "redAccent":
		return "scheme-red"
	case "greenAccent":
		return "scheme-green"
	case "purpleAccent":
		return "scheme-purple"
	default:
		return "scheme-default"
	}
}

func spacingClass(spacing string) string {
	switch spacing {
	case "small":
		return "spacing-small"
	case "large":
		return "spacing-large"
	default:
		return "spacing-medium"
	}
}

func alignClass(alignment string) string {
	switch alignment {
	case "center":
		return "align-center"
	case "right":
		return "align-right"
	default:
		return "align-left"
	}
}

func buttonClass(style string) string {
	switch style {
	case "secondary":
		return "btn btn-secondary"
	case "outline":
		return "btn btn-outline"
	default:
		return "btn btn-primary"
	}
}

func ctaButton(cta *content.CTAButton) g.Node {
	if cta == nil || cta.Text == "" {
		return nil
	}
	return Div(Class("block-cta"),
		A(Href(cta.URL), Class(buttonClass(cta.Style)), g.Text(cta.Text)),
	)
}

// CustomBlock selects one of the layout strategies based on the blockType
// discriminator. Each strategy reads only the fields that matter to it. A
// blockType we don't recognize renders a visible placeholder so authors see
// the problem instead of a silently missing section.
func (r Renderer) CustomBlock(b *content.CustomBlock) g.Node {
	switch b.BlockType {
	case content.BlockCallout:
		return r.callout(b)
	case content.BlockValuesGrid:
		return r.itemGrid(b, "values-grid", len(b.Items))
	case content.BlockTwoColumn:
		return r.itemGrid(b, "two-column", 2)
	case content.BlockThreeColumn:
		return r.itemGrid(b, "three-column", 3)
	case content.BlockFeatureBox:
		return r.featureBox(b)
	case content.BlockQuoteSection:
		return r.quoteSection(b)
	case content.BlockImageTextOverlay:
		return r.imageTextOverlay(b)
	case content.BlockStatsSection:
		return r.statsSection(b)
	case content.BlockCustomHTML:
		return r.HTMLBlock(b.AsHTMLBlock())
	default:
		return Div(Class("custom-block "+spacingClass(b.Spacing)),
			Div(Class("unknown-block"),
				P(g.Textf("Unknown block type: %s", b.BlockType)),
			),
		)
	}
}

func (r Renderer) blockWrapper(b *content.CustomBlock, inner g.Node) g.Node {
	return Div(Class("custom-block "+spacingClass(b.Spacing)), inner)
}

func (r Renderer) callout(b *content.CustomBlock) g.Node {
	return r.blockWrapper(b,
		Div(Class("callout "+schemeClass(b.ColorScheme)+" "+alignClass(b.Alignment)),
			g.If(b.Title != "", H3(g.Text(b.Title))),
			g.If(b.Subtitle != "", P(Class("subtitle"), g.Text(b.Subtitle))),
			g.If(len(b.Content) > 0, Div(Class("prose"), r.RichText(b.Content))),
			ctaButton(b.CTAButton),
		),
	)
}

// itemGrid covers the three item-driven layouts. max caps the columns the
// layout uses; the values grid takes everything.
func (r Renderer) itemGrid(b *content.CustomBlock, layout string, max int) g.Node {
	items := b.Items
	if len(items) > max {
		items = items[:max]
	}
	return r.blockWrapper(b,
		Div(Class(layout),
			g.If(b.Title != "", H2(Class(alignClass(b.Alignment)), g.Text(b.Title))),
			g.If(b.Subtitle != "", P(Class("subtitle "+alignClass(b.Alignment)), g.Text(b.Subtitle))),
			Div(Class("item-grid"),
				g.Group(g.Map(items, func(item content.BlockItem) g.Node {
					return r.gridItem(b, item)
				})),
			),
		),
	)
}

func (r Renderer) gridItem(b *content.CustomBlock, item content.BlockItem) g.Node {
	return Div(Class("grid-item "+schemeClass(b.ColorScheme)),
		g.If(item.Icon != "", Div(Class("item-icon"), g.Text(item.Icon))),
		itemImage(item.Image),
		g.If(item.Title != "", H3(g.Text(item.Title))),
		g.If(len(item.Content) > 0, Div(Class("item-content"), r.RichText(item.Content))),
		itemLink(item.Link),
	)
}

func itemImage(img *content.Image) g.Node {
	if img == nil {
		return nil
	}
	if img.URL() == "" {
		return Div(Class("image-placeholder"), g.Text("No image"))
	}
	return Div(Class("item-image"), Img(Src(img.URL()), Alt(img.Alt)))
}

func itemLink(link *content.ItemLink) g.Node {
	if link == nil || link.Text == "" {
		return nil
	}
	return Div(Class("item-link"), A(Href(link.URL), g.Text(link.Text+" →")))
}

func (r Renderer) featureBox(b *content.CustomBlock) g.Node {
	return r.blockWrapper(b,
		Div(Class("feature-box "+schemeClass(b.ColorScheme)+" "+alignClass(b.Alignment)),
			g.If(b.Title != "", H2(g.Text(b.Title))),
			g.If(b.Subtitle != "", P(Class("subtitle"), g.Text(b.Subtitle))),
			g.If(len(b.Content) > 0, Div(Class("prose"), r.RichText(b.Content))),
			ctaButton(b.CTAButton),
		),
	)
}

// quoteSection repurposes the shared fields: content is the quote, title the
// attribution, subtitle the attribution detail.
func (r Renderer) quoteSection(b *content.CustomBlock) g.Node {
	return r.blockWrapper(b,
		Div(Class("quote-section "+schemeClass(b.ColorScheme)),
			g.If(len(b.Content) > 0, BlockQuote(r.RichText(b.Content))),
			g.If(b.Title != "", Cite(g.Text("— "+b.Title))),
			g.If(b.Subtitle != "", Div(Class("quote-detail"), g.Text(b.Subtitle))),
		),
	)
}

func (r Renderer) imageTextOverlay(b *content.CustomBlock) g.Node {
	var background g.Node
	if url := b.Background.URL(); url != "" {
		background = Div(Class("overlay-background"),
			Img(Src(url), Alt("")),
			Div(Class("overlay-shade")),
		)
	}
	return r.blockWrapper(b,
		Div(Class("image-text-overlay"),
			background,
			Div(Class("overlay-content "+alignClass(b.Alignment)),
				g.If(b.Title != "", H2(g.Text(b.Title))),
				g.If(b.Subtitle != "", P(Class("subtitle"), g.Text(b.Subtitle))),
				g.If(len(b.Content) > 0, Div(Class("prose"), r.RichText(b.Content))),
				ctaButton(b.CTAButton),
			),
		),
	)
}

// statsSection reads item titles as the stat values and item content as the
// stat labels.
func (r Renderer) statsSection(b *content.CustomBlock) g.Node {
	return r.blockWrapper(b,
		Div(Class("stats-section"),
			g.If(b.Title != "", H2(Class(alignClass(b.Alignment)), g.Text(b.Title))),
			Div(Class("stats-grid"),
				g.Group(g.Map(b.Items, func(item content.BlockItem) g.Node {
					return Div(Class("stat "+alignClass(b.Alignment)),
						Div(Class("stat-value"), g.Text(item.Title)),
						g.If(len(item.Content) > 0, Div(Class("stat-label"), r.RichText(item.Content))),
					)
				})),
			),
		),
	)
}

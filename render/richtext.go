// Package render turns fetched content documents into HTML. Everything is
// composed from gomponents nodes; handlers pick the pieces they need and
// wrap them in the site layout.
package render

import (
	"io"

	"boogie/content"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

// fragment renders its children in order without a wrapper element. Unlike
// g.Group it can be rendered as a top-level node.
type fragment []g.Node

func (f fragment) Render(w io.Writer) error {
	for _, n := range f {
		if n == nil {
			continue
		}
		if err := n.Render(w); err != nil {
			return err
		}
	}
	return nil
}

// Renderer carries the request-independent rendering context. Env decides
// which environment-gated HTML blocks are visible.
type Renderer struct {
	Env string
}

// RichText walks the node sequence and dispatches per node type.
// Consecutive list blocks are grouped into one (possibly nested) list.
// Unknown node types render nothing; a bad node never takes down the
// document.
func (r Renderer) RichText(rt content.RichText) g.Node {
	var out []g.Node
	i := 0
	for i < len(rt) {
		node := rt[i]
		if node.Type == "block" && node.ListItem != "" {
			run := i
			for run < len(rt) && rt[run].Type == "block" && rt[run].ListItem != "" {
				run++
			}
			items := rt[i:run]
			j := 0
			for j < len(items) {
				var list g.Node
				list, j = r.buildList(items, j, 1)
				out = append(out, list)
			}
			i = run
			continue
		}
		out = append(out, r.node(node))
		i++
	}
	return fragment(out)
}

func (r Renderer) node(n content.Node) g.Node {
	switch n.Type {
	case "block":
		return r.textBlock(n)
	case "image":
		return r.contentImage(n.Image)
	case "codeBlock":
		return Div(Class("code-block"),
			Pre(Code(Class("language-"+n.Language), g.Text(n.Code))),
		)
	case "customBlock":
		if n.Block == nil {
			return nil
		}
		return r.CustomBlock(n.Block)
	case "htmlBlock":
		if n.HTML == nil {
			return nil
		}
		return r.HTMLBlock(n.HTML)
	default:
		return nil
	}
}

func (r Renderer) textBlock(n content.Node) g.Node {
	kids := r.spans(n)
	switch n.Style {
	case "h1":
		return H1(kids)
	case "h2":
		return H2(kids)
	case "h3":
		return H3(kids)
	case "h4":
		return H4(kids)
	case "blockquote":
		return BlockQuote(kids)
	default:
		// "normal", "" and any style we don't know render as a paragraph.
		return P(kids)
	}
}

// spans renders the children of a text block, applying marks inside out.
func (r Renderer) spans(n content.Node) g.Node {
	defs := make(map[string]content.MarkDef, len(n.MarkDefs))
	for _, d := range n.MarkDefs {
		defs[d.Key] = d
	}
	out := make([]g.Node, 0, len(n.Children))
	for _, span := range n.Children {
		var node g.Node = g.Text(span.Text)
		for _, mark := range span.Marks {
			node = applyMark(node, mark, defs)
		}
		out = append(out, node)
	}
	return g.Group(out)
}

// applyMark wraps node in the element for one mark. Unknown marks leave the
// node untouched rather than dropping text.
func applyMark(node g.Node, mark string, defs map[string]content.MarkDef) g.Node {
	switch mark {
	case "strong":
		return Strong(node)
	case "em":
		return Em(node)
	case "underline":
		return Span(Class("underline"), node)
	case "strike-through":
		return Del(node)
	case "code":
		return Code(node)
	}
	if def, ok := defs[mark]; ok && def.Type == "link" {
		attrs := []g.Node{Href(def.Href)}
		if def.Blank {
			attrs = append(attrs, Target("_blank"), Rel("noopener noreferrer"))
		}
		return A(append(attrs, node)...)
	}
	return node
}

// buildList builds a list from a run of consecutive list-item blocks,
// recursing for deeper indentation levels. Returns the list and the index
// just past the consumed blocks.
func (r Renderer) buildList(blocks []content.Node, start, level int) (g.Node, int) {
	ordered := blocks[start].ListItem == "number"
	var items [][]g.Node
	i := start
	for i < len(blocks) {
		lvl := blocks[i].Level
		if lvl < 1 {
			lvl = 1
		}
		if lvl < level {
			break
		}
		// A different list kind at the same level starts a new list.
		if lvl == level && blocks[i].ListItem != blocks[start].ListItem {
			break
		}
		if lvl > level {
			sub, next := r.buildList(blocks, i, lvl)
			if len(items) == 0 {
				items = append(items, nil)
			}
			items[len(items)-1] = append(items[len(items)-1], sub)
			i = next
			continue
		}
		items = append(items, []g.Node{r.spans(blocks[i])})
		i++
	}
	lis := make([]g.Node, len(items))
	for idx, kids := range items {
		lis[idx] = Li(kids...)
	}
	if ordered {
		return Ol(lis...), i
	}
	return Ul(lis...), i
}

// contentImage renders an embedded rich text image with optional caption,
// or the no-image placeholder when the asset is missing.
func (r Renderer) contentImage(img *content.Image) g.Node {
	if img.URL() == "" {
		return Div(Class("image-placeholder"), g.Text("No image"))
	}
	return Figure(Class("content-image"),
		Img(Src(img.URL()), Alt(img.Alt)),
		g.If(img.Caption != "", FigCaption(g.Text(img.Caption))),
	)
}

package content

import (
	"encoding/json"
	"testing"
)

func TestNodeUnmarshalVariants(t *testing.T) {
	src := `[
		{"_type":"block","_key":"k1","style":"h2","children":[{"_type":"span","text":"hi","marks":["strong"]}]},
		{"_type":"image","asset":{"_id":"img1","url":"https://cdn.example.com/a.jpg"},"alt":"a"},
		{"_type":"customBlock","blockType":"callout","title":"Note"},
		{"_type":"htmlBlock","htmlContent":"<b>x</b>","sanitizeHtml":false},
		{"_type":"teleporter","where":"elsewhere"}
	]`
	var rt RichText
	if err := json.Unmarshal([]byte(src), &rt); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(rt) != 5 {
		t.Fatalf("got %d nodes, want 5", len(rt))
	}
	if rt[0].Style != "h2" || len(rt[0].Children) != 1 || rt[0].Children[0].Marks[0] != "strong" {
		t.Errorf("text block decoded wrong: %+v", rt[0])
	}
	if rt[1].Image == nil || rt[1].Image.URL() != "https://cdn.example.com/a.jpg" {
		t.Errorf("image decoded wrong: %+v", rt[1])
	}
	if rt[2].Block == nil || rt[2].Block.BlockType != BlockCallout {
		t.Errorf("custom block decoded wrong: %+v", rt[2])
	}
	if rt[3].HTML == nil || rt[3].HTML.Sanitize() {
		t.Errorf("html block decoded wrong: %+v", rt[3])
	}
	if rt[4].Type != "teleporter" {
		t.Errorf("unknown node type lost: %+v", rt[4])
	}
}

func TestHTMLBlockDefaults(t *testing.T) {
	var h HTMLBlock
	if !h.Sanitize() {
		t.Error("sanitization should default to on")
	}
	if !h.VisibleIn("production") || !h.VisibleIn("development") {
		t.Error("absent environment should show everywhere")
	}

	h.Environment = "development"
	if h.VisibleIn("production") {
		t.Error("development block visible in production")
	}
	if !h.VisibleIn("development") {
		t.Error("development block hidden in development")
	}
}

func TestCustomBlockAsHTMLBlock(t *testing.T) {
	off := false
	b := CustomBlock{
		BlockType:    BlockCustomHTML,
		HTMLContent:  "<p>x</p>",
		SanitizeHTML: &off,
		CSSClasses:   "wide",
		Environment:  "all",
	}
	h := b.AsHTMLBlock()
	if h.HTMLContent != "<p>x</p>" || h.Sanitize() || h.CSSClasses != "wide" {
		t.Errorf("projection lost fields: %+v", h)
	}
}

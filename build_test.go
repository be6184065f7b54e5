package mdbox

import (
	"strings"
	"testing"
)

// collectText concatenates every text fragment under a box.
func collectText(b *Box) string {
	var sb strings.Builder
	walkBoxes(b, func(n *Box) {
		if n.Kind == KindText {
			sb.WriteString(n.Text)
		}
	})
	return sb.String()
}

func TestBuildAppendsAccumulatorBlocks(t *testing.T) {
	root := Build([]byte("hello\n"), 40, "")
	n := len(root.Children)
	if n < 3 {
		t.Fatalf("root children: got %d want >= 3", n)
	}
	if root.Children[n-2].Kind != KindBlock || root.Children[n-1].Kind != KindBlock {
		t.Fatalf("trailing accumulator blocks missing")
	}
}

func TestBuildHeadingDecorations(t *testing.T) {
	cases := []struct {
		src    string
		level  int
		border BorderKind
	}{
		{"# one\n", 1, BorderThin},
		{"## two\n", 2, BorderBold},
		{"### three\n", 3, BorderDouble},
		{"#### four\n", 4, BorderThin},
		{"##### five\n", 5, BorderDash},
		{"###### six\n", 6, BorderEmpty},
	}
	for _, tc := range cases {
		root := Build([]byte(tc.src), 40, "")
		header := root.Children[0]
		if header.Kind != KindHeader {
			t.Fatalf("%q: first child is %v", tc.src, header.Kind)
		}
		if header.Level != tc.level {
			t.Fatalf("%q: level %d want %d", tc.src, header.Level, tc.level)
		}
		if header.Style.Border != tc.border {
			t.Fatalf("%q: border %v want %v", tc.src, header.Style.Border, tc.border)
		}
		if header.Style.FG != Dark(Purple) {
			t.Fatalf("%q: heading color not set", tc.src)
		}
		if header.Size.Border.Bottom != 1 {
			t.Fatalf("%q: missing bottom border", tc.src)
		}
	}
}

func TestBuildLinkAccumulator(t *testing.T) {
	root := Build([]byte("see [docs](https://example.com)\n"), 40, "")
	links := root.Children[len(root.Children)-2]
	if got := collectText(links); got != "https://example.com" {
		t.Fatalf("link accumulator text: got %q", got)
	}
	var dest *Box
	walkBoxes(links, func(b *Box) {
		if b.Kind == KindText && b.Text != "" {
			dest = b
		}
	})
	if dest == nil || dest.Style.FG != Dark(Blue) || !dest.Style.Underline {
		t.Fatalf("link destination style not applied")
	}
	para := root.Children[0]
	var inline *Box
	walkBoxes(para, func(b *Box) {
		if b.Kind == KindInline {
			inline = b
		}
	})
	if inline == nil || !inline.Style.Underline || inline.Style.FG != Dark(Blue) {
		t.Fatalf("inline link style not applied")
	}
	if got := collectText(inline); got != "docs" {
		t.Fatalf("inline link text: got %q", got)
	}
}

func TestBuildFootnotes(t *testing.T) {
	root := Build([]byte("body[^1]\n\n[^1]: the note\n"), 40, "")
	footnotes := root.Children[len(root.Children)-1]
	if !strings.Contains(collectText(footnotes), "the note") {
		t.Fatalf("footnote content missing: %q", collectText(footnotes))
	}
	var ref *Box
	walkBoxes(root.Children[0], func(b *Box) {
		if b.Kind == KindText && b.Style.FG == Dark(Green) {
			ref = b
		}
	})
	if ref == nil || !ref.Style.Underline {
		t.Fatalf("footnote reference style not applied")
	}
}

func TestBuildOrderedBulletLabels(t *testing.T) {
	root := Build([]byte("5. x\n6. y\n"), 40, "")
	list := root.Children[0]
	if list.Kind != KindList || !list.Ordered || list.Start != 5 {
		t.Fatalf("list: kind=%v ordered=%v start=%d", list.Kind, list.Ordered, list.Start)
	}
	var labels []string
	for _, child := range list.Children {
		if child.Kind == KindListBullet {
			labels = append(labels, collectText(child))
		}
	}
	if len(labels) != 2 || labels[0] != "5" || labels[1] != "6" {
		t.Fatalf("bullet labels: got %v", labels)
	}
}

func TestBuildUnorderedBulletGlyph(t *testing.T) {
	root := Build([]byte("- x\n- y\n"), 40, "")
	list := root.Children[0]
	for _, child := range list.Children {
		if child.Kind != KindListBullet {
			continue
		}
		if got := collectText(child); got != "*" {
			t.Fatalf("bullet label: got %q want *", got)
		}
		if child.Size.Border.Right != 1 {
			t.Fatalf("bullet gap border missing")
		}
	}
}

func TestBuildTaskListMarker(t *testing.T) {
	root := Build([]byte("- [x] done\n- [ ] todo\n"), 40, "")
	text := collectText(root.Children[0])
	if !strings.Contains(text, "[X]") {
		t.Fatalf("checked marker missing: %q", text)
	}
	if !strings.Contains(text, "[ ]") {
		t.Fatalf("unchecked marker missing: %q", text)
	}
}

func TestBuildRuleBlock(t *testing.T) {
	root := Build([]byte("above\n\n---\n\nbelow\n"), 40, "")
	var rule *Box
	for _, child := range root.Children {
		if child.Kind == KindBlock && child.Style.Extend {
			rule = child
		}
	}
	if rule == nil {
		t.Fatalf("rule block missing")
	}
	if rule.Style.Border != BorderThin || rule.Size.Border.Bottom != 1 {
		t.Fatalf("rule decoration: border=%v bottom=%d", rule.Style.Border, rule.Size.Border.Bottom)
	}
	if rule.Style.FG != Dark(Yellow) {
		t.Fatalf("rule color not set")
	}
}

func TestBuildBlockQuote(t *testing.T) {
	root := Build([]byte("> quoted\n"), 40, "")
	quote := root.Children[0]
	if quote.Size.Border.Left != 1 || quote.Style.Border != BorderThin {
		t.Fatalf("quote border: left=%d kind=%v", quote.Size.Border.Left, quote.Style.Border)
	}
	if quote.Style.FG != Dark(Cyan) {
		t.Fatalf("quote color not set")
	}
}

func TestBuildCodeBlockColors(t *testing.T) {
	root := Build([]byte("```\nplain code\n```\n"), 40, "")
	code := root.Children[0]
	if code.Style.FG != Dark(White) || code.Style.BG != Dark(Black) {
		t.Fatalf("code block colors: fg=%v bg=%v", code.Style.FG, code.Style.BG)
	}
	if got := collectText(code); got != "plain code" {
		t.Fatalf("code text: got %q", got)
	}
}

func TestBuildWidthClamped(t *testing.T) {
	root := Build([]byte("x\n"), 0, "")
	if root.Size.Content.W != defaultWidth {
		t.Fatalf("default width: got %d want %d", root.Size.Content.W, defaultWidth)
	}
	root = Build([]byte("x\n"), int(MaxCell)+5, "")
	if root.Size.Content.W != MaxCell {
		t.Fatalf("clamped width: got %d want %d", root.Size.Content.W, MaxCell)
	}
}

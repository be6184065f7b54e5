package mdevent

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var markdown = goldmark.New(goldmark.WithExtensions(
	extension.Strikethrough,
	extension.TaskList,
	extension.Footnote,
))

// Source is a pull cursor over a document's event sequence.
type Source struct {
	events []Event
	pos    int
}

// Parse turns Markdown source into an event sequence.
func Parse(src []byte) *Source {
	doc := markdown.Parser().Parse(text.NewReader(src))
	g := &generator{src: src}
	g.children(doc)
	return &Source{events: g.events}
}

// Next returns the next event, or false at the end of the document.
func (s *Source) Next() (Event, bool) {
	if s.pos >= len(s.events) {
		return Event{}, false
	}
	ev := s.events[s.pos]
	s.pos++
	return ev, true
}

type generator struct {
	src    []byte
	events []Event
}

func (g *generator) emit(ev Event) {
	g.events = append(g.events, ev)
}

func (g *generator) wrap(tag Tag, ev Event, n ast.Node) {
	ev.Kind = Start
	ev.Tag = tag
	g.emit(ev)
	g.children(n)
	g.emit(Event{Kind: End, Tag: tag})
}

func (g *generator) children(n ast.Node) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		g.node(c)
	}
}

func (g *generator) node(n ast.Node) {
	switch n := n.(type) {
	case *ast.Paragraph:
		g.wrap(TagParagraph, Event{}, n)
	case *ast.TextBlock:
		// tight list item content: inline content without a paragraph
		g.children(n)
	case *ast.Heading:
		g.wrap(TagHeading, Event{Level: n.Level}, n)
	case *ast.Blockquote:
		g.wrap(TagBlockQuote, Event{}, n)
	case *ast.FencedCodeBlock:
		g.emit(Event{Kind: Start, Tag: TagCodeBlock, Fenced: true, Lang: string(n.Language(g.src))})
		g.codeLines(n)
		g.emit(Event{Kind: End, Tag: TagCodeBlock})
	case *ast.CodeBlock:
		g.emit(Event{Kind: Start, Tag: TagCodeBlock})
		g.codeLines(n)
		g.emit(Event{Kind: End, Tag: TagCodeBlock})
	case *ast.List:
		ev := Event{}
		if n.IsOrdered() {
			ev.Ordered = true
			ev.Start = n.Start
		}
		g.wrap(TagList, ev, n)
	case *ast.ListItem:
		g.wrap(TagItem, Event{}, n)
	case *ast.ThematicBreak:
		g.emit(Event{Kind: Rule})
	case *ast.Text:
		g.emit(Event{Kind: Text, Text: string(n.Segment.Value(g.src))})
		if n.HardLineBreak() {
			g.emit(Event{Kind: HardBreak})
		} else if n.SoftLineBreak() {
			g.emit(Event{Kind: SoftBreak})
		}
	case *ast.String:
		g.emit(Event{Kind: Text, Text: string(n.Value)})
	case *ast.CodeSpan:
		g.emit(Event{Kind: Code, Text: g.inlineText(n)})
	case *ast.Emphasis:
		tag := TagEmphasis
		if n.Level >= 2 {
			tag = TagStrong
		}
		g.wrap(tag, Event{}, n)
	case *east.Strikethrough:
		g.wrap(TagStrikethrough, Event{}, n)
	case *ast.Link:
		g.wrap(TagLink, Event{Dest: string(n.Destination), Title: string(n.Title)}, n)
	case *ast.AutoLink:
		url := string(n.URL(g.src))
		g.emit(Event{Kind: Start, Tag: TagLink, Dest: url})
		g.emit(Event{Kind: Text, Text: string(n.Label(g.src))})
		g.emit(Event{Kind: End, Tag: TagLink})
	case *ast.Image:
		g.wrap(TagImage, Event{Dest: string(n.Destination), Title: string(n.Title)}, n)
	case *ast.RawHTML:
		g.htmlSegments(n.Segments)
	case *ast.HTMLBlock:
		g.htmlSegments(n.Lines())
		if n.HasClosure() {
			g.emitHTML(string(n.ClosureLine.Value(g.src)))
		}
	case *east.TaskCheckBox:
		g.emit(Event{Kind: TaskListMarker, Checked: n.IsChecked})
	case *east.FootnoteLink:
		g.emit(Event{Kind: FootnoteReference, Name: strconv.Itoa(n.Index)})
	case *east.FootnoteBacklink:
		// no terminal representation
	case *east.Footnote:
		g.wrap(TagFootnoteDefinition, Event{Name: string(n.Ref)}, n)
	case *east.FootnoteList:
		g.children(n)
	default:
		g.children(n)
	}
}

// codeLines emits one newline-terminated Text event per code block line.
func (g *generator) codeLines(n ast.Node) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		line := string(seg.Value(g.src))
		if !strings.HasSuffix(line, "\n") {
			line += "\n"
		}
		g.emit(Event{Kind: Text, Text: line})
	}
}

func (g *generator) htmlSegments(segments *text.Segments) {
	for i := 0; i < segments.Len(); i++ {
		seg := segments.At(i)
		g.emitHTML(string(seg.Value(g.src)))
	}
}

func (g *generator) emitHTML(s string) {
	if s == "" {
		return
	}
	g.emit(Event{Kind: HTML, Text: s})
}

// inlineText collects the literal text under an inline node, for nodes
// like code spans whose content is consumed as a single run.
func (g *generator) inlineText(n ast.Node) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			sb.Write(c.Segment.Value(g.src))
		case *ast.String:
			sb.Write(c.Value)
		}
	}
	return sb.String()
}

package mdbox

import (
	"strconv"
	"strings"

	"pkt.systems/mdbox/internal/highlight"
	"pkt.systems/mdbox/internal/mdevent"
)

// builder consumes the event stream and grows the box tree. links and
// footnotes accumulate trailing sections that are appended to the root
// once the stream ends.
type builder struct {
	events    *mdevent.Source
	links     *Box
	footnotes *Box
	codeTheme string
	session   *highlight.Session
}

// buildTree turns an event stream into a box tree rooted at width cells.
func buildTree(events *mdevent.Source, width Cell, codeTheme string) *Box {
	b := &builder{
		events:    events,
		links:     &Box{Kind: KindBlock},
		footnotes: &Box{Kind: KindBlock},
		codeTheme: codeTheme,
	}
	root := NewRoot(width)
	b.build(root)
	root.Swallow(b.links)
	root.Swallow(b.footnotes)
	return root
}

// build consumes events into parent until the enclosing tag ends or the
// stream runs out. Start events recurse; the matching End returns.
func (b *builder) build(parent *Box) {
	for {
		ev, ok := b.events.Next()
		if !ok {
			return
		}
		switch ev.Kind {
		case mdevent.Start:
			b.startTag(parent, ev)
		case mdevent.End:
			if b.endTag(parent, ev) {
				return
			}
		case mdevent.Text, mdevent.Code:
			b.text(parent, ev.Text)
		case mdevent.HTML:
			b.html(parent, ev.Text)
		case mdevent.SoftBreak, mdevent.HardBreak:
			parent.AddBreak()
		case mdevent.Rule:
			child := parent.AddBlock()
			child.Style.Extend = true
			child.Size.Border.Bottom++
			child.Style.Border = BorderThin
			child.Style.FG = Dark(Yellow)
		case mdevent.TaskListMarker:
			if ev.Checked {
				parent.AddText("[X]")
			} else {
				parent.AddText("[ ]")
			}
		case mdevent.FootnoteReference:
			child := parent.AddText(ev.Name)
			child.Style.FG = Dark(Green)
			child.Style.Underline = true
		}
	}
}

func (b *builder) startTag(parent *Box, ev mdevent.Event) {
	switch ev.Tag {
	case mdevent.TagParagraph:
		child := parent.AddBlock()
		b.build(child)
		child.Size.Border.Bottom++
	case mdevent.TagHeading:
		child := parent.AddHeader(ev.Level)
		child.Size.Border.Bottom++
		switch ev.Level {
		case 1:
			child.Size.Border.Top++
			child.Size.Border.Left++
			child.Size.Border.Right++
			child.Style.Border = BorderThin
		case 2:
			child.Style.Border = BorderBold
		case 3:
			child.Style.Border = BorderDouble
		case 4:
			child.Style.Border = BorderThin
		case 5:
			child.Style.Border = BorderDash
		}
		child.Style.FG = Dark(Purple)
		b.build(child)
	case mdevent.TagBlockQuote:
		child := parent.AddBlock()
		b.build(child)
		child.Size.Border.Left++
		child.Style.Border = BorderThin
		child.Style.FG = Dark(Cyan)
		parent.AddBlock().AddText("")
	case mdevent.TagCodeBlock:
		child := parent.AddBlock()
		child.Style.FG = Dark(White)
		child.Style.BG = Dark(Black)
		if ev.Fenced && ev.Lang != "" {
			b.session = highlight.New(ev.Lang, b.codeTheme)
		}
		b.build(child)
		parent.AddBlock().AddText("")
	case mdevent.TagList:
		child := parent.AddList(ev.Ordered, ev.Start)
		b.build(child)
		child.Size.Border.Bottom++
	case mdevent.TagItem:
		bullet := parent.AddBullet()
		bullet.Style.FG = Light(Yellow)
		bullet.Size.Border.Right++
		child := parent.AddBlock()
		b.build(child)
	case mdevent.TagEmphasis:
		child := parent.AddInline()
		child.Style.Italic = true
		b.build(child)
	case mdevent.TagStrong:
		child := parent.AddInline()
		child.Style.Bold = true
		b.build(child)
	case mdevent.TagStrikethrough:
		child := parent.AddInline()
		child.Style.Strikethrough = true
		b.build(child)
	case mdevent.TagLink:
		dest := b.links.AddText(ev.Dest)
		dest.Style.FG = Dark(Blue)
		dest.Style.Underline = true
		b.links.AddBreak()
		child := parent.AddInline()
		child.Style.Underline = true
		child.Style.FG = Dark(Blue)
		b.build(child)
	case mdevent.TagImage:
		title := parent.AddText(ev.Title)
		title.Style.FG = Light(Black)
		title.Style.BG = Dark(Yellow)
		dest := parent.AddText(ev.Dest)
		dest.Style.FG = Dark(Blue)
		dest.Style.BG = Dark(Yellow)
		dest.Style.Underline = true
		child := parent.AddInline()
		child.Style.Italic = true
		b.build(child)
	case mdevent.TagFootnoteDefinition:
		name := b.footnotes.AddText(ev.Name)
		name.Style.FG = Dark(Green)
		name.Style.Underline = true
		b.build(b.footnotes)
	case mdevent.TagTable, mdevent.TagTableHead, mdevent.TagTableRow, mdevent.TagTableCell:
		// no box layout rule yet; cell content flows into the parent
	}
}

// endTag reports whether the current recursion level is done.
func (b *builder) endTag(parent *Box, ev mdevent.Event) bool {
	switch ev.Tag {
	case mdevent.TagTable, mdevent.TagTableHead, mdevent.TagTableRow, mdevent.TagTableCell:
		return false
	case mdevent.TagCodeBlock:
		b.session = nil
		return true
	case mdevent.TagList:
		b.labelBullets(parent)
		return true
	default:
		return true
	}
}

// labelBullets assigns each bullet its rendered label: sequential numbers
// for ordered lists, a literal glyph otherwise.
func (b *builder) labelBullets(list *Box) {
	if list.Kind != KindList {
		return
	}
	n := list.Start
	for _, child := range list.Children {
		if child.Kind != KindListBullet {
			continue
		}
		if list.Ordered {
			child.AddText(strconv.Itoa(n))
			n++
		} else {
			child.AddText("*")
		}
	}
}

// text routes document text: through the highlighter session inside a
// fenced code block, otherwise as a text box with a trailing newline
// turned into a forced break.
func (b *builder) text(parent *Box, text string) {
	if b.session != nil {
		b.highlighted(parent, text)
		return
	}
	if strings.HasSuffix(text, "\n") {
		parent.AddText(strings.TrimSuffix(text, "\n"))
		parent.AddBreak()
		return
	}
	parent.AddText(text)
}

// highlighted appends one text box per highlighter span, quantizing the
// span's color onto the palette and OR-ing its font flags.
func (b *builder) highlighted(parent *Box, text string) {
	for _, span := range b.session.Highlight(text) {
		chunk := span.Text
		addBreak := strings.HasSuffix(chunk, "\n")
		if addBreak {
			chunk = strings.TrimSuffix(chunk, "\n")
		}
		child := parent.AddText(chunk)
		if span.HasColor {
			child.Style.FG = RGB(span.R, span.G, span.B)
		}
		child.Style.Bold = child.Style.Bold || span.Bold
		child.Style.Italic = child.Style.Italic || span.Italic
		child.Style.Underline = child.Style.Underline || span.Underline
		if addBreak {
			parent.AddBreak()
		}
	}
}

func (b *builder) html(parent *Box, text string) {
	addBreak := strings.HasSuffix(text, "\n")
	if addBreak {
		text = strings.TrimSuffix(text, "\n")
	}
	child := parent.AddText(text)
	child.Style.FG = Light(Red)
	if addBreak {
		parent.AddBreak()
	}
}

// Package mdevent flattens a Markdown document into the ordered sequence
// of semantic events the box-tree builder consumes. The only operation a
// consumer has is Next: sequential pull, no peeking, no rewinding.
package mdevent

// Kind discriminates events.
type Kind uint8

// Event kinds.
const (
	// Start opens the tag carried by the event.
	Start Kind = iota
	// End closes the current tag.
	End
	// Text is a run of document text.
	Text
	// Code is inline code text.
	Code
	// HTML is raw HTML passed through verbatim.
	HTML
	// SoftBreak is a source line end inside a paragraph.
	SoftBreak
	// HardBreak is an explicit line break.
	HardBreak
	// Rule is a thematic break.
	Rule
	// TaskListMarker is a task list checkbox.
	TaskListMarker
	// FootnoteReference is an in-text footnote reference.
	FootnoteReference
)

// Tag identifies the structure opened by a Start event.
type Tag uint8

// Tags.
const (
	TagNone Tag = iota
	TagParagraph
	TagHeading
	TagBlockQuote
	TagCodeBlock
	TagList
	TagItem
	TagEmphasis
	TagStrong
	TagStrikethrough
	TagLink
	TagImage
	TagFootnoteDefinition
	TagTable
	TagTableHead
	TagTableRow
	TagTableCell
)

// Event is one semantic step of a document. Payload fields are meaningful
// for the kinds and tags that define them.
type Event struct {
	Kind Kind
	Tag  Tag

	// Text content for Text, Code and HTML events.
	Text string
	// Level is the heading weight (1-6) for TagHeading.
	Level int
	// Ordered and Start describe a TagList; Start is the first label of
	// an ordered list.
	Ordered bool
	Start   int
	// Fenced and Lang describe a TagCodeBlock.
	Fenced bool
	Lang   string
	// Dest and Title describe a TagLink or TagImage.
	Dest  string
	Title string
	// Name labels a footnote definition or reference.
	Name string
	// Checked is the TaskListMarker state.
	Checked bool
}

package mdbox

import "fmt"

// BoxKind tags the layout behavior of a box. The set is closed; layout and
// rendering dispatch exhaustively on it.
type BoxKind uint8

// Box kinds.
const (
	// KindText is a run of text, an inline element.
	KindText BoxKind = iota
	// KindBreak is a forced line end. It only exists between build and
	// layout; layout consumes every break.
	KindBreak
	// KindInlineContainer is one visual line of inline content.
	KindInlineContainer
	// KindInline is a styled inline group.
	KindInline
	// KindBlock is a plain rectangular block.
	KindBlock
	// KindHeader is a heading block with a weight.
	KindHeader
	// KindList is an ordered or unordered list.
	KindList
	// KindListBullet is a list item marker.
	KindListBullet
	// KindTable is a table container.
	KindTable
	// KindTableColumn is a table column.
	KindTableColumn
	// KindTableItem is a table cell.
	KindTableItem
	// KindImage is an image placeholder.
	KindImage
)

func (k BoxKind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindBreak:
		return "Break"
	case KindInlineContainer:
		return "InlineContainer"
	case KindInline:
		return "Inline"
	case KindBlock:
		return "Block"
	case KindHeader:
		return "Header"
	case KindList:
		return "List"
	case KindListBullet:
		return "ListBullet"
	case KindTable:
		return "Table"
	case KindTableColumn:
		return "TableColumn"
	case KindTableItem:
		return "TableItem"
	case KindImage:
		return "Image"
	}
	return fmt.Sprintf("BoxKind(%d)", uint8(k))
}

// Rect is a content rectangle in terminal cells.
type Rect struct {
	X, Y, W, H Cell
}

// Edges holds border thicknesses for the four sides of a box.
type Edges struct {
	Top, Bottom, Left, Right Cell
}

// BoxSize is a content rectangle plus its border thicknesses.
type BoxSize struct {
	Content Rect
	Border  Edges
}

// Box is one node of the layout tree: the unit of sizing, positioning and
// rendering. A box exclusively owns its children; the tree is a pure forest
// rooted at one block sized to the target width.
type Box struct {
	Kind     BoxKind
	Size     BoxSize
	Style    BoxStyle
	Children []*Box

	// Text is the content of a KindText box.
	Text string
	// Level is the weight of a KindHeader box (1-6).
	Level int
	// Ordered and Start describe a KindList box. Start is the first
	// label of an ordered list.
	Ordered bool
	Start   int
}

// NewRoot returns the root block for a layout of the given width.
func NewRoot(width Cell) *Box {
	root := &Box{Kind: KindBlock}
	root.Size.Content.W = width
	return root
}

// Swallow appends an existing box as the last child.
func (b *Box) Swallow(child *Box) {
	b.Children = append(b.Children, child)
}

func (b *Box) appendChild(kind BoxKind) *Box {
	child := &Box{Kind: kind, Style: b.Style}
	b.Children = append(b.Children, child)
	return child
}

// inlineContainer resolves the box inline content should be appended under.
// Inline-level boxes are their own container; block-level boxes reuse a
// trailing InlineContainer child or grow a fresh one. Inline content is
// never a direct child of a block-level box.
func (b *Box) inlineContainer() *Box {
	switch b.Kind {
	case KindInline, KindInlineContainer:
		return b
	}
	if n := len(b.Children); n > 0 && b.Children[n-1].Kind == KindInlineContainer {
		return b.Children[n-1]
	}
	return b.appendChild(KindInlineContainer)
}

// AddText appends a text box under the inline container, creating the
// container if needed.
func (b *Box) AddText(text string) *Box {
	child := b.inlineContainer().appendChild(KindText)
	child.Text = text
	return child
}

// AddInline appends an inline group under the inline container.
func (b *Box) AddInline() *Box {
	return b.inlineContainer().appendChild(KindInline)
}

// AddBlock appends a block child.
func (b *Box) AddBlock() *Box {
	return b.appendChild(KindBlock)
}

// AddHeader appends a heading child with the given weight.
func (b *Box) AddHeader(level int) *Box {
	child := b.appendChild(KindHeader)
	child.Level = level
	return child
}

// AddList appends a list child. Ordered lists label their bullets starting
// at start.
func (b *Box) AddList(ordered bool, start int) *Box {
	child := b.appendChild(KindList)
	child.Ordered = ordered
	child.Start = start
	return child
}

// AddBullet appends a list item marker child.
func (b *Box) AddBullet() *Box {
	return b.appendChild(KindListBullet)
}

// AddBreak appends a forced line end marker.
func (b *Box) AddBreak() *Box {
	return b.appendChild(KindBreak)
}

// splitTextAt splits the text content at a byte offset: the box keeps the
// prefix and the suffix is returned. The offset must lie on a boundary
// produced by the grapheme splitter.
func (b *Box) splitTextAt(offset int) string {
	suffix := b.Text[offset:]
	b.Text = b.Text[:offset]
	return suffix
}

// splitOff removes children[i:] and returns them as the child sequence for
// a remainder box.
func (b *Box) splitOff(i int) []*Box {
	tail := make([]*Box, len(b.Children)-i)
	copy(tail, b.Children[i:])
	for j := i; j < len(b.Children); j++ {
		b.Children[j] = nil
	}
	b.Children = b.Children[:i]
	return tail
}

// removeChild deletes the child at index i, keeping order.
func (b *Box) removeChild(i int) {
	copy(b.Children[i:], b.Children[i+1:])
	b.Children[len(b.Children)-1] = nil
	b.Children = b.Children[:len(b.Children)-1]
}

// insertChild places child at index i, keeping order.
func (b *Box) insertChild(i int, child *Box) {
	b.Children = append(b.Children, nil)
	copy(b.Children[i+1:], b.Children[i:])
	b.Children[i] = child
}

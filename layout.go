package mdbox

import (
	"fmt"

	"github.com/rivo/uniseg"
)

const (
	minWidth  = Cell(1)
	minHeight = Cell(1)
)

// boxCursor is the layout position inside an enclosing container: the
// container's size plus the x/y cell the next box starts at.
type boxCursor struct {
	container BoxSize
	x, y      Cell
}

type layoutStatus uint8

const (
	// layoutNormal: the box fit entirely, no restructuring.
	layoutNormal layoutStatus = iota
	// layoutCut: the box is finished and a remainder sibling continues
	// the content after it.
	layoutCut
	// layoutReject: the box cannot be placed at all. Only legal for the
	// first inline item of a line.
	layoutReject
)

// Layout assigns a position and size to every box in the tree under the
// root's width budget, wrapping and splitting inline content that does not
// fit. Break boxes are consumed; none survive layout.
func (b *Box) Layout() {
	cur := boxCursor{container: b.Size}
	b.layoutNode(&cur)
}

func (b *Box) layoutNode(cur *boxCursor) (layoutStatus, *Box) {
	switch b.Kind {
	case KindBlock, KindListBullet, KindHeader:
		return b.layoutBlock(cur)
	case KindInlineContainer:
		return b.layoutInlineContainer(cur)
	case KindList:
		return b.layoutList(cur)
	case KindText, KindInline:
		return b.layoutInline(cur)
	case KindBreak:
		panic("mdbox: a Break box reached layout dispatch")
	default:
		panic(fmt.Sprintf("mdbox: no layout rule for %v boxes", b.Kind))
	}
}

// layoutBlock stacks children vertically within the width left at the
// cursor. Breaks between block children are discarded; only inline content
// splits on them.
func (b *Box) layoutBlock(cur *boxCursor) (layoutStatus, *Box) {
	b.Size.Content.X = cur.x.add(b.Size.Border.Left)
	b.Size.Content.Y = cur.y.add(b.Size.Border.Top)
	b.Size.Content.H = 0
	offered := cur.container.Content.W.sub(cur.x.sub(cur.container.Content.X))
	if offered > b.Size.Border.Left+b.Size.Border.Right {
		b.Size.Content.W = offered - b.Size.Border.Left - b.Size.Border.Right
	} else {
		b.Size.Content.W = minWidth
	}
	sub := boxCursor{x: b.Size.Content.X, y: b.Size.Content.Y, container: b.Size}
	var maxWidth Cell
	for i := 0; i < len(b.Children); {
		child := b.Children[i]
		if child.Kind == KindBreak {
			b.removeChild(i)
			continue
		}
		status, next := child.layoutNode(&sub)
		switch status {
		case layoutCut:
			b.insertChild(i+1, next)
		case layoutReject:
			panic(fmt.Sprintf("mdbox: cannot reject a %v inside a block", child.Kind))
		}
		b.Size.Content.H += child.Size.Content.H + child.Size.Border.Top + child.Size.Border.Bottom
		if w := child.Size.Content.W + child.Size.Border.Left + child.Size.Border.Right; w > maxWidth {
			maxWidth = w
		}
		i++
	}
	if !b.Style.Extend {
		b.Size.Content.W = maxWidth
	}
	if b.Kind == KindListBullet {
		// the item's content block sits beside the bullet on the same row
		cur.x = cur.x.add(b.Size.Content.W + b.Size.Border.Left + b.Size.Border.Right)
	} else {
		cur.x = cur.container.Content.X
		cur.y = cur.y.add(b.Size.Content.H + b.Size.Border.Top + b.Size.Border.Bottom)
	}
	return layoutNormal, nil
}

// layoutList is layoutBlock restricted to ListBullet and Block children;
// bullet heights do not count toward the list height.
func (b *Box) layoutList(cur *boxCursor) (layoutStatus, *Box) {
	if cur.container.Content.W > b.Size.Border.Left+b.Size.Border.Right {
		b.Size.Content.W = cur.container.Content.W - b.Size.Border.Left - b.Size.Border.Right
	} else {
		b.Size.Content.W = minWidth
	}
	b.Size.Content.H = 0
	b.Size.Content.X = cur.x.add(b.Size.Border.Left)
	b.Size.Content.Y = cur.y.add(b.Size.Border.Top)
	sub := boxCursor{x: b.Size.Content.X, y: b.Size.Content.Y, container: b.Size}
	for i := 0; i < len(b.Children); {
		child := b.Children[i]
		switch child.Kind {
		case KindListBullet, KindBlock:
			status, next := child.layoutNode(&sub)
			switch status {
			case layoutCut:
				b.insertChild(i+1, next)
			case layoutReject:
				panic(fmt.Sprintf("mdbox: cannot reject a %v inside a list", child.Kind))
			}
			if child.Kind == KindBlock {
				b.Size.Content.H += child.Size.Content.H + child.Size.Border.Top + child.Size.Border.Bottom
			}
		default:
			panic(fmt.Sprintf("mdbox: cannot lay out a %v inside a list", child.Kind))
		}
		i++
	}
	cur.y = cur.y.add(b.Size.Content.H + b.Size.Border.Top + b.Size.Border.Bottom)
	return layoutNormal, nil
}

// layoutInlineContainer lays out exactly one visual line. When its content
// overflows or hits a break, the cut remainder becomes the next line.
func (b *Box) layoutInlineContainer(cur *boxCursor) (layoutStatus, *Box) {
	if cur.container.Content.W > b.Size.Border.Left+b.Size.Border.Right {
		b.Size.Content.W = cur.container.Content.W - b.Size.Border.Left - b.Size.Border.Right
	} else {
		b.Size.Content.W = minWidth
	}
	b.Size.Content.H = minHeight
	b.Size.Content.X = cur.x.add(b.Size.Border.Left)
	b.Size.Content.Y = cur.y.add(b.Size.Border.Top)
	// a container is always the first thing on its line, so a reject from
	// its first child is a fatal error rather than a recoverable condition
	status, remainder := b.inlineChildrenLoop(false)
	cur.y = cur.y.add(b.Size.Content.H + b.Size.Border.Top + b.Size.Border.Bottom)
	return status, remainder
}

// layoutInline places a Text run or a styled inline group in the width left
// on the current line.
func (b *Box) layoutInline(cur *boxCursor) (layoutStatus, *Box) {
	b.Size.Content.H = minHeight
	b.Size.Content.X = cur.x.add(b.Size.Border.Left)
	b.Size.Content.Y = cur.y.add(b.Size.Border.Top)
	b.Size.Content.W = cur.container.Content.W.
		sub(cur.x.sub(cur.container.Content.X)).
		sub(b.Size.Border.Left + b.Size.Border.Right)
	var status layoutStatus
	var remainder *Box
	switch b.Kind {
	case KindText:
		status, remainder = b.layoutText()
	case KindInline:
		status, remainder = b.inlineChildrenLoop(true)
	default:
		panic(fmt.Sprintf("mdbox: %v is not an inline kind", b.Kind))
	}
	cur.x = cur.x.add(b.Size.Content.W)
	return status, remainder
}

func (b *Box) layoutText() (layoutStatus, *Box) {
	if b.Size.Content.W == 0 {
		return layoutReject, nil
	}
	total, fitEnd, fitWidth := measureFit(b.Text, b.Size.Content.W)
	if total <= b.Size.Content.W {
		b.Size.Content.W = total
		return layoutNormal, nil
	}
	suffix := b.splitTextAt(fitEnd)
	b.Size.Content.W = fitWidth
	rest := &Box{Kind: KindText, Size: b.Size, Style: b.Style, Text: suffix}
	return layoutCut, rest
}

// inlineChildrenLoop walks inline children against a shared sub-cursor. A
// Break is removed and forces a cut; a child's cut or an off-line-start
// reject forces a cut that moves the tail children into a same-kind
// remainder sibling. The node's final width is the cursor's net advance.
func (b *Box) inlineChildrenLoop(allowReject bool) (layoutStatus, *Box) {
	sub := boxCursor{x: b.Size.Content.X, y: b.Size.Content.Y, container: b.Size}
	status := layoutNormal
	var remainder *Box
	for i := 0; i < len(b.Children); {
		child := b.Children[i]
		if child.Kind == KindBreak {
			b.removeChild(i)
			status, remainder = layoutCut, b.remainderFrom(i)
			break
		}
		st, next := child.layoutNode(&sub)
		if st == layoutCut {
			b.insertChild(i+1, next)
			status, remainder = layoutCut, b.remainderFrom(i+1)
			break
		}
		if st == layoutReject {
			if i == 0 {
				if !allowReject {
					panic(fmt.Sprintf("mdbox: cannot reject the first %v of a line", child.Kind))
				}
				status = layoutReject
				break
			}
			// break the line before the element that did not fit
			status, remainder = layoutCut, b.remainderFrom(i)
			break
		}
		i++
	}
	b.Size.Content.W = sub.x.sub(b.Size.Content.X)
	return status, remainder
}

// remainderFrom builds the cut sibling: a same-kind box taking ownership of
// children[i:].
func (b *Box) remainderFrom(i int) *Box {
	return &Box{Kind: b.Kind, Size: b.Size, Style: b.Style, Children: b.splitOff(i)}
}

// displayWidth is the terminal cell width of text, counted per extended
// grapheme cluster.
func displayWidth(text string) Cell {
	return Cell(uniseg.StringWidth(text))
}

// measureFit returns the display width of text together with the widest
// grapheme-boundary prefix that fits within limit cells: its byte end and
// width. The first cluster is always taken, even when wider than the
// limit, so a split always makes progress.
func measureFit(text string, limit Cell) (total Cell, fitEnd int, fitWidth Cell) {
	state := -1
	rest := text
	for len(rest) > 0 {
		var w int
		_, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		next := total.add(Cell(w))
		if next <= limit || fitEnd == 0 {
			fitEnd = len(text) - len(rest)
			fitWidth = next
		}
		total = next
	}
	return total, fitEnd, fitWidth
}

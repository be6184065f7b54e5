package mdbox

import (
	"fmt"
	"io"
	"strings"
)

// run is one styled segment of a rendered row.
type run struct {
	style *BoxStyle
	text  string
}

// RenderTo serializes a laid-out tree to w, top to bottom, one
// newline-terminated line per row. Rendering is read-only; no box is
// created or destroyed.
func (b *Box) RenderTo(w io.Writer, mode Mode) error {
	lw := &lineWriter{w: w, mode: mode}
	total := b.Size.Content.H + b.Size.Border.Top + b.Size.Border.Bottom
	runs := make([]run, 0, 16)
	for line := Cell(0); line < total; line++ {
		runs = runs[:0]
		b.renderLine(line, &runs)
		for _, r := range runs {
			lw.writeRun(r.style, r.text)
		}
		lw.endLine()
		if lw.err != nil {
			break
		}
	}
	return lw.err
}

// renderLine appends this box's contribution to one row and reports the
// horizontal band it covered, or (0, 0) when the row is outside the box.
func (b *Box) renderLine(line Cell, runs *[]run) (start, width Cell) {
	if line < b.Size.Content.Y.sub(b.Size.Border.Top) ||
		line >= b.Size.Content.Y+b.Size.Content.H+b.Size.Border.Bottom {
		return 0, 0
	}
	if line < b.Size.Content.Y || line >= b.Size.Content.Y+b.Size.Content.H {
		return b.renderBorderLine(line, runs)
	}
	b.renderBorderSide(true, runs)
	pos := b.Size.Content.X
	if b.Kind == KindText {
		*runs = append(*runs, run{style: &b.Style, text: b.Text})
		pos = pos.add(displayWidth(b.Text))
		if pos > b.Size.Content.X+b.Size.Content.W {
			panic("mdbox: text run rendered past its content box")
		}
	} else {
		for _, child := range b.Children {
			insertAt := len(*runs)
			childStart, childWidth := child.renderLine(line, runs)
			if childWidth == 0 {
				continue
			}
			if childStart < pos {
				panic(fmt.Sprintf("mdbox: %v child rendered before the cursor", child.Kind))
			}
			if childStart+childWidth > b.Size.Content.X+b.Size.Content.W {
				panic(fmt.Sprintf("mdbox: %v child rendered past its parent", child.Kind))
			}
			if childStart > pos {
				// fill the gap in this box's style, before the child's runs
				b.insertCharRun(' ', childStart-pos, insertAt, runs)
			}
			pos = childStart + childWidth
		}
	}
	if pos < b.Size.Content.X+b.Size.Content.W {
		b.appendCharRun(' ', b.Size.Content.X+b.Size.Content.W-pos, runs)
	}
	b.renderBorderSide(false, runs)
	return b.Size.Content.X.sub(b.Size.Border.Left),
		b.Size.Content.W + b.Size.Border.Left + b.Size.Border.Right
}

// renderBorderLine draws a full top or bottom border row, with corner
// glyphs where side borders meet it.
func (b *Box) renderBorderLine(line Cell, runs *[]run) (start, width Cell) {
	isTop := line < b.Size.Content.Y
	var sb strings.Builder
	for i := Cell(0); i < b.Size.Border.Left; i++ {
		if isTop {
			sb.WriteRune('┌')
		} else {
			sb.WriteRune('└')
		}
	}
	glyph := b.Style.Border.lineGlyph()
	for i := Cell(0); i < b.Size.Content.W; i++ {
		sb.WriteRune(glyph)
	}
	for i := Cell(0); i < b.Size.Border.Right; i++ {
		if isTop {
			sb.WriteRune('┐')
		} else {
			sb.WriteRune('┘')
		}
	}
	*runs = append(*runs, run{style: &b.Style, text: sb.String()})
	return b.Size.Content.X.sub(b.Size.Border.Left),
		b.Size.Content.W + b.Size.Border.Left + b.Size.Border.Right
}

func (b *Box) renderBorderSide(isLeft bool, runs *[]run) {
	width := b.Size.Border.Right
	if isLeft {
		width = b.Size.Border.Left
	}
	if width == 0 {
		return
	}
	*runs = append(*runs, run{
		style: &b.Style,
		text:  strings.Repeat(string(b.Style.Border.sideGlyph()), int(width)),
	})
}

func (b *Box) appendCharRun(c rune, n Cell, runs *[]run) {
	*runs = append(*runs, run{style: &b.Style, text: strings.Repeat(string(c), int(n))})
}

func (b *Box) insertCharRun(c rune, n Cell, at int, runs *[]run) {
	r := run{style: &b.Style, text: strings.Repeat(string(c), int(n))}
	*runs = append(*runs, run{})
	copy((*runs)[at+1:], (*runs)[at:])
	(*runs)[at] = r
}

func (k BorderKind) lineGlyph() rune {
	switch k {
	case BorderDash:
		return '╌'
	case BorderThin:
		return '─'
	case BorderDouble:
		return '═'
	case BorderBold:
		return '━'
	}
	return ' '
}

func (k BorderKind) sideGlyph() rune {
	switch k {
	case BorderDash:
		return '╎'
	case BorderThin:
		return '│'
	case BorderDouble:
		return '║'
	case BorderBold:
		return '┃'
	}
	return ' '
}

// lineWriter assembles styled runs into terminal lines, tracking the
// active SGR prefix so identical styles are not re-emitted.
type lineWriter struct {
	w    io.Writer
	mode Mode
	cur  string
	err  error
}

func (lw *lineWriter) writeRun(style *BoxStyle, text string) {
	if lw.err != nil || text == "" {
		return
	}
	prefix := ""
	if lw.mode == ModeColor {
		prefix = style.sgr()
	}
	if prefix != lw.cur {
		if lw.cur != "" {
			lw.print(ansiReset)
		}
		lw.cur = prefix
		if prefix != "" {
			lw.print(prefix)
		}
	}
	lw.print(text)
}

func (lw *lineWriter) endLine() {
	if lw.cur != "" {
		lw.print(ansiReset)
		lw.cur = ""
	}
	lw.print("\n")
}

func (lw *lineWriter) print(s string) {
	if lw.err != nil {
		return
	}
	_, lw.err = io.WriteString(lw.w, s)
}

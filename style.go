package mdbox

import (
	"strconv"
	"strings"
)

// BaseColor is one of the eight classic terminal colors.
type BaseColor uint8

// Classic palette entries, in standard SGR order.
const (
	Black BaseColor = iota
	Red
	Green
	Yellow
	Blue
	Purple
	Cyan
	White
)

// Color is an optional 256-color palette index. The zero value means "no
// color": inherit the terminal default.
type Color struct {
	index uint8
	set   bool
}

// Dark returns the normal-intensity variant of a base color.
func Dark(c BaseColor) Color {
	return Color{index: uint8(c), set: true}
}

// Light returns the bright variant of a base color.
func Light(c BaseColor) Color {
	return Color{index: uint8(c) + 8, set: true}
}

// Gray quantizes an 8-bit intensity onto the palette's grayscale ramp.
func Gray(level uint8) Color {
	level >>= 4
	switch level {
	case 0:
		level = 16
	case 15:
		level = 231
	default:
		level = 231 + level
	}
	return Color{index: level, set: true}
}

// RGB quantizes a 24-bit color onto the 256-color palette. Channels that
// share the same top nibble go to the grayscale ramp, everything else to
// the 6x6x6 cube.
func RGB(red, green, blue uint8) Color {
	if red>>4 == green>>4 && green>>4 == blue>>4 {
		return Gray(red)
	}
	r := uint8(uint32(red) * 6 / 256)
	g := uint8(uint32(green) * 6 / 256)
	b := uint8(uint32(blue) * 6 / 256)
	return Color{index: 16 + r*36 + g*6 + b, set: true}
}

// Index returns the palette index and whether a color is set.
func (c Color) Index() (uint8, bool) {
	return c.index, c.set
}

// TextAlign selects horizontal alignment of inline content.
type TextAlign uint8

// Alignment values.
const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// BorderKind selects the glyph set used to draw a box border.
type BorderKind uint8

// Border decorations.
const (
	BorderEmpty BorderKind = iota
	BorderDash
	BorderThin
	BorderDouble
	BorderBold
)

// BoxStyle is the appearance of one box: colors, font attributes, alignment
// and border decoration. Extend makes a box fill the offered width instead
// of shrinking to its content.
type BoxStyle struct {
	FG            Color
	BG            Color
	Bold          bool
	Underline     bool
	Strikethrough bool
	Italic        bool
	Extend        bool
	Align         TextAlign
	Border        BorderKind
}

// sgr returns the ANSI SGR prefix selecting this style, or "" for the
// terminal default.
func (s *BoxStyle) sgr() string {
	var codes []string
	if idx, ok := s.FG.Index(); ok {
		codes = append(codes, "38;5;"+strconv.Itoa(int(idx)))
	}
	if idx, ok := s.BG.Index(); ok {
		codes = append(codes, "48;5;"+strconv.Itoa(int(idx)))
	}
	if s.Bold {
		codes = append(codes, "1")
	}
	if s.Italic {
		codes = append(codes, "3")
	}
	if s.Underline {
		codes = append(codes, "4")
	}
	if s.Strikethrough {
		codes = append(codes, "9")
	}
	if len(codes) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(codes, ";") + "m"
}

const ansiReset = "\x1b[0m"

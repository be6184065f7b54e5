package mdbox

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"pkt.systems/mdbox/internal/mdevent"
)

// defaultWidth is the fallback target width when none is configured.
const defaultWidth = 80

// Mode selects the output encoding.
type Mode uint8

const (
	// ModeColor emits ANSI-styled output.
	ModeColor Mode = iota
	// ModePlain suppresses all style escapes but preserves spacing and
	// border glyphs.
	ModePlain
)

// ErrNoInput reports a render request without a reader or writer.
var ErrNoInput = errors.New("render request needs a reader and a writer")

// RenderRequest describes one rendering run.
type RenderRequest struct {
	// Reader supplies the Markdown source.
	Reader io.Reader
	// Writer receives the rendered rows.
	Writer io.Writer
	// Width is the target width in cells; values <= 0 use the default.
	Width int
	// Mode selects color or plain output.
	Mode Mode
	// CodeTheme names the code block highlight theme; empty uses the
	// default.
	CodeTheme string
}

// Render reads Markdown from the request's reader, builds and lays out the
// box tree, and writes the rendered rows to the writer. One build, one
// layout, one render; the call returns when the document is written.
func Render(req RenderRequest) error {
	if req.Reader == nil || req.Writer == nil {
		return ErrNoInput
	}
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return err
	}
	if err := ValidateInput(src); err != nil {
		return err
	}
	src = stripFrontMatter(src)
	root := Build(src, req.Width, req.CodeTheme)
	root.Layout()
	return root.RenderTo(req.Writer, req.Mode)
}

// RenderString renders Markdown source and returns the output.
func RenderString(src string, width int, mode Mode) (string, error) {
	var buf bytes.Buffer
	err := Render(RenderRequest{
		Reader: strings.NewReader(src),
		Writer: &buf,
		Width:  width,
		Mode:   mode,
	})
	return buf.String(), err
}

// Build parses Markdown source and returns the unlaid box tree rooted at
// the target width.
func Build(src []byte, width int, codeTheme string) *Box {
	if width <= 0 {
		width = defaultWidth
	}
	if width > int(MaxCell) {
		width = int(MaxCell)
	}
	if codeTheme == "" {
		codeTheme = DefaultCodeTheme
	}
	return buildTree(mdevent.Parse(src), Cell(width), codeTheme)
}

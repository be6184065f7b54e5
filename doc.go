// Package mdbox renders Markdown to ANSI for terminal display.
//
// This package is built around a box model: the document's semantic events
// become a tree of styled rectangular boxes, every box gets a position and
// width under the target width (wrapping and splitting content that does
// not fit), and the finished tree is serialized line by line with border
// glyphs. Block boxes stack vertically; inline content lives in
// single-line containers that split into sibling lines on overflow or
// forced breaks.
//
// Core properties:
//   - One build → one layout → one render pass per call
//   - Grapheme-aware wrapping; splits never cut a cluster in half
//   - Bordered headings, quotes and rules drawn with box glyphs
//   - Fenced code blocks highlighted through chroma themes
//
// Example:
//
//	reader := strings.NewReader("# Hello\n\nMarkdown in, boxes out.\n")
//	err := mdbox.Render(mdbox.RenderRequest{
//		Reader: reader,
//		Writer: os.Stdout,
//		Width:  80,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// ModePlain keeps spacing and border glyphs while suppressing all style
// escapes.
package mdbox

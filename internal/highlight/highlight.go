// Package highlight wraps chroma as the code block highlighting
// collaborator: one session per fenced code block, one span list per line.
package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Span is a styled slice of a highlighted line. Spans cover the line's
// bytes in order, with no gaps or overlaps.
type Span struct {
	Text      string
	R, G, B   uint8
	HasColor  bool
	Bold      bool
	Italic    bool
	Underline bool
}

// Session highlights the lines of one fenced code block.
type Session struct {
	lexer chroma.Lexer
	style *chroma.Style
}

// New returns a session for a language token, or nil when no lexer matches
// and the caller should fall back to verbatim text.
func New(lang, theme string) *Session {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Match("file." + lang)
	}
	if lexer == nil {
		return nil
	}
	style := styles.Get(theme)
	if style == nil {
		style = styles.Fallback
	}
	return &Session{lexer: chroma.Coalesce(lexer), style: style}
}

// Highlight tokenizes one line into consecutive styled spans.
func (s *Session) Highlight(line string) []Span {
	it, err := s.lexer.Tokenise(nil, line)
	if err != nil {
		return []Span{{Text: line}}
	}
	var spans []Span
	for _, tok := range it.Tokens() {
		if tok.Value == "" {
			continue
		}
		entry := s.style.Get(tok.Type)
		span := Span{
			Text:      tok.Value,
			Bold:      entry.Bold == chroma.Yes,
			Italic:    entry.Italic == chroma.Yes,
			Underline: entry.Underline == chroma.Yes,
		}
		if entry.Colour.IsSet() {
			span.HasColor = true
			span.R = entry.Colour.Red()
			span.G = entry.Colour.Green()
			span.B = entry.Colour.Blue()
		}
		spans = append(spans, span)
	}
	if len(spans) == 0 {
		return []Span{{Text: line}}
	}
	return spans
}

package highlight

import (
	"strings"
	"testing"
)

func TestNewKnownLanguage(t *testing.T) {
	if s := New("go", "monokai"); s == nil {
		t.Fatalf("expected a session for go")
	}
	// extension-style tokens resolve through filename matching
	if s := New("py", "monokai"); s == nil {
		t.Fatalf("expected a session for py")
	}
}

func TestNewUnknownLanguage(t *testing.T) {
	if s := New("not-a-real-language-token", "monokai"); s != nil {
		t.Fatalf("expected nil session for an unknown language")
	}
}

func TestNewUnknownThemeFallsBack(t *testing.T) {
	s := New("go", "no-such-theme")
	if s == nil {
		t.Fatalf("expected a session despite the unknown theme")
	}
	spans := s.Highlight("package main\n")
	if len(spans) == 0 {
		t.Fatalf("no spans produced")
	}
}

func TestHighlightCoversLine(t *testing.T) {
	s := New("go", "monokai")
	line := "func add(a, b int) int { return a + b }\n"
	spans := s.Highlight(line)
	if len(spans) == 0 {
		t.Fatalf("no spans produced")
	}
	var sb strings.Builder
	for _, span := range spans {
		if span.Text == "" {
			t.Fatalf("empty span in output")
		}
		sb.WriteString(span.Text)
	}
	if sb.String() != line {
		t.Fatalf("spans do not cover the line:\nwant %q\n got %q", line, sb.String())
	}
}

func TestHighlightStylesKeywords(t *testing.T) {
	s := New("go", "monokai")
	spans := s.Highlight("return nil\n")
	colored := false
	for _, span := range spans {
		if span.HasColor {
			colored = true
		}
	}
	if !colored {
		t.Fatalf("expected at least one colored span: %+v", spans)
	}
}

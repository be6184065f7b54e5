package mdbox

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderRequiresReaderAndWriter(t *testing.T) {
	if err := Render(RenderRequest{}); err != ErrNoInput {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}
	if err := Render(RenderRequest{Reader: strings.NewReader("x")}); err != ErrNoInput {
		t.Fatalf("expected ErrNoInput without a writer, got %v", err)
	}
}

func TestRenderRejectsBinary(t *testing.T) {
	var out bytes.Buffer
	err := Render(RenderRequest{
		Reader: bytes.NewReader([]byte{0x00, 0x01, 0x02}),
		Writer: &out,
		Width:  10,
	})
	if err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

func TestRenderString(t *testing.T) {
	out, err := RenderString("plain text\n", 40, ModePlain)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "plain text") {
		t.Fatalf("output missing content: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("plain output contains escapes: %q", out)
	}
}

func TestCodeThemes(t *testing.T) {
	names := CodeThemes()
	if len(names) == 0 {
		t.Fatalf("no code themes registered")
	}
	found := false
	for _, name := range names {
		if name == DefaultCodeTheme {
			found = true
		}
	}
	if !found {
		t.Fatalf("default theme %q not in %v", DefaultCodeTheme, names)
	}
	if !HasCodeTheme(DefaultCodeTheme) {
		t.Fatalf("HasCodeTheme(%q) = false", DefaultCodeTheme)
	}
	if !HasCodeTheme("") {
		t.Fatalf("empty theme should fall back to the default")
	}
	if HasCodeTheme("no-such-theme") {
		t.Fatalf("unknown theme reported as available")
	}
}

func TestRenderEmptyInput(t *testing.T) {
	out, err := RenderString("", 40, ModePlain)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.TrimSpace(out) != "" {
		t.Fatalf("expected no visible output, got %q", out)
	}
}

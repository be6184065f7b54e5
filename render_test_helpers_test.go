package mdbox

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRegexp.ReplaceAllString(s, "")
}

func renderPlain(t *testing.T, src string, width int) string {
	t.Helper()
	return renderMode(t, src, width, ModePlain)
}

func renderMode(t *testing.T, src string, width int, mode Mode) string {
	t.Helper()
	var out bytes.Buffer
	err := Render(RenderRequest{
		Reader: strings.NewReader(src),
		Writer: &out,
		Width:  width,
		Mode:   mode,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out.String()
}

func renderLines(t *testing.T, src string, width int) []string {
	t.Helper()
	out := renderPlain(t, src, width)
	out = strings.TrimSuffix(out, "\n")
	return strings.Split(out, "\n")
}

// walkBoxes visits every box in the tree, depth first.
func walkBoxes(b *Box, visit func(*Box)) {
	visit(b)
	for _, child := range b.Children {
		walkBoxes(child, visit)
	}
}

func buildLaidOut(t *testing.T, src string, width int) *Box {
	t.Helper()
	root := Build([]byte(src), width, "")
	root.Layout()
	return root
}

package mdbox

import (
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultCodeTheme is the code block highlight theme used when none is
// requested.
const DefaultCodeTheme = "monokai"

// CodeThemes returns the names of the available code block themes.
func CodeThemes() []string {
	names := append([]string(nil), styles.Names()...)
	sort.Strings(names)
	return names
}

// HasCodeTheme reports whether a code block theme exists.
func HasCodeTheme(name string) bool {
	if name == "" {
		return true
	}
	_, ok := styles.Registry[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

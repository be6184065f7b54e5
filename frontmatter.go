package mdbox

import "bytes"

// stripFrontMatter removes a leading metadata block fenced by ---, +++ or
// ;;; lines. Source without recognizable front matter passes through
// unchanged.
func stripFrontMatter(src []byte) []byte {
	openLine, next, ok := nextLine(src, 0)
	if !ok {
		return src
	}
	delim, isFrontMatter := parseOpeningFrontMatterDelimiter(openLine)
	if !isFrontMatter {
		return src
	}
	secondLine, secondNext, ok := nextLine(src, next)
	if !ok {
		return src
	}
	if !frontMatterMetadataLikely(secondLine) {
		return src
	}
	if end, found := findClosingFrontMatterDelimiter(src, secondNext, delim); found {
		return src[end:]
	}
	return src
}

func nextLine(src []byte, start int) ([]byte, int, bool) {
	if start >= len(src) {
		return nil, start, false
	}
	if i := bytes.IndexByte(src[start:], '\n'); i >= 0 {
		return trimCR(src[start : start+i]), start + i + 1, true
	}
	return trimCR(src[start:]), len(src), true
}

func parseOpeningFrontMatterDelimiter(line []byte) ([]byte, bool) {
	trimmed := bytes.TrimSpace(trimBOM(line))
	switch {
	case bytes.Equal(trimmed, []byte("---")):
		return []byte("---"), true
	case bytes.Equal(trimmed, []byte("+++")):
		return []byte("+++"), true
	case bytes.Equal(trimmed, []byte(";;;")):
		return []byte(";;;"), true
	default:
		return nil, false
	}
}

func frontMatterMetadataLikely(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	if bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("[")) {
		return true
	}
	if bytes.Contains(trimmed, []byte(":")) || bytes.Contains(trimmed, []byte("=")) {
		return true
	}
	return false
}

func findClosingFrontMatterDelimiter(src []byte, start int, delim []byte) (int, bool) {
	for idx := start; idx <= len(src); {
		line, next, ok := nextLine(src, idx)
		if !ok {
			return 0, false
		}
		if bytes.Equal(bytes.TrimSpace(line), delim) {
			return next, true
		}
		if next == idx {
			return 0, false
		}
		idx = next
	}
	return 0, false
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}

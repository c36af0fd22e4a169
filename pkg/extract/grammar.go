package extract

import (
	"regexp"
	"strings"
)

// levelGrammar describes how headings are recognized at one hierarchy level.
// The heading pattern must be multiline-anchored and capture the heading
// token in group 1. Levels with hasTitle take their title from the first
// non-empty line after the heading.
type levelGrammar struct {
	name     string
	heading  *regexp.Regexp
	hasTitle bool
}

// segment is one boundary-matcher record: a heading token, the title line
// for levels that carry one, and the body span between this heading and the
// next heading at the same level.
type segment struct {
	heading string
	title   string
	body    string
}

// segments runs the boundary matcher for this level over text. Records cover
// the text left to right with no overlaps; the last record's body runs to the
// end of the text. Zero matching headings yields an empty list, which callers
// treat as "no children at this level".
func (g levelGrammar) segments(text string) []segment {
	matches := g.heading.FindAllStringSubmatchIndex(text, -1)
	out := make([]segment, 0, len(matches))
	for i, m := range matches {
		span := text[m[1]:bodyEnd(matches, i, len(text))]
		s := segment{heading: text[m[2]:m[3]]}
		if g.hasTitle {
			title, rest, ok := splitTitle(span)
			if !ok {
				// A title-bearing heading with no title line before the next
				// boundary is not recognized as a node; its text stays in the
				// parent's body.
				continue
			}
			s.title = title
			s.body = strings.TrimSpace(rest)
		} else {
			s.body = strings.TrimSpace(span)
		}
		out = append(out, s)
	}
	return out
}

// bodyEnd returns the end offset of record i's span: the start of the next
// heading, or the end of the text for the last record.
func bodyEnd(matches [][]int, i, textLen int) int {
	if i+1 < len(matches) {
		return matches[i+1][0]
	}
	return textLen
}

// splitTitle takes the first non-empty line of span as the title and returns
// the remainder. ok is false when no non-empty line exists.
func splitTitle(span string) (title, rest string, ok bool) {
	remaining := span
	for remaining != "" {
		line := remaining
		if idx := strings.IndexByte(remaining, '\n'); idx >= 0 {
			line = remaining[:idx]
			remaining = remaining[idx+1:]
		} else {
			remaining = ""
		}
		line = strings.TrimSpace(line)
		if line != "" {
			return line, remaining, true
		}
	}
	return "", "", false
}

package markdown

import "strings"

const nextSectionMarker = "\n## "

// ExtractSection returns the block that follows the first literal occurrence of
// start. The block ends at the next second-level heading, or at end when given.
// The match is textual: a heading that is a prefix of a later heading wins.
func ExtractSection(doc, start string, end ...string) string {
	if start == "" {
		return ""
	}
	idx := strings.Index(doc, start)
	if idx < 0 {
		return ""
	}
	rest := doc[idx+len(start):]
	// drop the remainder of the heading line
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[nl:]
	} else {
		return ""
	}

	marker := nextSectionMarker
	if len(end) > 0 && end[0] != "" {
		marker = end[0]
	}
	if stop := strings.Index(rest, marker); stop >= 0 {
		rest = rest[:stop]
	}
	return strings.Trim(rest, "\n")
}

// Section is one heading and the text beneath it.
type Section struct {
	Heading string
	Body    string
}

// Subsections splits block on lines starting with marker ("### ", "## ").
// Text before the first heading is dropped. Order is preserved.
func Subsections(block, marker string) []Section {
	out := make([]Section, 0)
	var current *Section
	var body []string
	flush := func() {
		if current == nil {
			return
		}
		current.Body = strings.Trim(strings.Join(body, "\n"), "\n")
		out = append(out, *current)
	}
	for _, line := range splitLines(block) {
		if strings.HasPrefix(line, marker) {
			flush()
			current = &Section{Heading: strings.TrimSpace(strings.TrimPrefix(line, marker))}
			body = body[:0]
			continue
		}
		if current != nil {
			body = append(body, line)
		}
	}
	flush()
	return out
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(s, "\n")
}

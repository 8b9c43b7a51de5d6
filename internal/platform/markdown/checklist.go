package markdown

import (
	"regexp"
	"strings"
)

// Item is one bullet or checklist line.
type Item struct {
	Text     string
	Done     bool
	Checkbox bool
}

var (
	checkboxLine = regexp.MustCompile(`^\s*[-*+]\s+\[([ xX])\]\s+(.*)$`)
	bulletLine   = regexp.MustCompile(`^\s*(?:[-*+]|\d+[.)])\s+(.*)$`)
)

var doneGlyphs = []string{"✅", "✔️", "✔", "☑️", "☑"}

// ParseChecklist returns checklist items and plain bullets in source order.
// Lines that are not bullets are ignored.
func ParseChecklist(block string) []Item {
	out := make([]Item, 0)
	for _, line := range splitLines(block) {
		item, ok := parseItem(line)
		if !ok {
			continue
		}
		out = append(out, item)
	}
	return out
}

// ParseCheckboxes is ParseChecklist restricted to "- [ ]" and "- [x]" lines.
func ParseCheckboxes(block string) []Item {
	all := ParseChecklist(block)
	out := make([]Item, 0, len(all))
	for _, item := range all {
		if item.Checkbox {
			out = append(out, item)
		}
	}
	return out
}

func parseItem(line string) (Item, bool) {
	if m := checkboxLine.FindStringSubmatch(line); m != nil {
		text := cleanItemText(m[2])
		if text == "" {
			return Item{}, false
		}
		return Item{Text: text, Done: strings.EqualFold(m[1], "x"), Checkbox: true}, true
	}
	if m := bulletLine.FindStringSubmatch(line); m != nil {
		text := cleanItemText(m[1])
		if text == "" {
			return Item{}, false
		}
		return Item{Text: text}, true
	}
	return Item{}, false
}

func cleanItemText(s string) string {
	s = strings.TrimSpace(s)
	for _, glyph := range doneGlyphs {
		if strings.HasSuffix(s, glyph) {
			s = strings.TrimSpace(strings.TrimSuffix(s, glyph))
			break
		}
	}
	return s
}

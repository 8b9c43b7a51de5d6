package markdown

import (
	"regexp"
	"strings"
)

var separatorCell = regexp.MustCompile(`^:?-+:?$`)

// ParseTableRows returns the data rows of the pipe tables in block. The first
// table row is treated as the header and skipped; separator rows are skipped
// wherever they appear. Interior empty cells are kept as "".
func ParseTableRows(block string) [][]string {
	out := make([][]string, 0)
	headerSeen := false
	for _, line := range splitLines(block) {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "|") {
			continue
		}
		cells := splitRow(trimmed)
		if isSeparator(cells) {
			continue
		}
		if !headerSeen {
			headerSeen = true
			continue
		}
		if nonEmpty(cells) < 2 {
			continue
		}
		out = append(out, cells)
	}
	return out
}

// FirstTable returns the lines of the first pipe table in doc, or "".
func FirstTable(doc string) string {
	lines := make([]string, 0)
	for _, line := range splitLines(doc) {
		if strings.HasPrefix(strings.TrimSpace(line), "|") {
			lines = append(lines, line)
			continue
		}
		if len(lines) > 0 {
			break
		}
	}
	return strings.Join(lines, "\n")
}

// Cell returns row[i], or "" when the row is short.
func Cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func splitRow(line string) []string {
	parts := strings.Split(line, "|")
	if len(parts) > 0 && strings.TrimSpace(parts[0]) == "" {
		parts = parts[1:]
	}
	if len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

func isSeparator(cells []string) bool {
	if len(cells) == 0 {
		return false
	}
	for _, c := range cells {
		if !separatorCell.MatchString(c) {
			return false
		}
	}
	return true
}

func nonEmpty(cells []string) int {
	n := 0
	for _, c := range cells {
		if c != "" {
			n++
		}
	}
	return n
}

package domain

import (
	"strings"

	"missionctl/internal/platform/markdown"
)

// MaxNoteLimit bounds how many daily notes one request may ask for.
const MaxNoteLimit = 60

type Priority struct {
	Text string
	Done bool
}

func ParsePriorities(section string) []Priority {
	out := make([]Priority, 0)
	for _, item := range markdown.ParseChecklist(section) {
		out = append(out, Priority{Text: item.Text, Done: item.Done})
	}
	return out
}

// Note is one day of the agent's journal.
type Note struct {
	Date    string
	Title   string
	Tags    []string
	Bullets int
	Content string
}

// BuildNote derives title, tags and bullet count from a raw note. Broken
// frontmatter is ignored and the whole text is treated as the body.
func BuildNote(date, content string) Note {
	meta, body, err := markdown.SplitFrontmatter(content)
	if err != nil {
		meta, body = nil, content
	}
	return Note{
		Date:    date,
		Title:   noteTitle(body, date),
		Tags:    tags(meta),
		Bullets: len(markdown.ParseChecklist(body)),
		Content: body,
	}
}

func noteTitle(body, fallback string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			return strings.TrimSpace(strings.TrimLeft(line, "#"))
		}
		return line
	}
	return fallback
}

func tags(meta map[string]any) []string {
	out := make([]string, 0)
	switch v := meta["tags"].(type) {
	case []any:
		for _, t := range v {
			if s, ok := t.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
	case string:
		for _, t := range strings.Split(v, ",") {
			if t = strings.TrimSpace(t); t != "" {
				out = append(out, t)
			}
		}
	}
	return out
}

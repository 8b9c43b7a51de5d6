package domain

import (
	"regexp"
	"sort"
	"strings"

	"missionctl/internal/platform/markdown"
	"missionctl/internal/platform/workspace"
)

type Origin string

const (
	OriginStructured Origin = "structured-file"
	OriginFreeform   Origin = "freeform-memory"
)

// Entry is one lesson. Structured entries correlate missed, why and fix by
// list position; freeform entries hold a single missed item.
type Entry struct {
	Date   string
	Title  string
	Missed []string
	Why    []string
	Fix    []string
	Origin Origin
}

type Win struct {
	Text string
	Date string
}

// Mistake is one missed item flattened out of an entry.
type Mistake struct {
	Text string
	Fix  string
	Date string
}

var (
	isoDay     = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	datePrefix = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})\s*[:\-–—]?\s*`)
	fixMarker  = regexp.MustCompile(`(?i)\s*(?:→|->)?\s*\bfix\s*:\s*`)
	arrow      = regexp.MustCompile(`\s*(?:→|->)\s*`)
)

// ParseStructured reads the lessons file. A section without a "What I Missed"
// list is skipped; the other sections are unaffected.
func ParseStructured(doc string) []Entry {
	out := make([]Entry, 0)
	for _, section := range markdown.Subsections(doc, workspace.SectionMarker) {
		entry, ok := parseSection(section)
		if !ok {
			continue
		}
		out = append(out, entry)
	}
	return out
}

func parseSection(section markdown.Section) (Entry, bool) {
	entry := Entry{
		Date:   isoDay.FindString(section.Heading),
		Title:  strings.TrimSpace(isoDay.ReplaceAllString(section.Heading, "")),
		Origin: OriginStructured,
	}
	entry.Title = strings.Trim(entry.Title, " -–—:")
	for _, sub := range markdown.Subsections(section.Body, workspace.SubsectionMarker) {
		items := listItems(sub.Body)
		switch {
		case hasHeader(sub.Heading, workspace.LessonMissedHeader):
			entry.Missed = append(entry.Missed, items...)
		case hasHeader(sub.Heading, workspace.LessonWhyHeader):
			entry.Why = append(entry.Why, items...)
		case hasHeader(sub.Heading, workspace.LessonFixHeader):
			entry.Fix = append(entry.Fix, items...)
		}
	}
	if len(entry.Missed) == 0 {
		return Entry{}, false
	}
	if entry.Why == nil {
		entry.Why = []string{}
	}
	if entry.Fix == nil {
		entry.Fix = []string{}
	}
	return entry, true
}

func hasHeader(heading, want string) bool {
	h := strings.ToLower(strings.Trim(heading, " #*_:"))
	return strings.HasPrefix(h, strings.ToLower(want))
}

// listItems prefers bullets; a body written as plain lines yields one item per
// non-empty line.
func listItems(body string) []string {
	out := make([]string, 0)
	for _, item := range markdown.ParseChecklist(body) {
		out = append(out, item.Text)
	}
	if len(out) > 0 {
		return out
	}
	for _, line := range strings.Split(body, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// SplitDate removes a leading "YYYY-MM-DD:" from text.
func SplitDate(text string) (string, string) {
	text = strings.TrimSpace(text)
	m := datePrefix.FindStringSubmatch(text)
	if m == nil {
		return text, ""
	}
	return strings.TrimSpace(text[len(m[0]):]), m[1]
}

// ParseFreeform reads one bullet such as
// "2026-02-01: Missed the follow-up → Fix: set reminders".
func ParseFreeform(text, fallbackDate string) (Entry, bool) {
	body, date := SplitDate(text)
	if date == "" {
		date = fallbackDate
	}
	missed, fix := body, ""
	if loc := fixMarker.FindStringIndex(body); loc != nil {
		missed, fix = body[:loc[0]], body[loc[1]:]
	} else if loc := arrow.FindStringIndex(body); loc != nil {
		missed, fix = body[:loc[0]], body[loc[1]:]
	}
	missed = strings.TrimSpace(missed)
	fix = strings.TrimSpace(fix)
	if missed == "" {
		return Entry{}, false
	}
	entry := Entry{Date: date, Missed: []string{missed}, Why: []string{}, Fix: []string{}, Origin: OriginFreeform}
	if fix != "" {
		entry.Fix = []string{fix}
	}
	return entry, true
}

// ParseFreeformSection maps every bullet of the MEMORY.md lessons section.
func ParseFreeformSection(section string) []Entry {
	out := make([]Entry, 0)
	for _, item := range markdown.ParseChecklist(section) {
		if entry, ok := ParseFreeform(item.Text, ""); ok {
			out = append(out, entry)
		}
	}
	return out
}

func ParseWins(section string) []Win {
	out := make([]Win, 0)
	for _, item := range markdown.ParseChecklist(section) {
		text, date := SplitDate(item.Text)
		if text == "" {
			continue
		}
		out = append(out, Win{Text: text, Date: date})
	}
	return out
}

// SortByDate orders entries newest first; undated entries go last and keep
// their relative order.
func SortByDate(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].Date, entries[j].Date
		if a == "" || b == "" {
			return a != "" && b == ""
		}
		return a > b
	})
}

// Mistakes flattens missed items, most recent entries first. The fix at the
// same list position is attached when present.
func Mistakes(entries []Entry) []Mistake {
	sorted := append([]Entry(nil), entries...)
	SortByDate(sorted)
	out := make([]Mistake, 0)
	for _, e := range sorted {
		for i, missed := range e.Missed {
			m := Mistake{Text: missed, Date: e.Date}
			if i < len(e.Fix) {
				m.Fix = e.Fix[i]
			}
			out = append(out, m)
		}
	}
	return out
}

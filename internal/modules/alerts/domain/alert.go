package domain

import (
	"sort"
	"strings"
	"time"

	"missionctl/internal/platform/deadline"
	"missionctl/internal/platform/markdown"
)

type Alert struct {
	Text      string
	At        time.Time
	Deadline  string
	Severity  deadline.Severity
	HoursLeft int
}

// Scan runs both passes over doc: table rows first, then unchecked checklist
// items and bullets. Results are neither deduplicated nor sorted.
func Scan(doc string, loc *time.Location, now time.Time) []Alert {
	out := scanTables(doc, loc, now)
	return append(out, scanChecklist(doc, loc, now)...)
}

func scanTables(doc string, loc *time.Location, now time.Time) []Alert {
	out := make([]Alert, 0)
	for _, row := range markdown.ParseTableRows(doc) {
		text := rowText(row, loc)
		if text == "" {
			continue
		}
		for _, cell := range row {
			for _, m := range deadline.FindDates(cell, loc) {
				if a, ok := newAlert(text, m.At, now); ok {
					out = append(out, a)
				}
			}
		}
	}
	return out
}

// rowText is the first cell that still has text once its dates are removed.
func rowText(row []string, loc *time.Location) string {
	for _, cell := range row {
		if text := stripDates(cell, loc); text != "" {
			return text
		}
	}
	return ""
}

func scanChecklist(doc string, loc *time.Location, now time.Time) []Alert {
	out := make([]Alert, 0)
	for _, item := range markdown.ParseChecklist(doc) {
		if item.Done {
			continue
		}
		matches := deadline.FindDates(item.Text, loc)
		if len(matches) == 0 {
			continue
		}
		text := stripDates(item.Text, loc)
		if text == "" {
			continue
		}
		for _, m := range matches {
			if a, ok := newAlert(text, m.At, now); ok {
				out = append(out, a)
			}
		}
	}
	return out
}

func stripDates(text string, loc *time.Location) string {
	text = strings.TrimSpace(text)
	for {
		matches := deadline.FindDates(text, loc)
		if len(matches) == 0 {
			return text
		}
		text = deadline.StripDate(text, matches[0])
	}
}

func newAlert(text string, at, now time.Time) (Alert, bool) {
	severity, ok := deadline.Classify(at, now)
	if !ok {
		return Alert{}, false
	}
	return Alert{
		Text:      text,
		At:        at,
		Deadline:  deadline.Display(at),
		Severity:  severity,
		HoursLeft: int(at.Sub(now).Hours()),
	}, true
}

// Merge collapses alerts sharing text and displayed deadline, keeping the
// first, and orders the rest by deadline then text.
func Merge(groups ...[]Alert) []Alert {
	type key struct{ text, deadline string }
	seen := map[key]struct{}{}
	out := make([]Alert, 0)
	for _, group := range groups {
		for _, a := range group {
			k := key{a.Text, a.Deadline}
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].At.Equal(out[j].At) {
			return out[i].At.Before(out[j].At)
		}
		return out[i].Text < out[j].Text
	})
	return out
}

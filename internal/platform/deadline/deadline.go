// Package deadline finds absolute dates in free text and grades how close
// they are.
package deadline

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// DefaultTimezone is the zone every "now" comparison runs in unless configured.
const DefaultTimezone = "Africa/Cairo"

// Window is the furthest ahead a deadline may be and still alert.
const Window = 7 * 24 * time.Hour

const displayLayout = "Jan 2, 2006"

type Severity string

const (
	SeverityRed    Severity = "red"
	SeverityAmber  Severity = "amber"
	SeverityYellow Severity = "yellow"
)

// Match is one date found in a text.
type Match struct {
	Raw   string
	Start int
	End   int
	At    time.Time
}

var (
	// Abbreviated or full month names only, so "Mayday" and "Marketing" do not match.
	monthDayYear = regexp.MustCompile(`\b(Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|June?|July?|Aug(?:ust)?|Sep(?:t|tember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\.?\s+(\d{1,2}),?\s+(\d{4})\b`)
	isoDate      = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
)

var months = map[string]time.Month{
	"Jan": time.January, "Feb": time.February, "Mar": time.March, "Apr": time.April,
	"May": time.May, "Jun": time.June, "Jul": time.July, "Aug": time.August,
	"Sep": time.September, "Oct": time.October, "Nov": time.November, "Dec": time.December,
}

// LoadLocation resolves name, falling back to DefaultTimezone and then UTC.
func LoadLocation(name string) *time.Location {
	if strings.TrimSpace(name) == "" {
		name = DefaultTimezone
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// FindDates returns every valid date in text, in order of appearance. Dates
// resolve to midnight in loc.
func FindDates(text string, loc *time.Location) []Match {
	if loc == nil {
		loc = time.UTC
	}
	out := make([]Match, 0)
	for _, idx := range monthDayYear.FindAllStringSubmatchIndex(text, -1) {
		month := months[text[idx[2]:idx[2]+3]]
		day, _ := strconv.Atoi(text[idx[4]:idx[5]])
		year, _ := strconv.Atoi(text[idx[6]:idx[7]])
		if at, ok := date(year, month, day, loc); ok {
			out = append(out, Match{Raw: text[idx[0]:idx[1]], Start: idx[0], End: idx[1], At: at})
		}
	}
	for _, idx := range isoDate.FindAllStringSubmatchIndex(text, -1) {
		year, _ := strconv.Atoi(text[idx[2]:idx[3]])
		month, _ := strconv.Atoi(text[idx[4]:idx[5]])
		day, _ := strconv.Atoi(text[idx[6]:idx[7]])
		if at, ok := date(year, time.Month(month), day, loc); ok {
			out = append(out, Match{Raw: text[idx[0]:idx[1]], Start: idx[0], End: idx[1], At: at})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

func date(year int, month time.Month, day int, loc *time.Location) (time.Time, bool) {
	if month < time.January || month > time.December || day < 1 {
		return time.Time{}, false
	}
	at := time.Date(year, month, day, 0, 0, 0, 0, loc)
	if at.Day() != day || at.Month() != month {
		return time.Time{}, false
	}
	return at, true
}

// Classify grades a deadline against now. ok is false when the deadline has
// passed or lies beyond Window.
func Classify(at, now time.Time) (Severity, bool) {
	left := at.Sub(now)
	if left <= 0 || left > Window {
		return "", false
	}
	switch {
	case left <= 24*time.Hour:
		return SeverityRed, true
	case left <= 48*time.Hour:
		return SeverityAmber, true
	default:
		return SeverityYellow, true
	}
}

// Display formats a deadline the way alerts show it.
func Display(at time.Time) string {
	return at.Format(displayLayout)
}

var (
	connectorSuffix = regexp.MustCompile(`(?i)[\s:–—\-(,]*(?:\b(?:by|due|on|before|deadline|until))?[\s:–—\-(,]*$`)
	connectorPrefix = regexp.MustCompile(`(?i)^[\s:–—\-),]*`)
)

// StripDate removes m from text together with connector words such as "by" or
// "due" and the punctuation around it.
func StripDate(text string, m Match) string {
	if m.Start < 0 || m.End > len(text) || m.Start >= m.End {
		return strings.TrimSpace(text)
	}
	before := connectorSuffix.ReplaceAllString(text[:m.Start], "")
	after := connectorPrefix.ReplaceAllString(text[m.End:], "")
	after = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(after), ")"))
	switch {
	case before == "":
		return after
	case after == "":
		return strings.TrimSpace(before)
	default:
		return strings.TrimSpace(before) + " " + after
	}
}

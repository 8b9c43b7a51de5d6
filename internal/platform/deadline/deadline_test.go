package deadline_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"missionctl/internal/platform/deadline"
)

func cairo(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Africa/Cairo")
	if err != nil {
		t.Fatalf("load Africa/Cairo: %v", err)
	}
	return loc
}

func TestClassifyWindow(t *testing.T) {
	t.Parallel()
	loc := cairo(t)
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, loc)

	cases := []struct {
		name     string
		at       time.Time
		want     deadline.Severity
		included bool
	}{
		{"20h out", time.Date(2026, 3, 1, 20, 0, 0, 0, loc), deadline.SeverityRed, true},
		{"exactly 24h", time.Date(2026, 3, 2, 0, 0, 0, 0, loc), deadline.SeverityRed, true},
		{"48h", time.Date(2026, 3, 3, 0, 0, 0, 0, loc), deadline.SeverityAmber, true},
		{"just under 7 days", time.Date(2026, 3, 7, 23, 59, 59, 0, loc), deadline.SeverityYellow, true},
		{"over 7 days", time.Date(2026, 3, 8, 0, 1, 0, 0, loc), "", false},
		{"past", time.Date(2026, 2, 28, 0, 0, 0, 0, loc), "", false},
		{"now", now, "", false},
	}
	for _, tc := range cases {
		got, ok := deadline.Classify(tc.at, now)
		if ok != tc.included || got != tc.want {
			t.Fatalf("%s: got (%q, %v), want (%q, %v)", tc.name, got, ok, tc.want, tc.included)
		}
	}
}

func TestFindDates(t *testing.T) {
	t.Parallel()
	loc := cairo(t)
	text := "Apply by Mar 3, 2026 then follow up 2026-03-05; ignore Feb 30, 2026 and March 4 2026."
	got := deadline.FindDates(text, loc)
	if len(got) != 3 {
		t.Fatalf("expected 3 dates, got %d: %+v", len(got), got)
	}
	if got[0].Raw != "Mar 3, 2026" || !got[0].At.Equal(time.Date(2026, 3, 3, 0, 0, 0, 0, loc)) {
		t.Fatalf("unexpected first match: %+v", got[0])
	}
	if got[1].Raw != "2026-03-05" {
		t.Fatalf("expected iso date second, got %+v", got[1])
	}
	if got[2].Raw != "March 4 2026" || got[2].At.Day() != 4 {
		t.Fatalf("expected long month name third, got %+v", got[2])
	}
	if got[0].At.Location() != loc {
		t.Fatalf("dates must resolve in the configured zone")
	}
}

func TestFindDatesRequiresWholeMonthNames(t *testing.T) {
	t.Parallel()
	cases := []struct {
		text string
		want string
	}{
		{"Mayday 5 2026", ""},
		{"Marketing 3, 2026", ""},
		{"Junebug 1 2026", ""},
		{"March 3, 2026", "March 3, 2026"},
		{"Mar 3 2026", "Mar 3 2026"},
		{"Sept. 9, 2026", "Sept. 9, 2026"},
		{"due September 9 2026", "September 9 2026"},
	}
	for _, tc := range cases {
		got := deadline.FindDates(tc.text, time.UTC)
		raw := ""
		if len(got) > 0 {
			raw = got[0].Raw
		}
		if raw != tc.want {
			t.Fatalf("FindDates(%q) = %q, want %q", tc.text, raw, tc.want)
		}
	}
}

func TestStripDateAndDisplay(t *testing.T) {
	t.Parallel()
	loc := cairo(t)
	cases := map[string]string{
		"Submit Acme application by Mar 3, 2026": "Submit Acme application",
		"Mar 3, 2026: Submit Acme application":   "Submit Acme application",
		"Submit Acme application (due 2026-03-03)": "Submit Acme application",
		"2026-03-03":                              "",
	}
	for in, want := range cases {
		matches := deadline.FindDates(in, loc)
		if len(matches) != 1 {
			t.Fatalf("%q: expected one date, got %d", in, len(matches))
		}
		if got := deadline.StripDate(in, matches[0]); got != want {
			t.Fatalf("%q: got %q want %q", in, got, want)
		}
		if got := deadline.Display(matches[0].At); got != "Mar 3, 2026" {
			t.Fatalf("unexpected display %q", got)
		}
	}
}

func TestLoadLocationFallsBack(t *testing.T) {
	t.Parallel()
	cairo(t)
	if got := deadline.LoadLocation("Not/AZone"); got.String() != deadline.DefaultTimezone {
		t.Fatalf("expected fallback to %s, got %s", deadline.DefaultTimezone, got)
	}
	if got := deadline.LoadLocation(""); got.String() != deadline.DefaultTimezone {
		t.Fatalf("expected default zone, got %s", got)
	}
}

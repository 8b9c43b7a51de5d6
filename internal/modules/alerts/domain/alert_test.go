package domain_test

import (
	"testing"
	"time"

	"missionctl/internal/modules/alerts/domain"
	"missionctl/internal/platform/deadline"
)

func cairo(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Africa/Cairo")
	if err != nil {
		t.Fatalf("load zone: %v", err)
	}
	return loc
}

func TestScanDeduplicatesAcrossPasses(t *testing.T) {
	t.Parallel()
	loc := cairo(t)
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, loc)
	doc := `## Deadlines
| Task | Due |
|---|---|
| Submit visa form | 2026-03-02 |
| Renew passport | Mar 20, 2026 |

- [ ] Submit visa form by 2026-03-02
- [x] Pay rent by Mar 3, 2026
- Book dentist due Mar 5, 2026
- [ ] Old thing 2026-02-20
`
	alerts := domain.Merge(domain.Scan(doc, loc, now))
	if len(alerts) != 2 {
		t.Fatalf("expected 2 alerts, got %+v", alerts)
	}
	if alerts[0].Text != "Submit visa form" || alerts[0].Deadline != "Mar 2, 2026" || alerts[0].Severity != deadline.SeverityRed || alerts[0].HoursLeft != 24 {
		t.Fatalf("unexpected first alert: %+v", alerts[0])
	}
	if alerts[1].Text != "Book dentist" || alerts[1].Severity != deadline.SeverityYellow {
		t.Fatalf("unexpected second alert: %+v", alerts[1])
	}
}

func TestMergeOrdersByDeadlineThenText(t *testing.T) {
	t.Parallel()
	loc := cairo(t)
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, loc)
	a := domain.Merge(
		domain.Scan("- b task 2026-03-04\n- a task 2026-03-04\n", loc, now),
		domain.Scan("- z task 2026-03-02\n- a task 2026-03-04\n", loc, now),
	)
	if len(a) != 3 {
		t.Fatalf("expected 3 alerts, got %+v", a)
	}
	if a[0].Text != "z task" || a[1].Text != "a task" || a[2].Text != "b task" {
		t.Fatalf("unexpected order: %+v", a)
	}
}

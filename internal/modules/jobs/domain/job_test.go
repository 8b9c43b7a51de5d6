package domain_test

import (
	"testing"

	"missionctl/internal/modules/jobs/domain"
)

func TestColumnFor(t *testing.T) {
	t.Parallel()
	cases := map[string]domain.Column{
		"Applied":                 domain.ColumnApplied,
		"Interview":               domain.ColumnInterview,
		"Phone screen booked":     domain.ColumnInterview,
		"Offer":                   domain.ColumnOffer,
		"Rejected":                domain.ColumnClosed,
		"Withdrawn":               domain.ColumnClosed,
		"Offer declined":          domain.ColumnClosed,
		"rejected after onsite":   domain.ColumnClosed,
		"On radar":                domain.ColumnRadar,
		"something else entirely": domain.ColumnIdentified,
		"":                        domain.ColumnIdentified,
	}
	for status, want := range cases {
		if got := domain.ColumnFor(status); got != want {
			t.Fatalf("ColumnFor(%q)=%s want %s", status, got, want)
		}
	}
}

func TestParseATS(t *testing.T) {
	t.Parallel()
	for raw, want := range map[string]int{"87": 87, "87%": 87, "87/100": 87, " 0 ": 0, "100%": 100} {
		got := domain.ParseATS(raw)
		if got == nil || *got != want {
			t.Fatalf("ParseATS(%q)=%v want %d", raw, got, want)
		}
	}
	for _, raw := range []string{"", "-", "n/a", "101", "87/90", "high"} {
		if got := domain.ParseATS(raw); got != nil {
			t.Fatalf("ParseATS(%q) should be nil, got %d", raw, *got)
		}
	}
}

func TestParsePipelineSkipsRowsWithoutCompany(t *testing.T) {
	t.Parallel()
	table := `| Company | Role | Status | ATS | Next Action | Salary | Domain | Updated |
|---|---|---|---|---|---|---|---|
| Acme | Backend Engineer | Interview scheduled | 82% | Prep system design | 90k | acme.io | 2026-02-20 |
|  | Orphan role | Applied | | | | | |
| Globex | SRE | | | | | | |`
	jobs := domain.ParsePipeline(table)
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %+v", jobs)
	}
	if jobs[0].ID != "acme-backend-engineer" || jobs[0].Column != domain.ColumnInterview || *jobs[0].ATSScore != 82 {
		t.Fatalf("unexpected first job: %+v", jobs[0])
	}
	if jobs[1].Column != domain.ColumnIdentified || jobs[1].ATSScore != nil {
		t.Fatalf("unexpected second job: %+v", jobs[1])
	}

	board := domain.Board(jobs)
	if len(board) != len(domain.Columns) {
		t.Fatalf("every column must be present: %+v", board)
	}
	if len(board[domain.ColumnInterview]) != 1 || len(board[domain.ColumnOffer]) != 0 {
		t.Fatalf("unexpected board: %+v", board)
	}
}

func TestLatestATSPrefersNewestRecord(t *testing.T) {
	t.Parallel()
	records := domain.ParseCVHistory(`| Company | Role | ATS | Date |
|---|---|---|---|
| Acme | Backend | 70 | 2026-01-10 |
| acme | Backend v2 | 88% | 2026-02-01 |
| Globex | SRE | n/a | 2026-02-02 |`)
	latest := domain.LatestATS(records)
	if latest["acme"] != 88 {
		t.Fatalf("expected newest acme score 88, got %v", latest)
	}
	if _, ok := latest["globex"]; ok {
		t.Fatalf("unscored record must not appear: %v", latest)
	}
}

package domain_test

import (
	"testing"

	"missionctl/internal/modules/goals/domain"
)

const objectives = `### Career
- [x] Ship portfolio
- [ ] Land role
- [x] Update CV
### Empty
Nothing here yet.
### Health
- [ ] Run 5k`

func TestParseObjectivesAndBuildCategories(t *testing.T) {
	t.Parallel()
	goals := domain.ParseObjectives(objectives)
	if len(goals) != 4 {
		t.Fatalf("expected 4 goals, got %d", len(goals))
	}
	cats := domain.BuildCategories(goals)
	if len(cats) != 2 {
		t.Fatalf("empty category must be excluded, got %+v", cats)
	}
	if cats[0].Name != "Career" || cats[0].Progress != 67 || cats[0].Status != domain.StatusInProgress {
		t.Fatalf("unexpected career category: %+v", cats[0])
	}
	if cats[1].Progress != 0 || cats[1].Status != domain.StatusNotStarted {
		t.Fatalf("unexpected health category: %+v", cats[1])
	}
}

func TestProgressAndStatus(t *testing.T) {
	t.Parallel()
	cases := []struct {
		done, total, want int
		status            domain.Status
	}{
		{0, 0, 0, domain.StatusNotStarted},
		{1, 3, 33, domain.StatusInProgress},
		{1, 2, 50, domain.StatusInProgress},
		{3, 3, 100, domain.StatusComplete},
	}
	for _, tc := range cases {
		got := domain.Progress(tc.done, tc.total)
		if got != tc.want {
			t.Fatalf("Progress(%d,%d)=%d want %d", tc.done, tc.total, got, tc.want)
		}
		if s := domain.StatusFor(got); s != tc.status {
			t.Fatalf("StatusFor(%d)=%s want %s", got, s, tc.status)
		}
	}
}

func TestParseMetrics(t *testing.T) {
	t.Parallel()
	table := `| Goal | Metric | Current | Target |
|---|---|---|---|
| Career | Applications | 12 | 30 |
| | | | |`
	metrics := domain.ParseMetrics(table)
	if len(metrics) != 1 {
		t.Fatalf("expected one metric row, got %+v", metrics)
	}
	if metrics[0].Current != "12" || metrics[0].Target != "30" {
		t.Fatalf("unexpected metric: %+v", metrics[0])
	}
}

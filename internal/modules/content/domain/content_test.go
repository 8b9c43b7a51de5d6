package domain_test

import (
	"testing"

	"missionctl/internal/modules/content/domain"
)

func TestStageFor(t *testing.T) {
	t.Parallel()
	cases := map[string]domain.Stage{
		"Published":         domain.StagePublished,
		"live on LinkedIn":  domain.StagePublished,
		"Scheduled":         domain.StageScheduled,
		"queued for Monday": domain.StageScheduled,
		"In review":         domain.StageReview,
		"Editing":           domain.StageReview,
		"Draft v2":          domain.StageDraft,
		"writing":           domain.StageDraft,
		"maybe later":       domain.StageIdeas,
		"":                  domain.StageIdeas,
	}
	for raw, want := range cases {
		if got := domain.StageFor(raw); got != want {
			t.Fatalf("StageFor(%q)=%s want %s", raw, got, want)
		}
	}
}

func TestParseItemsAndCountStages(t *testing.T) {
	t.Parallel()
	doc := `# Content Pipeline

| Title | Pillar | Stage | Words | Scheduled | Published | Performance |
|---|---|---|---|---|---|---|
| Shipping small | Engineering | Draft | 1,200 | | | |
| Hiring notes | Career | Published | 800 words | 2026-02-01 | 2026-02-02 | 3k views |
|  | Career | Draft | | | | |
| Idea dump | Misc | | | | | |`
	items := domain.ParseItems(doc)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %+v", items)
	}
	if items[0].ID != "shipping-small" || items[0].WordCount != 1200 {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[1].WordCount != 800 || items[1].Performance != "3k views" {
		t.Fatalf("unexpected second item: %+v", items[1])
	}
	counts := domain.CountStages(items)
	if counts[domain.StageDraft] != 1 || counts[domain.StagePublished] != 1 || counts[domain.StageIdeas] != 1 || counts[domain.StageReview] != 0 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
	if len(counts) != len(domain.Stages) {
		t.Fatalf("every stage must be counted: %+v", counts)
	}
}

package domain

import (
	"regexp"
	"strconv"
	"strings"

	"missionctl/internal/platform/classify"
	"missionctl/internal/platform/markdown"
	"missionctl/internal/platform/slug"
)

type Stage string

const (
	StageIdeas     Stage = "ideas"
	StageDraft     Stage = "draft"
	StageReview    Stage = "review"
	StageScheduled Stage = "scheduled"
	StagePublished Stage = "published"
)

var Stages = []Stage{StageIdeas, StageDraft, StageReview, StageScheduled, StagePublished}

// StagePolicy runs from the latest stage backwards so "scheduled after
// review" counts as scheduled.
var StagePolicy = classify.Policy{
	Rules: []classify.Rule{
		{Keyword: "publish", Bucket: string(StagePublished)},
		{Keyword: "live", Bucket: string(StagePublished)},
		{Keyword: "posted", Bucket: string(StagePublished)},
		{Keyword: "schedul", Bucket: string(StageScheduled)},
		{Keyword: "queued", Bucket: string(StageScheduled)},
		{Keyword: "review", Bucket: string(StageReview)},
		{Keyword: "edit", Bucket: string(StageReview)},
		{Keyword: "draft", Bucket: string(StageDraft)},
		{Keyword: "writing", Bucket: string(StageDraft)},
		{Keyword: "progress", Bucket: string(StageDraft)},
	},
	Default: string(StageIdeas),
}

func StageFor(raw string) Stage {
	return Stage(StagePolicy.Classify(raw))
}

type Item struct {
	ID            string
	Title         string
	Pillar        string
	Stage         Stage
	WordCount     int
	ScheduledDate string
	PublishedDate string
	Performance   string
}

var leadingNumber = regexp.MustCompile(`^\d+`)

// ParseWordCount reads "1200", "1,200" or "1200 words"; anything else is 0.
func ParseWordCount(raw string) int {
	m := leadingNumber.FindString(strings.ReplaceAll(strings.TrimSpace(raw), ",", ""))
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

// ParseItems maps the Title | Pillar | Stage | Words | Scheduled | Published |
// Performance table. Rows without a title are skipped.
func ParseItems(doc string) []Item {
	out := make([]Item, 0)
	for _, row := range markdown.ParseTableRows(doc) {
		title := markdown.Cell(row, 0)
		if title == "" {
			continue
		}
		out = append(out, Item{
			ID:            slug.Make(title),
			Title:         title,
			Pillar:        markdown.Cell(row, 1),
			Stage:         StageFor(markdown.Cell(row, 2)),
			WordCount:     ParseWordCount(markdown.Cell(row, 3)),
			ScheduledDate: markdown.Cell(row, 4),
			PublishedDate: markdown.Cell(row, 5),
			Performance:   markdown.Cell(row, 6),
		})
	}
	return out
}

// CountStages counts items per stage; every stage is present.
func CountStages(items []Item) map[Stage]int {
	out := make(map[Stage]int, len(Stages))
	for _, s := range Stages {
		out[s] = 0
	}
	for _, item := range items {
		out[item.Stage]++
	}
	return out
}

package domain

import (
	"math"
	"strings"

	"missionctl/internal/platform/markdown"
	"missionctl/internal/platform/workspace"
)

type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusComplete   Status = "complete"
)

// Goal is one objective checklist line under a category.
type Goal struct {
	Category  string
	Objective string
	Done      bool
	Position  int
}

type Objective struct {
	Text string
	Done bool
}

// Category aggregates the objectives sharing a category name.
type Category struct {
	Name       string
	Objectives []Objective
	Progress   int
	Status     Status
}

type Metric struct {
	Goal    string
	Metric  string
	Current string
	Target  string
}

// Progress is round(100*done/total); an empty category has no progress.
func Progress(done, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(done) / float64(total)))
}

func StatusFor(progress int) Status {
	switch {
	case progress >= 100:
		return StatusComplete
	case progress > 0:
		return StatusInProgress
	default:
		return StatusNotStarted
	}
}

// BuildCategories groups goals by category in order of first appearance.
// Categories without objectives never appear.
func BuildCategories(goals []Goal) []Category {
	order := make([]string, 0)
	byName := map[string]*Category{}
	done := map[string]int{}
	for _, g := range goals {
		name := strings.TrimSpace(g.Category)
		text := strings.TrimSpace(g.Objective)
		if name == "" || text == "" {
			continue
		}
		cat, ok := byName[name]
		if !ok {
			cat = &Category{Name: name}
			byName[name] = cat
			order = append(order, name)
		}
		cat.Objectives = append(cat.Objectives, Objective{Text: text, Done: g.Done})
		if g.Done {
			done[name]++
		}
	}
	out := make([]Category, 0, len(order))
	for _, name := range order {
		cat := byName[name]
		cat.Progress = Progress(done[name], len(cat.Objectives))
		cat.Status = StatusFor(cat.Progress)
		out = append(out, *cat)
	}
	return out
}

// ParseObjectives reads the objectives section: every "### name" subsection is
// a category and its checkbox lines are the objectives.
func ParseObjectives(section string) []Goal {
	out := make([]Goal, 0)
	position := 0
	for _, sub := range markdown.Subsections(section, workspace.SubsectionMarker) {
		name := cleanHeading(sub.Heading)
		if name == "" {
			continue
		}
		for _, item := range markdown.ParseCheckboxes(sub.Body) {
			out = append(out, Goal{Category: name, Objective: item.Text, Done: item.Done, Position: position})
			position++
		}
	}
	return out
}

// ParseMetrics reads the Goal | Metric | Current | Target table.
func ParseMetrics(section string) []Metric {
	out := make([]Metric, 0)
	for _, row := range markdown.ParseTableRows(section) {
		m := Metric{
			Goal:    markdown.Cell(row, 0),
			Metric:  markdown.Cell(row, 1),
			Current: markdown.Cell(row, 2),
			Target:  markdown.Cell(row, 3),
		}
		if m.Goal == "" && m.Metric == "" {
			continue
		}
		out = append(out, m)
	}
	return out
}

func cleanHeading(h string) string {
	return strings.TrimSpace(strings.Trim(h, "#*_ "))
}

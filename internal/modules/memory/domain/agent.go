package domain

import (
	"strings"

	"missionctl/internal/platform/markdown"
	"missionctl/internal/platform/workspace"
)

type Agent struct {
	Name     string
	Role     string
	Model    string
	Status   string
	Mentions int
	LastSeen string
}

// ParseRoster maps the Name | Role | Model | Status table.
func ParseRoster(section string) []Agent {
	out := make([]Agent, 0)
	for _, row := range markdown.ParseTableRows(section) {
		name := strings.Trim(markdown.Cell(row, 0), "*_` ")
		if name == "" {
			continue
		}
		out = append(out, Agent{
			Name:   name,
			Role:   markdown.Cell(row, 1),
			Model:  markdown.Cell(row, 2),
			Status: markdown.Cell(row, 3),
		})
	}
	return out
}

// Activity counts case-insensitive mentions of each agent across notes, which
// must be ordered newest first; LastSeen is the newest mentioning note.
func Activity(agents []Agent, notes []Note) []Agent {
	out := make([]Agent, len(agents))
	for i, a := range agents {
		name := strings.ToLower(a.Name)
		for _, n := range notes {
			count := strings.Count(strings.ToLower(n.Content), name)
			if count == 0 {
				continue
			}
			a.Mentions += count
			if a.LastSeen == "" {
				a.LastSeen = n.Date
			}
		}
		out[i] = a
	}
	return out
}

type Idea struct {
	Title string
	Body  string
	Agent string
}

func ParseIdeas(doc string) []Idea {
	out := make([]Idea, 0)
	for _, section := range markdown.Subsections(doc, workspace.SectionMarker) {
		if section.Heading == "" {
			continue
		}
		out = append(out, Idea{Title: section.Heading, Body: section.Body})
	}
	return out
}

// TagAgents sets each idea's agent to the first roster agent whose name or
// @name appears in its heading or body.
func TagAgents(ideas []Idea, agents []Agent) []Idea {
	out := make([]Idea, len(ideas))
	for i, idea := range ideas {
		text := strings.ToLower(idea.Title + "\n" + idea.Body)
		for _, a := range agents {
			if a.Name != "" && strings.Contains(text, strings.ToLower(a.Name)) {
				idea.Agent = a.Name
				break
			}
		}
		out[i] = idea
	}
	return out
}

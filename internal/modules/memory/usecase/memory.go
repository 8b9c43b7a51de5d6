package usecase

import (
	"context"

	"missionctl/internal/modules/memory/dto"
	memoryin "missionctl/internal/modules/memory/port/in"
	"missionctl/internal/modules/memory/service"
)

type Interactor struct {
	svc *service.MemoryService
}

func NewInteractor(svc *service.MemoryService) memoryin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Priorities(ctx context.Context) dto.PrioritiesOutput {
	res := i.svc.Priorities(ctx)
	out := dto.PrioritiesOutput{Priorities: make([]dto.PriorityOutput, 0, len(res.Items)), Source: string(res.Source)}
	for _, p := range res.Items {
		out.Priorities = append(out.Priorities, dto.PriorityOutput{Text: p.Text, Done: p.Done})
	}
	return out
}

func (i *Interactor) Notes(ctx context.Context, input dto.NotesInput) (dto.NotesOutput, error) {
	res, err := i.svc.Notes(ctx, input.Limit)
	if err != nil {
		return dto.NotesOutput{}, err
	}
	out := dto.NotesOutput{Notes: make([]dto.NoteOutput, 0, len(res.Items)), Source: string(res.Source)}
	for _, n := range res.Items {
		tags := n.Tags
		if tags == nil {
			tags = []string{}
		}
		out.Notes = append(out.Notes, dto.NoteOutput{
			Date:    n.Date,
			Title:   n.Title,
			Tags:    tags,
			Bullets: n.Bullets,
			Content: n.Content,
		})
	}
	return out, nil
}

func (i *Interactor) Ideas(ctx context.Context) dto.IdeasOutput {
	res := i.svc.Ideas(ctx)
	out := dto.IdeasOutput{Ideas: make([]dto.IdeaOutput, 0, len(res.Items)), Source: string(res.Source)}
	for _, idea := range res.Items {
		out.Ideas = append(out.Ideas, dto.IdeaOutput{Title: idea.Title, Body: idea.Body, Agent: idea.Agent})
	}
	return out
}

func (i *Interactor) Agents(ctx context.Context) dto.AgentsOutput {
	res := i.svc.Agents(ctx)
	out := dto.AgentsOutput{Agents: make([]dto.AgentOutput, 0, len(res.Items)), Source: string(res.Source)}
	for _, a := range res.Items {
		out.Agents = append(out.Agents, dto.AgentOutput{
			Name:     a.Name,
			Role:     a.Role,
			Model:    a.Model,
			Status:   a.Status,
			Mentions: a.Mentions,
			LastSeen: a.LastSeen,
		})
	}
	return out
}

func (i *Interactor) Search(ctx context.Context, input dto.SearchInput) (dto.SearchOutput, error) {
	res, err := i.svc.Search(ctx, input.Query)
	if err != nil {
		return dto.SearchOutput{}, err
	}
	out := dto.SearchOutput{
		Results:      make([]dto.FileMatchesOutput, 0, len(res.Results)),
		TotalMatches: res.TotalMatches,
		Truncated:    res.Truncated,
	}
	for _, fm := range res.Results {
		matches := make([]dto.MatchOutput, 0, len(fm.Matches))
		for _, m := range fm.Matches {
			matches = append(matches, dto.MatchOutput{Line: m.Line, Text: m.Text, Context: m.Context})
		}
		out.Results = append(out.Results, dto.FileMatchesOutput{File: fm.File, Matches: matches})
	}
	return out, nil
}

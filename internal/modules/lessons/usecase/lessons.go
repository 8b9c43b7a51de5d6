package usecase

import (
	"context"

	"missionctl/internal/modules/lessons/domain"
	"missionctl/internal/modules/lessons/dto"
	lessonsin "missionctl/internal/modules/lessons/port/in"
	"missionctl/internal/modules/lessons/service"
)

type Interactor struct {
	svc *service.LessonService
}

func NewInteractor(svc *service.LessonService) lessonsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Entries(ctx context.Context) dto.EntriesOutput {
	res := i.svc.Entries(ctx)
	out := dto.EntriesOutput{Entries: make([]dto.EntryOutput, 0, len(res.Items)), Source: string(res.Source)}
	for _, e := range res.Items {
		out.Entries = append(out.Entries, dto.EntryOutput{
			Date:   e.Date,
			Title:  e.Title,
			Missed: nonNil(e.Missed),
			Why:    nonNil(e.Why),
			Fix:    nonNil(e.Fix),
			Source: string(e.Origin),
		})
	}
	return out
}

func (i *Interactor) Summary(ctx context.Context) dto.SummaryOutput {
	entries := i.svc.Entries(ctx)
	wins := i.svc.Wins(ctx)
	mistakes := domain.Mistakes(entries.Items)
	out := dto.SummaryOutput{
		Mistakes:   make([]dto.MistakeOutput, 0, len(mistakes)),
		Wins:       make([]dto.WinOutput, 0, len(wins.Items)),
		Source:     string(entries.Source),
		WinsSource: string(wins.Source),
	}
	for _, m := range mistakes {
		out.Mistakes = append(out.Mistakes, dto.MistakeOutput{Text: m.Text, Fix: m.Fix, Date: m.Date})
	}
	for _, w := range wins.Items {
		out.Wins = append(out.Wins, dto.WinOutput{Text: w.Text, Date: w.Date})
	}
	return out
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

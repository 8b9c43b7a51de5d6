package usecase

import (
	"context"

	"missionctl/internal/modules/content/domain"
	"missionctl/internal/modules/content/dto"
	contentin "missionctl/internal/modules/content/port/in"
	"missionctl/internal/modules/content/service"
)

type Interactor struct {
	svc *service.ContentService
}

func NewInteractor(svc *service.ContentService) contentin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Items(ctx context.Context) dto.ItemsOutput {
	res := i.svc.Items(ctx)
	out := dto.ItemsOutput{Items: make([]dto.ItemOutput, 0, len(res.Items)), Source: string(res.Source)}
	for _, item := range res.Items {
		out.Items = append(out.Items, dto.ItemOutput{
			ID:            item.ID,
			Title:         item.Title,
			Pillar:        item.Pillar,
			Stage:         string(item.Stage),
			WordCount:     item.WordCount,
			ScheduledDate: item.ScheduledDate,
			PublishedDate: item.PublishedDate,
			Performance:   item.Performance,
		})
	}
	return out
}

func (i *Interactor) Stages(ctx context.Context) dto.StagesOutput {
	res := i.svc.Items(ctx)
	counts := domain.CountStages(res.Items)
	out := dto.StagesOutput{Stages: make(map[string]int, len(counts)), Source: string(res.Source)}
	for stage, n := range counts {
		out.Stages[string(stage)] = n
	}
	return out
}

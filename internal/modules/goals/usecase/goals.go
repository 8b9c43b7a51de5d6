package usecase

import (
	"context"

	"missionctl/internal/modules/goals/dto"
	goalsin "missionctl/internal/modules/goals/port/in"
	"missionctl/internal/modules/goals/service"
)

type Interactor struct {
	svc *service.GoalService
}

func NewInteractor(svc *service.GoalService) goalsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Goals(ctx context.Context) dto.GoalsOutput {
	board := i.svc.Board(ctx)
	out := dto.GoalsOutput{
		Categories: make([]dto.CategoryOutput, 0, len(board.Categories)),
		Metrics:    make([]dto.MetricOutput, 0, len(board.Metrics)),
		Source:     string(board.Source),
	}
	for _, cat := range board.Categories {
		objectives := make([]dto.ObjectiveOutput, 0, len(cat.Objectives))
		for _, o := range cat.Objectives {
			objectives = append(objectives, dto.ObjectiveOutput{Text: o.Text, Done: o.Done})
		}
		out.Categories = append(out.Categories, dto.CategoryOutput{
			Name:       cat.Name,
			Objectives: objectives,
			Progress:   cat.Progress,
			Status:     string(cat.Status),
		})
	}
	for _, m := range board.Metrics {
		out.Metrics = append(out.Metrics, dto.MetricOutput{Goal: m.Goal, Metric: m.Metric, Current: m.Current, Target: m.Target})
	}
	return out
}

func (i *Interactor) Sync(ctx context.Context) (dto.SyncOutput, error) {
	n, err := i.svc.Sync(ctx)
	if err != nil {
		return dto.SyncOutput{}, err
	}
	return dto.SyncOutput{Goals: n}, nil
}

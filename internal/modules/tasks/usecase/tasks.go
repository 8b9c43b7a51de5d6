package usecase

import (
	"context"

	"missionctl/internal/modules/tasks/domain"
	"missionctl/internal/modules/tasks/dto"
	tasksin "missionctl/internal/modules/tasks/port/in"
	"missionctl/internal/modules/tasks/service"
)

type Interactor struct {
	svc *service.TaskService
}

func NewInteractor(svc *service.TaskService) tasksin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Buckets(ctx context.Context) dto.BucketsOutput {
	res := i.svc.Tasks(ctx)
	groups := domain.Group(res.Items)
	out := dto.BucketsOutput{
		Buckets: make(map[string][]dto.TaskOutput, len(groups)),
		Total:   len(res.Items),
		Source:  string(res.Source),
	}
	for bucket, tasks := range groups {
		items := make([]dto.TaskOutput, 0, len(tasks))
		for _, task := range tasks {
			items = append(items, dto.TaskOutput{
				ID:       task.ID,
				Title:    task.Title,
				Status:   string(task.Status),
				Priority: task.Priority,
				Section:  task.Section,
				DueDate:  task.DueDate,
			})
		}
		out.Buckets[string(bucket)] = items
	}
	return out
}

package out

import (
	"context"

	"missionctl/internal/modules/tasks/domain"
)

type TaskRepository interface {
	List(ctx context.Context) ([]domain.Task, error)
}

type TaskDocument interface {
	Tasks(ctx context.Context) ([]domain.Task, error)
}

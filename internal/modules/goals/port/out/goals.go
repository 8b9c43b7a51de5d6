package out

import (
	"context"

	"missionctl/internal/modules/goals/domain"
)

type GoalRepository interface {
	List(ctx context.Context) ([]domain.Goal, error)
	Replace(ctx context.Context, goals []domain.Goal) error
}

type GoalDocument interface {
	Objectives(ctx context.Context) ([]domain.Goal, error)
	Metrics(ctx context.Context) ([]domain.Metric, error)
}

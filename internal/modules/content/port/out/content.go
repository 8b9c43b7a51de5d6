package out

import (
	"context"

	"missionctl/internal/modules/content/domain"
)

type ContentRepository interface {
	List(ctx context.Context) ([]domain.Item, error)
}

type ContentDocument interface {
	Items(ctx context.Context) ([]domain.Item, error)
}

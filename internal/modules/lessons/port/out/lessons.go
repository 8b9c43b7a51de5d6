package out

import (
	"context"

	"missionctl/internal/modules/lessons/domain"
)

// HighlightRepository reads memory_highlights rows of kind lesson and win.
type HighlightRepository interface {
	Lessons(ctx context.Context) ([]domain.Entry, error)
	Wins(ctx context.Context) ([]domain.Win, error)
}

type LessonDocument interface {
	Structured(ctx context.Context) ([]domain.Entry, error)
	Freeform(ctx context.Context) ([]domain.Entry, error)
	Wins(ctx context.Context) ([]domain.Win, error)
}

package out

import (
	"context"

	"missionctl/internal/modules/memory/domain"
)

type NoteRepository interface {
	Recent(ctx context.Context, limit int) ([]domain.Note, error)
}

type MemoryDocument interface {
	Priorities(ctx context.Context) ([]domain.Priority, error)
	Roster(ctx context.Context) ([]domain.Agent, error)
	Ideas(ctx context.Context) ([]domain.Idea, error)
	// DailyNotes returns the newest notes first, at most limit.
	DailyNotes(ctx context.Context, limit int) ([]domain.Note, error)
	SearchPaths(ctx context.Context) ([]string, error)
	Read(ctx context.Context, rel string) (string, error)
}

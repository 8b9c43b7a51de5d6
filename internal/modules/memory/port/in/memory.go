package in

import (
	"context"

	"missionctl/internal/modules/memory/domain"
	"missionctl/internal/modules/memory/dto"
)

// MaxNoteLimit is the largest daily-note window a caller may request.
const MaxNoteLimit = domain.MaxNoteLimit

type Usecase interface {
	Priorities(ctx context.Context) dto.PrioritiesOutput
	Notes(ctx context.Context, input dto.NotesInput) (dto.NotesOutput, error)
	Ideas(ctx context.Context) dto.IdeasOutput
	Agents(ctx context.Context) dto.AgentsOutput
	Search(ctx context.Context, input dto.SearchInput) (dto.SearchOutput, error)
}

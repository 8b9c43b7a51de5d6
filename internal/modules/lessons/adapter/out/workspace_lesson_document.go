package out

import (
	"context"

	"missionctl/internal/modules/lessons/domain"
	lessonsout "missionctl/internal/modules/lessons/port/out"
	"missionctl/internal/platform/workspace"
)

type WorkspaceLessonDocument struct {
	ws *workspace.Workspace
}

func NewWorkspaceLessonDocument(ws *workspace.Workspace) lessonsout.LessonDocument {
	return &WorkspaceLessonDocument{ws: ws}
}

func (d *WorkspaceLessonDocument) Structured(ctx context.Context) ([]domain.Entry, error) {
	doc, err := d.ws.Read(ctx, workspace.LessonsFile)
	if err != nil {
		return nil, err
	}
	return domain.ParseStructured(doc), nil
}

func (d *WorkspaceLessonDocument) Freeform(ctx context.Context) ([]domain.Entry, error) {
	section, err := d.ws.Section(ctx, workspace.MemoryLessons)
	if err != nil {
		return nil, err
	}
	return domain.ParseFreeformSection(section), nil
}

func (d *WorkspaceLessonDocument) Wins(ctx context.Context) ([]domain.Win, error) {
	section, err := d.ws.Section(ctx, workspace.MemoryWins)
	if err != nil {
		return nil, err
	}
	return domain.ParseWins(section), nil
}

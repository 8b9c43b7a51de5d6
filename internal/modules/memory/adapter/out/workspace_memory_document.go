package out

import (
	"context"

	"missionctl/internal/modules/memory/domain"
	memoryout "missionctl/internal/modules/memory/port/out"
	"missionctl/internal/platform/logger"
	"missionctl/internal/platform/workspace"
)

type WorkspaceMemoryDocument struct {
	ws  *workspace.Workspace
	log *logger.Logger
}

func NewWorkspaceMemoryDocument(ws *workspace.Workspace, log *logger.Logger) memoryout.MemoryDocument {
	if log == nil {
		log = logger.Nop()
	}
	return &WorkspaceMemoryDocument{ws: ws, log: log}
}

func (d *WorkspaceMemoryDocument) Priorities(ctx context.Context) ([]domain.Priority, error) {
	section, err := d.ws.Section(ctx, workspace.MemoryPriorities)
	if err != nil {
		return nil, err
	}
	return domain.ParsePriorities(section), nil
}

func (d *WorkspaceMemoryDocument) Roster(ctx context.Context) ([]domain.Agent, error) {
	section, err := d.ws.Section(ctx, workspace.AgentRoster)
	if err != nil {
		return nil, err
	}
	return domain.ParseRoster(section), nil
}

func (d *WorkspaceMemoryDocument) Ideas(ctx context.Context) ([]domain.Idea, error) {
	doc, err := d.ws.Read(ctx, workspace.SecondBrainFile)
	if err != nil {
		return nil, err
	}
	return domain.ParseIdeas(doc), nil
}

// DailyNotes reads memory/YYYY-MM-DD.md files newest first. Files whose names
// look like dates but fail the check are logged and left out; an unreadable
// file is skipped.
func (d *WorkspaceMemoryDocument) DailyNotes(ctx context.Context, limit int) ([]domain.Note, error) {
	files, rejected, err := d.ws.DailyFiles(ctx, limit)
	if err != nil {
		return nil, err
	}
	for _, name := range rejected {
		d.log.Warn("daily note skipped: name is not YYYY-MM-DD.md", "file", name)
	}
	out := make([]domain.Note, 0, len(files))
	for _, f := range files {
		content, err := d.ws.Read(ctx, f.Rel)
		if err != nil {
			d.log.Warn("daily note unreadable", "file", f.Rel, "error", err)
			continue
		}
		out = append(out, domain.BuildNote(f.Day(), content))
	}
	return out, nil
}

func (d *WorkspaceMemoryDocument) SearchPaths(ctx context.Context) ([]string, error) {
	return d.ws.MarkdownFiles(ctx)
}

func (d *WorkspaceMemoryDocument) Read(ctx context.Context, rel string) (string, error) {
	return d.ws.Read(ctx, rel)
}

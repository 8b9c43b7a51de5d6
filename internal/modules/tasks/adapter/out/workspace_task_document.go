package out

import (
	"context"

	"missionctl/internal/modules/tasks/domain"
	tasksout "missionctl/internal/modules/tasks/port/out"
	"missionctl/internal/platform/workspace"
)

type WorkspaceTaskDocument struct {
	ws *workspace.Workspace
}

func NewWorkspaceTaskDocument(ws *workspace.Workspace) tasksout.TaskDocument {
	return &WorkspaceTaskDocument{ws: ws}
}

func (d *WorkspaceTaskDocument) Tasks(ctx context.Context) ([]domain.Task, error) {
	doc, err := d.ws.Read(ctx, workspace.TasksFile)
	if err != nil {
		return nil, err
	}
	return domain.ParseTasks(doc), nil
}

package out

import (
	"context"

	alertsout "missionctl/internal/modules/alerts/port/out"
	"missionctl/internal/platform/workspace"
)

type WorkspaceDocumentReader struct {
	ws *workspace.Workspace
}

func NewWorkspaceDocumentReader(ws *workspace.Workspace) alertsout.DocumentReader {
	return &WorkspaceDocumentReader{ws: ws}
}

func (r *WorkspaceDocumentReader) Read(ctx context.Context, rel string) (string, error) {
	return r.ws.Read(ctx, rel)
}

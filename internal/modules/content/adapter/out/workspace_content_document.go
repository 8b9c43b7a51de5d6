package out

import (
	"context"

	"missionctl/internal/modules/content/domain"
	contentout "missionctl/internal/modules/content/port/out"
	"missionctl/internal/platform/markdown"
	"missionctl/internal/platform/workspace"
)

type WorkspaceContentDocument struct {
	ws *workspace.Workspace
}

func NewWorkspaceContentDocument(ws *workspace.Workspace) contentout.ContentDocument {
	return &WorkspaceContentDocument{ws: ws}
}

func (d *WorkspaceContentDocument) Items(ctx context.Context) ([]domain.Item, error) {
	doc, err := d.ws.Read(ctx, workspace.ContentFile)
	if err != nil {
		return nil, err
	}
	return domain.ParseItems(markdown.FirstTable(doc)), nil
}

package out

import (
	"context"

	"missionctl/internal/modules/jobs/domain"
	jobsout "missionctl/internal/modules/jobs/port/out"
	"missionctl/internal/platform/workspace"
)

type WorkspaceJobDocument struct {
	ws *workspace.Workspace
}

func NewWorkspaceJobDocument(ws *workspace.Workspace) jobsout.JobDocument {
	return &WorkspaceJobDocument{ws: ws}
}

func (d *WorkspaceJobDocument) Pipeline(ctx context.Context) ([]domain.Job, error) {
	section, err := d.ws.Section(ctx, workspace.JobPipeline)
	if err != nil {
		return nil, err
	}
	return domain.ParsePipeline(section), nil
}

func (d *WorkspaceJobDocument) CVHistory(ctx context.Context) ([]domain.ATSRecord, error) {
	doc, err := d.ws.Read(ctx, workspace.CVHistoryFile)
	if err != nil {
		return nil, err
	}
	return domain.ParseCVHistory(doc), nil
}

package out

import (
	"context"

	"missionctl/internal/modules/goals/domain"
	goalsout "missionctl/internal/modules/goals/port/out"
	"missionctl/internal/platform/workspace"
)

type WorkspaceGoalDocument struct {
	ws *workspace.Workspace
}

func NewWorkspaceGoalDocument(ws *workspace.Workspace) goalsout.GoalDocument {
	return &WorkspaceGoalDocument{ws: ws}
}

func (d *WorkspaceGoalDocument) Objectives(ctx context.Context) ([]domain.Goal, error) {
	section, err := d.ws.Section(ctx, workspace.GoalObjectives)
	if err != nil {
		return nil, err
	}
	return domain.ParseObjectives(section), nil
}

func (d *WorkspaceGoalDocument) Metrics(ctx context.Context) ([]domain.Metric, error) {
	section, err := d.ws.Section(ctx, workspace.GoalMetrics)
	if err != nil {
		return nil, err
	}
	return domain.ParseMetrics(section), nil
}

package in

import (
	"context"

	"missionctl/internal/modules/content/dto"
)

type Usecase interface {
	Items(ctx context.Context) dto.ItemsOutput
	Stages(ctx context.Context) dto.StagesOutput
}

package in

import (
	"context"

	"missionctl/internal/modules/overview/dto"
)

type Usecase interface {
	Overview(ctx context.Context) (dto.OverviewOutput, error)
}

package in

import (
	"context"

	"missionctl/internal/modules/goals/dto"
)

type Usecase interface {
	Goals(ctx context.Context) dto.GoalsOutput
	Sync(ctx context.Context) (dto.SyncOutput, error)
}

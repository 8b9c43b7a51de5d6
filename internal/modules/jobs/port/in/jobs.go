package in

import (
	"context"

	"missionctl/internal/modules/jobs/dto"
)

type Usecase interface {
	Board(ctx context.Context) dto.BoardOutput
	Sync(ctx context.Context) (dto.SyncOutput, error)
}

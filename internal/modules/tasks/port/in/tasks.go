package in

import (
	"context"

	"missionctl/internal/modules/tasks/dto"
)

type Usecase interface {
	Buckets(ctx context.Context) dto.BucketsOutput
}

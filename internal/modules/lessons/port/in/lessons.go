package in

import (
	"context"

	"missionctl/internal/modules/lessons/dto"
)

type Usecase interface {
	Entries(ctx context.Context) dto.EntriesOutput
	Summary(ctx context.Context) dto.SummaryOutput
}

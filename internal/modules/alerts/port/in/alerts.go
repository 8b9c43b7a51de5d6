package in

import (
	"context"

	"missionctl/internal/modules/alerts/dto"
)

type Usecase interface {
	Alerts(ctx context.Context) dto.AlertsOutput
}

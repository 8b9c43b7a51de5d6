package usecase

import (
	"context"

	"missionctl/internal/modules/alerts/dto"
	alertsin "missionctl/internal/modules/alerts/port/in"
	"missionctl/internal/modules/alerts/service"
)

type Interactor struct {
	svc *service.AlertService
}

func NewInteractor(svc *service.AlertService) alertsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Alerts(ctx context.Context) dto.AlertsOutput {
	res := i.svc.Alerts(ctx)
	out := dto.AlertsOutput{Alerts: make([]dto.AlertOutput, 0, len(res.Items)), Source: string(res.Source)}
	for _, a := range res.Items {
		out.Alerts = append(out.Alerts, dto.AlertOutput{
			Text:      a.Text,
			Deadline:  a.Deadline,
			Severity:  string(a.Severity),
			HoursLeft: a.HoursLeft,
		})
	}
	return out
}

package service

import (
	"context"
	"time"

	"missionctl/internal/modules/alerts/domain"
	alertsout "missionctl/internal/modules/alerts/port/out"
	"missionctl/internal/platform/clock"
	"missionctl/internal/platform/dualsource"
	"missionctl/internal/platform/logger"
	"missionctl/internal/platform/workspace"
)

// Files scanned for deadlines, in scan order.
var Files = []string{workspace.GoalsFile, workspace.TasksFile}

type AlertService struct {
	log   *logger.Logger
	clock clock.Clock
	loc   *time.Location
	docs  alertsout.DocumentReader
}

func NewAlertService(log *logger.Logger, clock clock.Clock, loc *time.Location, docs alertsout.DocumentReader) *AlertService {
	if loc == nil {
		loc = time.UTC
	}
	return &AlertService{log: log, clock: clock, loc: loc, docs: docs}
}

// Alerts scans every file independently; one unreadable file only drops its
// own alerts.
func (s *AlertService) Alerts(ctx context.Context) dualsource.Result[domain.Alert] {
	now := s.clock.Now().In(s.loc)
	return dualsource.Resolve(ctx, s.log, dualsource.Request[domain.Alert]{
		Domain: "alerts",
		Markdown: func(ctx context.Context) ([]domain.Alert, error) {
			groups := make([][]domain.Alert, 0, len(Files))
			for _, rel := range Files {
				doc, err := dualsource.SoftRead(ctx, s.log, "alerts."+rel, func(ctx context.Context) (string, error) {
					return s.docs.Read(ctx, rel)
				})
				if err != nil {
					continue
				}
				groups = append(groups, domain.Scan(doc, s.loc, now))
			}
			return domain.Merge(groups...), nil
		},
	})
}

package usecase

import (
	"context"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	alertsin "missionctl/internal/modules/alerts/port/in"
	contentin "missionctl/internal/modules/content/port/in"
	goalsin "missionctl/internal/modules/goals/port/in"
	jobsin "missionctl/internal/modules/jobs/port/in"
	"missionctl/internal/modules/overview/dto"
	overviewin "missionctl/internal/modules/overview/port/in"
	tasksin "missionctl/internal/modules/tasks/port/in"
	"missionctl/internal/platform/clock"
)

type Interactor struct {
	clock   clock.Clock
	goals   goalsin.Usecase
	jobs    jobsin.Usecase
	content contentin.Usecase
	tasks   tasksin.Usecase
	alerts  alertsin.Usecase
}

func NewInteractor(clock clock.Clock, goals goalsin.Usecase, jobs jobsin.Usecase, content contentin.Usecase, tasks tasksin.Usecase, alerts alertsin.Usecase) overviewin.Usecase {
	return &Interactor{clock: clock, goals: goals, jobs: jobs, content: content, tasks: tasks, alerts: alerts}
}

// Overview reads every view concurrently. Each view degrades on its own, so
// the only error is a cancelled context.
func (i *Interactor) Overview(ctx context.Context) (dto.OverviewOutput, error) {
	out := dto.OverviewOutput{GeneratedAt: i.clock.Now().Format(time.RFC3339)}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		board := i.goals.Goals(ctx)
		s := dto.GoalsSummary{Categories: len(board.Categories), Source: board.Source}
		for _, cat := range board.Categories {
			s.Objectives += len(cat.Objectives)
			for _, o := range cat.Objectives {
				if o.Done {
					s.Done++
				}
			}
		}
		if s.Objectives > 0 {
			s.Progress = int(math.Round(100 * float64(s.Done) / float64(s.Objectives)))
		}
		out.Goals = s
		return ctx.Err()
	})
	g.Go(func() error {
		board := i.jobs.Board(ctx)
		out.Jobs = dto.JobsSummary{
			Total:      board.Total,
			Active:     board.Total - len(board.Columns["closed"]),
			Interviews: len(board.Columns["interview"]),
			Offers:     len(board.Columns["offer"]),
			Source:     board.Source,
		}
		return ctx.Err()
	})
	g.Go(func() error {
		stages := i.content.Stages(ctx)
		s := dto.ContentSummary{
			Scheduled: stages.Stages["scheduled"],
			Published: stages.Stages["published"],
			Source:    stages.Source,
		}
		for _, n := range stages.Stages {
			s.Total += n
		}
		out.Content = s
		return ctx.Err()
	})
	g.Go(func() error {
		buckets := i.tasks.Buckets(ctx)
		out.Tasks = dto.TasksSummary{
			Total:   buckets.Total,
			Open:    buckets.Total - len(buckets.Buckets["done"]),
			Blocked: len(buckets.Buckets["blocked"]),
			Source:  buckets.Source,
		}
		return ctx.Err()
	})
	g.Go(func() error {
		alerts := i.alerts.Alerts(ctx)
		s := dto.AlertsSummary{Total: len(alerts.Alerts), Source: alerts.Source}
		for _, a := range alerts.Alerts {
			switch a.Severity {
			case "red":
				s.Red++
			case "amber":
				s.Amber++
			default:
				s.Yellow++
			}
		}
		out.Alerts = s
		return ctx.Err()
	})

	if err := g.Wait(); err != nil {
		return dto.OverviewOutput{}, err
	}
	return out, nil
}

package usecase

import (
	"context"

	"missionctl/internal/modules/jobs/domain"
	"missionctl/internal/modules/jobs/dto"
	jobsin "missionctl/internal/modules/jobs/port/in"
	"missionctl/internal/modules/jobs/service"
)

type Interactor struct {
	svc *service.JobService
}

func NewInteractor(svc *service.JobService) jobsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Board(ctx context.Context) dto.BoardOutput {
	res := i.svc.Pipeline(ctx)
	board := domain.Board(res.Items)
	out := dto.BoardOutput{
		Columns: make(map[string][]dto.JobOutput, len(board)),
		Total:   len(res.Items),
		Source:  string(res.Source),
	}
	for col, jobs := range board {
		items := make([]dto.JobOutput, 0, len(jobs))
		for _, j := range jobs {
			items = append(items, toOutput(j))
		}
		out.Columns[string(col)] = items
	}
	return out
}

func (i *Interactor) Sync(ctx context.Context) (dto.SyncOutput, error) {
	n, err := i.svc.Sync(ctx)
	if err != nil {
		return dto.SyncOutput{}, err
	}
	return dto.SyncOutput{Jobs: n}, nil
}

func toOutput(j domain.Job) dto.JobOutput {
	return dto.JobOutput{
		ID:            j.ID,
		Company:       j.Company,
		Role:          j.Role,
		Status:        j.Status,
		Column:        string(j.Column),
		ATSScore:      j.ATSScore,
		NextAction:    j.NextAction,
		Salary:        j.Salary,
		CompanyDomain: j.CompanyDomain,
		UpdatedAt:     j.UpdatedAt,
	}
}

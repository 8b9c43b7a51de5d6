package out

import (
	"context"

	"missionctl/internal/modules/jobs/domain"
)

type JobRepository interface {
	List(ctx context.Context) ([]domain.Job, error)
	Replace(ctx context.Context, jobs []domain.Job) error
	CVHistory(ctx context.Context) ([]domain.ATSRecord, error)
}

type JobDocument interface {
	Pipeline(ctx context.Context) ([]domain.Job, error)
	CVHistory(ctx context.Context) ([]domain.ATSRecord, error)
}

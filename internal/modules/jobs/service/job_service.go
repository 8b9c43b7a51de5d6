package service

import (
	"context"
	"fmt"

	"missionctl/internal/modules/jobs/domain"
	jobsout "missionctl/internal/modules/jobs/port/out"
	"missionctl/internal/platform/dualsource"
	apperrors "missionctl/internal/platform/errors"
	"missionctl/internal/platform/logger"
)

type JobService struct {
	log  *logger.Logger
	repo jobsout.JobRepository
	doc  jobsout.JobDocument
}

func NewJobService(log *logger.Logger, repo jobsout.JobRepository, doc jobsout.JobDocument) *JobService {
	return &JobService{log: log, repo: repo, doc: doc}
}

// Pipeline resolves the job list and backfills missing ATS scores from the
// CV history.
func (s *JobService) Pipeline(ctx context.Context) dualsource.Result[domain.Job] {
	req := dualsource.Request[domain.Job]{Domain: "jobs", Markdown: s.doc.Pipeline}
	if s.repo != nil {
		req.DB = s.repo.List
	}
	res := dualsource.Resolve(ctx, s.log, req)
	res.Items = dualsource.Backfill(ctx, s.log, "jobs.ats", res.Items,
		func(j domain.Job) bool { return j.ATSScore == nil },
		s.latestATS,
		func(j domain.Job) string { return domain.CompanyKey(j.Company) },
		func(j domain.Job, score int) domain.Job {
			j.ATSScore = &score
			return j
		},
	)
	return res
}

func (s *JobService) latestATS(ctx context.Context) (map[string]int, error) {
	req := dualsource.Request[domain.ATSRecord]{Domain: "cv_history", Markdown: s.doc.CVHistory}
	if s.repo != nil {
		req.DB = s.repo.CVHistory
	}
	return domain.LatestATS(dualsource.Resolve(ctx, s.log, req).Items), nil
}

// Sync projects the GOALS.md pipeline table into job_pipeline.
func (s *JobService) Sync(ctx context.Context) (int, error) {
	if s.repo == nil {
		return 0, fmt.Errorf("jobs sync: database not configured: %w", apperrors.ErrSourceUnavailable)
	}
	jobs, err := s.doc.Pipeline(ctx)
	if err != nil {
		return 0, fmt.Errorf("jobs sync: %w", err)
	}
	jobs = dedupe(jobs)
	if err := s.repo.Replace(ctx, jobs); err != nil {
		return 0, fmt.Errorf("jobs sync: %w", err)
	}
	return len(jobs), nil
}

// dedupe keeps the last row for a repeated company and role, matching the
// table's top-to-bottom edit order.
func dedupe(jobs []domain.Job) []domain.Job {
	index := map[string]int{}
	out := make([]domain.Job, 0, len(jobs))
	for _, j := range jobs {
		if i, ok := index[j.ID]; ok {
			out[i] = j
			continue
		}
		index[j.ID] = len(out)
		out = append(out, j)
	}
	return out
}

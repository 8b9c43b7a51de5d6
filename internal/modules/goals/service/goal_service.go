package service

import (
	"context"
	"fmt"

	"missionctl/internal/modules/goals/domain"
	goalsout "missionctl/internal/modules/goals/port/out"
	"missionctl/internal/platform/dualsource"
	apperrors "missionctl/internal/platform/errors"
	"missionctl/internal/platform/logger"
)

// Board is the goals view before it is shaped for output.
type Board struct {
	Categories []domain.Category
	Metrics    []domain.Metric
	Source     dualsource.Source
}

type GoalService struct {
	log  *logger.Logger
	repo goalsout.GoalRepository
	doc  goalsout.GoalDocument
}

func NewGoalService(log *logger.Logger, repo goalsout.GoalRepository, doc goalsout.GoalDocument) *GoalService {
	return &GoalService{log: log, repo: repo, doc: doc}
}

// Board resolves objectives from the database first, then GOALS.md. Metrics
// only live in GOALS.md and are read softly.
func (s *GoalService) Board(ctx context.Context) Board {
	req := dualsource.Request[domain.Goal]{Domain: "goals", Markdown: s.doc.Objectives}
	if s.repo != nil {
		req.DB = s.repo.List
	}
	res := dualsource.Resolve(ctx, s.log, req)

	metrics, err := dualsource.SoftRead(ctx, s.log, "goals.metrics", s.doc.Metrics)
	if err != nil || metrics == nil {
		metrics = []domain.Metric{}
	}
	return Board{
		Categories: domain.BuildCategories(res.Items),
		Metrics:    metrics,
		Source:     res.Source,
	}
}

// Sync replaces the goals table with the objectives currently in GOALS.md.
func (s *GoalService) Sync(ctx context.Context) (int, error) {
	if s.repo == nil {
		return 0, fmt.Errorf("goals sync: database not configured: %w", apperrors.ErrSourceUnavailable)
	}
	goals, err := s.doc.Objectives(ctx)
	if err != nil {
		return 0, fmt.Errorf("goals sync: %w", err)
	}
	if err := s.repo.Replace(ctx, goals); err != nil {
		return 0, fmt.Errorf("goals sync: %w", err)
	}
	return len(goals), nil
}

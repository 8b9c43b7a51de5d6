package service

import (
	"context"
	"fmt"
	"strings"

	"missionctl/internal/modules/memory/domain"
	memoryout "missionctl/internal/modules/memory/port/out"
	"missionctl/internal/platform/dualsource"
	apperrors "missionctl/internal/platform/errors"
	"missionctl/internal/platform/logger"
)

type Options struct {
	RecentDays int
	Search     domain.SearchOptions
}

type MemoryService struct {
	log  *logger.Logger
	repo memoryout.NoteRepository
	doc  memoryout.MemoryDocument
	opts Options
}

func NewMemoryService(log *logger.Logger, repo memoryout.NoteRepository, doc memoryout.MemoryDocument, opts Options) *MemoryService {
	if opts.RecentDays <= 0 || opts.RecentDays > domain.MaxNoteLimit {
		opts.RecentDays = 7
	}
	return &MemoryService{log: log, repo: repo, doc: doc, opts: opts}
}

func (s *MemoryService) Priorities(ctx context.Context) dualsource.Result[domain.Priority] {
	return dualsource.Resolve(ctx, s.log, dualsource.Request[domain.Priority]{
		Domain:   "memory.priorities",
		Markdown: s.doc.Priorities,
	})
}

// Notes returns the newest daily notes. limit 0 selects the configured
// default; anything outside 1..MaxNoteLimit is rejected.
func (s *MemoryService) Notes(ctx context.Context, limit int) (dualsource.Result[domain.Note], error) {
	if limit == 0 {
		limit = s.opts.RecentDays
	}
	if limit < 1 || limit > domain.MaxNoteLimit {
		return dualsource.Result[domain.Note]{}, fmt.Errorf("%w: limit must be between 1 and %d", apperrors.ErrInvalidInput, domain.MaxNoteLimit)
	}
	req := dualsource.Request[domain.Note]{
		Domain: "memory.notes",
		Markdown: func(ctx context.Context) ([]domain.Note, error) {
			return s.doc.DailyNotes(ctx, limit)
		},
	}
	if s.repo != nil {
		req.DB = func(ctx context.Context) ([]domain.Note, error) {
			return s.repo.Recent(ctx, limit)
		}
	}
	return dualsource.Resolve(ctx, s.log, req), nil
}

func (s *MemoryService) roster(ctx context.Context) dualsource.Result[domain.Agent] {
	return dualsource.Resolve(ctx, s.log, dualsource.Request[domain.Agent]{
		Domain:   "agents",
		Markdown: s.doc.Roster,
	})
}

// Ideas tags each second-brain section with the first roster agent it
// mentions. A missing roster leaves ideas untagged.
func (s *MemoryService) Ideas(ctx context.Context) dualsource.Result[domain.Idea] {
	res := dualsource.Resolve(ctx, s.log, dualsource.Request[domain.Idea]{
		Domain:   "memory.ideas",
		Markdown: s.doc.Ideas,
	})
	if len(res.Items) > 0 {
		res.Items = domain.TagAgents(res.Items, s.roster(ctx).Items)
	}
	return res
}

// Agents reports the roster with mention counts over the recent notes.
func (s *MemoryService) Agents(ctx context.Context) dualsource.Result[domain.Agent] {
	res := s.roster(ctx)
	if len(res.Items) == 0 {
		return res
	}
	notes, err := s.Notes(ctx, s.opts.RecentDays)
	if err != nil {
		return res
	}
	res.Items = domain.Activity(res.Items, notes.Items)
	return res
}

// Search scans the workspace markdown. Files that cannot be read are skipped.
func (s *MemoryService) Search(ctx context.Context, query string) (domain.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return domain.SearchResult{}, fmt.Errorf("%w: q is required", apperrors.ErrInvalidInput)
	}
	paths, err := dualsource.SoftRead(ctx, s.log, "search.files", s.doc.SearchPaths)
	if err != nil {
		return domain.Search(nil, query, s.opts.Search), nil
	}
	files := make([]domain.File, 0, len(paths))
	for _, rel := range paths {
		content, err := dualsource.SoftRead(ctx, s.log, "search.read", func(ctx context.Context) (string, error) {
			return s.doc.Read(ctx, rel)
		})
		if err != nil {
			continue
		}
		files = append(files, domain.File{Path: rel, Content: content})
	}
	return domain.Search(files, query, s.opts.Search), nil
}

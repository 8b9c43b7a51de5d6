package service

import (
	"context"

	"missionctl/internal/modules/lessons/domain"
	lessonsout "missionctl/internal/modules/lessons/port/out"
	"missionctl/internal/platform/dualsource"
	"missionctl/internal/platform/logger"
)

type LessonService struct {
	log  *logger.Logger
	repo lessonsout.HighlightRepository
	doc  lessonsout.LessonDocument
}

func NewLessonService(log *logger.Logger, repo lessonsout.HighlightRepository, doc lessonsout.LessonDocument) *LessonService {
	return &LessonService{log: log, repo: repo, doc: doc}
}

// Entries resolves lessons from memory_highlights, else from the lessons file
// and the MEMORY.md bullets. The two files are read independently.
func (s *LessonService) Entries(ctx context.Context) dualsource.Result[domain.Entry] {
	req := dualsource.Request[domain.Entry]{Domain: "lessons", Markdown: s.markdownEntries}
	if s.repo != nil {
		req.DB = s.repo.Lessons
	}
	res := dualsource.Resolve(ctx, s.log, req)
	domain.SortByDate(res.Items)
	return res
}

func (s *LessonService) markdownEntries(ctx context.Context) ([]domain.Entry, error) {
	out := make([]domain.Entry, 0)
	if structured, err := dualsource.SoftRead(ctx, s.log, "lessons.structured", s.doc.Structured); err == nil {
		out = append(out, structured...)
	}
	if freeform, err := dualsource.SoftRead(ctx, s.log, "lessons.freeform", s.doc.Freeform); err == nil {
		out = append(out, freeform...)
	}
	return out, nil
}

func (s *LessonService) Wins(ctx context.Context) dualsource.Result[domain.Win] {
	req := dualsource.Request[domain.Win]{Domain: "wins", Markdown: s.doc.Wins}
	if s.repo != nil {
		req.DB = s.repo.Wins
	}
	return dualsource.Resolve(ctx, s.log, req)
}

package service

import (
	"context"

	"missionctl/internal/modules/content/domain"
	contentout "missionctl/internal/modules/content/port/out"
	"missionctl/internal/platform/dualsource"
	"missionctl/internal/platform/logger"
)

type ContentService struct {
	log  *logger.Logger
	repo contentout.ContentRepository
	doc  contentout.ContentDocument
}

func NewContentService(log *logger.Logger, repo contentout.ContentRepository, doc contentout.ContentDocument) *ContentService {
	return &ContentService{log: log, repo: repo, doc: doc}
}

func (s *ContentService) Items(ctx context.Context) dualsource.Result[domain.Item] {
	req := dualsource.Request[domain.Item]{Domain: "content", Markdown: s.doc.Items}
	if s.repo != nil {
		req.DB = s.repo.List
	}
	return dualsource.Resolve(ctx, s.log, req)
}

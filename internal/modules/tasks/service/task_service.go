package service

import (
	"context"

	"missionctl/internal/modules/tasks/domain"
	tasksout "missionctl/internal/modules/tasks/port/out"
	"missionctl/internal/platform/dualsource"
	"missionctl/internal/platform/logger"
)

type TaskService struct {
	log  *logger.Logger
	repo tasksout.TaskRepository
	doc  tasksout.TaskDocument
}

func NewTaskService(log *logger.Logger, repo tasksout.TaskRepository, doc tasksout.TaskDocument) *TaskService {
	return &TaskService{log: log, repo: repo, doc: doc}
}

func (s *TaskService) Tasks(ctx context.Context) dualsource.Result[domain.Task] {
	req := dualsource.Request[domain.Task]{Domain: "tasks", Markdown: s.doc.Tasks}
	if s.repo != nil {
		req.DB = s.repo.List
	}
	return dualsource.Resolve(ctx, s.log, req)
}

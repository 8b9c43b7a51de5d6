package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	contentout "missionctl/internal/modules/content/adapter/out"
	"missionctl/internal/modules/content/domain"
	"missionctl/internal/modules/content/service"
	"missionctl/internal/modules/content/usecase"
	"missionctl/internal/platform/logger"
	"missionctl/internal/platform/workspace"
)

type brokenRepo struct{ calls int }

func (b *brokenRepo) List(context.Context) ([]domain.Item, error) {
	b.calls++
	return nil, errors.New("no such table: content_pipeline")
}

const pipeline = `# Content

| Title | Pillar | Stage | Words | Scheduled | Published | Performance |
|---|---|---|---|---|---|---|
| Shipping small | Engineering | Scheduled | 900 | 2026-03-02 | | |
| Hiring notes | Career | idea | | | | |

## Archive
| Title | Pillar | Stage | Words | Scheduled | Published | Performance |
|---|---|---|---|---|---|---|
| Old post | Career | Published | 500 | | 2025-01-01 | |
`

func TestContentFallsBackToFirstMarkdownTable(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, workspace.MemoryDir), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, workspace.ContentFile), []byte(pipeline), 0o644); err != nil {
		t.Fatalf("write pipeline: %v", err)
	}
	repo := &brokenRepo{}
	uc := usecase.NewInteractor(service.NewContentService(logger.Nop(), repo, contentout.NewWorkspaceContentDocument(workspace.New(root))))

	items := uc.Items(context.Background())
	if items.Source != "markdown-fallback" || len(items.Items) != 2 {
		t.Fatalf("unexpected items: %+v", items)
	}
	stages := uc.Stages(context.Background())
	if stages.Stages["scheduled"] != 1 || stages.Stages["ideas"] != 1 || stages.Stages["published"] != 0 {
		t.Fatalf("unexpected stage counts: %+v", stages.Stages)
	}
	if repo.calls != 2 {
		t.Fatalf("expected one database read per call, got %d", repo.calls)
	}
}

func TestContentEmptyWorkspace(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewContentService(logger.Nop(), nil, contentout.NewWorkspaceContentDocument(workspace.New(t.TempDir()))))
	out := uc.Stages(context.Background())
	if out.Source != "empty" || len(out.Stages) != 5 {
		t.Fatalf("unexpected output: %+v", out)
	}
}

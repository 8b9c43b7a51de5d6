package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	tasksout "missionctl/internal/modules/tasks/adapter/out"
	"missionctl/internal/modules/tasks/service"
	"missionctl/internal/modules/tasks/usecase"
	"missionctl/internal/platform/logger"
	"missionctl/internal/platform/sqlitedb"
	"missionctl/internal/platform/workspace"
)

func TestTasksDatabaseThenMarkdown(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, workspace.MemoryDir), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	doc := "## Doing\n- [ ] Draft outreach email\n## Blocked\n- Visa letter\n"
	if err := os.WriteFile(filepath.Join(root, workspace.TasksFile), []byte(doc), 0o644); err != nil {
		t.Fatalf("write tasks: %v", err)
	}
	ctx := context.Background()
	db, err := sqlitedb.Open(ctx, filepath.Join(root, ".missionctl", "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	uc := usecase.NewInteractor(service.NewTaskService(
		logger.Nop(),
		tasksout.NewSQLiteTaskRepository(db, logger.Nop()),
		tasksout.NewWorkspaceTaskDocument(workspace.New(root)),
	))

	out := uc.Buckets(ctx)
	if out.Source != "markdown" || out.Total != 2 {
		t.Fatalf("unexpected markdown result: %+v", out)
	}
	if len(out.Buckets["in_progress"]) != 1 || len(out.Buckets["blocked"]) != 1 || len(out.Buckets["done"]) != 0 {
		t.Fatalf("unexpected buckets: %+v", out.Buckets)
	}

	if _, err := db.SQL.ExecContext(ctx,
		`INSERT INTO tasks (id, title, status, priority, source, due_date, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		"t1", "File taxes", "done", "P2", "ops", nil, "2026-02-01",
	); err != nil {
		t.Fatalf("seed task: %v", err)
	}
	out = uc.Buckets(ctx)
	if out.Source != "db" || out.Total != 1 || out.Buckets["done"][0].Title != "File taxes" {
		t.Fatalf("unexpected db result: %+v", out)
	}
	if out.Buckets["todo"] == nil {
		t.Fatalf("empty buckets must serialize as arrays")
	}
}

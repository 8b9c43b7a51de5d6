package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	memoryout "missionctl/internal/modules/memory/adapter/out"
	"missionctl/internal/modules/memory/domain"
	"missionctl/internal/modules/memory/dto"
	memoryin "missionctl/internal/modules/memory/port/in"
	"missionctl/internal/modules/memory/service"
	"missionctl/internal/modules/memory/usecase"
	apperrors "missionctl/internal/platform/errors"
	"missionctl/internal/platform/logger"
	"missionctl/internal/platform/sqlitedb"
	"missionctl/internal/platform/workspace"
)

const memoryDoc = `# Memory

## 🎯 Priorities
- [ ] Land a backend role
- [x] Ship portfolio

## 🤖 Agents
| Name | Role | Model | Status |
|---|---|---|---|
| Nova | Recruiter | sonnet | active |
| Atlas | Writer | haiku | idle |
`

func write(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

func workspaceFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	write(t, root, workspace.MemoryFile, memoryDoc)
	write(t, root, "memory/2026-02-09.md", "# Monday\n- Nova scanned boards\n")
	write(t, root, "memory/2026-02-10.md", "---\ntags: [cv]\n---\n# Tuesday\n- Nova sent CV\n- Atlas drafted post\n")
	write(t, root, "memory/2026-02-11.md", "# Wednesday\nquiet day\n")
	write(t, root, "memory/2026-2-12.md", "# badly named\n- Nova\n")
	write(t, root, workspace.SecondBrainFile, "## Weekly newsletter\nAtlas could own it\n## Home lab\n")
	return root
}

func newUsecase(t *testing.T, root string, db *sqlitedb.DB) memoryin.Usecase {
	t.Helper()
	doc := memoryout.NewWorkspaceMemoryDocument(workspace.New(root), logger.Nop())
	opts := service.Options{
		RecentDays: 2,
		Search:     domain.SearchOptions{MaxPerFile: 5, MaxTotal: 50, ContextLines: 2},
	}
	if db == nil {
		return usecase.NewInteractor(service.NewMemoryService(logger.Nop(), nil, doc, opts))
	}
	return usecase.NewInteractor(service.NewMemoryService(logger.Nop(), memoryout.NewSQLiteNoteRepository(db, logger.Nop()), doc, opts))
}

func TestNotesFromFilesRespectLimitAndNameCheck(t *testing.T) {
	t.Parallel()
	uc := newUsecase(t, workspaceFixture(t), nil)
	ctx := context.Background()

	out, err := uc.Notes(ctx, dto.NotesInput{})
	if err != nil {
		t.Fatalf("notes: %v", err)
	}
	if out.Source != "markdown" || len(out.Notes) != 2 {
		t.Fatalf("expected the 2 newest notes, got %+v", out)
	}
	if out.Notes[0].Date != "2026-02-11" || out.Notes[1].Title != "Tuesday" || out.Notes[1].Tags[0] != "cv" || out.Notes[1].Bullets != 2 {
		t.Fatalf("unexpected notes: %+v", out.Notes)
	}

	all, err := uc.Notes(ctx, dto.NotesInput{Limit: 60})
	if err != nil || len(all.Notes) != 3 {
		t.Fatalf("badly named file must be skipped: %+v err=%v", all, err)
	}

	if _, err := uc.Notes(ctx, dto.NotesInput{Limit: 61}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestNotesPreferDatabase(t *testing.T) {
	t.Parallel()
	root := workspaceFixture(t)
	ctx := context.Background()
	db, err := sqlitedb.Open(ctx, filepath.Join(root, ".missionctl", "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if _, err := db.SQL.ExecContext(ctx, `INSERT INTO daily_notes (date, content) VALUES ('2026-03-01', '# From db')`); err != nil {
		t.Fatalf("seed: %v", err)
	}
	out, err := newUsecase(t, root, db).Notes(ctx, dto.NotesInput{})
	if err != nil {
		t.Fatalf("notes: %v", err)
	}
	if out.Source != "db" || len(out.Notes) != 1 || out.Notes[0].Title != "From db" {
		t.Fatalf("unexpected notes: %+v", out)
	}
}

func TestPrioritiesIdeasAgentsAndSearch(t *testing.T) {
	t.Parallel()
	uc := newUsecase(t, workspaceFixture(t), nil)
	ctx := context.Background()

	priorities := uc.Priorities(ctx)
	if len(priorities.Priorities) != 2 || !priorities.Priorities[1].Done {
		t.Fatalf("unexpected priorities: %+v", priorities)
	}

	ideas := uc.Ideas(ctx)
	if len(ideas.Ideas) != 2 || ideas.Ideas[0].Agent != "Atlas" || ideas.Ideas[1].Agent != "" {
		t.Fatalf("unexpected ideas: %+v", ideas)
	}

	agents := uc.Agents(ctx)
	if len(agents.Agents) != 2 {
		t.Fatalf("unexpected agents: %+v", agents)
	}
	// only the two most recent notes count
	if agents.Agents[0].Mentions != 1 || agents.Agents[0].LastSeen != "2026-02-10" {
		t.Fatalf("unexpected nova activity: %+v", agents.Agents[0])
	}

	res, err := uc.Search(ctx, dto.SearchInput{Query: "nova"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if res.TotalMatches == 0 || res.Results[0].File != workspace.MemoryFile {
		t.Fatalf("unexpected search result: %+v", res)
	}
	if _, err := uc.Search(ctx, dto.SearchInput{Query: "   "}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("blank query must be invalid, got %v", err)
	}
}

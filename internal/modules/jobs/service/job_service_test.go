package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	jobsout "missionctl/internal/modules/jobs/adapter/out"
	"missionctl/internal/modules/jobs/domain"
	"missionctl/internal/modules/jobs/service"
	"missionctl/internal/platform/dualsource"
	"missionctl/internal/platform/logger"
	"missionctl/internal/platform/sqlitedb"
	"missionctl/internal/platform/workspace"
)

type fakeRepo struct {
	jobs       []domain.Job
	listErr    error
	history    []domain.ATSRecord
	listCalls  int
	historyHit int
}

func (f *fakeRepo) List(context.Context) ([]domain.Job, error) {
	f.listCalls++
	return f.jobs, f.listErr
}

func (f *fakeRepo) Replace(context.Context, []domain.Job) error { return nil }

func (f *fakeRepo) CVHistory(context.Context) ([]domain.ATSRecord, error) {
	f.historyHit++
	return f.history, nil
}

type fakeDoc struct {
	jobs          []domain.Job
	history       []domain.ATSRecord
	pipelineCalls int
}

func (f *fakeDoc) Pipeline(context.Context) ([]domain.Job, error) {
	f.pipelineCalls++
	return f.jobs, nil
}

func (f *fakeDoc) CVHistory(context.Context) ([]domain.ATSRecord, error) {
	return f.history, nil
}

func score(n int) *int { return &n }

func TestPipelinePrefersDatabaseAndSkipsMarkdown(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{jobs: []domain.Job{
		{ID: "a", Company: "Acme", Status: "Applied", Column: domain.ColumnApplied, ATSScore: score(80)},
		{ID: "b", Company: "Globex", Status: "Offer", Column: domain.ColumnOffer, ATSScore: score(70)},
		{ID: "c", Company: "Initech", Status: "Rejected", Column: domain.ColumnClosed, ATSScore: score(60)},
	}}
	doc := &fakeDoc{jobs: []domain.Job{{ID: "x", Company: "Other"}}}
	res := service.NewJobService(logger.Nop(), repo, doc).Pipeline(context.Background())

	if res.Source != dualsource.SourceDB || len(res.Items) != 3 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if doc.pipelineCalls != 0 {
		t.Fatalf("markdown must not be read when the database answers, calls=%d", doc.pipelineCalls)
	}
	if repo.historyHit != 0 {
		t.Fatalf("cv history must not be read when every job has a score")
	}
}

func TestPipelineFallsBackAndBackfillsATS(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{listErr: errors.New("database is locked"), history: []domain.ATSRecord{
		{Company: "Acme", Score: score(91), Date: "2026-02-01"},
	}}
	doc := &fakeDoc{jobs: []domain.Job{
		{ID: "acme", Company: "ACME ", Column: domain.ColumnApplied},
		{ID: "globex", Company: "Globex", Column: domain.ColumnIdentified},
	}}
	res := service.NewJobService(logger.Nop(), repo, doc).Pipeline(context.Background())

	if res.Source != dualsource.SourceMarkdownFallback {
		t.Fatalf("expected markdown-fallback, got %s", res.Source)
	}
	if repo.listCalls != 1 || doc.pipelineCalls != 1 {
		t.Fatalf("each source must be read once, db=%d md=%d", repo.listCalls, doc.pipelineCalls)
	}
	if res.Items[0].ATSScore == nil || *res.Items[0].ATSScore != 91 {
		t.Fatalf("expected backfilled score, got %+v", res.Items[0])
	}
	if res.Items[1].ATSScore != nil {
		t.Fatalf("unknown company must stay unscored: %+v", res.Items[1])
	}
}

const pipelineDoc = `# Goals

## 💼 Job Pipeline
| Company | Role | Status | ATS | Next Action | Salary | Domain | Updated |
|---|---|---|---|---|---|---|---|
| Acme | Backend Engineer | Applied | | Follow up | 90k | acme.io | 2026-02-20 |
| Acme | Backend Engineer | Interview | | Prep | 90k | acme.io | 2026-02-22 |
| Globex | SRE | Watching | 75/100 | | | | |
`

func TestSyncAndDatabaseBackfill(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, workspace.GoalsFile), []byte(pipelineDoc), 0o644); err != nil {
		t.Fatalf("write goals: %v", err)
	}
	ctx := context.Background()
	db, err := sqlitedb.Open(ctx, filepath.Join(root, ".missionctl", "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if _, err := db.SQL.ExecContext(ctx,
		`INSERT INTO cv_history (company, role, ats_score, created_at) VALUES (?, ?, ?, ?), (?, ?, ?, ?)`,
		"Acme", "Backend", 64, "2026-01-01", "Acme", "Backend", 86, "2026-02-15",
	); err != nil {
		t.Fatalf("seed cv history: %v", err)
	}

	svc := service.NewJobService(logger.Nop(), jobsout.NewSQLiteJobRepository(db, logger.Nop()), jobsout.NewWorkspaceJobDocument(workspace.New(root)))
	n, err := svc.Sync(ctx)
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if n != 2 {
		t.Fatalf("duplicate company/role rows must collapse, got %d", n)
	}

	res := svc.Pipeline(ctx)
	if res.Source != dualsource.SourceDB || len(res.Items) != 2 {
		t.Fatalf("unexpected result after sync: %+v", res)
	}
	byID := map[string]domain.Job{}
	for _, j := range res.Items {
		byID[j.ID] = j
	}
	acme := byID["acme-backend-engineer"]
	if acme.Column != domain.ColumnInterview {
		t.Fatalf("last row must win on sync: %+v", acme)
	}
	if acme.ATSScore == nil || *acme.ATSScore != 86 {
		t.Fatalf("expected latest cv_history score 86, got %v", acme.ATSScore)
	}
	if g := byID["globex-sre"]; g.ATSScore == nil || *g.ATSScore != 75 || g.Column != domain.ColumnRadar {
		t.Fatalf("unexpected globex job: %+v", g)
	}
}

func TestPipelineSkipsMalformedDatabaseRows(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	ctx := context.Background()
	db, err := sqlitedb.Open(ctx, filepath.Join(root, "mc.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if _, err := db.SQL.ExecContext(ctx, `INSERT INTO job_pipeline (id, company, role, status, ats_score, updated_at) VALUES
		('acme-backend', 'Acme', 'Backend', 'Applied', 80, '2026-03-01'),
		('globex-sre', 'Globex', 'SRE', 'Interview', 72, '2026-03-02'),
		('initech-pm', 'Initech', 'PM', 'Applied', '87%', '2026-03-03'),
		('blank', '', 'Ghost', 'Applied', 'n/a', '2026-03-04')`,
	); err != nil {
		t.Fatalf("seed jobs: %v", err)
	}

	svc := service.NewJobService(logger.Nop(), jobsout.NewSQLiteJobRepository(db, logger.Nop()), jobsout.NewWorkspaceJobDocument(workspace.New(root)))
	res := svc.Pipeline(ctx)
	if res.Source != dualsource.SourceDB || len(res.Items) != 3 {
		t.Fatalf("expected three usable db rows, got source=%s items=%d", res.Source, len(res.Items))
	}
	byID := map[string]domain.Job{}
	for _, j := range res.Items {
		byID[j.ID] = j
	}
	if j := byID["initech-pm"]; j.ATSScore == nil || *j.ATSScore != 87 {
		t.Fatalf("text score must parse like markdown: %+v", j)
	}
	if _, ok := byID["blank"]; ok {
		t.Fatal("row without a company must be skipped")
	}
}

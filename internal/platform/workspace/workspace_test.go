package workspace_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"missionctl/internal/platform/workspace"
)

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

func TestDailyFilesChecksNamesAndSortsNewestFirst(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	for _, name := range []string{"2026-02-27.md", "2026-03-01.md", "2026-02-28.md", "2026-02-30.md", "2026-03-01-standup.md", "lessons-learned.md"} {
		write(t, root, "memory/"+name, "# note\n")
	}
	ws := workspace.New(root)
	files, rejected, err := ws.DailyFiles(context.Background(), 2)
	if err != nil {
		t.Fatalf("daily files: %v", err)
	}
	if len(files) != 2 || files[0].Day() != "2026-03-01" || files[1].Day() != "2026-02-28" {
		t.Fatalf("unexpected files %+v", files)
	}
	if !reflect.DeepEqual(rejected, []string{"2026-02-30.md", "2026-03-01-standup.md"}) {
		t.Fatalf("unexpected rejected names %v", rejected)
	}
}

func TestSectionAndMissingFile(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	write(t, root, workspace.MemoryFile, "# Memory\n\n## 🎯 Priorities\n- ship\n\n## Other\n")
	ws := workspace.New(root)

	got, err := ws.Section(context.Background(), workspace.MemoryPriorities)
	if err != nil {
		t.Fatalf("section: %v", err)
	}
	if got != "- ship" {
		t.Fatalf("unexpected section %q", got)
	}
	if _, err := ws.Read(context.Background(), workspace.GoalsFile); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestMarkdownFiles(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	write(t, root, workspace.GoalsFile, "x")
	write(t, root, "memory/b.md", "x")
	write(t, root, "memory/a.md", "x")
	write(t, root, "memory/raw.txt", "x")
	files, err := workspace.New(root).MarkdownFiles(context.Background())
	if err != nil {
		t.Fatalf("markdown files: %v", err)
	}
	want := []string{"GOALS.md", "memory/a.md", "memory/b.md"}
	if !reflect.DeepEqual(files, want) {
		t.Fatalf("got %v want %v", files, want)
	}
}

func TestAnchorsAreUnique(t *testing.T) {
	t.Parallel()
	seen := map[workspace.Anchor]string{}
	for name, anchor := range workspace.Anchors {
		if other, ok := seen[anchor]; ok {
			t.Fatalf("%s and %s share anchor %+v", name, other, anchor)
		}
		seen[anchor] = name
	}
}

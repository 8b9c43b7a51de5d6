// Package workspace reads the markdown files an agent maintains. It never
// writes them.
package workspace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"missionctl/internal/platform/markdown"
)

type Workspace struct {
	root string
}

func New(root string) *Workspace {
	return &Workspace{root: root}
}

func (w *Workspace) Root() string {
	return w.root
}

// Exists reports whether the workspace root is a readable directory.
func (w *Workspace) Exists() bool {
	info, err := os.Stat(w.root)
	return err == nil && info.IsDir()
}

// Read returns the whole file at rel.
func (w *Workspace) Read(ctx context.Context, rel string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b, err := os.ReadFile(w.path(rel))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", rel, err)
	}
	return strings.ReplaceAll(string(b), "\r\n", "\n"), nil
}

// Section reads the anchor's file and returns the block under its heading.
// A missing heading yields "" and no error.
func (w *Workspace) Section(ctx context.Context, a Anchor) (string, error) {
	doc, err := w.Read(ctx, a.File)
	if err != nil {
		return "", err
	}
	return markdown.ExtractSection(doc, a.Heading), nil
}

func (w *Workspace) path(rel string) string {
	return filepath.Join(w.root, filepath.FromSlash(rel))
}

// DailyFile is one memory/YYYY-MM-DD.md note.
type DailyFile struct {
	Date time.Time
	Rel  string
}

func (d DailyFile) Day() string {
	return d.Date.Format(dayLayout)
}

const dayLayout = "2006-01-02"

var (
	dailyName      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\.md$`)
	dailyNameShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
)

// DailyFiles lists the newest daily notes first, at most limit (all when
// limit <= 0). Ordering relies on names sorting like dates, so every name is
// checked against YYYY-MM-DD.md and a calendar parse first; date-like names
// failing the check are returned as rejected instead of being sorted.
func (w *Workspace) DailyFiles(ctx context.Context, limit int) ([]DailyFile, []string, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	entries, err := os.ReadDir(w.path(MemoryDir))
	if err != nil {
		return nil, nil, fmt.Errorf("list %s: %w", MemoryDir, err)
	}
	files := make([]DailyFile, 0)
	rejected := make([]string, 0)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !dailyNameShape.MatchString(name) {
			continue
		}
		if !dailyName.MatchString(name) {
			rejected = append(rejected, name)
			continue
		}
		date, err := time.Parse(dayLayout, strings.TrimSuffix(name, ".md"))
		if err != nil {
			rejected = append(rejected, name)
			continue
		}
		files = append(files, DailyFile{Date: date, Rel: MemoryDir + "/" + name})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Rel > files[j].Rel })
	if limit > 0 && len(files) > limit {
		files = files[:limit]
	}
	return files, rejected, nil
}

// MarkdownFiles lists the searchable files: GOALS.md, MEMORY.md and the
// markdown files directly under memory/, as slash-separated relative paths.
func (w *Workspace) MarkdownFiles(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]string, 0)
	for _, top := range []string{GoalsFile, MemoryFile} {
		if info, err := os.Stat(w.path(top)); err == nil && !info.IsDir() {
			out = append(out, top)
		}
	}
	entries, err := os.ReadDir(w.path(MemoryDir))
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return out, fmt.Errorf("list %s: %w", MemoryDir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		names = append(names, MemoryDir+"/"+entry.Name())
	}
	sort.Strings(names)
	return append(out, names...), nil
}

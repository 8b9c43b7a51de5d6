package domain

import "strings"

// File is one searchable workspace file.
type File struct {
	Path    string
	Content string
}

type SearchOptions struct {
	MaxPerFile   int
	MaxTotal     int
	ContextLines int
}

type Match struct {
	Line    int
	Text    string
	Context []string
}

type FileMatches struct {
	File    string
	Matches []Match
}

type SearchResult struct {
	Results      []FileMatches
	TotalMatches int
	Truncated    bool
}

// Search is a case-insensitive substring scan. Files are visited in order;
// at most MaxPerFile matches are kept per file and MaxTotal overall.
// Truncated reports that a cap dropped at least one match.
func Search(files []File, query string, opts SearchOptions) SearchResult {
	out := SearchResult{Results: make([]FileMatches, 0)}
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return out
	}
	for _, f := range files {
		lines := strings.Split(f.Content, "\n")
		fm := FileMatches{File: f.Path, Matches: make([]Match, 0)}
		for i, line := range lines {
			if !strings.Contains(strings.ToLower(line), needle) {
				continue
			}
			if len(fm.Matches) >= opts.MaxPerFile || out.TotalMatches >= opts.MaxTotal {
				out.Truncated = true
				break
			}
			fm.Matches = append(fm.Matches, Match{
				Line:    i + 1,
				Text:    strings.TrimSpace(line),
				Context: around(lines, i, opts.ContextLines),
			})
			out.TotalMatches++
		}
		if len(fm.Matches) > 0 {
			out.Results = append(out.Results, fm)
		}
		if out.TotalMatches >= opts.MaxTotal && out.Truncated {
			break
		}
	}
	return out
}

func around(lines []string, at, n int) []string {
	lo := at - n
	if lo < 0 {
		lo = 0
	}
	hi := at + n + 1
	if hi > len(lines) {
		hi = len(lines)
	}
	out := make([]string, 0, hi-lo)
	for _, l := range lines[lo:hi] {
		out = append(out, strings.TrimRight(l, " \t"))
	}
	return out
}

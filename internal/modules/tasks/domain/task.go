package domain

import (
	"regexp"
	"strings"
	"time"

	"missionctl/internal/platform/classify"
	"missionctl/internal/platform/deadline"
	"missionctl/internal/platform/markdown"
	"missionctl/internal/platform/slug"
	"missionctl/internal/platform/workspace"
)

type Bucket string

const (
	BucketTodo       Bucket = "todo"
	BucketInProgress Bucket = "in_progress"
	BucketBlocked    Bucket = "blocked"
	BucketDone       Bucket = "done"
)

var Buckets = []Bucket{BucketTodo, BucketInProgress, BucketBlocked, BucketDone}

var BucketPolicy = classify.Policy{
	Rules: []classify.Rule{
		{Keyword: "block", Bucket: string(BucketBlocked)},
		{Keyword: "wait", Bucket: string(BucketBlocked)},
		{Keyword: "stuck", Bucket: string(BucketBlocked)},
		{Keyword: "done", Bucket: string(BucketDone)},
		{Keyword: "complete", Bucket: string(BucketDone)},
		{Keyword: "finished", Bucket: string(BucketDone)},
		{Keyword: "progress", Bucket: string(BucketInProgress)},
		{Keyword: "active", Bucket: string(BucketInProgress)},
		{Keyword: "doing", Bucket: string(BucketInProgress)},
		{Keyword: "current", Bucket: string(BucketInProgress)},
	},
	Default: string(BucketTodo),
}

func BucketFor(raw string) Bucket {
	return Bucket(BucketPolicy.Classify(raw))
}

type Task struct {
	ID       string
	Title    string
	Status   Bucket
	Priority string
	Section  string
	DueDate  string
}

var priorityMarker = regexp.MustCompile(`(?i)\s*(?:\((p[0-4])\)|\[(urgent|high|medium|low)\])\s*`)

// SplitPriority removes the first (P1) or [high] marker from text.
func SplitPriority(text string) (string, string) {
	loc := priorityMarker.FindStringSubmatchIndex(text)
	if loc == nil {
		return strings.TrimSpace(text), ""
	}
	priority := ""
	if loc[2] >= 0 {
		priority = strings.ToUpper(text[loc[2]:loc[3]])
	} else {
		priority = strings.ToLower(text[loc[4]:loc[5]])
	}
	rest := text[:loc[0]] + " " + text[loc[1]:]
	return strings.Join(strings.Fields(rest), " "), priority
}

// ParseTasks maps every "## " section of the tasks file onto a bucket by its
// heading; a checked item is done whatever its section says.
func ParseTasks(doc string) []Task {
	out := make([]Task, 0)
	for _, section := range markdown.Subsections(doc, workspace.SectionMarker) {
		bucket := BucketFor(section.Heading)
		for _, item := range markdown.ParseChecklist(section.Body) {
			title, priority := SplitPriority(item.Text)
			if title == "" {
				continue
			}
			status := bucket
			if item.Done {
				status = BucketDone
			}
			out = append(out, Task{
				ID:       slug.Make(title),
				Title:    title,
				Status:   status,
				Priority: priority,
				Section:  section.Heading,
				DueDate:  dueDate(title),
			})
		}
	}
	return out
}

func dueDate(text string) string {
	matches := deadline.FindDates(text, time.UTC)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].At.Format("2006-01-02")
}

// Group buckets tasks in input order; every bucket is present.
func Group(tasks []Task) map[Bucket][]Task {
	out := make(map[Bucket][]Task, len(Buckets))
	for _, b := range Buckets {
		out[b] = []Task{}
	}
	for _, task := range tasks {
		b := task.Status
		if _, ok := out[b]; !ok {
			b = BucketFor(string(b))
		}
		out[b] = append(out[b], task)
	}
	return out
}

package domain_test

import (
	"testing"

	"missionctl/internal/modules/tasks/domain"
)

const tasksDoc = `# Active Tasks

## 🔥 In Progress
- [ ] Rewrite CV summary (P1) by 2026-03-03
- [x] Send portfolio link

## ⏳ Waiting On
- Recruiter reply from Acme [high]

## Backlog
1. Clean up notes

## ✅ Done
- [x] Publish post
`

func TestParseTasks(t *testing.T) {
	t.Parallel()
	tasks := domain.ParseTasks(tasksDoc)
	if len(tasks) != 5 {
		t.Fatalf("expected 5 tasks, got %+v", tasks)
	}
	first := tasks[0]
	if first.Status != domain.BucketInProgress || first.Priority != "P1" || first.Title != "Rewrite CV summary by 2026-03-03" || first.DueDate != "2026-03-03" {
		t.Fatalf("unexpected first task: %+v", first)
	}
	if tasks[1].Status != domain.BucketDone {
		t.Fatalf("checked item must be done: %+v", tasks[1])
	}
	if tasks[2].Status != domain.BucketBlocked || tasks[2].Priority != "high" || tasks[2].Title != "Recruiter reply from Acme" {
		t.Fatalf("unexpected waiting task: %+v", tasks[2])
	}
	if tasks[3].Status != domain.BucketTodo {
		t.Fatalf("backlog must default to todo: %+v", tasks[3])
	}

	groups := domain.Group(tasks)
	if len(groups[domain.BucketDone]) != 2 || len(groups[domain.BucketInProgress]) != 1 {
		t.Fatalf("unexpected groups: %+v", groups)
	}
}

func TestSplitPriority(t *testing.T) {
	t.Parallel()
	cases := []struct{ in, title, priority string }{
		{"(p2) Call bank", "Call bank", "P2"},
		{"Call bank [URGENT]", "Call bank", "urgent"},
		{"Call bank", "Call bank", ""},
	}
	for _, tc := range cases {
		title, priority := domain.SplitPriority(tc.in)
		if title != tc.title || priority != tc.priority {
			t.Fatalf("SplitPriority(%q)=(%q,%q)", tc.in, title, priority)
		}
	}
}

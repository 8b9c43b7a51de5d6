package workspace

// Files read by the dashboard, relative to the workspace root.
const (
	GoalsFile       = "GOALS.md"
	MemoryFile      = "MEMORY.md"
	MemoryDir       = "memory"
	LessonsFile     = "memory/lessons-learned.md"
	TasksFile       = "memory/active-tasks.md"
	SecondBrainFile = "memory/second_brain.md"
	ContentFile     = "memory/content-pipeline.md"
	CVHistoryFile   = "memory/cv-history.md"
)

// Anchor names the exact heading (icon included) a reader extracts from a
// file. Matching is literal and case-sensitive.
type Anchor struct {
	File    string
	Heading string
}

var (
	GoalObjectives   = Anchor{File: GoalsFile, Heading: "## 🎯 Objectives"}
	GoalMetrics      = Anchor{File: GoalsFile, Heading: "## 📊 Metrics"}
	JobPipeline      = Anchor{File: GoalsFile, Heading: "## 💼 Job Pipeline"}
	MemoryPriorities = Anchor{File: MemoryFile, Heading: "## 🎯 Priorities"}
	MemoryLessons    = Anchor{File: MemoryFile, Heading: "## 📚 Lessons"}
	MemoryWins       = Anchor{File: MemoryFile, Heading: "## 🏆 Wins"}
	AgentRoster      = Anchor{File: MemoryFile, Heading: "## 🤖 Agents"}
)

// Markers splitting a section or file into its parts.
const (
	SectionMarker      = "## "
	SubsectionMarker   = "### "
	LessonMissedHeader = "What I Missed"
	LessonWhyHeader    = "Why"
	LessonFixHeader    = "Fix"
)

// Anchors is the full heading vocabulary keyed by view.
var Anchors = map[string]Anchor{
	"goals.objectives":  GoalObjectives,
	"goals.metrics":     GoalMetrics,
	"jobs.pipeline":     JobPipeline,
	"memory.priorities": MemoryPriorities,
	"lessons.freeform":  MemoryLessons,
	"lessons.wins":      MemoryWins,
	"agents.roster":     AgentRoster,
}

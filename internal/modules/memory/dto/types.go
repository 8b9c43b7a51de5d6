package dto

type PriorityOutput struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

type PrioritiesOutput struct {
	Priorities []PriorityOutput `json:"priorities"`
	Source     string           `json:"source"`
}

type NotesInput struct {
	// Limit of 0 means the configured default.
	Limit int
}

type NoteOutput struct {
	Date    string   `json:"date"`
	Title   string   `json:"title"`
	Tags    []string `json:"tags"`
	Bullets int      `json:"bullets"`
	Content string   `json:"content"`
}

type NotesOutput struct {
	Notes  []NoteOutput `json:"notes"`
	Source string       `json:"source"`
}

type IdeaOutput struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Agent string `json:"agent,omitempty"`
}

type IdeasOutput struct {
	Ideas  []IdeaOutput `json:"ideas"`
	Source string       `json:"source"`
}

type AgentOutput struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Model    string `json:"model"`
	Status   string `json:"status"`
	Mentions int    `json:"mentions"`
	LastSeen string `json:"lastSeen,omitempty"`
}

type AgentsOutput struct {
	Agents []AgentOutput `json:"agents"`
	Source string        `json:"source"`
}

type SearchInput struct {
	Query string
}

type MatchOutput struct {
	Line    int      `json:"line"`
	Text    string   `json:"text"`
	Context []string `json:"context"`
}

type FileMatchesOutput struct {
	File    string        `json:"file"`
	Matches []MatchOutput `json:"matches"`
}

type SearchOutput struct {
	Results      []FileMatchesOutput `json:"results"`
	TotalMatches int                 `json:"totalMatches"`
	Truncated    bool                `json:"truncated"`
}

package dto

type EntryOutput struct {
	Date   string   `json:"date"`
	Title  string   `json:"title,omitempty"`
	Missed []string `json:"missed"`
	Why    []string `json:"why"`
	Fix    []string `json:"fix"`
	Source string   `json:"source"`
}

type EntriesOutput struct {
	Entries []EntryOutput `json:"entries"`
	Source  string        `json:"source"`
}

type MistakeOutput struct {
	Text string `json:"text"`
	Fix  string `json:"fix,omitempty"`
	Date string `json:"date"`
}

type WinOutput struct {
	Text string `json:"text"`
	Date string `json:"date"`
}

type SummaryOutput struct {
	Mistakes   []MistakeOutput `json:"mistakes"`
	Wins       []WinOutput     `json:"wins"`
	Source     string          `json:"source"`
	WinsSource string          `json:"winsSource"`
}

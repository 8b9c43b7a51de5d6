package dto

type ItemOutput struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Pillar        string `json:"pillar"`
	Stage         string `json:"stage"`
	WordCount     int    `json:"wordCount"`
	ScheduledDate string `json:"scheduledDate"`
	PublishedDate string `json:"publishedDate"`
	Performance   string `json:"performance"`
}

type ItemsOutput struct {
	Items  []ItemOutput `json:"items"`
	Source string       `json:"source"`
}

type StagesOutput struct {
	Stages map[string]int `json:"stages"`
	Source string         `json:"source"`
}

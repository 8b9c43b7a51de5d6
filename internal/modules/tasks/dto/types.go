package dto

type TaskOutput struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Status   string `json:"status"`
	Priority string `json:"priority,omitempty"`
	Section  string `json:"section,omitempty"`
	DueDate  string `json:"dueDate,omitempty"`
}

type BucketsOutput struct {
	Buckets map[string][]TaskOutput `json:"buckets"`
	Total   int                     `json:"total"`
	Source  string                  `json:"source"`
}

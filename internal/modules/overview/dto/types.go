package dto

type GoalsSummary struct {
	Categories int    `json:"categories"`
	Objectives int    `json:"objectives"`
	Done       int    `json:"done"`
	Progress   int    `json:"progress"`
	Source     string `json:"source"`
}

type JobsSummary struct {
	Total      int    `json:"total"`
	Active     int    `json:"active"`
	Interviews int    `json:"interviews"`
	Offers     int    `json:"offers"`
	Source     string `json:"source"`
}

type ContentSummary struct {
	Total     int    `json:"total"`
	Scheduled int    `json:"scheduled"`
	Published int    `json:"published"`
	Source    string `json:"source"`
}

type TasksSummary struct {
	Total   int    `json:"total"`
	Open    int    `json:"open"`
	Blocked int    `json:"blocked"`
	Source  string `json:"source"`
}

type AlertsSummary struct {
	Total  int    `json:"total"`
	Red    int    `json:"red"`
	Amber  int    `json:"amber"`
	Yellow int    `json:"yellow"`
	Source string `json:"source"`
}

type OverviewOutput struct {
	Goals       GoalsSummary   `json:"goals"`
	Jobs        JobsSummary    `json:"jobs"`
	Content     ContentSummary `json:"content"`
	Tasks       TasksSummary   `json:"tasks"`
	Alerts      AlertsSummary  `json:"alerts"`
	GeneratedAt string         `json:"generatedAt"`
}

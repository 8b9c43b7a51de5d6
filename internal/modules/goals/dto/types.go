package dto

type ObjectiveOutput struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

type CategoryOutput struct {
	Name       string            `json:"name"`
	Objectives []ObjectiveOutput `json:"objectives"`
	Progress   int               `json:"progress"`
	Status     string            `json:"status"`
}

type MetricOutput struct {
	Goal    string `json:"goal"`
	Metric  string `json:"metric"`
	Current string `json:"current"`
	Target  string `json:"target"`
}

type GoalsOutput struct {
	Categories []CategoryOutput `json:"categories"`
	Metrics    []MetricOutput   `json:"metrics"`
	Source     string           `json:"source"`
}

type SyncOutput struct {
	Goals int
}

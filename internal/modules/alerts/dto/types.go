package dto

type AlertOutput struct {
	Text      string `json:"text"`
	Deadline  string `json:"deadline"`
	Severity  string `json:"severity"`
	HoursLeft int    `json:"hoursLeft"`
}

type AlertsOutput struct {
	Alerts []AlertOutput `json:"alerts"`
	Source string        `json:"source"`
}
